package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureIndexes creates every index the repositories rely on: the unique
// users.document index backing the registration uniqueness invariant and
// the clients.owner_document index backing scoped listing. The hosting
// process calls this once after Connect.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	return NewClientRepository(db).EnsureIndexes(ctx)
}
