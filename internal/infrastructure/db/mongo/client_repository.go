package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/clientdesk/registry-api/internal/core/domain"
	"github.com/clientdesk/registry-api/internal/core/ports"
)

const clientsCollection = "clients"

type ClientRepository struct {
	col *mongo.Collection
}

func NewClientRepository(db *mongo.Database) *ClientRepository {
	return &ClientRepository{col: db.Collection(clientsCollection)}
}

type mongoClient struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Name          string             `bson:"name"`
	Document      string             `bson:"document"`
	DocumentKind  string             `bson:"document_kind"`
	Street        string             `bson:"street,omitempty"`
	Number        string             `bson:"number,omitempty"`
	District      string             `bson:"district,omitempty"`
	City          string             `bson:"city,omitempty"`
	State         string             `bson:"state,omitempty"`
	ZipCode       string             `bson:"zip_code,omitempty"`
	Phone         string             `bson:"phone,omitempty"`
	Email         string             `bson:"email,omitempty"`
	OwnerDocument string             `bson:"owner_document"`
	CreatedAt     int64              `bson:"created_at"`
}

// Create inserts a new client record and returns it with the assigned id.
func (r *ClientRepository) Create(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, toMongoClient(client))
	if err != nil {
		return nil, fmt.Errorf("insert client: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		client.ID = oid.Hex()
	}
	return client, nil
}

func (r *ClientRepository) FindByID(ctx context.Context, id string) (*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrClientNotFound
	}

	var mc mongoClient
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&mc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("find client: %w", err)
	}
	return toDomainClient(&mc), nil
}

func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrClientNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}

// List returns records in insertion order (_id order), filtered by the
// ownership scope when one is set. The scope filter is built here from
// the scope value alone, so a non-admin caller cannot widen it.
func (r *ClientRepository) List(ctx context.Context, scope domain.ListScope) ([]*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if !scope.All() {
		filter["owner_document"] = scope.OwnerDocument
	}

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer cur.Close(ctx)

	return decodeClients(ctx, cur)
}

// Search matches any of: name contains the raw term (case-insensitive),
// document equals the normalized term, phone contains the normalized
// term. The digit branches are skipped when the term holds no digits, so
// an all-letter term cannot match every record with a phone on file.
func (r *ClientRepository) Search(ctx context.Context, q ports.SearchQuery) ([]*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	or := []bson.M{
		{"name": bson.M{"$regex": regexp.QuoteMeta(q.Raw), "$options": "i"}},
	}
	if q.Normalized != "" {
		or = append(or,
			bson.M{"document": q.Normalized},
			bson.M{"phone": bson.M{"$regex": regexp.QuoteMeta(q.Normalized)}},
		)
	}

	cur, err := r.col.Find(ctx, bson.M{"$or": or}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("search clients: %w", err)
	}
	defer cur.Close(ctx)

	return decodeClients(ctx, cur)
}

// EnsureIndexes creates the owner_document index used by scoped listing.
func (r *ClientRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "owner_document", Value: 1}},
	})
	return err
}

func toMongoClient(c *domain.Client) mongoClient {
	return mongoClient{
		Name:          c.Name,
		Document:      c.Document,
		DocumentKind:  string(c.DocumentKind),
		Street:        c.Street,
		Number:        c.Number,
		District:      c.District,
		City:          c.City,
		State:         c.State,
		ZipCode:       c.ZipCode,
		Phone:         c.Phone,
		Email:         c.Email,
		OwnerDocument: c.OwnerDocument,
		CreatedAt:     c.CreatedAt.Unix(),
	}
}

func toDomainClient(mc *mongoClient) *domain.Client {
	return &domain.Client{
		ID:            mc.ID.Hex(),
		Name:          mc.Name,
		Document:      mc.Document,
		DocumentKind:  domain.DocumentKind(mc.DocumentKind),
		Street:        mc.Street,
		Number:        mc.Number,
		District:      mc.District,
		City:          mc.City,
		State:         mc.State,
		ZipCode:       mc.ZipCode,
		Phone:         mc.Phone,
		Email:         mc.Email,
		OwnerDocument: mc.OwnerDocument,
		CreatedAt:     unixToTime(mc.CreatedAt),
	}
}

func decodeClients(ctx context.Context, cur *mongo.Cursor) ([]*domain.Client, error) {
	clients := make([]*domain.Client, 0)
	for cur.Next(ctx) {
		var mc mongoClient
		if err := cur.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode client: %w", err)
		}
		clients = append(clients, toDomainClient(&mc))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate clients: %w", err)
	}
	return clients, nil
}
