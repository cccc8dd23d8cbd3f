package domain

import "testing"

func TestScopeFor(t *testing.T) {
	admin := &User{Document: "11144477735", Role: RoleAdmin}
	owner := &User{Document: "52998224725", Role: RoleOwner}

	if scope := ScopeFor(admin); !scope.All() {
		t.Fatalf("expected unrestricted scope for admin, got %+v", scope)
	}

	scope := ScopeFor(owner)
	if scope.All() {
		t.Fatalf("expected restricted scope for owner")
	}
	if scope.OwnerDocument != owner.Document {
		t.Fatalf("expected scope on %s, got %s", owner.Document, scope.OwnerDocument)
	}
}

func TestCanReadAndDelete(t *testing.T) {
	admin := &User{Document: "11144477735", Role: RoleAdmin}
	ownerA := &User{Document: "52998224725", Role: RoleOwner}
	ownerB := &User{Document: "11987654321", Role: RoleOwner}

	record := &Client{Name: "Acme", Document: "11222333000181", OwnerDocument: ownerA.Document}

	if !CanRead(ownerA, record) || !CanDelete(ownerA, record) {
		t.Fatalf("original owner must be able to read and delete own record")
	}
	if CanRead(ownerB, record) || CanDelete(ownerB, record) {
		t.Fatalf("other owner must not access a record they did not create")
	}
	if !CanRead(admin, record) || !CanDelete(admin, record) {
		t.Fatalf("admin must be able to read and delete any record")
	}
}

func TestCanCreateAndSearch(t *testing.T) {
	admin := &User{Document: "11144477735", Role: RoleAdmin}
	owner := &User{Document: "52998224725", Role: RoleOwner}

	if !CanCreate(admin) || !CanCreate(owner) {
		t.Fatalf("both roles may create records")
	}
	if !CanSearch(admin) {
		t.Fatalf("admin must be allowed to search")
	}
	if CanSearch(owner) {
		t.Fatalf("owner must not be allowed to search")
	}
}
