package domain

// ListScope bounds which client records a listing may return.
// An empty OwnerDocument means unrestricted (admin).
type ListScope struct {
	OwnerDocument string
}

// All reports whether the scope places no ownership restriction.
func (s ListScope) All() bool {
	return s.OwnerDocument == ""
}

// ScopeFor returns the mandatory listing scope for a user: admins see
// every record, owners only records they created. Repositories must
// apply the scope unconditionally; there is no bypass for non-admins.
func ScopeFor(u *User) ListScope {
	if u.IsAdmin() {
		return ListScope{}
	}
	return ListScope{OwnerDocument: u.Document}
}

// CanRead reports whether u may read client record c: admins always,
// owners only when they created the record.
func CanRead(u *User, c *Client) bool {
	return u.IsAdmin() || c.OwnerDocument == u.Document
}

// CanDelete follows the same rule as CanRead: admin or original owner.
func CanDelete(u *User, c *Client) bool {
	return CanRead(u, c)
}

// CanCreate is true for any authenticated user; records are attributed
// to their creator.
func CanCreate(u *User) bool {
	return u != nil
}

// CanSearch restricts the flexible search to administrators.
func CanSearch(u *User) bool {
	return u.IsAdmin()
}
