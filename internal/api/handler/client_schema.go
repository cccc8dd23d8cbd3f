package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

// createClientRequest carries a new client record. Document accepts
// formatted input ("529.982.247-25", "11.222.333/0001-81"); the service
// normalizes it. Address and contact fields are optional.
type createClientRequest struct {
	Name     string `json:"name"     validate:"required"`
	Document string `json:"document" validate:"required"`
	Street   string `json:"street,omitempty"`
	Number   string `json:"number,omitempty"`
	District string `json:"district,omitempty"`
	City     string `json:"city,omitempty"`
	State    string `json:"state,omitempty"    validate:"omitempty,len=2"`
	ZipCode  string `json:"zip_code,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"    validate:"omitempty,email"`
}

type searchClientsRequest struct {
	Term string `json:"term"`
}

// listClientsResponse wraps list and search results. Count is the number
// of records returned; an empty result is a valid, empty answer.
type listClientsResponse struct {
	Data  []clientItem `json:"data"`
	Count int          `json:"count"`
}

type clientItem struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Document     string `json:"document"`
	DocumentKind string `json:"document_kind"`
	Street       string `json:"street,omitempty"`
	Number       string `json:"number,omitempty"`
	District     string `json:"district,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	ZipCode      string `json:"zip_code,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty"`
	OwnerDoc     string `json:"owner_document"`
	CreatedAt    string `json:"created_at"`
}
