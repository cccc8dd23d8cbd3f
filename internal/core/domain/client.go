package domain

import "time"

// Client is a registered client record. Document holds the normalized
// CPF or CNPJ; OwnerDocument is the document of the account that created
// the record and is the key used for ownership scoping. Address and
// contact fields are optional free text.
type Client struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Document      string       `json:"document"`
	DocumentKind  DocumentKind `json:"document_kind"`
	Street        string       `json:"street,omitempty"`
	Number        string       `json:"number,omitempty"`
	District      string       `json:"district,omitempty"`
	City          string       `json:"city,omitempty"`
	State         string       `json:"state,omitempty"`
	ZipCode       string       `json:"zip_code,omitempty"`
	Phone         string       `json:"phone,omitempty"`
	Email         string       `json:"email,omitempty"`
	OwnerDocument string       `json:"owner_document"`
	CreatedAt     time.Time    `json:"created_at"`
}
