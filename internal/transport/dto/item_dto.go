package dto

// CreateItemRequest is the sanitized body of POST /items.
type CreateItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateItemRequest is the sanitized body of PUT /items/:id.
// A nil field was not supplied and must be left untouched.
type UpdateItemRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// IsEmpty reports whether no field was supplied.
func (r UpdateItemRequest) IsEmpty() bool {
	return r.Name == nil && r.Description == nil
}
