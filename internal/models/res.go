package models

// MessageResponse is the body returned by create, update, delete and upload
// operations. ID carries the canonical string form of a newly assigned
// identifier and is omitted when the operation did not create a document.
type MessageResponse struct {
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

// ErrorDetail is the body returned for every failed operation.
type ErrorDetail struct {
	Detail string `json:"detail"`
}
