package api

// swagger:model api.CreateContactRequest
type CreateContactRequest struct {
	Name  string `json:"name" form:"name" validate:"required" example:"Bob"`
	Email string `json:"email" form:"email" validate:"required" example:"bob@example.com"`
	Phone string `json:"phone" form:"phone" validate:"required" example:"555-0100"`
}

// UpdateContactRequest only touches the fields present in the body.
// swagger:model api.UpdateContactRequest
type UpdateContactRequest struct {
	Name  *string `json:"name" form:"name" example:"Bob"`
	Email *string `json:"email" form:"email" example:"bob@example.com"`
	Phone *string `json:"phone" form:"phone" example:"555-0199"`
}
