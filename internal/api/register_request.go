// File: internal/api/register_request.go
package api

// swagger:model api.RegisterRequest
type RegisterRequest struct {
	Username string `json:"username" form:"username" validate:"required" example:"alice"`
	Email    string `json:"email" form:"email" validate:"required" example:"alice@example.com"`
	Password string `json:"password" form:"password" validate:"required" example:"Secret123!"`
}

// swagger:model api.RegisterResponse
type RegisterResponse struct {
	ID    string `json:"id" example:"5b0c3d55-7a8e-4a38-9a3e-1f4a2f0b9f11"`
	Email string `json:"email" example:"alice@example.com"`
}
