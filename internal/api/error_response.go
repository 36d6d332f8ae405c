package api

// ErrorResponse is the body of every failed request.
// swagger:model api.ErrorResponse
type ErrorResponse struct {
	Title      string `json:"title" example:"Validation Error"`
	Message    string `json:"message" example:"Please add all fields"`
	StackTrace string `json:"stackTrace" example:""`
}
