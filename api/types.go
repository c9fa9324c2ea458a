package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	postHandler    postHandler
	commentHandler commentHandler
	adminHandler   adminHandler
}

type createPostRequest struct {
	Title     string   `json:"title" validate:"required,min=1,max=200"`
	Slug      string   `json:"slug" validate:"required,slug"`
	Excerpt   string   `json:"excerpt" validate:"required,min=1,max=500"`
	Content   string   `json:"content" validate:"required,min=1"`
	Tags      []string `json:"tags" validate:"omitempty,max=10"`
	CoverURL  *string  `json:"coverUrl" validate:"omitempty,url"`
	Published bool     `json:"published"`
}

// updatePostRequest mirrors createPostRequest with every field optional;
// absent fields are left untouched.
type updatePostRequest struct {
	Title     *string   `json:"title" validate:"omitempty,min=1,max=200"`
	Slug      *string   `json:"slug" validate:"omitempty,slug"`
	Excerpt   *string   `json:"excerpt" validate:"omitempty,min=1,max=500"`
	Content   *string   `json:"content" validate:"omitempty,min=1"`
	Tags      *[]string `json:"tags" validate:"omitempty,max=10"`
	CoverURL  *string   `json:"coverUrl" validate:"omitempty,url"`
	Published *bool     `json:"published"`
}

type createCommentRequest struct {
	Author  string `json:"author" validate:"required,min=2,max=80"`
	Email   string `json:"email" validate:"omitempty,email"`
	Content string `json:"content" validate:"required,min=3,max=2000"`
}

type updateCommentRequest struct {
	Approved *bool `json:"approved" validate:"required"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error         string `json:"error"`
	Status        string `json:"status"`
	Field         string `json:"field,omitempty"`
	CorrelationID string `json:"correlationId"`
}
