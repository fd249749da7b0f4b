// This file defines the Data Transfer Objects of the auth endpoints.
// `validate` tags are checked by go-playground/validator before a request reaches
// the service; `example` tags feed the Swagger documentation.
package auth

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,max=254" example:"jane@example.com"`
	Password string `json:"password" validate:"required,min=6,max=72" example:"s3cret-pass"`
	Name     string `json:"name" validate:"required,max=100" example:"Jane"`
	Age      int    `json:"age" validate:"gte=0,lte=150" example:"29"`
}

// LoginRequest is the body of POST /login. It is the ephemeral credential pair:
// consumed by the service and never persisted.
type LoginRequest struct {
	Email    string `json:"email" validate:"required" example:"jane@example.com"`
	Password string `json:"password" validate:"required" example:"s3cret-pass"`
}

// UserInfo is the public part of a user. The password hash never appears here.
type UserInfo struct {
	UserID string `json:"userId" example:"5f8d0d55-7c1a-4a53-9a4e-4a1b2b8c2f10"`
	Name   string `json:"name" example:"Jane"`
	Age    int    `json:"age" example:"29"`
	Email  string `json:"email" example:"jane@example.com"`
}

// LoginResponse is returned on a successful login.
type LoginResponse struct {
	Message  string   `json:"message" example:"Login successful"`
	Token    string   `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	UserInfo UserInfo `json:"userInfo"`
}

// MessageResponse is the generic `{"message": ...}` success body.
type MessageResponse struct {
	Message string `json:"message" example:"User was registered"`
}
