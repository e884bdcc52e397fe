package models

// ErrorResponse is the uniform JSON body returned for every failed request.
// Message is a human-readable description; internal error detail is logged
// server-side and never leaks into this envelope.
type ErrorResponse struct {
	Message string `json:"message"`
}

// MessageResponse is the JSON body for success responses that carry no
// resource payload (logout, delete).
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse is the JSON body of a successful login: the signed token
// alongside the authenticated user's public profile.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
