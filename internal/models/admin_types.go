package models

// LoginRequest is the body of POST /api/admin/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the bearer token issued by the backend.
type LoginResponse struct {
	Token   string `json:"token"`
	Message string `json:"message,omitempty"`
}
