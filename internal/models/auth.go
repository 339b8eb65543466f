package models

// Credentials is the payload for POST /auth/login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the opaque session token returned on a successful
// login.
type LoginResponse struct {
	Token string `json:"token"`
}
