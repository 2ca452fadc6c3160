package dto

// RegisterRequest creates a new user.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
}

// LoginRequest authenticates a user.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the issued bearer token.
type AuthResponse struct {
	UserID string `json:"userID"`
	Token  string `json:"token"`
}
