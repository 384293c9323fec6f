package dto

// Data Transfer Objects for authentication requests and responses

// RegisterRequest: payload for member registration
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=8"`
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"max=100"`
}

// LoginRequest: payload for member login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse: response payload after successful authentication
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	MemberID    int64  `json:"member_id"`
	Username    string `json:"username"`
	Role        string `json:"role"`
	ExpiresIn   int64  `json:"expires_in"` // seconds
}

// RegisterResponse: response payload after successful registration
type RegisterResponse struct {
	MemberID int64  `json:"member_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
