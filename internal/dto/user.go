package dto

// RegisterRequest is the JSON body for POST /register.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,max=120"`
	Password string `json:"password" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
	FullName string `json:"full_name" binding:"max=200"`
}

// TokenRequest is the form-encoded body for POST /token (OAuth2
// password-flow shape).
type TokenRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// RegisterResponse echoes the registered username. Nothing else about
// the account is exposed.
type RegisterResponse struct {
	Username string `json:"username"`
}

// UserProfileResponse is the public view of an account returned by
// GET /register/{id}. The password hash is never part of it.
type UserProfileResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Disabled bool   `json:"disabled"`
}

// TokenResponse is returned by POST /token on successful login.
type TokenResponse struct {
	Username    string `json:"username"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Message     string `json:"message"`
}
