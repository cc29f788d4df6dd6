package dto

// AuthRequest is the JSON body for POST /auth/signup and /auth/signin.
type AuthRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=1"`
}

// TokenResponse carries the signed access token back to the client.
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
}
