package dto

// LoginRequest carries admin credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@example.com"`
	Password string `json:"password" binding:"required" example:"secret"`
} // @name LoginRequest

// TokenResponse carries the issued admin access token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type" example:"Bearer"`
	ExpiresIn   int64  `json:"expires_in" example:"900"`
} // @name TokenResponse

// Claims are the JWT claims carried by an admin access token. They live in
// the dto package so the middleware does not import the service layer's
// internals.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}
