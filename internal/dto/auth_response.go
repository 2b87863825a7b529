package dto

type LoginResponse struct {
	Token string `json:"token"`
	ID    int64  `json:"id"`
	Role  string `json:"role"`
}

type GoogleTokenResponse struct {
	AccessToken string `json:"access_token"`
	IDToken     string `json:"id_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type GoogleUserInfo struct {
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
}

type LogoutResponse struct {
	Success bool `json:"success"`
}
