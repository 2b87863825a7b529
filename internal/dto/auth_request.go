package dto

type RegisterRequest struct {
	Nama      string         `json:"nama"`
	NoTelepon FlexibleString `json:"no_telepon"`
	Email     string         `json:"email"`
	Password  string         `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type GoogleCallbackRequest struct {
	Code  string `query:"code"`
	Error string `query:"error"`
}
