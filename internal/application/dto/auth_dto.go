package dto

// LoginRequest credenciales de un usuario final.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SessionResponse la sesión autenticada que se devuelve al cliente.
type SessionResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// LoginResponse token + sesión.
type LoginResponse struct {
	Token   string          `json:"token"`
	Session SessionResponse `json:"session"`
}
