package models

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token       string   `json:"token"`
	User        string   `json:"user"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

type SessionResponse struct {
	User        string   `json:"user"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}
