package login

// LoginRequest HTTP request model
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse HTTP response model
type LoginResponse struct {
	Status   string   `json:"status"`
	UserID   int64    `json:"userId"`
	UserName string   `json:"userName"`
	Roles    []string `json:"roles"`
}
