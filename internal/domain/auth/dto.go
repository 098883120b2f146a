package auth

// RegisterRequest creates a new account
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required"`
}

// LoginRequest authenticates an existing account
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse carries the user and their access token
type AuthResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// MeResponse adds the credit balance to the profile, so the page can show
// the current balance next to the packs.
type MeResponse struct {
	User          *User `json:"user"`
	CreditBalance int64 `json:"credit_balance"`
}
