package dto

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,personname"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,strongpassword"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SetPrivatePasswordRequest struct {
	Password string `json:"password" binding:"required,min=6"`
	Confirm  string `json:"confirm" binding:"required,min=6"`
}

type ValidatePrivatePasswordRequest struct {
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

// ValidatePrivatePasswordResponse always travels with HTTP 200; validity
// is encoded in the body. PrivateToken is only present when Valid is true.
type ValidatePrivatePasswordResponse struct {
	Valid        bool   `json:"valid"`
	Message      string `json:"message,omitempty"`
	PrivateToken string `json:"private_token,omitempty"`
}
