package auth_dto

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

// LoginMetadata is captured from the request for session bookkeeping.
type LoginMetadata struct {
	Device    string
	UserAgent string
	IP        string
}
