package dto

// LoginRequest carries the credentials of a login attempt.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@school.edu"`
	Password string `json:"password" binding:"required,min=6" example:"secret123"`
}

// SessionResponse describes the authenticated principal.
type SessionResponse struct {
	UserID string `json:"uid" example:"7f9c24e5-1b2a-4f9f-9c3e-2d44a1f0a111"`
	Email  string `json:"email" example:"admin@school.edu"`
	Name   string `json:"name" example:"Site Admin"`
	Role   string `json:"role" example:"admin" enums:"guest,student,teacher,admin"`
}

// LoginResponse carries the session token issued on successful login.
type LoginResponse struct {
	Token     string          `json:"token"`
	ExpiresIn int             `json:"expiresIn" example:"43200"`
	Session   SessionResponse `json:"session"`
}
