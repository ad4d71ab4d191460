package service

import "agridev/entities"

type RegisterInput struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Role     *string `json:"role,omitempty"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is a user plus a freshly issued token.
type Session struct {
	User  *entities.User
	Token string
}

type AuthService interface {
	Register(in RegisterInput) (*Session, error)
	Login(in LoginInput) (*Session, error)
	Profile(uid uint) (*entities.User, error)
}
