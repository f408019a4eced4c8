package dto

import "github.com/amirhossein-jamali/acorn-grove/internal/domain/entity"

// UserDTO is the public view of a user
type UserDTO struct {
	ID     string `json:"id"`
	Handle string `json:"handle"`
}

// GuestSessionResponse is returned by POST /auth/guest
type GuestSessionResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

// MeResponse is returned by GET /me
type MeResponse struct {
	User UserDTO `json:"user"`
}

// NewUserDTO converts a user entity
func NewUserDTO(u *entity.User) UserDTO {
	return UserDTO{ID: u.ID, Handle: u.Handle}
}
