package dto

import (
	"coworking/internal/domains/user/model"
	"strings"
)

type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Password string `json:"password" validate:"required,max=100"`
}

func (r *RegisterRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	Username string `json:"username"`
	Admin    bool   `json:"admin"`
}

func (r *UserResponse) FromModel(m model.User) {
	r.Username = m.Username
	r.Admin = m.Admin
}
