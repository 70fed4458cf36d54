package model

import (
	"time"

	"github.com/google/uuid"
)

type Author struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Surname   string    `json:"surname"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateAuthorReq struct {
	ID      *uuid.UUID `json:"id"`
	Name    string     `json:"name" validate:"required"`
	Surname string     `json:"surname" validate:"required"`
}

type PatchAuthorReq struct {
	Name    *string `json:"name"`
	Surname *string `json:"surname"`
}
