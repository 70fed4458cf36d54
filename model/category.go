package model

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateCategoryReq struct {
	ID   *uuid.UUID `json:"id"`
	Name string     `json:"name" validate:"required"`
}

type PatchCategoryReq struct {
	Name *string `json:"name"`
}
