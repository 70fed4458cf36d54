package model

import (
	"time"

	"github.com/google/uuid"
)

type CardStatus string

const (
	CardActive   CardStatus = "active"
	CardInactive CardStatus = "inactive"
	CardExpired  CardStatus = "expired"
)

type Card struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	Magstripe string     `json:"magstripe"`
	Status    CardStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type CreateCardReq struct {
	ID        *uuid.UUID `json:"id"`
	UserID    uuid.UUID  `json:"user_id" validate:"required"`
	Magstripe string     `json:"magstripe" validate:"required"`
	Status    CardStatus `json:"status" validate:"required,oneof=active inactive expired"`
}

type PatchCardReq struct {
	UserID    *uuid.UUID  `json:"user_id"`
	Magstripe *string     `json:"magstripe"`
	Status    *CardStatus `json:"status" validate:"omitempty,oneof=active inactive expired"`
}
