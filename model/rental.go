package model

import (
	"time"

	"github.com/google/uuid"
)

type RentalStatus string

const RentalActive RentalStatus = "active"

// MaxRentalDays bounds the duration of any rental.
const MaxRentalDays = 14

// Rental binds one user to one specific instance for a bounded duration.
type Rental struct {
	ID                    uuid.UUID    `json:"id"`
	UserID                uuid.UUID    `json:"user_id"`
	PublicationInstanceID uuid.UUID    `json:"publication_instance_id"`
	Duration              int          `json:"duration"`
	StartDate             Date         `json:"start_date"`
	EndDate               Date         `json:"end_date"`
	Status                RentalStatus `json:"status"`
	CreatedAt             time.Time    `json:"created_at"`
}

type CreateRentalReq struct {
	ID            *uuid.UUID `json:"id"`
	UserID        uuid.UUID  `json:"user_id" validate:"required"`
	PublicationID uuid.UUID  `json:"publication_id" validate:"required"`
	Duration      int        `json:"duration" validate:"required,gt=0"`
}

type PatchRentalReq struct {
	Duration *int `json:"duration"`
}
