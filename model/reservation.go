package model

import (
	"time"

	"github.com/google/uuid"
)

// Reservation is a queue ticket for any instance of a publication.
// CreatedAt is the FIFO ordering key.
type Reservation struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	PublicationID uuid.UUID `json:"publication_id"`
	CreatedAt     time.Time `json:"created_at"`
}

type CreateReservationReq struct {
	ID            *uuid.UUID `json:"id"`
	UserID        uuid.UUID  `json:"user_id" validate:"required"`
	PublicationID uuid.UUID  `json:"publication_id" validate:"required"`
}
