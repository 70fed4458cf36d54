package model

import (
	"time"

	"github.com/google/uuid"
)

// AuthorRef identifies an author by name within publication payloads.
type AuthorRef struct {
	Name    string `json:"name" validate:"required"`
	Surname string `json:"surname" validate:"required"`
}

type Publication struct {
	ID         uuid.UUID   `json:"id"`
	Title      string      `json:"title"`
	Authors    []AuthorRef `json:"authors"`
	Categories []string    `json:"categories"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

type CreatePublicationReq struct {
	ID         *uuid.UUID  `json:"id"`
	Title      string      `json:"title" validate:"required"`
	Authors    []AuthorRef `json:"authors" validate:"required,min=1,dive"`
	Categories []string    `json:"categories" validate:"required,min=1,dive,required"`
}

// PatchPublicationReq replaces whichever parts are provided; a provided
// but empty list is rejected by the service.
type PatchPublicationReq struct {
	Title      *string     `json:"title"`
	Authors    []AuthorRef `json:"authors"`
	Categories []string    `json:"categories"`
}
