package model

import (
	"time"

	"github.com/google/uuid"
)

type InstanceType string

const (
	InstancePhysical  InstanceType = "physical"
	InstanceEbook     InstanceType = "ebook"
	InstanceAudiobook InstanceType = "audiobook"
)

type InstanceStatus string

const (
	InstanceAvailable   InstanceStatus = "available"
	InstanceReserved    InstanceStatus = "reserved"
	InstanceUnavailable InstanceStatus = "unavailable"
)

// Instance is one concrete lendable copy of a publication.
type Instance struct {
	ID            uuid.UUID      `json:"id"`
	Type          InstanceType   `json:"type"`
	Publisher     string         `json:"publisher"`
	Year          int            `json:"year"`
	Status        InstanceStatus `json:"status"`
	PublicationID uuid.UUID      `json:"publication_id"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

type CreateInstanceReq struct {
	ID            *uuid.UUID     `json:"id"`
	Type          InstanceType   `json:"type" validate:"required,oneof=physical ebook audiobook"`
	Publisher     string         `json:"publisher" validate:"required"`
	Year          int            `json:"year" validate:"required"`
	Status        InstanceStatus `json:"status" validate:"required,oneof=available reserved unavailable"`
	PublicationID uuid.UUID      `json:"publication_id" validate:"required"`
}

type PatchInstanceReq struct {
	Type          *InstanceType   `json:"type" validate:"omitempty,oneof=physical ebook audiobook"`
	Publisher     *string         `json:"publisher"`
	Year          *int            `json:"year"`
	Status        *InstanceStatus `json:"status" validate:"omitempty,oneof=available reserved unavailable"`
	PublicationID *uuid.UUID      `json:"publication_id"`
}
