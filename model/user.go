package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                    uuid.UUID `json:"id"`
	Name                  string    `json:"name"`
	Surname               string    `json:"surname"`
	Email                 string    `json:"email"`
	BirthDate             Date      `json:"birth_date"`
	PersonalIdentificator string    `json:"personal_identificator"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

type CreateUserReq struct {
	ID                    *uuid.UUID `json:"id"`
	Name                  string     `json:"name" validate:"required"`
	Surname               string     `json:"surname" validate:"required"`
	Email                 string     `json:"email" validate:"required,email"`
	BirthDate             Date       `json:"birth_date" validate:"required"`
	PersonalIdentificator string     `json:"personal_identificator" validate:"required"`
}

// PatchUserReq fields are pointers: nil means "not provided".
type PatchUserReq struct {
	Name                  *string `json:"name"`
	Surname               *string `json:"surname"`
	Email                 *string `json:"email" validate:"omitempty,email"`
	BirthDate             *Date   `json:"birth_date"`
	PersonalIdentificator *string `json:"personal_identificator"`
}
