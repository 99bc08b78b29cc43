package domain

import (
	"github.com/google/uuid"
)

type UserRole string

const (
	Admin UserRole = "admin"
	Owner UserRole = "owner"
)

type TokenPayload struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Role   UserRole
}
