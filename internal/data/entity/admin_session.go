package entity

import (
	"time"

	"github.com/google/uuid"
)

type AdminSession struct {
	BaseSimple
	Token     uuid.UUID  `db:"token"`
	ExpiresAt time.Time  `db:"expires_at"`
	RevokedAt *time.Time `db:"revoked_at"`
}
