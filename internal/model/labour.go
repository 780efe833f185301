package model

import (
	"time"

	"github.com/google/uuid"
)

// Labour is a registered worker assigned to one Role.
// Deletion is guarded at the service layer: a labourer with production days
// or advances on record cannot be removed.
type Labour struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"index;not null"`
	Phone     *string
	RoleID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Active    bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Role *Role `gorm:"foreignKey:RoleID"`
}
