package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LabourAdvance records cash handed to a labourer ahead of payday. Advances
// inside a salary window are netted against the earned amount.
type LabourAdvance struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	LabourID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Date      time.Time       `gorm:"type:date;not null;index"`
	Notes     *string
	CreatedAt time.Time

	Labour *Labour `gorm:"foreignKey:LabourID"`
}
