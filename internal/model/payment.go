package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment is a lump-sum settlement for a week range. Append-only: there is no
// update or delete endpoint; corrections are compensating entries.
type Payment struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	LabourID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	WeekStart   time.Time       `gorm:"type:date;not null"`
	WeekEnd     time.Time       `gorm:"type:date;not null"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Remarks     *string
	PaidOn      time.Time `gorm:"not null;index"`
	CreatedAt   time.Time

	Labour *Labour `gorm:"foreignKey:LabourID"`
}
