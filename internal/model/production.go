package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductionDay is the header row for one labourer's output on one calendar
// date. RatePerKg is copied from the labourer's role the first time the header
// is created and is never rewritten — later role rate changes do not touch it.
// The composite unique index enforces at most one header per (labour, date);
// a concurrent duplicate insert surfaces as gorm.ErrDuplicatedKey and the
// service falls back to appending items to the existing header.
type ProductionDay struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Date      time.Time       `gorm:"type:date;not null;uniqueIndex:idx_production_labour_date,priority:2"`
	LabourID  uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_production_labour_date,priority:1"`
	RoleID    uuid.UUID       `gorm:"type:uuid;not null"`
	RatePerKg decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt time.Time

	Labour *Labour          `gorm:"foreignKey:LabourID"`
	Role   *Role            `gorm:"foreignKey:RoleID"`
	Items  []ProductionItem `gorm:"foreignKey:ProductionDayID"`
}

// ProductionItem is one product line under a ProductionDay. Amount is
// QuantityKg multiplied by the owning day's latched rate, fixed at insert.
// No update path exists for items.
type ProductionItem struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductionDayID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Pcs             int             `gorm:"not null;default:0"`
	QuantityKg      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Amount          decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt       time.Time

	Product *Product `gorm:"foreignKey:ProductID"`
}
