package repository

import (
	"context"
	"time"

	"github.com/ARUNKUMAR016/suganya-metals/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductionRepository defines storage operations for production days and
// their line items. Day creation and item inserts run inside a caller-owned
// transaction so an entry is persisted all-or-nothing.
type ProductionRepository interface {
	// FindDayTx looks up the header for (labourID, date) inside tx.
	FindDayTx(ctx context.Context, tx *gorm.DB, labourID uuid.UUID, date time.Time) (*model.ProductionDay, error)
	CreateDayTx(ctx context.Context, tx *gorm.DB, day *model.ProductionDay) error
	CreateItemsTx(ctx context.Context, tx *gorm.DB, items []model.ProductionItem) error

	// ListDays returns headers with items, products, labour and role preloaded,
	// newest date first. Nil bounds/labour mean unfiltered.
	ListDays(ctx context.Context, start, end *time.Time, labourID *uuid.UUID) ([]model.ProductionDay, error)

	CountByLabour(ctx context.Context, labourID uuid.UUID) (int64, error)
	CountItemsByProduct(ctx context.Context, productID uuid.UUID) (int64, error)

	DB() *gorm.DB // exposes the DB for transaction creation in the service layer
}

type productionRepository struct{ db *gorm.DB }

func NewProductionRepository(db *gorm.DB) ProductionRepository {
	return &productionRepository{db: db}
}

func (r *productionRepository) DB() *gorm.DB { return r.db }

func (r *productionRepository) FindDayTx(ctx context.Context, tx *gorm.DB, labourID uuid.UUID, date time.Time) (*model.ProductionDay, error) {
	var day model.ProductionDay
	err := tx.WithContext(ctx).
		Where("labour_id = ? AND date = ?", labourID, date).
		First(&day).Error
	if err != nil {
		return nil, err
	}
	return &day, nil
}

func (r *productionRepository) CreateDayTx(ctx context.Context, tx *gorm.DB, day *model.ProductionDay) error {
	return tx.WithContext(ctx).Create(day).Error
}

func (r *productionRepository) CreateItemsTx(ctx context.Context, tx *gorm.DB, items []model.ProductionItem) error {
	return tx.WithContext(ctx).Create(&items).Error
}

func (r *productionRepository) ListDays(ctx context.Context, start, end *time.Time, labourID *uuid.UUID) ([]model.ProductionDay, error) {
	q := r.db.WithContext(ctx).Model(&model.ProductionDay{})

	if start != nil {
		q = q.Where("date >= ?", *start)
	}
	if end != nil {
		q = q.Where("date <= ?", *end)
	}
	if labourID != nil {
		q = q.Where("labour_id = ?", *labourID)
	}

	var days []model.ProductionDay
	err := q.Preload("Items.Product").Preload("Labour").Preload("Role").
		Order("date DESC").
		Find(&days).Error
	return days, err
}

func (r *productionRepository) CountByLabour(ctx context.Context, labourID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.ProductionDay{}).
		Where("labour_id = ?", labourID).Count(&n).Error
	return n, err
}

func (r *productionRepository) CountItemsByProduct(ctx context.Context, productID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.ProductionItem{}).
		Where("product_id = ?", productID).Count(&n).Error
	return n, err
}
