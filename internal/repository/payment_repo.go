package repository

import (
	"context"

	"github.com/ARUNKUMAR016/suganya-metals/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentRepository defines storage operations for the payment audit trail.
// Payments are append-only: no update or delete.
type PaymentRepository interface {
	Create(ctx context.Context, p *model.Payment) error
	List(ctx context.Context, labourID *uuid.UUID) ([]model.Payment, error)
	ListRecent(ctx context.Context, limit int) ([]model.Payment, error)
}

type paymentRepository struct{ db *gorm.DB }

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, p *model.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *paymentRepository) List(ctx context.Context, labourID *uuid.UUID) ([]model.Payment, error) {
	q := r.db.WithContext(ctx).Model(&model.Payment{})
	if labourID != nil {
		q = q.Where("labour_id = ?", *labourID)
	}
	var list []model.Payment
	err := q.Preload("Labour").Order("paid_on DESC").Find(&list).Error
	return list, err
}

func (r *paymentRepository) ListRecent(ctx context.Context, limit int) ([]model.Payment, error) {
	var list []model.Payment
	err := r.db.WithContext(ctx).Preload("Labour").
		Order("paid_on DESC").Limit(limit).Find(&list).Error
	return list, err
}
