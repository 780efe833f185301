package repository

import (
	"context"
	"time"

	"github.com/ARUNKUMAR016/suganya-metals/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdvanceRepository defines storage operations for labour advances.
type AdvanceRepository interface {
	Create(ctx context.Context, a *model.LabourAdvance) error
	// List returns advances newest first. Nil bounds/labour mean unfiltered.
	List(ctx context.Context, start, end *time.Time, labourID *uuid.UUID) ([]model.LabourAdvance, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.LabourAdvance, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CountByLabour(ctx context.Context, labourID uuid.UUID) (int64, error)
}

type advanceRepository struct{ db *gorm.DB }

func NewAdvanceRepository(db *gorm.DB) AdvanceRepository {
	return &advanceRepository{db: db}
}

func (r *advanceRepository) Create(ctx context.Context, a *model.LabourAdvance) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *advanceRepository) List(ctx context.Context, start, end *time.Time, labourID *uuid.UUID) ([]model.LabourAdvance, error) {
	q := r.db.WithContext(ctx).Model(&model.LabourAdvance{})

	if start != nil {
		q = q.Where("date >= ?", *start)
	}
	if end != nil {
		q = q.Where("date <= ?", *end)
	}
	if labourID != nil {
		q = q.Where("labour_id = ?", *labourID)
	}

	var list []model.LabourAdvance
	err := q.Preload("Labour").Order("date DESC").Find(&list).Error
	return list, err
}

func (r *advanceRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.LabourAdvance, error) {
	var a model.LabourAdvance
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *advanceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.LabourAdvance{}, "id = ?", id).Error
}

func (r *advanceRepository) CountByLabour(ctx context.Context, labourID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.LabourAdvance{}).
		Where("labour_id = ?", labourID).Count(&n).Error
	return n, err
}
