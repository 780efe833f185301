package repository

import (
	"context"

	"github.com/ARUNKUMAR016/suganya-metals/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LabourRepository defines storage operations for labourers.
type LabourRepository interface {
	Create(ctx context.Context, l *model.Labour) error
	List(ctx context.Context) ([]model.Labour, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Labour, error)
	Update(ctx context.Context, l *model.Labour) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountActive(ctx context.Context) (int64, error)
}

type labourRepository struct{ db *gorm.DB }

func NewLabourRepository(db *gorm.DB) LabourRepository {
	return &labourRepository{db: db}
}

func (r *labourRepository) Create(ctx context.Context, l *model.Labour) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *labourRepository) List(ctx context.Context) ([]model.Labour, error) {
	var list []model.Labour
	err := r.db.WithContext(ctx).Preload("Role").Order("name asc").Find(&list).Error
	return list, err
}

func (r *labourRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Labour, error) {
	var l model.Labour
	err := r.db.WithContext(ctx).Preload("Role").First(&l, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *labourRepository) Update(ctx context.Context, l *model.Labour) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *labourRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Labour{}, "id = ?", id).Error
}

func (r *labourRepository) CountActive(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Labour{}).Where("active = ?", true).Count(&n).Error
	return n, err
}
