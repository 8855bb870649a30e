package repository

import (
	"context"

	"enrollment-app/internal/domain/billing"

	"gorm.io/gorm"
)

type ChargeRepository struct {
	db *gorm.DB
}

func NewChargeRepository(db *gorm.DB) *ChargeRepository {
	return &ChargeRepository{db: db}
}

func (r *ChargeRepository) Create(ctx context.Context, ch *billing.Charge) error {
	return r.db.WithContext(ctx).Create(ch).Error
}
