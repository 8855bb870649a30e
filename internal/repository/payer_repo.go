package repository

import (
	"context"
	"errors"

	"enrollment-app/internal/domain/payers"

	"gorm.io/gorm"
)

type PayerRepository struct {
	db *gorm.DB
}

func NewPayerRepository(db *gorm.DB) *PayerRepository {
	return &PayerRepository{db: db}
}

// FindByEmail returns (nil, nil) when no payer exists for the email.
func (r *PayerRepository) FindByEmail(ctx context.Context, email string) (*payers.Payer, error) {
	var p payers.Payer
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create fails on the unique email index when another request inserted the
// same payer first; the caller is expected to re-find on failure.
func (r *PayerRepository) Create(ctx context.Context, p *payers.Payer) error {
	return r.db.WithContext(ctx).Create(p).Error
}
