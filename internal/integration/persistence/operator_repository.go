// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hotel-ledger/backend/internal/application/adapter"
	"github.com/hotel-ledger/backend/internal/domain/entity"
	domainerror "github.com/hotel-ledger/backend/internal/domain/error"
	"github.com/hotel-ledger/backend/internal/integration/persistence/model"
)

// operatorRepository implements the adapter.OperatorRepository interface.
type operatorRepository struct {
	db *gorm.DB
}

// NewOperatorRepository creates a new operator repository instance.
func NewOperatorRepository(db *gorm.DB) adapter.OperatorRepository {
	return &operatorRepository{
		db: db,
	}
}

// Create creates a new operator in the database.
func (r *operatorRepository) Create(ctx context.Context, operator *entity.Operator) error {
	operatorModel := model.OperatorFromEntity(operator)
	result := r.db.WithContext(ctx).Create(operatorModel)
	return result.Error
}

// FindByID retrieves an operator by their ID.
func (r *operatorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Operator, error) {
	var operatorModel model.OperatorModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&operatorModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrOperatorNotFound
		}
		return nil, result.Error
	}
	return operatorModel.ToEntity(), nil
}

// FindByEmail retrieves an operator by their email address.
func (r *operatorRepository) FindByEmail(ctx context.Context, email string) (*entity.Operator, error) {
	var operatorModel model.OperatorModel
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&operatorModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrOperatorNotFound
		}
		return nil, result.Error
	}
	return operatorModel.ToEntity(), nil
}

// Update updates an existing operator in the database.
func (r *operatorRepository) Update(ctx context.Context, operator *entity.Operator) error {
	operatorModel := model.OperatorFromEntity(operator)
	result := r.db.WithContext(ctx).Save(operatorModel)
	return result.Error
}

// ExistsByEmail checks if an operator with the given email exists.
func (r *operatorRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.OperatorModel{}).
		Where("email = ?", email).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
