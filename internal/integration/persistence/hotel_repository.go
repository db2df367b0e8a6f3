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

// hotelRepository implements the adapter.HotelRepository interface.
type hotelRepository struct {
	db *gorm.DB
}

// NewHotelRepository creates a new hotel repository instance.
func NewHotelRepository(db *gorm.DB) adapter.HotelRepository {
	return &hotelRepository{
		db: db,
	}
}

// Create creates a new hotel in the database.
func (r *hotelRepository) Create(ctx context.Context, hotel *entity.Hotel) error {
	hotelModel := model.HotelFromEntity(hotel)
	result := r.db.WithContext(ctx).Create(hotelModel)
	return result.Error
}

// FindByID retrieves a hotel by its ID.
func (r *hotelRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Hotel, error) {
	var hotelModel model.HotelModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&hotelModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrHotelNotFound
		}
		return nil, result.Error
	}
	return hotelModel.ToEntity(), nil
}

// FindByOperatorID retrieves the hotel owned by the given operator.
func (r *hotelRepository) FindByOperatorID(ctx context.Context, operatorID uuid.UUID) (*entity.Hotel, error) {
	var hotelModel model.HotelModel
	result := r.db.WithContext(ctx).Where("operator_id = ?", operatorID).First(&hotelModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrHotelNotFound
		}
		return nil, result.Error
	}
	return hotelModel.ToEntity(), nil
}

// FindAllActive retrieves every active hotel, ordered by name.
func (r *hotelRepository) FindAllActive(ctx context.Context) ([]*entity.Hotel, error) {
	var hotelModels []model.HotelModel
	result := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&hotelModels)
	if result.Error != nil {
		return nil, result.Error
	}

	hotels := make([]*entity.Hotel, len(hotelModels))
	for i, hm := range hotelModels {
		hotels[i] = hm.ToEntity()
	}
	return hotels, nil
}

// Update updates an existing hotel in the database.
func (r *hotelRepository) Update(ctx context.Context, hotel *entity.Hotel) error {
	hotelModel := model.HotelFromEntity(hotel)
	result := r.db.WithContext(ctx).Save(hotelModel)
	return result.Error
}

// ExistsByCode checks if a hotel with the given code exists.
func (r *hotelRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.HotelModel{}).
		Where("code = ?", code).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
