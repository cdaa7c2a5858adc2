package repository

import (
	"github.com/brandreach/campaign-crm-backend/internal/models"

	"gorm.io/gorm"
)

type RetailerRepository struct {
	db *gorm.DB
}

func NewRetailerRepository(db *gorm.DB) *RetailerRepository {
	return &RetailerRepository{db: db}
}

// GetByID retrieves a retailer by internal ID
func (r *RetailerRepository) GetByID(id string) (*models.Retailer, error) {
	var retailer models.Retailer
	err := r.db.First(&retailer, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &retailer, nil
}

// GetByUniqueCode retrieves a retailer by its externally visible code
func (r *RetailerRepository) GetByUniqueCode(code string) (*models.Retailer, error) {
	var retailer models.Retailer
	err := r.db.Where("unique_code = ?", code).First(&retailer).Error
	if err != nil {
		return nil, err
	}
	return &retailer, nil
}

// List retrieves retailers with pagination and optional search over code,
// shop name and state
func (r *RetailerRepository) List(offset, limit int, search string) ([]models.Retailer, int64, error) {
	var retailers []models.Retailer
	var total int64

	query := r.db.Model(&models.Retailer{})
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("unique_code ILIKE ? OR shop_name ILIKE ? OR state ILIKE ?", pattern, pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("shop_name ASC").Offset(offset).Limit(limit).Find(&retailers).Error
	return retailers, total, err
}
