package repository

import (
	"github.com/brandreach/campaign-crm-backend/internal/models"

	"gorm.io/gorm"
)

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// GetByID retrieves an employee by internal ID
func (r *EmployeeRepository) GetByID(id string) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.First(&employee, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// GetByCode retrieves an employee by its employee code
func (r *EmployeeRepository) GetByCode(code string) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.Where("employee_code = ?", code).First(&employee).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// List retrieves employees with pagination and optional search over code,
// name and state
func (r *EmployeeRepository) List(offset, limit int, search string) ([]models.Employee, int64, error) {
	var employees []models.Employee
	var total int64

	query := r.db.Model(&models.Employee{})
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("employee_code ILIKE ? OR name ILIKE ? OR state ILIKE ?", pattern, pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("name ASC").Offset(offset).Limit(limit).Find(&employees).Error
	return employees, total, err
}
