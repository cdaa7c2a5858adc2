package models

import (
	"time"
)

// Employee represents a field employee executing campaigns. Read-only from
// the assignment engine's perspective.
type Employee struct {
	ID           string `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	EmployeeCode string `json:"employee_code" gorm:"type:varchar(50);not null;unique;index"`
	Name         string `json:"name" gorm:"type:varchar(255);not null"`
	State        string `json:"state" gorm:"type:varchar(100);index"`
	Phone        string `json:"phone" gorm:"type:varchar(20)"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Employee model
func (Employee) TableName() string {
	return "employees"
}

// EmployeeResponse represents an employee row in listings
type EmployeeResponse struct {
	ID               string           `json:"id"`
	EmployeeCode     string           `json:"employee_code" example:"EMP-017"`
	Name             string           `json:"name" example:"A. Verma"`
	State            string           `json:"state" example:"Gujarat"`
	Phone            string           `json:"phone" example:"+91-9800000017"`
	AssignmentStatus AssignmentStatus `json:"assignment_status,omitempty" example:"not_assigned"`
}
