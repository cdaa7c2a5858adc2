package models

import (
	"time"
)

// Campaign represents a marketing campaign that retailers and employees get assigned to.
// Campaign records themselves are created and edited by the campaign-management
// system; this service only reads them and appends assignment entries.
type Campaign struct {
	ID          string `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name        string `json:"name" gorm:"type:varchar(255);not null;unique;index"`
	Description string `json:"description" gorm:"type:text"`
	IsActive    bool   `json:"is_active" gorm:"default:true;index"`

	// Campaign window and budget, display only from this service's perspective
	StartDate    *time.Time `json:"start_date" gorm:"index"`
	EndDate      *time.Time `json:"end_date" gorm:"index"`
	BudgetAmount float64    `json:"budget_amount" gorm:"type:decimal(12,2);default:0"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	AssignedRetailers []CampaignRetailer `json:"assigned_retailers,omitempty" gorm:"foreignKey:CampaignID;references:ID;constraint:OnDelete:CASCADE"`
	AssignedEmployees []CampaignEmployee `json:"assigned_employees,omitempty" gorm:"foreignKey:CampaignID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Campaign model
func (Campaign) TableName() string {
	return "campaigns"
}

// CampaignResponse represents the response for campaign read operations
type CampaignResponse struct {
	ID                string     `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name              string     `json:"name" example:"Diwali Push"`
	Description       string     `json:"description" example:"Festive season display drive"`
	IsActive          bool       `json:"is_active" example:"true"`
	StartDate         *time.Time `json:"start_date" example:"2025-10-01T00:00:00Z"`
	EndDate           *time.Time `json:"end_date" example:"2025-11-15T23:59:59Z"`
	BudgetAmount      float64    `json:"budget_amount" example:"250000"`
	AssignedRetailers int        `json:"assigned_retailers" example:"42"`
	AssignedEmployees int        `json:"assigned_employees" example:"7"`
	CreatedAt         string     `json:"created_at" example:"2025-01-09T10:30:00Z"`
	UpdatedAt         string     `json:"updated_at" example:"2025-01-09T10:30:00Z"`
}
