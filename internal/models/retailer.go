package models

import (
	"time"
)

// Retailer represents a shop that campaigns get assigned to. Read-only from
// the assignment engine's perspective; descriptive fields are for display and
// filtering only.
type Retailer struct {
	ID           string `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UniqueCode   string `json:"unique_code" gorm:"type:varchar(50);not null;unique;index"`
	ShopName     string `json:"shop_name" gorm:"type:varchar(255);not null"`
	OwnerName    string `json:"owner_name" gorm:"type:varchar(255)"`
	State        string `json:"state" gorm:"type:varchar(100);index"`
	BusinessType string `json:"business_type" gorm:"type:varchar(100);index"`
	Phone        string `json:"phone" gorm:"type:varchar(20)"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Retailer model
func (Retailer) TableName() string {
	return "retailers"
}

// RetailerResponse represents a retailer row in listings, with its assignment
// status for the campaign being viewed when one is requested.
type RetailerResponse struct {
	ID               string           `json:"id"`
	UniqueCode       string           `json:"unique_code" example:"RT-001"`
	ShopName         string           `json:"shop_name" example:"Sharma General Store"`
	OwnerName        string           `json:"owner_name" example:"R. Sharma"`
	State            string           `json:"state" example:"Maharashtra"`
	BusinessType     string           `json:"business_type" example:"Kirana"`
	Phone            string           `json:"phone" example:"+91-9800000001"`
	AssignmentStatus AssignmentStatus `json:"assignment_status,omitempty" example:"not_assigned"`
}
