package models

import (
	"time"
)

// AssignmentStatus is the lifecycle status of an assignment entry.
// NotAssigned is first-class: it is what a missing entry maps to.
type AssignmentStatus string

const (
	StatusNotAssigned AssignmentStatus = "not_assigned"
	StatusPending     AssignmentStatus = "pending"
	StatusAccepted    AssignmentStatus = "accepted"
	StatusRejected    AssignmentStatus = "rejected"
)

// EntityType identifies which party a campaign assignment targets.
type EntityType string

const (
	EntityRetailer EntityType = "retailer"
	EntityEmployee EntityType = "employee"
)

// Valid reports whether t is a known entity type.
func (t EntityType) Valid() bool {
	return t == EntityRetailer || t == EntityEmployee
}

// CampaignRetailer links one retailer to one campaign with a status.
// The composite unique index on (campaign_id, retailer_id) is the engine's
// central uniqueness constraint: at most one entry per pair, ever.
type CampaignRetailer struct {
	ID         string           `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CampaignID string           `json:"campaign_id" gorm:"not null;type:uuid;uniqueIndex:idx_campaign_retailer"`
	RetailerID string           `json:"retailer_id" gorm:"not null;type:uuid;uniqueIndex:idx_campaign_retailer"`
	Status     AssignmentStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`

	AssignedAt  time.Time  `json:"assigned_at" gorm:"not null"`
	RespondedAt *time.Time `json:"responded_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Campaign Campaign `json:"campaign,omitempty" gorm:"foreignKey:CampaignID;references:ID;constraint:OnDelete:CASCADE"`
	Retailer Retailer `json:"retailer,omitempty" gorm:"foreignKey:RetailerID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the CampaignRetailer model
func (CampaignRetailer) TableName() string {
	return "campaign_retailers"
}

// CampaignEmployee links one field employee to one campaign with a status.
type CampaignEmployee struct {
	ID         string           `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CampaignID string           `json:"campaign_id" gorm:"not null;type:uuid;uniqueIndex:idx_campaign_employee"`
	EmployeeID string           `json:"employee_id" gorm:"not null;type:uuid;uniqueIndex:idx_campaign_employee"`
	Status     AssignmentStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`

	AssignedAt  time.Time  `json:"assigned_at" gorm:"not null"`
	RespondedAt *time.Time `json:"responded_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Campaign Campaign `json:"campaign,omitempty" gorm:"foreignKey:CampaignID;references:ID;constraint:OnDelete:CASCADE"`
	Employee Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the CampaignEmployee model
func (CampaignEmployee) TableName() string {
	return "campaign_employees"
}

// AssignRequest represents the interactive single-assignment request.
// Exactly one of RetailerIDs/EmployeeIDs is populated per call.
type AssignRequest struct {
	CampaignID  string   `json:"campaign_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	RetailerIDs []string `json:"retailer_ids,omitempty"`
	EmployeeIDs []string `json:"employee_ids,omitempty"`
}

// SkippedAssignment reports one id that was not assigned and why
type SkippedAssignment struct {
	ID     string `json:"id" example:"550e8400-e29b-41d4-a716-446655440009"`
	Reason string `json:"reason" example:"already pending"`
}

// AssignManyResponse represents the result of an interactive assignment call
type AssignManyResponse struct {
	CampaignID string              `json:"campaign_id"`
	EntityType EntityType          `json:"entity_type"`
	Assigned   []string            `json:"assigned"`
	Skipped    []SkippedAssignment `json:"skipped"`
	Message    string              `json:"message" example:"3 retailers assigned, 5 skipped (already assigned)"`
}

// RowOutcome is the per-row result of a bulk assignment run. Data echoes the
// raw identifying cells so a failed row can be traced back to the spreadsheet.
type RowOutcome struct {
	RowNumber int               `json:"row_number" example:"4"`
	Success   bool              `json:"success"`
	Reason    string            `json:"reason,omitempty" example:"campaign not found or inactive"`
	Data      map[string]string `json:"data,omitempty"`
}

// BulkAssignmentSummary aggregates a bulk run
type BulkAssignmentSummary struct {
	TotalRows      int        `json:"total_rows" example:"3"`
	Successful     int        `json:"successful" example:"1"`
	Failed         int        `json:"failed" example:"2"`
	SuccessRate    string     `json:"success_rate" example:"33%"`
	AssignmentType EntityType `json:"assignment_type" example:"retailer"`
}

// BulkAssignmentResult is the full outcome of one bulk upload
type BulkAssignmentResult struct {
	BatchID    string                `json:"batch_id" example:"9f1c7c4e-2c7c-4f6e-9a3e-1b2d3c4d5e6f"`
	Summary    BulkAssignmentSummary `json:"summary"`
	FailedRows []RowOutcome          `json:"failed_rows"`
}

// RespondRequest represents the portal's accept/reject transition request
type RespondRequest struct {
	Status AssignmentStatus `json:"status" binding:"required" example:"accepted"`
}

// AssignmentEntryResponse represents one assignment entry in listings
type AssignmentEntryResponse struct {
	ID          string           `json:"id"`
	CampaignID  string           `json:"campaign_id"`
	EntityType  EntityType       `json:"entity_type"`
	EntityID    string           `json:"entity_id"`
	EntityCode  string           `json:"entity_code" example:"RT-001"`
	EntityName  string           `json:"entity_name" example:"Sharma General Store"`
	Status      AssignmentStatus `json:"status" example:"pending"`
	AssignedAt  string           `json:"assigned_at" example:"2025-10-02T09:15:00Z"`
	RespondedAt *string          `json:"responded_at,omitempty"`
}
