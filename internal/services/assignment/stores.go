package assignment

import (
	"context"

	"github.com/brandreach/campaign-crm-backend/internal/models"
)

// The engine consumes its collaborators through narrow interfaces so it can
// be exercised without a database. The gorm repositories under
// internal/database/repository satisfy them as-is.

// CampaignStore reads campaign records
type CampaignStore interface {
	GetByID(id string) (*models.Campaign, error)
	FindActiveByName(name string) (*models.Campaign, error)
}

// RetailerStore reads retailer records
type RetailerStore interface {
	GetByID(id string) (*models.Retailer, error)
	GetByUniqueCode(code string) (*models.Retailer, error)
}

// EmployeeStore reads employee records
type EmployeeStore interface {
	GetByID(id string) (*models.Employee, error)
	GetByCode(code string) (*models.Employee, error)
}

// EntryStore reads and conditionally appends assignment entries. Append
// methods must be atomic per (campaign, entity) pair and return
// repository.ErrDuplicateAssignment when an entry already exists.
type EntryStore interface {
	GetRetailerEntry(campaignID, retailerID string) (*models.CampaignRetailer, error)
	GetEmployeeEntry(campaignID, employeeID string) (*models.CampaignEmployee, error)
	AppendRetailer(entry *models.CampaignRetailer) error
	AppendEmployee(entry *models.CampaignEmployee) error
}

// AssignmentEvent is published after every successful write so the
// retailer/employee portal can notify the assignee
type AssignmentEvent struct {
	CampaignID string                  `json:"campaign_id"`
	EntityType models.EntityType       `json:"entity_type"`
	EntityID   string                  `json:"entity_id"`
	Status     models.AssignmentStatus `json:"status"`
	AssignedAt string                  `json:"assigned_at"`
}

// EventPublisher delivers assignment events to the message broker. Publish
// failures are logged by the writer and never fail the assignment.
type EventPublisher interface {
	PublishAssignmentEvent(ctx context.Context, event AssignmentEvent) error
}
