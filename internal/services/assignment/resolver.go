package assignment

import (
	"errors"

	"github.com/brandreach/campaign-crm-backend/internal/models"

	"gorm.io/gorm"
)

// Resolver translates human-entered identifiers (campaign name, retailer
// unique code, employee code) into internal entity records. Pure read, no
// side effects.
type Resolver struct {
	campaigns CampaignStore
	retailers RetailerStore
	employees EmployeeStore
}

func NewResolver(campaigns CampaignStore, retailers RetailerStore, employees EmployeeStore) *Resolver {
	return &Resolver{
		campaigns: campaigns,
		retailers: retailers,
		employees: employees,
	}
}

// ResolveCampaign matches an exact, case-sensitive campaign name against
// active campaigns. Inactive and unmatched names both report
// "campaign not found or inactive".
func (r *Resolver) ResolveCampaign(name string) (*models.Campaign, error) {
	campaign, err := r.campaigns.FindActiveByName(name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Reason: ReasonCampaignNotFound}
	}
	if err != nil {
		return nil, err
	}
	return campaign, nil
}

// CampaignByID resolves a campaign by internal id, used by the interactive
// path where the caller already holds ids from a prior listing
func (r *Resolver) CampaignByID(id string) (*models.Campaign, error) {
	campaign, err := r.campaigns.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Reason: ReasonCampaignNotFound}
	}
	if err != nil {
		return nil, err
	}
	return campaign, nil
}

// ResolveRetailer matches a retailer by exact unique code
func (r *Resolver) ResolveRetailer(code string) (*models.Retailer, error) {
	retailer, err := r.retailers.GetByUniqueCode(code)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Reason: ReasonRetailerNotFound}
	}
	if err != nil {
		return nil, err
	}
	return retailer, nil
}

// ResolveEmployee matches an employee by exact employee code
func (r *Resolver) ResolveEmployee(code string) (*models.Employee, error) {
	employee, err := r.employees.GetByCode(code)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Reason: ReasonEmployeeNotFound}
	}
	if err != nil {
		return nil, err
	}
	return employee, nil
}

// EntityIDFor resolves an entity of the given type by internal id and
// returns its id, used by the interactive path to confirm the id still
// exists before validating
func (r *Resolver) EntityIDFor(entityType models.EntityType, id string) (string, error) {
	switch entityType {
	case models.EntityRetailer:
		retailer, err := r.retailers.GetByID(id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", &NotFoundError{Reason: ReasonRetailerNotFound}
		}
		if err != nil {
			return "", err
		}
		return retailer.ID, nil
	case models.EntityEmployee:
		employee, err := r.employees.GetByID(id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", &NotFoundError{Reason: ReasonEmployeeNotFound}
		}
		if err != nil {
			return "", err
		}
		return employee.ID, nil
	}
	return "", &NotFoundError{Reason: "unknown entity type"}
}

// EntityIDForCode resolves an entity of the given type by its external code,
// used by the bulk path
func (r *Resolver) EntityIDForCode(entityType models.EntityType, code string) (string, error) {
	switch entityType {
	case models.EntityRetailer:
		retailer, err := r.ResolveRetailer(code)
		if err != nil {
			return "", err
		}
		return retailer.ID, nil
	case models.EntityEmployee:
		employee, err := r.ResolveEmployee(code)
		if err != nil {
			return "", err
		}
		return employee.ID, nil
	}
	return "", &NotFoundError{Reason: "unknown entity type"}
}
