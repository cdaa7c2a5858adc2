package assignment

import (
	"github.com/brandreach/campaign-crm-backend/internal/models"
)

// Validator decides whether an assignment is permitted: campaign active,
// entity not already assigned. Pure read, no side effects. The writer's
// conditional insert remains the atomic backstop; the validator exists to
// produce status-specific conflict reasons before anything is written.
type Validator struct {
	entries EntryStore
}

func NewValidator(entries EntryStore) *Validator {
	return &Validator{entries: entries}
}

// Validate returns nil when assignment is permitted, or a *ConflictError
// describing why it is not
func (v *Validator) Validate(campaign *models.Campaign, entityID string, entityType models.EntityType) error {
	// Normally filtered upstream by the active-only campaign lookup
	if !campaign.IsActive {
		return &ConflictError{Reason: ReasonCampaignInactive}
	}

	status, err := v.currentStatus(campaign.ID, entityID, entityType)
	if err != nil {
		return err
	}
	if status != models.StatusNotAssigned {
		return NewStatusConflict(status)
	}
	return nil
}

// currentStatus maps a missing entry to StatusNotAssigned so the conflict
// check is a single comparison
func (v *Validator) currentStatus(campaignID, entityID string, entityType models.EntityType) (models.AssignmentStatus, error) {
	switch entityType {
	case models.EntityRetailer:
		entry, err := v.entries.GetRetailerEntry(campaignID, entityID)
		if err != nil {
			return "", err
		}
		if entry == nil {
			return models.StatusNotAssigned, nil
		}
		return entry.Status, nil
	case models.EntityEmployee:
		entry, err := v.entries.GetEmployeeEntry(campaignID, entityID)
		if err != nil {
			return "", err
		}
		if entry == nil {
			return models.StatusNotAssigned, nil
		}
		return entry.Status, nil
	}
	return "", &NotFoundError{Reason: "unknown entity type"}
}
