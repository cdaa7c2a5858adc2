package assignment

import (
	"context"
	"errors"
	"time"

	"github.com/brandreach/campaign-crm-backend/internal/database/repository"
	"github.com/brandreach/campaign-crm-backend/internal/models"

	"github.com/sirupsen/logrus"
)

// Writer is the sole mutator of assignment state. It appends a pending entry
// for the (campaign, entity) pair via the store's conditional insert, so two
// writers racing on the same pair get exactly one success. AssignedAt is set
// once at creation and never overwritten.
type Writer struct {
	entries EntryStore
	events  EventPublisher
	now     func() time.Time
}

func NewWriter(entries EntryStore, events EventPublisher) *Writer {
	return &Writer{
		entries: entries,
		events:  events,
		now:     time.Now,
	}
}

// Write appends the assignment entry and publishes the created event.
// Returns *ConflictError when an entry already exists for the pair (a race
// that slipped past the validator loses here instead of writing twice).
func (w *Writer) Write(ctx context.Context, campaign *models.Campaign, entityID string, entityType models.EntityType) error {
	assignedAt := w.now()

	var err error
	switch entityType {
	case models.EntityRetailer:
		err = w.entries.AppendRetailer(&models.CampaignRetailer{
			CampaignID: campaign.ID,
			RetailerID: entityID,
			Status:     models.StatusPending,
			AssignedAt: assignedAt,
		})
	case models.EntityEmployee:
		err = w.entries.AppendEmployee(&models.CampaignEmployee{
			CampaignID: campaign.ID,
			EmployeeID: entityID,
			Status:     models.StatusPending,
			AssignedAt: assignedAt,
		})
	default:
		return &NotFoundError{Reason: "unknown entity type"}
	}

	if errors.Is(err, repository.ErrDuplicateAssignment) {
		return w.conflictForExisting(campaign.ID, entityID, entityType)
	}
	if err != nil {
		return err
	}

	w.publishEvent(ctx, campaign.ID, entityID, entityType, assignedAt)
	return nil
}

// conflictForExisting reads back the entry that won the race so the conflict
// reason can name its status
func (w *Writer) conflictForExisting(campaignID, entityID string, entityType models.EntityType) error {
	var status models.AssignmentStatus
	switch entityType {
	case models.EntityRetailer:
		entry, err := w.entries.GetRetailerEntry(campaignID, entityID)
		if err != nil || entry == nil {
			return &ConflictError{Reason: "already assigned"}
		}
		status = entry.Status
	case models.EntityEmployee:
		entry, err := w.entries.GetEmployeeEntry(campaignID, entityID)
		if err != nil || entry == nil {
			return &ConflictError{Reason: "already assigned"}
		}
		status = entry.Status
	}
	return NewStatusConflict(status)
}

// publishEvent notifies the portal side. Best effort: a broker outage must
// not fail an assignment that is already persisted.
func (w *Writer) publishEvent(ctx context.Context, campaignID, entityID string, entityType models.EntityType, assignedAt time.Time) {
	if w.events == nil {
		return
	}
	event := AssignmentEvent{
		CampaignID: campaignID,
		EntityType: entityType,
		EntityID:   entityID,
		Status:     models.StatusPending,
		AssignedAt: assignedAt.Format(time.RFC3339),
	}
	if err := w.events.PublishAssignmentEvent(ctx, event); err != nil {
		logrus.Warnf("Failed to publish assignment event for campaign %s %s %s: %v",
			campaignID, entityType, entityID, err)
	}
}
