package assignment

import (
	"context"
	"errors"
	"fmt"

	"github.com/brandreach/campaign-crm-backend/internal/models"

	"github.com/sirupsen/logrus"
)

// AssignMany assigns a list of already-listed entity ids to one campaign.
// Each id is processed independently: a failure for one id never prevents
// the remaining ids from being attempted. Returns both the assigned ids and
// the skipped ids with reasons so the caller can report partial success.
func (e *Engine) AssignMany(ctx context.Context, campaignID string, entityType models.EntityType, entityIDs []string) (*models.AssignManyResponse, error) {
	campaign, err := e.resolver.CampaignByID(campaignID)
	if err != nil {
		return nil, err
	}

	response := &models.AssignManyResponse{
		CampaignID: campaignID,
		EntityType: entityType,
		Assigned:   []string{},
		Skipped:    []models.SkippedAssignment{},
	}

	for _, id := range entityIDs {
		if reason := e.assignOne(ctx, campaign, entityType, id); reason != "" {
			response.Skipped = append(response.Skipped, models.SkippedAssignment{ID: id, Reason: reason})
			continue
		}
		response.Assigned = append(response.Assigned, id)
	}

	response.Message = summarize(entityType, len(response.Assigned), len(response.Skipped))

	logrus.Infof("Assigned %d/%d %ss to campaign %s (%d skipped)",
		len(response.Assigned), len(entityIDs), entityType, campaign.Name, len(response.Skipped))

	return response, nil
}

// assignOne runs resolve -> validate -> write for a single id and returns a
// skip reason, or "" on success
func (e *Engine) assignOne(ctx context.Context, campaign *models.Campaign, entityType models.EntityType, id string) string {
	entityID, err := e.resolver.EntityIDFor(entityType, id)
	if err != nil {
		return reasonFor(err)
	}
	if err := e.validator.Validate(campaign, entityID, entityType); err != nil {
		return reasonFor(err)
	}
	if err := e.writer.Write(ctx, campaign, entityID, entityType); err != nil {
		return reasonFor(err)
	}
	return ""
}

// reasonFor converts an engine error to a user-facing skip/failure reason.
// NotFound and Conflict carry their own wording; anything else is a
// persistence failure and gets the generic reason rather than leaking
// driver errors into row reports.
func reasonFor(err error) string {
	var notFound *NotFoundError
	if errors.As(err, &notFound) {
		return notFound.Reason
	}
	var conflict *ConflictError
	if errors.As(err, &conflict) {
		return conflict.Reason
	}
	logrus.Errorf("Assignment write failed: %v", err)
	return ReasonWriteFailed
}

func summarize(entityType models.EntityType, assigned, skipped int) string {
	noun := string(entityType)
	if assigned != 1 {
		noun += "s"
	}
	message := fmt.Sprintf("%d %s assigned", assigned, noun)
	if skipped > 0 {
		message += fmt.Sprintf(", %d skipped (already assigned)", skipped)
	}
	return message
}
