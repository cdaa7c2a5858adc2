package assignment

import (
	"fmt"

	"github.com/brandreach/campaign-crm-backend/internal/models"
)

// Lookup failure reasons, worded the way they surface in row reports
const (
	ReasonCampaignNotFound = "campaign not found or inactive"
	ReasonRetailerNotFound = "retailer not found"
	ReasonEmployeeNotFound = "employee not found"
	ReasonCampaignInactive = "campaign inactive"
	ReasonWriteFailed      = "failed to save assignment"
)

// NotFoundError reports an identifier that did not resolve to an entity.
// Row-scoped: recorded as a failed row, never aborts a batch.
type NotFoundError struct {
	Reason string
}

func (e *NotFoundError) Error() string {
	return e.Reason
}

// ConflictError reports an assignment attempt blocked by an existing entry
// (or an inactive campaign). The reason embeds the current status so the
// user sees "already pending" rather than a bare rejection.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return e.Reason
}

// NewStatusConflict builds the conflict for an entity that already has a
// non-empty assignment status
func NewStatusConflict(status models.AssignmentStatus) *ConflictError {
	return &ConflictError{Reason: fmt.Sprintf("already %s", status)}
}
