package assignment

import (
	"context"
	"fmt"

	"github.com/brandreach/campaign-crm-backend/internal/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RunBulk drives one spreadsheet batch. Rows are processed sequentially in
// spreadsheet order and independently of each other: every failure is
// row-scoped, recorded in the result, and never aborts the batch. Validation
// runs against persisted state at the moment each row is processed, so a
// duplicate pair inside one batch resolves to one success and one
// "already pending" failure, in row order.
func (e *Engine) RunBulk(ctx context.Context, cfg ImportConfig, rows []BulkRow) *models.BulkAssignmentResult {
	result := &models.BulkAssignmentResult{
		BatchID:    uuid.NewString(),
		FailedRows: []models.RowOutcome{},
	}

	successful := 0
	for _, row := range rows {
		if reason := e.processRow(ctx, cfg, row); reason != "" {
			result.FailedRows = append(result.FailedRows, models.RowOutcome{
				RowNumber: row.RowNumber,
				Success:   false,
				Reason:    reason,
				Data:      row.Data,
			})
			continue
		}
		successful++
	}

	total := len(rows)
	result.Summary = models.BulkAssignmentSummary{
		TotalRows:      total,
		Successful:     successful,
		Failed:         total - successful,
		SuccessRate:    successRate(successful, total),
		AssignmentType: cfg.EntityType,
	}

	logrus.Infof("Bulk %s assignment batch %s: %d/%d rows succeeded",
		cfg.EntityType, result.BatchID, successful, total)

	return result
}

// processRow runs the per-row pipeline and returns a failure reason, or ""
// on success
func (e *Engine) processRow(ctx context.Context, cfg ImportConfig, row BulkRow) string {
	if len(row.Missing) > 0 {
		return row.MissingReason()
	}

	campaign, err := e.resolver.ResolveCampaign(row.Data[cfg.CampaignColumn])
	if err != nil {
		return reasonFor(err)
	}

	entityID, err := e.resolver.EntityIDForCode(cfg.EntityType, row.Data[cfg.IdentifierColumn])
	if err != nil {
		return reasonFor(err)
	}

	if err := e.validator.Validate(campaign, entityID, cfg.EntityType); err != nil {
		return reasonFor(err)
	}

	if err := e.writer.Write(ctx, campaign, entityID, cfg.EntityType); err != nil {
		return reasonFor(err)
	}

	return ""
}

// successRate formats successful/total as an integer percentage, "0%" for an
// empty batch
func successRate(successful, total int) string {
	if total == 0 {
		return "0%"
	}
	return fmt.Sprintf("%d%%", successful*100/total)
}
