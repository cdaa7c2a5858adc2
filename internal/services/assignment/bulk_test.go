package assignment_test

import (
	"context"
	"testing"

	"github.com/brandreach/campaign-crm-backend/internal/models"
	"github.com/brandreach/campaign-crm-backend/internal/services/assignment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func retailerRow(rowNumber int, campaignName, uniqueID string) assignment.BulkRow {
	return assignment.BulkRow{
		RowNumber: rowNumber,
		Data: map[string]string{
			"campaignName": campaignName,
			"uniqueId":     uniqueID,
		},
	}
}

func TestRunBulkMixedOutcomes(t *testing.T) {
	f := newFixture()
	f.addCampaign("c1", "Diwali Push", true)
	f.addRetailer("r1", "RT-001")

	rows := []assignment.BulkRow{
		retailerRow(1, "Diwali Push", "RT-001"),
		retailerRow(2, "Diwali Push", "RT-001"),
		retailerRow(3, "NoSuchCampaign", "RT-001"),
	}

	result := f.engine.RunBulk(context.Background(), assignment.RetailerImportConfig(), rows)

	assert.NotEmpty(t, result.BatchID)
	assert.Equal(t, 3, result.Summary.TotalRows)
	assert.Equal(t, 1, result.Summary.Successful)
	assert.Equal(t, 2, result.Summary.Failed)
	assert.Equal(t, "33%", result.Summary.SuccessRate)
	assert.Equal(t, models.EntityRetailer, result.Summary.AssignmentType)

	require.Len(t, result.FailedRows, 2)
	assert.Equal(t, 2, result.FailedRows[0].RowNumber)
	assert.Equal(t, "already pending", result.FailedRows[0].Reason)
	assert.Equal(t, 3, result.FailedRows[1].RowNumber)
	assert.Equal(t, assignment.ReasonCampaignNotFound, result.FailedRows[1].Reason)
}

func TestRunBulkIdempotentRerun(t *testing.T) {
	f := newFixture()
	f.addCampaign("c1", "Diwali Push", true)
	f.addRetailer("r1", "RT-001")
	f.addRetailer("r2", "RT-002")

	rows := []assignment.BulkRow{
		retailerRow(1, "Diwali Push", "RT-001"),
		retailerRow(2, "Diwali Push", "RT-002"),
	}

	first := f.engine.RunBulk(context.Background(), assignment.RetailerImportConfig(), rows)
	assert.Equal(t, 2, first.Summary.Successful)

	second := f.engine.RunBulk(context.Background(), assignment.RetailerImportConfig(), rows)
	assert.Equal(t, 0, second.Summary.Successful)
	assert.Equal(t, 2, second.Summary.Failed)
	require.Len(t, second.FailedRows, 2)
	for _, row := range second.FailedRows {
		assert.Equal(t, "already pending", row.Reason)
	}
	assert.NotEqual(t, first.BatchID, second.BatchID)
}

func TestRunBulkInactiveCampaignNotResolvable(t *testing.T) {
	f := newFixture()
	f.addCampaign("c1", "Expired Push", false)
	f.addRetailer("r1", "RT-001")

	result := f.engine.RunBulk(context.Background(), assignment.RetailerImportConfig(),
		[]assignment.BulkRow{retailerRow(1, "Expired Push", "RT-001")})

	require.Len(t, result.FailedRows, 1)
	assert.Equal(t, assignment.ReasonCampaignNotFound, result.FailedRows[0].Reason)
}

func TestRunBulkUnknownRetailer(t *testing.T) {
	f := newFixture()
	f.addCampaign("c1", "Diwali Push", true)

	result := f.engine.RunBulk(context.Background(), assignment.RetailerImportConfig(),
		[]assignment.BulkRow{retailerRow(1, "Diwali Push", "RT-999")})

	require.Len(t, result.FailedRows, 1)
	assert.Equal(t, assignment.ReasonRetailerNotFound, result.FailedRows[0].Reason)
}

func TestRunBulkMissingRequiredFields(t *testing.T) {
	f := newFixture()
	f.addCampaign("c1", "Diwali Push", true)
	f.addRetailer("r1", "RT-001")

	rows := []assignment.BulkRow{
		{
			RowNumber: 1,
			Data:      map[string]string{"campaignName": "Diwali Push"},
			Missing:   []string{"uniqueId"},
		},
		retailerRow(2, "Diwali Push", "RT-001"),
	}

	result := f.engine.RunBulk(context.Background(), assignment.RetailerImportConfig(), rows)

	assert.Equal(t, 1, result.Summary.Successful)
	require.Len(t, result.FailedRows, 1)
	assert.Equal(t, 1, result.FailedRows[0].RowNumber)
	assert.Equal(t, "missing required field(s): uniqueId", result.FailedRows[0].Reason)
}

func TestRunBulkEmptyBatch(t *testing.T) {
	f := newFixture()

	result := f.engine.RunBulk(context.Background(), assignment.RetailerImportConfig(), nil)

	assert.Equal(t, 0, result.Summary.TotalRows)
	assert.Equal(t, "0%", result.Summary.SuccessRate)
	assert.Empty(t, result.FailedRows)
}

func TestRunBulkPreservesRowOrderInFailures(t *testing.T) {
	f := newFixture()
	f.addCampaign("c1", "Diwali Push", true)

	rows := []assignment.BulkRow{
		retailerRow(1, "Diwali Push", "RT-901"),
		retailerRow(2, "Diwali Push", "RT-902"),
		retailerRow(3, "Diwali Push", "RT-903"),
	}

	result := f.engine.RunBulk(context.Background(), assignment.RetailerImportConfig(), rows)

	require.Len(t, result.FailedRows, 3)
	for i, row := range result.FailedRows {
		assert.Equal(t, i+1, row.RowNumber)
	}
}

func TestRunBulkEmployeeUpload(t *testing.T) {
	f := newFixture()
	f.addCampaign("c1", "Monsoon Drive", true)
	f.addEmployee("e1", "EMP-017")

	rows := []assignment.BulkRow{
		{
			RowNumber: 1,
			Data: map[string]string{
				"campaignName": "Monsoon Drive",
				"employeeId":   "EMP-017",
			},
		},
	}

	result := f.engine.RunBulk(context.Background(), assignment.EmployeeImportConfig(), rows)

	assert.Equal(t, 1, result.Summary.Successful)
	assert.Equal(t, models.EntityEmployee, result.Summary.AssignmentType)

	entry, err := f.entries.GetEmployeeEntry("c1", "e1")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, models.StatusPending, entry.Status)
}
