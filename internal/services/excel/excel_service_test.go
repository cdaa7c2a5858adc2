package excel_test

import (
	"bytes"
	"testing"

	"github.com/brandreach/campaign-crm-backend/internal/models"
	"github.com/brandreach/campaign-crm-backend/internal/services/assignment"
	"github.com/brandreach/campaign-crm-backend/internal/services/excel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// buildWorkbook writes the given rows (header first) into an in-memory xlsx
func buildWorkbook(t *testing.T, rows [][]interface{}) *bytes.Reader {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheetName := f.GetSheetName(0)
	for i, row := range rows {
		for j, value := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheetName, cell, value))
		}
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return bytes.NewReader(buf.Bytes())
}

func TestImportAssignmentRowsRetailerUpload(t *testing.T) {
	reader := buildWorkbook(t, [][]interface{}{
		{"campaignName", "uniqueId", "shopName", "state", "businessType"},
		{"Diwali Push", "RT-001", "Sharma General Store", "Maharashtra", "Kirana"},
		{"Diwali Push", "RT-002"},
	})

	service := excel.NewExcelService()
	rows, err := service.ImportAssignmentRows(reader, assignment.RetailerImportConfig())
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].RowNumber)
	assert.Equal(t, "Diwali Push", rows[0].Data["campaignName"])
	assert.Equal(t, "RT-001", rows[0].Data["uniqueId"])
	assert.Equal(t, "Sharma General Store", rows[0].Data["shopName"])
	assert.Empty(t, rows[0].Missing)

	assert.Equal(t, 2, rows[1].RowNumber)
	assert.Equal(t, "RT-002", rows[1].Data["uniqueId"])
	assert.Empty(t, rows[1].Missing)
}

func TestImportAssignmentRowsHeaderCaseInsensitive(t *testing.T) {
	reader := buildWorkbook(t, [][]interface{}{
		{" CampaignName ", "UNIQUEID"},
		{"Diwali Push", "RT-001"},
	})

	service := excel.NewExcelService()
	rows, err := service.ImportAssignmentRows(reader, assignment.RetailerImportConfig())
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, "Diwali Push", rows[0].Data["campaignName"])
	assert.Equal(t, "RT-001", rows[0].Data["uniqueId"])
}

func TestImportAssignmentRowsBlankRowKeepsNumbering(t *testing.T) {
	reader := buildWorkbook(t, [][]interface{}{
		{"campaignName", "uniqueId"},
		{"Diwali Push", "RT-001"},
		{"", ""},
		{"Diwali Push", "RT-003"},
	})

	service := excel.NewExcelService()
	rows, err := service.ImportAssignmentRows(reader, assignment.RetailerImportConfig())
	require.NoError(t, err)

	// The blank row is dropped but its position is not reused
	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].RowNumber)
	assert.Equal(t, 3, rows[1].RowNumber)
}

func TestImportAssignmentRowsPartialMissingPrecomputed(t *testing.T) {
	reader := buildWorkbook(t, [][]interface{}{
		{"campaignName", "uniqueId"},
		{"Diwali Push", ""},
		{"", "RT-002"},
	})

	service := excel.NewExcelService()
	rows, err := service.ImportAssignmentRows(reader, assignment.RetailerImportConfig())
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, []string{"uniqueId"}, rows[0].Missing)
	assert.Equal(t, "missing required field(s): uniqueId", rows[0].MissingReason())
	assert.Equal(t, []string{"campaignName"}, rows[1].Missing)
}

func TestImportAssignmentRowsEmployeeUpload(t *testing.T) {
	reader := buildWorkbook(t, [][]interface{}{
		{"campaignName", "employeeId", "employeeName", "phone"},
		{"Monsoon Drive", "EMP-017", "A. Verma", "+91-9800000017"},
	})

	service := excel.NewExcelService()
	rows, err := service.ImportAssignmentRows(reader, assignment.EmployeeImportConfig())
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, "EMP-017", rows[0].Data["employeeId"])
	assert.Equal(t, "A. Verma", rows[0].Data["employeeName"])
}

func TestImportAssignmentRowsRejectsUnreadableFile(t *testing.T) {
	service := excel.NewExcelService()
	_, err := service.ImportAssignmentRows(bytes.NewReader([]byte("not a spreadsheet")), assignment.RetailerImportConfig())
	assert.Error(t, err)
}

func TestExportAssignmentTemplate(t *testing.T) {
	service := excel.NewExcelService()

	f, err := service.ExportAssignmentTemplate(assignment.RetailerImportConfig())
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Assignments")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"campaignName", "uniqueId", "shopName", "state", "businessType"}, rows[0])

	assert.Equal(t, "retailer_assignment_template.xlsx", service.TemplateFilename(assignment.RetailerImportConfig()))
	assert.Equal(t, "employee_assignment_template.xlsx", service.TemplateFilename(assignment.EmployeeImportConfig()))
}

func TestExportFailedRows(t *testing.T) {
	service := excel.NewExcelService()
	result := &models.BulkAssignmentResult{
		FailedRows: []models.RowOutcome{
			{
				RowNumber: 2,
				Reason:    "already pending",
				Data:      map[string]string{"campaignName": "Diwali Push", "uniqueId": "RT-001"},
			},
			{
				RowNumber: 3,
				Reason:    "campaign not found or inactive",
				Data:      map[string]string{"campaignName": "NoSuchCampaign", "uniqueId": "RT-001"},
			},
		},
	}

	f, err := service.ExportFailedRows(result, assignment.RetailerImportConfig())
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Failed Rows")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "rowNumber", rows[0][0])
	assert.Equal(t, "reason", rows[0][1])
	assert.Equal(t, "campaignName", rows[0][2])

	assert.Equal(t, "2", rows[1][0])
	assert.Equal(t, "already pending", rows[1][1])
	assert.Equal(t, "Diwali Push", rows[1][2])
	assert.Equal(t, "RT-001", rows[1][3])

	assert.Equal(t, "3", rows[2][0])
	assert.Equal(t, "campaign not found or inactive", rows[2][1])
}
