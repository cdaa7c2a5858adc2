package excel

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/brandreach/campaign-crm-backend/internal/models"
	"github.com/brandreach/campaign-crm-backend/internal/services/assignment"

	"github.com/xuri/excelize/v2"
)

// Service handles the spreadsheet side of bulk assignment: parsing uploads
// into rows, generating upload templates, and exporting failed-row reports.
type Service struct{}

// NewExcelService creates a new Excel service instance
func NewExcelService() *Service {
	return &Service{}
}

const templateSheetName = "Assignments"

// ImportAssignmentRows reads the first worksheet of an uploaded file into
// ordered BulkRows. Row 1 is the header; each subsequent row is numbered by
// its 1-based position among data rows. Rows whose required columns are all
// blank are skipped silently but still consume their position, so reported
// row numbers always match the spreadsheet. A row with some required columns
// missing is emitted with the failure precomputed rather than failing the
// whole file; only an unreadable file or a missing header row is a file-level
// error.
func (s *Service) ImportAssignmentRows(reader io.Reader, cfg assignment.ImportConfig) ([]assignment.BulkRow, error) {
	f, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read spreadsheet: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	rawRows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
	}
	if len(rawRows) == 0 {
		return nil, fmt.Errorf("spreadsheet has no header row")
	}

	// Header match is case-insensitive and ignores surrounding whitespace
	columnIndex := make(map[string]int)
	for i, header := range rawRows[0] {
		key := strings.ToLower(strings.TrimSpace(header))
		if key != "" {
			columnIndex[key] = i
		}
	}

	cellValue := func(raw []string, column string) string {
		idx, ok := columnIndex[strings.ToLower(column)]
		if !ok || idx >= len(raw) {
			return ""
		}
		return strings.TrimSpace(raw[idx])
	}

	var rows []assignment.BulkRow
	for i, raw := range rawRows[1:] {
		data := make(map[string]string)
		for _, column := range cfg.Columns() {
			if value := cellValue(raw, column); value != "" {
				data[column] = value
			}
		}

		var missing []string
		allRequiredBlank := true
		for _, column := range cfg.RequiredColumns() {
			if data[column] == "" {
				missing = append(missing, column)
			} else {
				allRequiredBlank = false
			}
		}
		if allRequiredBlank {
			continue
		}

		rows = append(rows, assignment.BulkRow{
			RowNumber: i + 1,
			Data:      data,
			Missing:   missing,
		})
	}

	return rows, nil
}

// ExportAssignmentTemplate builds the upload template for an assignment
// type: one styled header row with the expected columns.
func (s *Service) ExportAssignmentTemplate(cfg assignment.ImportConfig) (*excelize.File, error) {
	f := excelize.NewFile()

	defaultSheetName := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheetName, templateSheetName); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	f.SetActiveSheet(0)

	columns := cfg.Columns()
	if err := s.writeHeaderRow(f, templateSheetName, columns); err != nil {
		return nil, err
	}

	for i := range columns {
		colLetter := columnToLetter(i + 1)
		f.SetColWidth(templateSheetName, colLetter, colLetter, 25.0)
	}

	return f, nil
}

// TemplateFilename names the template download for an assignment type
func (s *Service) TemplateFilename(cfg assignment.ImportConfig) string {
	return fmt.Sprintf("%s_assignment_template.xlsx", cfg.EntityType)
}

// ExportFailedRows builds a correction spreadsheet from a bulk result: the
// original identifying cells of every failed row plus its row number and
// failure reason, ready to fix and re-upload.
func (s *Service) ExportFailedRows(result *models.BulkAssignmentResult, cfg assignment.ImportConfig) (*excelize.File, error) {
	f := excelize.NewFile()

	sheetName := "Failed Rows"
	defaultSheetName := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheetName, sheetName); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	f.SetActiveSheet(0)

	columns := append([]string{"rowNumber", "reason"}, cfg.Columns()...)
	if err := s.writeHeaderRow(f, sheetName, columns); err != nil {
		return nil, err
	}

	for j, outcome := range result.FailedRows {
		rowNum := j + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowNum), outcome.RowNumber)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", rowNum), outcome.Reason)
		for k, column := range cfg.Columns() {
			cell := fmt.Sprintf("%s%d", columnToLetter(k+3), rowNum)
			f.SetCellValue(sheetName, cell, outcome.Data[column])
		}
	}

	for i := range columns {
		colLetter := columnToLetter(i + 1)
		width := 25.0
		if columns[i] == "reason" {
			width = 40.0
		}
		f.SetColWidth(sheetName, colLetter, colLetter, width)
	}

	return f, nil
}

// writeHeaderRow writes a bold, filled, bordered header row
func (s *Service) writeHeaderRow(f *excelize.File, sheetName string, columns []string) error {
	for i, col := range columns {
		cell := fmt.Sprintf("%s1", columnToLetter(i+1))
		f.SetCellValue(sheetName, cell, col)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"FFFF00"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err == nil {
		f.SetCellStyle(sheetName, "A1", columnToLetter(len(columns))+strconv.Itoa(1), headerStyle)
	}
	return nil
}

// Helper function to convert column number to Excel column letter
func columnToLetter(col int) string {
	var result string
	for col > 0 {
		col--
		result = string(rune('A'+col%26)) + result
		col /= 26
	}
	return result
}
