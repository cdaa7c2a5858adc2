package assignment

import (
	"strings"

	"github.com/brandreach/campaign-crm-backend/internal/models"
)

// ImportConfig describes the column expectations of one upload type. It is
// passed explicitly to the ingestor and the orchestrator so there is no
// global upload-type state anywhere.
type ImportConfig struct {
	EntityType       models.EntityType
	CampaignColumn   string
	IdentifierColumn string
	// OptionalColumns are carried through only for failure-report
	// readability and never validated
	OptionalColumns []string
}

// RetailerImportConfig is the column layout of a retailer assignment upload
func RetailerImportConfig() ImportConfig {
	return ImportConfig{
		EntityType:       models.EntityRetailer,
		CampaignColumn:   "campaignName",
		IdentifierColumn: "uniqueId",
		OptionalColumns:  []string{"shopName", "state", "businessType"},
	}
}

// EmployeeImportConfig is the column layout of an employee assignment upload
func EmployeeImportConfig() ImportConfig {
	return ImportConfig{
		EntityType:       models.EntityEmployee,
		CampaignColumn:   "campaignName",
		IdentifierColumn: "employeeId",
		OptionalColumns:  []string{"employeeName", "phone"},
	}
}

// ImportConfigFor returns the layout for an entity type
func ImportConfigFor(entityType models.EntityType) (ImportConfig, bool) {
	switch entityType {
	case models.EntityRetailer:
		return RetailerImportConfig(), true
	case models.EntityEmployee:
		return EmployeeImportConfig(), true
	}
	return ImportConfig{}, false
}

// RequiredColumns returns the columns a row must carry to be processable
func (c ImportConfig) RequiredColumns() []string {
	return []string{c.CampaignColumn, c.IdentifierColumn}
}

// Columns returns the full ordered header layout, required columns first
func (c ImportConfig) Columns() []string {
	return append(c.RequiredColumns(), c.OptionalColumns...)
}

// BulkRow is one ingested spreadsheet row: the raw cell values keyed by
// column name plus the row's 1-based position among data rows. Missing holds
// required columns that were absent or blank, precomputed by the ingestor so
// the failure stays row-scoped.
type BulkRow struct {
	RowNumber int
	Data      map[string]string
	Missing   []string
}

// MissingReason renders the precomputed failure for a row with absent
// required columns
func (r BulkRow) MissingReason() string {
	return "missing required field(s): " + strings.Join(r.Missing, ", ")
}
