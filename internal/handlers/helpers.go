package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

const timeFormat = time.RFC3339

// writeWorkbook streams an excelize workbook as an xlsx download
func writeWorkbook(c *gin.Context, f *excelize.File, filename string) {
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Type", xlsxContentType)
	c.Status(http.StatusOK)
	if err := f.Write(c.Writer); err != nil {
		// Headers are already out; all we can do is log via gin's error list
		c.Error(err)
	}
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(timeFormat)
	return &formatted
}
