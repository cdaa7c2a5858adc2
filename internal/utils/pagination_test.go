package utils_test

import (
	"testing"

	"github.com/brandreach/campaign-crm-backend/internal/utils"

	"github.com/stretchr/testify/assert"
)

func TestValidateAndNormalizePagination(t *testing.T) {
	page, pageSize := utils.ValidateAndNormalizePagination(0, 0)
	assert.Equal(t, 1, page)
	assert.Equal(t, 20, pageSize)

	page, pageSize = utils.ValidateAndNormalizePagination(3, 500)
	assert.Equal(t, 3, page)
	assert.Equal(t, 100, pageSize)
}

func TestCalculatePaginationInfo(t *testing.T) {
	info := utils.CalculatePaginationInfo(45, 2, 20)
	assert.Equal(t, 3, info.TotalPages)
	assert.True(t, info.HasNext)
	assert.True(t, info.HasPrevious)

	empty := utils.CalculatePaginationInfo(0, 1, 20)
	assert.Equal(t, 1, empty.TotalPages)
	assert.False(t, empty.HasNext)
	assert.False(t, empty.HasPrevious)
}

func TestParsePaginationFromQuery(t *testing.T) {
	page, pageSize := utils.ParsePaginationFromQuery("", "")
	assert.Equal(t, 1, page)
	assert.Equal(t, 20, pageSize)

	page, pageSize = utils.ParsePaginationFromQuery("4", "50")
	assert.Equal(t, 4, page)
	assert.Equal(t, 50, pageSize)

	page, pageSize = utils.ParsePaginationFromQuery("abc", "9999")
	assert.Equal(t, 1, page)
	assert.Equal(t, 20, pageSize)
}

func TestCalculateOffset(t *testing.T) {
	assert.Equal(t, 0, utils.CalculateOffset(1, 20))
	assert.Equal(t, 40, utils.CalculateOffset(3, 20))
}
