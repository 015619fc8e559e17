package api

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pdcgo/financial_service/transference"
)

const (
	defaultPageNumber = 1
	defaultPageSize   = 50
	maxPageSize       = 255
)

// pageFromQuery reads pagination from query parameters, falling back to
// sane defaults when absent or malformed.
func pageFromQuery(c *gin.Context) *transference.PageFilter {
	page := &transference.PageFilter{
		Page:  defaultPageNumber,
		Limit: defaultPageSize,
	}

	if raw := c.Query("pageNumber"); raw != "" {
		if num, err := strconv.ParseInt(raw, 10, 64); err == nil && num > 0 {
			page.Page = num
		}
	}

	if raw := c.Query("pageSize"); raw != "" {
		if size, err := strconv.ParseInt(raw, 10, 64); err == nil && size > 0 {
			if size > maxPageSize {
				size = maxPageSize
			}
			page.Limit = size
		}
	}

	return page
}

func orderFromQuery(c *gin.Context) string {
	return c.DefaultQuery("orderDateBy", "desc")
}
