package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"NavidentClinic/utils"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

/*
* pageParams reads the shared pagination query parameters. Pages are zero
* indexed, the sort direction defaults to descending.
 */
func pageParams(c *gin.Context, defaultSortBy string) (page, size int64, sortBy, sortDir string, err error) {
	page, err = strconv.ParseInt(c.DefaultQuery("page", "0"), 10, 64)
	if err != nil || page < 0 {
		return 0, 0, "", "", utils.InvalidArgument("Page must be a non-negative integer")
	}
	size, err = strconv.ParseInt(c.DefaultQuery("size", strconv.Itoa(defaultPageSize)), 10, 64)
	if err != nil || size <= 0 || size > maxPageSize {
		return 0, 0, "", "", utils.InvalidArgument("Size must be between 1 and 100")
	}
	sortBy = c.DefaultQuery("sortBy", defaultSortBy)
	sortDir = c.DefaultQuery("sortDir", "desc")
	if sortDir != "asc" && sortDir != "desc" {
		return 0, 0, "", "", utils.InvalidArgument("Sort direction must be asc or desc")
	}
	return page, size, sortBy, sortDir, nil
}

func requiredQuery(c *gin.Context, name string) (string, error) {
	v := c.Query(name)
	if v == "" {
		return "", utils.InvalidArgument("Missing required query parameter: " + name)
	}
	return v, nil
}

func writeExcel(c *gin.Context, filename string, data []byte) {
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/octet-stream", data)
}

func writePdf(c *gin.Context, filename string, data []byte) {
	c.Header("Content-Disposition", "inline; filename="+filename)
	c.Data(http.StatusOK, "application/pdf", data)
}
