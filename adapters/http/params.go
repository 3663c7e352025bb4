package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/personal-portfolio/pkg/apperror"
)

// idParam parses the ":id" path segment. On failure the error is attached to
// c and ok is false.
func idParam(c *gin.Context, resource string) (id int64, ok bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid "+resource+" ID", err))
		return 0, false
	}
	return id, true
}
