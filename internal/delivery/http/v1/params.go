package v1

import (
	"errors"
	"fmt"
	"strconv"

	"go-marketplace-backend/pkg/apperror"
	"go-marketplace-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// pathID parses a positive int64 path parameter. On failure it records a
// 400 on the context and returns false.
func pathID(c *gin.Context, name, label string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.Error(apperror.BadRequest(fmt.Sprintf("Invalid %s ID", label)))
		return 0, false
	}
	return id, true
}

// queryID parses a required positive int64 query parameter.
func queryID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Query(name), 10, 64)
	if err != nil || id <= 0 {
		c.Error(apperror.BadRequest(fmt.Sprintf("Query parameter %s must be a positive integer", name)))
		return 0, false
	}
	return id, true
}

// bindJSON binds and validates the request body into req.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			c.Error(apperror.BadRequest(validation.Message(err)))
		} else {
			c.Error(apperror.BadRequest("Invalid request body"))
		}
		return false
	}
	return true
}
