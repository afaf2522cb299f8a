package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"restaurant-api/pkg/apperr"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the structured error body every failure produces.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// statusFor maps each domain failure code to its transport status.
var statusFor = map[apperr.Code]int{
	apperr.CodeNotFound:         http.StatusNotFound,
	apperr.CodeDuplicate:        http.StatusConflict,
	apperr.CodeRestaurantClosed: http.StatusBadRequest,
	apperr.CodeValidation:       http.StatusBadRequest,
	apperr.CodeInternal:         http.StatusInternalServerError,
}

// respondError performs the single domain-to-transport error
// translation. Anything that is not an apperr.Error is reported as a 500
// rather than leaking a low-level failure message.
func respondError(c *gin.Context, err error) {
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		ae = apperr.Internal(err)
	}
	status, ok := statusFor[ae.Code]
	if !ok {
		status = http.StatusInternalServerError
	}
	c.JSON(status, ErrorResponse{Error: string(ae.Code), Message: ae.Message})
}

// validationMessage flattens every field violation from a binding error
// into one comma-joined message, so a single submission reports all
// invalid fields at once. messages is keyed by "Field.tag" with a plain
// "Field" fallback.
func validationMessage(err error, messages map[string]string) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Request body is missing or malformed"
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch {
		case messages[fe.Field()+"."+fe.Tag()] != "":
			parts = append(parts, messages[fe.Field()+"."+fe.Tag()])
		case messages[fe.Field()] != "":
			parts = append(parts, messages[fe.Field()])
		default:
			parts = append(parts, fe.Field()+" is invalid")
		}
	}
	return strings.Join(parts, ", ")
}

// pathID parses a numeric path parameter.
func pathID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, apperr.Validation("Path parameter '" + name + "' must be a positive integer")
	}
	return uint(id), nil
}
