package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/eventdesk/server/internal/models"
	"github.com/gin-gonic/gin"
)

// statusByKind is the single place the error taxonomy is mapped to HTTP
// statuses. Note that an unresolvable foreign key is a 400, while a missing
// directly-addressed document is a 404.
var statusByKind = map[models.ErrorKind]int{
	models.KindMalformedID:        http.StatusBadRequest,
	models.KindReferenceNotFound:  http.StatusBadRequest,
	models.KindInvalidPayload:     http.StatusBadRequest,
	models.KindNotFound:           http.StatusNotFound,
	models.KindPersistenceFailure: http.StatusInternalServerError,
}

func statusFor(err error) int {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		if status, ok := statusByKind[appErr.Kind]; ok {
			return status
		}
	}
	return http.StatusInternalServerError
}

func respondError(c *gin.Context, err error) {
	c.JSON(statusFor(err), models.ErrorDetail{Detail: err.Error()})
}

// trimID strips surrounding whitespace from a path id. Nothing else is
// normalized: a quoted or otherwise decorated id fails the codec downstream.
func trimID(raw string) string {
	return strings.TrimSpace(raw)
}
