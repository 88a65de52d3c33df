package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/eventdesk/server/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusFor(models.MalformedID("event")))
	assert.Equal(t, http.StatusBadRequest, statusFor(models.MalformedReference("Venue")))
	assert.Equal(t, http.StatusBadRequest, statusFor(models.ReferenceNotFound("Venue")))
	assert.Equal(t, http.StatusBadRequest, statusFor(models.InvalidPayload("missing name")))
	assert.Equal(t, http.StatusNotFound, statusFor(models.NotFound("Event")))
	assert.Equal(t, http.StatusInternalServerError, statusFor(models.PersistenceFailure("Failed to create event")))
	assert.Equal(t, http.StatusInternalServerError, statusFor(errors.New("driver exploded")))
}

func TestTrimID(t *testing.T) {
	assert.Equal(t, "abc", trimID(" abc "))
	// Quotes survive and are rejected by the identifier codec later.
	assert.Equal(t, `"abc"`, trimID(`"abc"`))
	assert.Equal(t, "'abc'", trimID("'abc'"))
}
