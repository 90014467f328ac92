package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-report-keeper/models"
)

func TestAssertOwnership(t *testing.T) {
	report := models.Report{ID: 7, UserID: 1, Name: "private"}

	assert.NoError(t, assertOwnership(report, 1))

	err := assertOwnership(report, 2)
	assert.ErrorIs(t, err, ErrUnauthorizedAccessToDifferentUserData)
	assert.NotContains(t, err.Error(), "private")
	assert.ErrorIs(t, assertOwnership(report, 0), ErrUnauthorizedAccessToDifferentUserData)
}
