package estimate

import (
	"testing"

	"movebook/models"

	"github.com/stretchr/testify/assert"
)

func TestDepositPolicies(t *testing.T) {
	// Flat ignores price entirely.
	assert.Equal(t, 100.0, Deposit(models.DepositFlat, 100, 1000, 165))
	assert.Equal(t, 100.0, Deposit(models.DepositFlat, 100, 50, 165))

	// Percent of the final price.
	assert.Equal(t, 250.0, Deposit(models.DepositPercent, 25, 1000, 165))

	// Hours' worth of the final hourly rate.
	assert.Equal(t, 165.0, Deposit(models.DepositHourly, 1, 1000, 165))
	assert.Equal(t, 330.0, Deposit(models.DepositHourly, 2, 1000, 165))
}

func TestDepositUnknownTypeFallsBackToFlat(t *testing.T) {
	assert.Equal(t, 75.0, Deposit("", 75, 1000, 165))
	assert.Equal(t, 75.0, Deposit("mystery", 75, 1000, 165))
}
