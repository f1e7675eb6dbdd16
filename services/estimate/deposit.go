package estimate

import "movebook/models"

// Deposit derives the deposit from the company's deposit policy. The amount's
// meaning depends on the policy: a fixed value (flat), a percentage of the
// final price (percent), or a number of hours' worth of the final hourly rate
// (hourly). Unknown types fall back to flat.
func Deposit(depositType string, amount, price, hourlyRate float64) float64 {
	switch depositType {
	case models.DepositPercent:
		return price * (amount / 100)
	case models.DepositHourly:
		return amount * hourlyRate
	default:
		return amount
	}
}
