package services

import (
	"sort"
	"time"

	"hestia/internal/models"
)

// This file holds the pure helpers behind every derived bill figure. They
// operate on a payment slice and touch no storage; callers decide which
// slice to pass (full history or a year-filtered view). Calendar years are
// taken from paid_date in UTC.

// derivedFields is what a template's payment history summarizes to.
// lastDate and lastAmount are nil when the history is empty.
type derivedFields struct {
	count      int
	lastDate   *time.Time
	lastAmount *int64
}

// computeDerived reduces a payment history to its derived fields. The most
// recent payment is the one with the greatest paid_date; a tie on paid_date
// goes to the greatest ID, which with time-ordered UUIDs is the payment
// inserted last. Input order does not matter.
func computeDerived(history []models.BillPayment) derivedFields {
	out := derivedFields{count: len(history)}
	if len(history) == 0 {
		return out
	}

	last := history[0]
	for _, p := range history[1:] {
		if p.PaidDate.After(last.PaidDate) || (p.PaidDate.Equal(last.PaidDate) && p.ID > last.ID) {
			last = p
		}
	}

	lastDate := last.PaidDate
	lastAmount := last.Amount
	out.lastDate = &lastDate
	out.lastAmount = &lastAmount
	return out
}

// extractYears returns the distinct calendar years present in a payment
// history, most recent first.
func extractYears(history []models.BillPayment) []int {
	seen := make(map[int]bool, len(history))
	years := make([]int, 0, len(history))
	for _, p := range history {
		y := p.PaidDate.UTC().Year()
		if !seen[y] {
			seen[y] = true
			years = append(years, y)
		}
	}
	sort.Slice(years, func(i, j int) bool { return years[i] > years[j] })
	return years
}

// filterByYear narrows a payment history to one calendar year, preserving
// order. A nil year means no filter and returns the input unchanged.
func filterByYear(history []models.BillPayment, year *int) []models.BillPayment {
	if year == nil {
		return history
	}
	filtered := make([]models.BillPayment, 0, len(history))
	for _, p := range history {
		if p.PaidDate.UTC().Year() == *year {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// sumAmounts totals the amounts of a payment history in cents.
func sumAmounts(history []models.BillPayment) int64 {
	var total int64
	for _, p := range history {
		total += p.Amount
	}
	return total
}
