package core

// Summary aggregates the budget sheet for the totals row of the dashboard.
type Summary struct {
	TotalBudgeted  float64
	TotalSpent     float64
	TotalAvailable float64
}

// Summarize totals the budget rows. Unparsable cells contribute zero, matching
// the per-row degrade behavior of CalculateAvailable.
func Summarize(rows []BudgetRow) Summary {
	var s Summary
	for _, r := range rows {
		if b, err := ParseAmount(r.Budgeted); err == nil {
			s.TotalBudgeted += b
		}
		if sp, err := ParseAmount(r.Spent); err == nil {
			s.TotalSpent += sp
		}
		s.TotalAvailable += CalculateAvailable(r.Budgeted, r.Spent)
	}
	return s
}
