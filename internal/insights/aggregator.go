package insights

// Aggregator thresholds. Deliberately looser than the trend rule's: the
// descriptive trend label flips at +/-5% while the trend nudge needs 15%.
const (
	trendLabelUpPct   = 5
	trendLabelDownPct = -5
)

// buildInsights computes the descriptive statistics bundle from the same
// gathered data the evaluators see. It is independent of the nudge
// pipeline and never emits nudges.
func buildInsights(d Data) InsightBundle {
	currentTotal := sumAmounts(d.Transactions)

	patterns := SpendingPatterns{
		Trend:               "stable",
		CurrentPeriodTotal:  round2(currentTotal),
		PreviousPeriodTotal: round2(d.PreviousTotal),
	}
	if d.PreviousTotal != 0 {
		changePct := (currentTotal - d.PreviousTotal) / d.PreviousTotal * 100
		patterns.ChangePercentage = round1(changePct)
		if changePct > trendLabelUpPct {
			patterns.Trend = "up"
		} else if changePct < trendLabelDownPct {
			patterns.Trend = "down"
		}
	}

	// Category alerts are computed over the requested window, unlike the
	// budget nudges which always look at the current calendar month.
	windowSpent := make(map[uint]float64)
	for _, t := range d.Transactions {
		windowSpent[t.CategoryID] += t.Amount
	}

	alerts := []CategoryAlert{}
	for _, cat := range d.Categories {
		if !cat.IsBudgetTracked() {
			continue
		}
		spent := windowSpent[cat.ID]
		percentage := spent / cat.MonthlyBudget * 100
		if percentage < budgetWarningPct {
			continue
		}
		alerts = append(alerts, CategoryAlert{
			CategoryID:   cat.ID,
			CategoryName: cat.Name,
			Spent:        round2(spent),
			Budget:       round2(cat.MonthlyBudget),
			Percentage:   round1(percentage),
			OverBudget:   percentage >= budgetOveragePct,
		})
	}

	return InsightBundle{
		SpendingPatterns: patterns,
		CategoryAlerts:   alerts,
		StreakInfo:       d.Streak,
		Period:           Period{Start: d.Start, End: d.End},
	}
}
