package insights

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/Anurag-techs/Spend-Smart/internal/models"
)

// Rule thresholds.
const (
	weekendRatioThreshold = 1.8
	weekendRatioHigh      = 2.5

	budgetWarningPct = 80
	budgetOveragePct = 100

	// The trend rule first skips anything quieter than +/-15%, then
	// branches on +15 / -10. The asymmetry means the down branch is only
	// reachable at -15% and below; this matches the product's historical
	// behavior and must not be tightened.
	trendSkipPct = 15
	trendUpPct   = 15
	trendDownPct = -10

	streakMilestoneDays = 7

	smallPurchaseMax   = 200
	smallPurchaseCount = 10
	spikeMultiplier    = 5
	spikeMinSamples    = 3
)

// evaluator is a pure rule function: it inspects the gathered data and
// conditionally emits nudges. Evaluators run independently; one rule's
// silence never suppresses another's output.
type evaluator func(d Data) []Nudge

// evaluators is the registry run on every invocation, in order. Order only
// matters as the tie-break for equal-priority nudges.
var evaluators = []evaluator{
	evalWeekendOverspend,
	evalBudgetStatus,
	evalSpendingTrend,
	evalStreaks,
	evalCategoryPatterns,
}

// evalWeekendOverspend compares the average weekend transaction against
// the average weekday transaction over the window.
func evalWeekendOverspend(d Data) []Nudge {
	var weekendSum, weekdaySum float64
	var weekendCount, weekdayCount int

	for _, t := range d.Transactions {
		switch t.Date.Weekday() {
		case time.Saturday, time.Sunday:
			weekendSum += t.Amount
			weekendCount++
		default:
			weekdaySum += t.Amount
			weekdayCount++
		}
	}

	if weekendCount == 0 || weekdayCount == 0 {
		return nil
	}

	weekendAvg := weekendSum / float64(weekendCount)
	weekdayAvg := weekdaySum / float64(weekdayCount)
	ratio := weekendAvg / weekdayAvg
	if ratio <= weekendRatioThreshold {
		return nil
	}

	priority := PriorityMedium
	if ratio > weekendRatioHigh {
		priority = PriorityHigh
	}

	return []Nudge{{
		Kind:       NudgeWeekendOverspend,
		Title:      "Weekend spending is high",
		Message:    fmt.Sprintf("Your average weekend purchase is %.1fx your weekday average. Planning weekend activities in advance could help.", ratio),
		Priority:   priority,
		Actionable: true,
		Metadata: WeekendOverspendMetadata{
			Ratio:      round2(ratio),
			WeekendAvg: round2(weekendAvg),
			WeekdayAvg: round2(weekdayAvg),
		},
	}}
}

// evalBudgetStatus checks each budget-tracked category's calendar-month
// spend against its ceiling. A category emits at most one nudge per run:
// overage at >= 100%, warning at [80%, 100%).
func evalBudgetStatus(d Data) []Nudge {
	var out []Nudge
	for _, cat := range d.Categories {
		if !cat.IsBudgetTracked() {
			continue
		}

		spent := d.MonthSpent[cat.ID]
		percentage := spent / cat.MonthlyBudget * 100

		switch {
		case percentage >= budgetOveragePct:
			over := int(math.Round(percentage - 100))
			out = append(out, Nudge{
				Kind:       NudgeBudgetOverage,
				Title:      fmt.Sprintf("Over budget: %s", cat.Name),
				Message:    fmt.Sprintf("You are %d%% over your %s budget this month.", over, cat.Name),
				Priority:   PriorityHigh,
				Actionable: true,
				Metadata: BudgetOverageMetadata{
					CategoryID:   cat.ID,
					CategoryName: cat.Name,
					Budget:       round2(cat.MonthlyBudget),
					Spent:        round2(spent),
					Percentage:   round1(percentage),
				},
			})
		case percentage >= budgetWarningPct:
			remaining := cat.MonthlyBudget - spent
			remainingDays := daysUntilMonthEnd(d.Now)
			out = append(out, Nudge{
				Kind:       NudgeBudgetWarning,
				Title:      fmt.Sprintf("Approaching budget: %s", cat.Name),
				Message:    fmt.Sprintf("You have %d left in your %s budget for the next %d days.", int(math.Round(remaining)), cat.Name, remainingDays),
				Priority:   PriorityMedium,
				Actionable: true,
				Metadata: BudgetWarningMetadata{
					CategoryID:    cat.ID,
					CategoryName:  cat.Name,
					Budget:        round2(cat.MonthlyBudget),
					Spent:         round2(spent),
					Percentage:    round1(percentage),
					RemainingDays: remainingDays,
				},
			})
		}
	}
	return out
}

// evalSpendingTrend compares the window's total spend against the
// immediately preceding period of equal length.
func evalSpendingTrend(d Data) []Nudge {
	currentTotal := sumAmounts(d.Transactions)
	if d.PreviousTotal == 0 {
		return nil
	}

	changePct := (currentTotal - d.PreviousTotal) / d.PreviousTotal * 100
	if math.Abs(changePct) < trendSkipPct {
		return nil
	}

	metadata := SpendingTrendMetadata{
		CurrentTotal:  round2(currentTotal),
		PreviousTotal: round2(d.PreviousTotal),
		ChangePct:     round1(changePct),
	}

	if changePct > trendUpPct {
		return []Nudge{{
			Kind:       NudgeSpendingTrendUp,
			Title:      "Spending is trending up",
			Message:    fmt.Sprintf("Your spending is up %d%% compared to the previous period.", int(math.Round(changePct))),
			Priority:   PriorityMedium,
			Actionable: true,
			Metadata:   metadata,
		}}
	}
	if changePct < trendDownPct {
		return []Nudge{{
			Kind:       NudgeSpendingTrendDown,
			Title:      "Spending is trending down",
			Message:    fmt.Sprintf("Nice work! Your spending is down %d%% compared to the previous period.", int(math.Round(math.Abs(changePct)))),
			Priority:   PriorityLow,
			Actionable: false,
			Metadata:   metadata,
		}}
	}
	return nil
}

// evalStreaks emits streak nudges. The milestone and personal-best
// conditions are independent and can both fire in the same run.
func evalStreaks(d Data) []Nudge {
	var out []Nudge

	if d.Streak.Current == streakMilestoneDays {
		out = append(out, Nudge{
			Kind:       NudgeStreakMilestone,
			Title:      "One week streak",
			Message:    "7 days in a row! You've tracked your spending every day this week.",
			Priority:   PriorityLow,
			Actionable: false,
			Metadata:   StreakMilestoneMetadata{CurrentStreak: d.Streak.Current},
		})
	}

	if d.Streak.Current == d.Streak.Longest && d.Streak.Current > 0 {
		out = append(out, Nudge{
			Kind:       NudgeStreakPersonalBest,
			Title:      "New personal best",
			Message:    fmt.Sprintf("A %d-day streak is your longest yet. Keep it going!", d.Streak.Current),
			Priority:   PriorityLow,
			Actionable: false,
			Metadata: StreakPersonalBestMetadata{
				CurrentStreak: d.Streak.Current,
				PersonalBest:  true,
			},
		})
	}

	return out
}

// evalCategoryPatterns inspects each category present in the window for
// frequent small purchases and for a spike dwarfing the category's
// typical amount. A category can emit both nudges in the same run.
func evalCategoryPatterns(d Data) []Nudge {
	type group struct {
		name    string
		amounts []float64
	}

	// Group by category in first-appearance order so output is stable
	// across runs.
	var order []uint
	groups := make(map[uint]*group)
	for _, t := range d.Transactions {
		g, ok := groups[t.CategoryID]
		if !ok {
			g = &group{name: t.Category.Name}
			groups[t.CategoryID] = g
			order = append(order, t.CategoryID)
		}
		g.amounts = append(g.amounts, t.Amount)
	}

	var out []Nudge
	for _, id := range order {
		g := groups[id]

		var smallCount int
		var smallTotal float64
		for _, amount := range g.amounts {
			if amount < smallPurchaseMax {
				smallCount++
				smallTotal += amount
			}
		}
		if smallCount >= smallPurchaseCount {
			out = append(out, Nudge{
				Kind:       NudgeFrequentSmallPurchases,
				Title:      fmt.Sprintf("Small purchases add up: %s", g.name),
				Message:    fmt.Sprintf("%d small %s purchases this period add up to %.2f.", smallCount, g.name, smallTotal),
				Priority:   PriorityMedium,
				Actionable: true,
				Metadata: FrequentSmallPurchasesMetadata{
					CategoryID:   id,
					CategoryName: g.name,
					Count:        smallCount,
					Total:        round2(smallTotal),
				},
			})
		}

		if len(g.amounts) >= spikeMinSamples {
			sorted := make([]float64, len(g.amounts))
			copy(sorted, g.amounts)
			sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))

			// "Median" here is the element at the lower-middle index of
			// the descending sort, not a statistical median. Changing it
			// changes trigger sensitivity.
			median := sorted[len(sorted)/2]
			largest := sorted[0]
			if largest > median*spikeMultiplier {
				out = append(out, Nudge{
					Kind:       NudgeSpendingSpike,
					Title:      fmt.Sprintf("Unusual purchase: %s", g.name),
					Message:    fmt.Sprintf("A %.2f purchase in %s is far above your usual %.2f.", largest, g.name, median),
					Priority:   PriorityMedium,
					Actionable: true,
					Metadata: SpendingSpikeMetadata{
						CategoryID:   id,
						CategoryName: g.name,
						Largest:      round2(largest),
						Median:       round2(median),
					},
				})
			}
		}
	}
	return out
}

// sumAmounts totals the amounts of the given transactions.
func sumAmounts(transactions []models.Transaction) float64 {
	var total float64
	for _, t := range transactions {
		total += t.Amount
	}
	return total
}

// daysUntilMonthEnd counts the days from now to the end of the current
// calendar month, inclusive of today (ceiling of the day difference).
func daysUntilMonthEnd(now time.Time) int {
	firstOfNextMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, 1, 0)
	return int(math.Ceil(firstOfNextMonth.Sub(now).Hours() / 24))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
