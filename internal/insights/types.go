// Package insights implements the rule-based spending analysis engine.
// It gathers a user's recent transactions, budgeted categories, and
// engagement streak, runs a registry of independent rule evaluators over
// them, and returns a bounded, priority-ordered list of advisory nudges
// alongside descriptive statistics for display.
package insights

import "time"

// NudgeKind identifies the rule that produced a nudge.
type NudgeKind string

const (
	NudgeWeekendOverspend       NudgeKind = "weekend-overspend"
	NudgeBudgetOverage          NudgeKind = "budget-overage"
	NudgeBudgetWarning          NudgeKind = "budget-warning"
	NudgeSpendingTrendUp        NudgeKind = "spending-trend-up"
	NudgeSpendingTrendDown      NudgeKind = "spending-trend-down"
	NudgeStreakMilestone        NudgeKind = "streak-milestone"
	NudgeStreakPersonalBest     NudgeKind = "streak-personal-best"
	NudgeFrequentSmallPurchases NudgeKind = "frequent-small-purchases"
	NudgeSpendingSpike          NudgeKind = "spending-spike"
)

// Priority is the display priority of a nudge.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// rank maps priorities to sort order: high before medium before low.
func (p Priority) rank() int {
	switch p {
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	}
	return 4
}

// Metadata carries the kind-specific facts attached to a nudge. Each kind
// has its own variant struct so evaluator output stays statically checked;
// it only becomes a generic JSON object at the serialization boundary.
type Metadata interface {
	nudgeMetadata()
}

// WeekendOverspendMetadata accompanies weekend-overspend nudges.
type WeekendOverspendMetadata struct {
	Ratio      float64 `json:"ratio"`
	WeekendAvg float64 `json:"weekend_avg"`
	WeekdayAvg float64 `json:"weekday_avg"`
}

// BudgetOverageMetadata accompanies budget-overage nudges.
type BudgetOverageMetadata struct {
	CategoryID   uint    `json:"category_id"`
	CategoryName string  `json:"category_name"`
	Budget       float64 `json:"budget"`
	Spent        float64 `json:"spent"`
	Percentage   float64 `json:"percentage"`
}

// BudgetWarningMetadata accompanies budget-warning nudges.
type BudgetWarningMetadata struct {
	CategoryID    uint    `json:"category_id"`
	CategoryName  string  `json:"category_name"`
	Budget        float64 `json:"budget"`
	Spent         float64 `json:"spent"`
	Percentage    float64 `json:"percentage"`
	RemainingDays int     `json:"remaining_days"`
}

// SpendingTrendMetadata accompanies spending-trend-up and
// spending-trend-down nudges.
type SpendingTrendMetadata struct {
	CurrentTotal  float64 `json:"current_total"`
	PreviousTotal float64 `json:"previous_total"`
	ChangePct     float64 `json:"change_pct"`
}

// StreakMilestoneMetadata accompanies streak-milestone nudges.
type StreakMilestoneMetadata struct {
	CurrentStreak int `json:"current_streak"`
}

// StreakPersonalBestMetadata accompanies streak-personal-best nudges.
type StreakPersonalBestMetadata struct {
	CurrentStreak int  `json:"current_streak"`
	PersonalBest  bool `json:"personal_best"`
}

// FrequentSmallPurchasesMetadata accompanies frequent-small-purchases nudges.
type FrequentSmallPurchasesMetadata struct {
	CategoryID   uint    `json:"category_id"`
	CategoryName string  `json:"category_name"`
	Count        int     `json:"count"`
	Total        float64 `json:"total"`
}

// SpendingSpikeMetadata accompanies spending-spike nudges.
type SpendingSpikeMetadata struct {
	CategoryID   uint    `json:"category_id"`
	CategoryName string  `json:"category_name"`
	Largest      float64 `json:"largest"`
	Median       float64 `json:"median"`
}

func (WeekendOverspendMetadata) nudgeMetadata()       {}
func (BudgetOverageMetadata) nudgeMetadata()          {}
func (BudgetWarningMetadata) nudgeMetadata()          {}
func (SpendingTrendMetadata) nudgeMetadata()          {}
func (StreakMilestoneMetadata) nudgeMetadata()        {}
func (StreakPersonalBestMetadata) nudgeMetadata()     {}
func (FrequentSmallPurchasesMetadata) nudgeMetadata() {}
func (SpendingSpikeMetadata) nudgeMetadata()          {}

// Nudge is a single advisory message produced by a rule evaluator. Nudges
// are ephemeral: they are built fresh per call and never persisted.
type Nudge struct {
	Kind       NudgeKind `json:"kind"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	Priority   Priority  `json:"priority"`
	Actionable bool      `json:"actionable"`
	Metadata   Metadata  `json:"metadata"`

	// seq is the generation order within one run; it breaks priority ties
	// (most recently generated first).
	seq int
}

// Streak is a snapshot of a user's engagement streak.
type Streak struct {
	Current        int        `json:"current"`
	Longest        int        `json:"longest"`
	LastActiveDate *time.Time `json:"last_active_date,omitempty"`
}

// Period is the resolved analysis window, both bounds inclusive.
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// SpendingPatterns describes how spending in the window compares to the
// immediately preceding period of equal length.
type SpendingPatterns struct {
	Trend               string  `json:"trend"` // up, down, stable
	ChangePercentage    float64 `json:"change_percentage"`
	CurrentPeriodTotal  float64 `json:"current_period_total"`
	PreviousPeriodTotal float64 `json:"previous_period_total"`
}

// CategoryAlert flags a budget-tracked category at or above 80% of its
// ceiling within the requested window.
type CategoryAlert struct {
	CategoryID   uint    `json:"category_id"`
	CategoryName string  `json:"category_name"`
	Spent        float64 `json:"spent"`
	Budget       float64 `json:"budget"`
	Percentage   float64 `json:"percentage"`
	OverBudget   bool    `json:"over_budget"`
}

// InsightBundle is the descriptive statistics snapshot returned alongside
// the nudge list.
type InsightBundle struct {
	SpendingPatterns SpendingPatterns `json:"spending_patterns"`
	CategoryAlerts   []CategoryAlert  `json:"category_alerts"`
	StreakInfo       Streak           `json:"streak_info"`
	Period           Period           `json:"period"`
}

// Result is the full engine output for one invocation.
type Result struct {
	Nudges   []Nudge       `json:"nudges"`
	Insights InsightBundle `json:"insights"`
	Period   Period        `json:"period"`
}
