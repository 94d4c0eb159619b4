package insights

import (
	"time"

	"gorm.io/gorm"

	"github.com/Anurag-techs/Spend-Smart/internal/models"
)

// defaultWindowDays is the trailing window used when the caller gives no
// explicit date range.
const defaultWindowDays = 30

// Data is everything one engine invocation gathers. Evaluators are pure
// functions of this snapshot and nothing else.
type Data struct {
	Start time.Time
	End   time.Time
	Now   time.Time

	Transactions []models.Transaction
	Categories   []models.Category
	Streak       Streak

	// MonthSpent holds per-category spend for the current calendar month,
	// keyed by category ID. Used only by the budget rule, which always
	// looks at "this month" regardless of the analysis window.
	MonthSpent map[uint]float64

	// PreviousTotal is the spend over the period of equal length
	// immediately preceding the window.
	PreviousTotal float64
}

// Engine orchestrates one gather + evaluate + rank + aggregate pass per
// call. It holds no state between invocations.
type Engine struct {
	store Store
	now   func() time.Time
}

// New creates an Engine reading from the given database.
func New(db *gorm.DB) *Engine {
	return NewWithStore(NewStore(db), time.Now)
}

// NewWithStore creates an Engine with an explicit store and clock.
func NewWithStore(store Store, now func() time.Time) *Engine {
	return &Engine{store: store, now: now}
}

// GenerateInsights runs the full pipeline for one user. Nil bounds default
// to the trailing 30 days ending now. The caller is expected to pass a
// normalized interval (start <= end); the engine does not re-validate it.
func (e *Engine) GenerateInsights(userID uint, start, end *time.Time) (*Result, error) {
	now := e.now()

	windowEnd := now
	if end != nil {
		windowEnd = *end
	}
	windowStart := now.AddDate(0, 0, -defaultWindowDays)
	if start != nil {
		windowStart = *start
	}

	data, err := e.gather(userID, windowStart, windowEnd, now)
	if err != nil {
		return nil, err
	}

	var nudges []Nudge
	for _, eval := range evaluators {
		for _, n := range eval(data) {
			n.seq = len(nudges)
			nudges = append(nudges, n)
		}
	}
	nudges = prioritize(nudges)

	bundle := buildInsights(data)

	return &Result{
		Nudges:   nudges,
		Insights: bundle,
		Period:   bundle.Period,
	}, nil
}

// gather fetches the snapshot all evaluators and the aggregator share.
// Store errors abort the whole call and propagate unchanged.
func (e *Engine) gather(userID uint, start, end, now time.Time) (Data, error) {
	transactions, err := e.store.ListTransactions(userID, start, end)
	if err != nil {
		return Data{}, err
	}

	categories, err := e.store.ListBudgetedCategories(userID)
	if err != nil {
		return Data{}, err
	}

	streak, err := e.store.GetEngagementStreak(userID)
	if err != nil {
		return Data{}, err
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthSpent := make(map[uint]float64, len(categories))
	for _, cat := range categories {
		id := cat.ID
		spent, err := e.store.SumAmounts(userID, monthStart, now, &id)
		if err != nil {
			return Data{}, err
		}
		monthSpent[cat.ID] = spent
	}

	days := int(end.Sub(start).Hours() / 24)
	if days < 1 {
		days = 1
	}
	prevStart := start.AddDate(0, 0, -days)
	prevEnd := start.AddDate(0, 0, -1)
	previousTotal, err := e.store.SumAmounts(userID, prevStart, prevEnd, nil)
	if err != nil {
		return Data{}, err
	}

	return Data{
		Start:         start,
		End:           end,
		Now:           now,
		Transactions:  transactions,
		Categories:    categories,
		Streak:        streak,
		MonthSpent:    monthSpent,
		PreviousTotal: previousTotal,
	}, nil
}
