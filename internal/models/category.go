package models

// Category represents a spending category. A category is budget-tracked
// when MonthlyBudget is greater than zero; a zero budget means the
// category is not tracked against a ceiling.
type Category struct {
	Base
	UserID        uint    `gorm:"not null;index" json:"user_id"`
	Name          string  `gorm:"not null" json:"name"`
	MonthlyBudget float64 `gorm:"default:0" json:"monthly_budget"`
	Color         string  `json:"color"`
	Icon          string  `json:"icon"`

	// Relationships
	Transactions []Transaction `gorm:"foreignKey:CategoryID" json:"transactions,omitempty"`
}

// IsBudgetTracked reports whether the category has a positive monthly budget ceiling.
func (c *Category) IsBudgetTracked() bool {
	return c.MonthlyBudget > 0
}
