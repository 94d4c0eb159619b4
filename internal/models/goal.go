package models

import "time"

// Goal represents a savings goal
type Goal struct {
	Base
	UserID       uint       `gorm:"not null;index" json:"user_id"`
	Name         string     `gorm:"not null" json:"name"`
	TargetAmount float64    `gorm:"not null" json:"target_amount"`
	SavedAmount  float64    `gorm:"default:0" json:"saved_amount"`
	Deadline     *time.Time `json:"deadline,omitempty"`
	IsAchieved   bool       `gorm:"default:false" json:"is_achieved"`
}

// Progress returns saved amount as a percentage of the target.
func (g *Goal) Progress() float64 {
	if g.TargetAmount <= 0 {
		return 0
	}
	return g.SavedAmount / g.TargetAmount * 100
}
