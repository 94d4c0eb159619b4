package insights

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "github.com/Anurag-techs/Spend-Smart/internal/errors"
	"github.com/Anurag-techs/Spend-Smart/internal/models"
)

// Store is the read-only data source the engine gathers from. The engine
// never writes; a failed read is fatal to the whole invocation and its
// error is surfaced to the caller unchanged.
type Store interface {
	// ListTransactions returns the user's transactions dated within
	// [start, end], both bounds inclusive, with categories populated.
	// Callers working in day granularity must pass an end-of-day bound
	// or transactions recorded later on the end date are dropped.
	ListTransactions(userID uint, start, end time.Time) ([]models.Transaction, error)
	// SumAmounts returns the total transaction amount for the user within
	// [start, end], optionally restricted to one category.
	SumAmounts(userID uint, start, end time.Time, categoryID *uint) (float64, error)
	// ListBudgetedCategories returns the user's budget-tracked categories
	// (monthly budget > 0).
	ListBudgetedCategories(userID uint) ([]models.Category, error)
	// GetEngagementStreak returns the user's streak snapshot.
	GetEngagementStreak(userID uint) (Streak, error)
}

// gormStore is the GORM-backed Store implementation.
type gormStore struct {
	db *gorm.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) ListTransactions(userID uint, start, end time.Time) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := s.db.Preload("Category").
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, start, end).
		Order("date ASC").
		Find(&transactions).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

func (s *gormStore) SumAmounts(userID uint, start, end time.Time, categoryID *uint) (float64, error) {
	q := s.db.Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, start, end)
	if categoryID != nil {
		q = q.Where("category_id = ?", *categoryID)
	}

	var total float64
	if err := q.Scan(&total).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return total, nil
}

func (s *gormStore) ListBudgetedCategories(userID uint) ([]models.Category, error) {
	var categories []models.Category
	err := s.db.Where("user_id = ? AND monthly_budget > 0", userID).
		Order("id ASC").
		Find(&categories).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}

func (s *gormStore) GetEngagementStreak(userID uint) (Streak, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Streak{}, apperrors.ErrUserNotFound
		}
		return Streak{}, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return Streak{
		Current:        user.CurrentStreak,
		Longest:        user.LongestStreak,
		LastActiveDate: user.LastActiveDate,
	}, nil
}
