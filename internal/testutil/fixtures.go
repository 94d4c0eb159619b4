package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Anurag-techs/Spend-Smart/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		Currency: "INR",
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestCategory creates a category without a budget.
func CreateTestCategory(t *testing.T, db *gorm.DB, userID uint) *models.Category {
	t.Helper()
	return CreateTestCategoryWithBudget(t, db, userID, 0)
}

// CreateTestCategoryWithBudget creates a category with the given monthly budget.
// A positive budget makes the category budget-tracked.
func CreateTestCategoryWithBudget(t *testing.T, db *gorm.DB, userID uint, monthlyBudget float64) *models.Category {
	t.Helper()

	category := &models.Category{
		UserID:        userID,
		Name:          fmt.Sprintf("Test Category %d", nextID()),
		MonthlyBudget: monthlyBudget,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestTransaction creates a transaction dated now with the given amount.
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID, categoryID uint, amount float64) *models.Transaction {
	t.Helper()
	return CreateTestTransactionOn(t, db, userID, categoryID, amount, time.Now())
}

// CreateTestTransactionOn creates a transaction with the given amount and date.
func CreateTestTransactionOn(t *testing.T, db *gorm.DB, userID, categoryID uint, amount float64, date time.Time) *models.Transaction {
	t.Helper()

	transaction := &models.Transaction{
		UserID:        userID,
		CategoryID:    categoryID,
		Amount:        amount,
		Date:          date,
		PaymentMethod: models.PaymentMethodCard,
	}
	if err := db.Create(transaction).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return transaction
}

// CreateTestGoal creates a savings goal with the given target amount.
func CreateTestGoal(t *testing.T, db *gorm.DB, userID uint, targetAmount float64) *models.Goal {
	t.Helper()

	goal := &models.Goal{
		UserID:       userID,
		Name:         fmt.Sprintf("Test Goal %d", nextID()),
		TargetAmount: targetAmount,
	}
	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}
	return goal
}
