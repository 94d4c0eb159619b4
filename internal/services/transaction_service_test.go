package services_test

import (
	"testing"
	"time"

	"github.com/Anurag-techs/Spend-Smart/internal/models"
	"github.com/Anurag-techs/Spend-Smart/internal/pagination"
	"github.com/Anurag-techs/Spend-Smart/internal/services"
	"github.com/Anurag-techs/Spend-Smart/internal/testutil"
)

func TestCreateTransaction(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	userService := services.NewUserService(db)
	categoryService := services.NewCategoryService(db)
	service := services.NewTransactionService(db, categoryService, userService)

	user := testutil.CreateTestUser(t, db)
	category := testutil.CreateTestCategory(t, db, user.ID)

	t.Run("creates transaction and advances streak", func(t *testing.T) {
		transaction, err := service.CreateTransaction(user.ID, category.ID, 250, time.Now(), models.PaymentMethodUPI, "lunch")
		testutil.AssertNoError(t, err)

		if transaction.ID == 0 {
			t.Fatal("transaction should have an ID")
		}
		if transaction.PaymentMethod != models.PaymentMethodUPI {
			t.Errorf("expected upi, got %s", transaction.PaymentMethod)
		}

		var stored models.User
		testutil.AssertNoError(t, db.First(&stored, user.ID).Error)
		if stored.CurrentStreak != 1 {
			t.Errorf("recording a transaction should start a streak, got %d", stored.CurrentStreak)
		}
	})

	t.Run("defaults date and payment method", func(t *testing.T) {
		transaction, err := service.CreateTransaction(user.ID, category.ID, 100, time.Time{}, "", "")
		testutil.AssertNoError(t, err)

		if transaction.Date.IsZero() {
			t.Error("date should default to now")
		}
		if transaction.PaymentMethod != models.PaymentMethodOther {
			t.Errorf("expected other, got %s", transaction.PaymentMethod)
		}
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		_, err := service.CreateTransaction(user.ID, category.ID, 0, time.Now(), "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = service.CreateTransaction(user.ID, category.ID, -50, time.Now(), "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("rejects another user's category", func(t *testing.T) {
		other := testutil.CreateTestUser(t, db)
		_, err := service.CreateTransaction(other.ID, category.ID, 100, time.Now(), "", "")
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})
}

func TestGetUserTransactions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	userService := services.NewUserService(db)
	categoryService := services.NewCategoryService(db)
	service := services.NewTransactionService(db, categoryService, userService)

	user := testutil.CreateTestUser(t, db)
	food := testutil.CreateTestCategory(t, db, user.ID)
	travel := testutil.CreateTestCategory(t, db, user.ID)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	testutil.CreateTestTransactionOn(t, db, user.ID, food.ID, 100, base)
	testutil.CreateTestTransactionOn(t, db, user.ID, food.ID, 300, base.AddDate(0, 0, 5))
	testutil.CreateTestTransactionOn(t, db, user.ID, travel.ID, 2000, base.AddDate(0, 0, 10))

	t.Run("lists newest first", func(t *testing.T) {
		page, err := service.GetUserTransactions(user.ID, pagination.PageRequest{}, services.TransactionFilter{})
		testutil.AssertNoError(t, err)

		if len(page.Data) != 3 {
			t.Fatalf("expected 3 transactions, got %d", len(page.Data))
		}
		if !page.Data[0].Date.After(page.Data[2].Date) {
			t.Error("transactions should be ordered newest first")
		}
		if page.Data[0].Category.ID == 0 {
			t.Error("category should be preloaded")
		}
	})

	t.Run("filters by category", func(t *testing.T) {
		page, err := service.GetUserTransactions(user.ID, pagination.PageRequest{}, services.TransactionFilter{
			CategoryID: &food.ID,
		})
		testutil.AssertNoError(t, err)
		if len(page.Data) != 2 {
			t.Errorf("expected 2 food transactions, got %d", len(page.Data))
		}
	})

	t.Run("filters by amount range", func(t *testing.T) {
		minAmount, maxAmount := 200.0, 500.0
		page, err := service.GetUserTransactions(user.ID, pagination.PageRequest{}, services.TransactionFilter{
			MinAmount: &minAmount,
			MaxAmount: &maxAmount,
		})
		testutil.AssertNoError(t, err)
		if len(page.Data) != 1 || page.Data[0].Amount != 300 {
			t.Errorf("expected only the 300 transaction, got %d items", len(page.Data))
		}
	})

	t.Run("filters by date range", func(t *testing.T) {
		from := base.AddDate(0, 0, 3)
		to := base.AddDate(0, 0, 7)
		page, err := service.GetUserTransactions(user.ID, pagination.PageRequest{}, services.TransactionFilter{
			FromDate: &from,
			ToDate:   &to,
		})
		testutil.AssertNoError(t, err)
		if len(page.Data) != 1 || page.Data[0].Amount != 300 {
			t.Errorf("expected only the mid-window transaction, got %d items", len(page.Data))
		}
	})

	t.Run("other user sees nothing", func(t *testing.T) {
		other := testutil.CreateTestUser(t, db)
		page, err := service.GetUserTransactions(other.ID, pagination.PageRequest{}, services.TransactionFilter{})
		testutil.AssertNoError(t, err)
		if len(page.Data) != 0 {
			t.Errorf("expected no transactions for another user, got %d", len(page.Data))
		}
	})
}

func TestDeleteTransaction(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	userService := services.NewUserService(db)
	categoryService := services.NewCategoryService(db)
	service := services.NewTransactionService(db, categoryService, userService)

	user := testutil.CreateTestUser(t, db)
	other := testutil.CreateTestUser(t, db)
	category := testutil.CreateTestCategory(t, db, user.ID)
	transaction := testutil.CreateTestTransaction(t, db, user.ID, category.ID, 100)

	t.Run("other user cannot delete", func(t *testing.T) {
		err := service.DeleteTransaction(other.ID, transaction.ID)
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
	})

	t.Run("owner deletes", func(t *testing.T) {
		testutil.AssertNoError(t, service.DeleteTransaction(user.ID, transaction.ID))

		_, err := service.GetTransactionByID(user.ID, transaction.ID)
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
	})
}
