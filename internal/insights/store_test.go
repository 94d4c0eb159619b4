package insights

import (
	"testing"
	"time"

	"github.com/Anurag-techs/Spend-Smart/internal/testutil"
)

func TestGormStoreListTransactions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	user := testutil.CreateTestUser(t, db)
	other := testutil.CreateTestUser(t, db)
	category := testutil.CreateTestCategory(t, db, user.ID)
	otherCategory := testutil.CreateTestCategory(t, db, other.ID)

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	testutil.CreateTestTransactionOn(t, db, user.ID, category.ID, 100, start)
	testutil.CreateTestTransactionOn(t, db, user.ID, category.ID, 200, end)
	// Outside the window and for another user; both must be excluded.
	testutil.CreateTestTransactionOn(t, db, user.ID, category.ID, 300, start.AddDate(0, 0, -1))
	testutil.CreateTestTransactionOn(t, db, other.ID, otherCategory.ID, 400, start)

	store := NewStore(db)
	transactions, err := store.ListTransactions(user.ID, start, end)
	testutil.AssertNoError(t, err)

	if len(transactions) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(transactions))
	}
	if !transactions[0].Date.Before(transactions[1].Date) {
		t.Error("transactions should be ordered by date ascending")
	}
	if transactions[0].Category.Name != category.Name {
		t.Errorf("expected category preloaded, got %q", transactions[0].Category.Name)
	}
}

func TestGormStoreSumAmounts(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	user := testutil.CreateTestUser(t, db)
	food := testutil.CreateTestCategory(t, db, user.ID)
	travel := testutil.CreateTestCategory(t, db, user.ID)

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	testutil.CreateTestTransactionOn(t, db, user.ID, food.ID, 100, start)
	testutil.CreateTestTransactionOn(t, db, user.ID, food.ID, 250, start.AddDate(0, 0, 5))
	testutil.CreateTestTransactionOn(t, db, user.ID, travel.ID, 1000, start.AddDate(0, 0, 10))

	store := NewStore(db)

	t.Run("all categories", func(t *testing.T) {
		total, err := store.SumAmounts(user.ID, start, end, nil)
		testutil.AssertNoError(t, err)
		if total != 1350 {
			t.Errorf("expected total 1350, got %f", total)
		}
	})

	t.Run("single category", func(t *testing.T) {
		total, err := store.SumAmounts(user.ID, start, end, &food.ID)
		testutil.AssertNoError(t, err)
		if total != 350 {
			t.Errorf("expected total 350, got %f", total)
		}
	})

	t.Run("empty range is zero", func(t *testing.T) {
		total, err := store.SumAmounts(user.ID, end.AddDate(0, 1, 0), end.AddDate(0, 2, 0), nil)
		testutil.AssertNoError(t, err)
		if total != 0 {
			t.Errorf("expected 0 for an empty range, got %f", total)
		}
	})
}

func TestGormStoreListBudgetedCategories(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	user := testutil.CreateTestUser(t, db)
	budgeted := testutil.CreateTestCategoryWithBudget(t, db, user.ID, 5000)
	testutil.CreateTestCategory(t, db, user.ID)

	store := NewStore(db)
	categories, err := store.ListBudgetedCategories(user.ID)
	testutil.AssertNoError(t, err)

	if len(categories) != 1 {
		t.Fatalf("expected only the budgeted category, got %d", len(categories))
	}
	if categories[0].ID != budgeted.ID {
		t.Errorf("expected category %d, got %d", budgeted.ID, categories[0].ID)
	}
}

func TestGormStoreGetEngagementStreak(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	user := testutil.CreateTestUser(t, db)
	lastActive := time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC)
	if err := db.Model(user).Updates(map[string]interface{}{
		"current_streak":   4,
		"longest_streak":   9,
		"last_active_date": lastActive,
	}).Error; err != nil {
		t.Fatalf("failed to seed streak: %v", err)
	}

	store := NewStore(db)

	t.Run("existing user", func(t *testing.T) {
		streak, err := store.GetEngagementStreak(user.ID)
		testutil.AssertNoError(t, err)
		if streak.Current != 4 || streak.Longest != 9 {
			t.Errorf("unexpected streak: %+v", streak)
		}
		if streak.LastActiveDate == nil || !streak.LastActiveDate.Equal(lastActive) {
			t.Errorf("unexpected last active date: %v", streak.LastActiveDate)
		}
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := store.GetEngagementStreak(99999)
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})
}
