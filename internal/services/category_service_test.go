package services_test

import (
	"testing"

	"github.com/Anurag-techs/Spend-Smart/internal/pagination"
	"github.com/Anurag-techs/Spend-Smart/internal/services"
	"github.com/Anurag-techs/Spend-Smart/internal/testutil"
)

func TestCreateCategory(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	service := services.NewCategoryService(db)
	user := testutil.CreateTestUser(t, db)

	t.Run("creates budget-tracked category", func(t *testing.T) {
		category, err := service.CreateCategory(user.ID, "Groceries", 5000, "#00ff00", "cart")
		testutil.AssertNoError(t, err)
		if !category.IsBudgetTracked() {
			t.Error("category with a positive budget should be budget-tracked")
		}
	})

	t.Run("creates untracked category", func(t *testing.T) {
		category, err := service.CreateCategory(user.ID, "Misc", 0, "", "")
		testutil.AssertNoError(t, err)
		if category.IsBudgetTracked() {
			t.Error("category without a budget should not be budget-tracked")
		}
	})

	t.Run("rejects duplicate name", func(t *testing.T) {
		_, err := service.CreateCategory(user.ID, "Groceries", 0, "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("rejects negative budget", func(t *testing.T) {
		_, err := service.CreateCategory(user.ID, "Negative", -100, "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := service.CreateCategory(user.ID, "", 0, "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("same name allowed for another user", func(t *testing.T) {
		other := testutil.CreateTestUser(t, db)
		_, err := service.CreateCategory(other.ID, "Groceries", 0, "", "")
		testutil.AssertNoError(t, err)
	})
}

func TestGetCategoryByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	service := services.NewCategoryService(db)
	user := testutil.CreateTestUser(t, db)
	other := testutil.CreateTestUser(t, db)
	category := testutil.CreateTestCategory(t, db, user.ID)

	t.Run("owner can read", func(t *testing.T) {
		got, err := service.GetCategoryByID(user.ID, category.ID)
		testutil.AssertNoError(t, err)
		if got.ID != category.ID {
			t.Errorf("expected category %d, got %d", category.ID, got.ID)
		}
	})

	t.Run("other user cannot read", func(t *testing.T) {
		_, err := service.GetCategoryByID(other.ID, category.ID)
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})
}

func TestUpdateCategory(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	service := services.NewCategoryService(db)
	user := testutil.CreateTestUser(t, db)
	category := testutil.CreateTestCategoryWithBudget(t, db, user.ID, 1000)

	t.Run("updates budget", func(t *testing.T) {
		budget := 2500.0
		updated, err := service.UpdateCategory(user.ID, category.ID, "", &budget, "", "")
		testutil.AssertNoError(t, err)

		got, err := service.GetCategoryByID(user.ID, updated.ID)
		testutil.AssertNoError(t, err)
		if got.MonthlyBudget != 2500 {
			t.Errorf("expected budget 2500, got %f", got.MonthlyBudget)
		}
	})

	t.Run("budget can be cleared to zero", func(t *testing.T) {
		budget := 0.0
		_, err := service.UpdateCategory(user.ID, category.ID, "", &budget, "", "")
		testutil.AssertNoError(t, err)

		got, err := service.GetCategoryByID(user.ID, category.ID)
		testutil.AssertNoError(t, err)
		if got.IsBudgetTracked() {
			t.Error("category with budget cleared should be untracked")
		}
	})

	t.Run("rejects negative budget", func(t *testing.T) {
		budget := -1.0
		_, err := service.UpdateCategory(user.ID, category.ID, "", &budget, "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestDeleteCategory(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	service := services.NewCategoryService(db)
	user := testutil.CreateTestUser(t, db)

	t.Run("deletes unused category", func(t *testing.T) {
		category := testutil.CreateTestCategory(t, db, user.ID)
		testutil.AssertNoError(t, service.DeleteCategory(user.ID, category.ID))

		_, err := service.GetCategoryByID(user.ID, category.ID)
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})

	t.Run("refuses category with transactions", func(t *testing.T) {
		category := testutil.CreateTestCategory(t, db, user.ID)
		testutil.CreateTestTransaction(t, db, user.ID, category.ID, 100)

		err := service.DeleteCategory(user.ID, category.ID)
		testutil.AssertAppError(t, err, "CATEGORY_IN_USE")
	})
}

func TestGetUserCategories(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	service := services.NewCategoryService(db)
	user := testutil.CreateTestUser(t, db)

	for i := 0; i < 25; i++ {
		testutil.CreateTestCategory(t, db, user.ID)
	}

	page, err := service.GetUserCategories(user.ID, pagination.PageRequest{Page: 2, PageSize: 10})
	testutil.AssertNoError(t, err)

	if page.TotalItems != 25 {
		t.Errorf("expected 25 total items, got %d", page.TotalItems)
	}
	if page.TotalPages != 3 {
		t.Errorf("expected 3 total pages, got %d", page.TotalPages)
	}
	if len(page.Data) != 10 {
		t.Errorf("expected 10 items on page 2, got %d", len(page.Data))
	}
}
