package services

import (
	"testing"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/testutil"
)

func TestAddTransaction(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, user.ID)

		date := time.Date(2024, time.March, 15, 18, 45, 0, 0, time.UTC)
		tx, err := svc.AddTransaction(user.ID, cat.ID, 4250, "Groceries", models.TransactionTypeExpense, date)
		testutil.AssertNoError(t, err)

		if tx.ID == 0 {
			t.Fatal("expected non-zero transaction ID")
		}
		if !tx.Date.Equal(testutil.Day(2024, time.March, 15)) {
			t.Errorf("expected date truncated to the day, got %v", tx.Date)
		}
		if tx.AmountCents != 4250 {
			t.Errorf("expected 4250 cents, got %d", tx.AmountCents)
		}
	})

	t.Run("invalid_input", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, user.ID)
		day := testutil.Day(2024, time.March, 15)

		tests := []struct {
			name    string
			amount  int64
			txType  models.TransactionType
			date    time.Time
			errCode string
		}{
			{"zero_amount", 0, models.TransactionTypeExpense, day, "INVALID_INPUT"},
			{"negative_amount", -100, models.TransactionTypeExpense, day, "INVALID_INPUT"},
			{"too_large", 1_000_000_000_00, models.TransactionTypeIncome, day, "INVALID_INPUT"},
			{"bad_type", 100, models.TransactionType("transfer"), day, "INVALID_TRANSACTION_TYPE"},
			{"zero_date", 100, models.TransactionTypeIncome, time.Time{}, "INVALID_INPUT"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := svc.AddTransaction(user.ID, cat.ID, tt.amount, "", tt.txType, tt.date)
				testutil.AssertAppError(t, err, tt.errCode)
			})
		}

		var count int64
		db.Model(&models.Transaction{}).Count(&count)
		if count != 0 {
			t.Errorf("expected no rows written, got %d", count)
		}
	})

	t.Run("other_users_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		alice := testutil.CreateTestUser(t, db)
		bob := testutil.CreateTestUser(t, db)
		bobCat := testutil.CreateTestCategory(t, db, bob.ID)

		_, err := svc.AddTransaction(alice.ID, bobCat.ID, 100, "", models.TransactionTypeExpense, testutil.Day(2024, 1, 1))
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})
}

func TestGetTransactions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewTransactionService(db)
	user := testutil.CreateTestUser(t, db)
	other := testutil.CreateTestUser(t, db)
	food := testutil.CreateTestCategoryWithName(t, db, user.ID, "Food & Dining", "#ef4444")
	salary := testutil.CreateTestCategoryWithName(t, db, user.ID, "Income", "#22c55e")
	otherCat := testutil.CreateTestCategory(t, db, other.ID)

	older := testutil.CreateTestTransaction(t, db, user.ID, food.ID, models.TransactionTypeExpense, 1000, testutil.Day(2024, time.March, 1))
	sameDayFirst := testutil.CreateTestTransaction(t, db, user.ID, salary.ID, models.TransactionTypeIncome, 300000, testutil.Day(2024, time.March, 10))
	sameDaySecond := testutil.CreateTestTransaction(t, db, user.ID, food.ID, models.TransactionTypeExpense, 4250, testutil.Day(2024, time.March, 10))
	testutil.CreateTestTransaction(t, db, other.ID, otherCat.ID, models.TransactionTypeExpense, 999, testutil.Day(2024, time.March, 20))

	t.Run("newest_first_with_id_tiebreak", func(t *testing.T) {
		views, err := svc.GetTransactions(user.ID, 0)
		testutil.AssertNoError(t, err)
		if len(views) != 3 {
			t.Fatalf("expected 3 transactions, got %d", len(views))
		}
		want := []uint{sameDaySecond.ID, sameDayFirst.ID, older.ID}
		for i, id := range want {
			if views[i].ID != id {
				t.Errorf("position %d: expected id %d, got %d", i, id, views[i].ID)
			}
		}
	})

	t.Run("joined_category_and_amount", func(t *testing.T) {
		views, err := svc.GetTransactions(user.ID, 1)
		testutil.AssertNoError(t, err)
		if len(views) != 1 {
			t.Fatalf("expected 1 transaction, got %d", len(views))
		}
		v := views[0]
		if v.CategoryName != "Food & Dining" || v.CategoryColor != "#ef4444" {
			t.Errorf("unexpected category: %s %s", v.CategoryName, v.CategoryColor)
		}
		testutil.AssertDecimal(t, v.Amount, "42.50")
		if v.Date != "2024-03-10" {
			t.Errorf("expected date 2024-03-10, got %s", v.Date)
		}
	})

	t.Run("unknown_user_is_empty", func(t *testing.T) {
		views, err := svc.GetTransactions(99999, 10)
		testutil.AssertNoError(t, err)
		if len(views) != 0 {
			t.Errorf("expected no transactions, got %d", len(views))
		}
	})
}

func TestListTransactions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewTransactionService(db)
	user := testutil.CreateTestUser(t, db)
	cat := testutil.CreateTestCategory(t, db, user.ID)

	for day := 1; day <= 5; day++ {
		testutil.CreateTestTransaction(t, db, user.ID, cat.ID, models.TransactionTypeExpense, int64(day*100), testutil.Day(2024, time.April, day))
	}

	page, err := svc.ListTransactions(user.ID, pagination.PageRequest{Page: 2, PageSize: 2})
	testutil.AssertNoError(t, err)

	if page.TotalItems != 5 || page.TotalPages != 3 {
		t.Errorf("expected 5 items over 3 pages, got %d over %d", page.TotalItems, page.TotalPages)
	}
	if len(page.Data) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(page.Data))
	}
	if page.Data[0].Date != "2024-04-03" || page.Data[1].Date != "2024-04-02" {
		t.Errorf("unexpected page contents: %s, %s", page.Data[0].Date, page.Data[1].Date)
	}
}
