package services

import (
	"testing"

	"golang.org/x/crypto/bcrypt"

	"fintrack/internal/models"
	"fintrack/internal/testutil"
)

func TestCreateUser(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserServiceWithCost(db, bcrypt.MinCost)

		user, err := svc.CreateUser("alice", "alice@example.com", "secret1")
		testutil.AssertNoError(t, err)

		if user.ID == 0 {
			t.Fatal("expected non-zero user ID")
		}
		if user.Username != "alice" {
			t.Errorf("expected username alice, got %s", user.Username)
		}
		if user.PasswordHash == "secret1" {
			t.Error("password must not be stored in plain text")
		}
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret1")) != nil {
			t.Error("expected stored hash to match the password")
		}
	})

	t.Run("seeds_default_categories", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserServiceWithCost(db, bcrypt.MinCost)

		user, err := svc.CreateUser("alice", "alice@example.com", "secret1")
		testutil.AssertNoError(t, err)

		var categories []models.Category
		if err := db.Where("user_id = ?", user.ID).Order("id ASC").Find(&categories).Error; err != nil {
			t.Fatalf("load categories: %v", err)
		}
		if len(categories) != len(models.DefaultCategories) {
			t.Fatalf("expected %d categories, got %d", len(models.DefaultCategories), len(categories))
		}
		for i, c := range categories {
			if c.Name != models.DefaultCategories[i].Name || c.Color != models.DefaultCategories[i].Color {
				t.Errorf("category %d: expected %s %s, got %s %s", i,
					models.DefaultCategories[i].Name, models.DefaultCategories[i].Color, c.Name, c.Color)
			}
		}
	})

	t.Run("duplicate_username", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserServiceWithCost(db, bcrypt.MinCost)

		_, err := svc.CreateUser("alice", "alice@example.com", "secret1")
		testutil.AssertNoError(t, err)

		_, err = svc.CreateUser("alice", "other@example.com", "secret2")
		testutil.AssertAppError(t, err, "DUPLICATE_USER")

		var count int64
		db.Model(&models.User{}).Count(&count)
		if count != 1 {
			t.Errorf("expected 1 user, got %d", count)
		}
	})

	t.Run("duplicate_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserServiceWithCost(db, bcrypt.MinCost)

		_, err := svc.CreateUser("alice", "alice@example.com", "secret1")
		testutil.AssertNoError(t, err)

		_, err = svc.CreateUser("bob", "Alice@Example.com", "secret2")
		testutil.AssertAppError(t, err, "DUPLICATE_USER")

		var categories int64
		db.Model(&models.Category{}).Count(&categories)
		if categories != int64(len(models.DefaultCategories)) {
			t.Errorf("expected categories of one user only, got %d", categories)
		}
	})

	t.Run("empty_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserServiceWithCost(db, bcrypt.MinCost)

		_, err := svc.CreateUser("  ", "alice@example.com", "secret1")
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = svc.CreateUser("alice", "", "secret1")
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = svc.CreateUser("alice", "alice@example.com", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestVerifyUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewUserServiceWithCost(db, bcrypt.MinCost)

	created, err := svc.CreateUser("alice", "alice@example.com", "secret1")
	testutil.AssertNoError(t, err)

	t.Run("correct_password", func(t *testing.T) {
		user, err := svc.VerifyUser("alice", "secret1")
		testutil.AssertNoError(t, err)
		if user.ID != created.ID {
			t.Errorf("expected user %d, got %d", created.ID, user.ID)
		}
	})

	t.Run("wrong_password", func(t *testing.T) {
		_, err := svc.VerifyUser("alice", "wrong")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})

	t.Run("unknown_user", func(t *testing.T) {
		_, err := svc.VerifyUser("mallory", "secret1")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})

	t.Run("username_is_case_sensitive", func(t *testing.T) {
		_, err := svc.VerifyUser("Alice", "secret1")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})
}

func TestGetUserByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewUserServiceWithCost(db, bcrypt.MinCost)

	user := testutil.CreateTestUser(t, db)

	t.Run("found", func(t *testing.T) {
		got, err := svc.GetUserByID(user.ID)
		testutil.AssertNoError(t, err)
		if got.Username != user.Username {
			t.Errorf("expected %s, got %s", user.Username, got.Username)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		_, err := svc.GetUserByID(99999)
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})
}
