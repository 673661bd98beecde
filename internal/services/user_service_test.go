package services

import (
	"testing"

	"spendwise/internal/testutil"
)

func TestCreateUser(t *testing.T) {
	t.Run("normalizes_email_case", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		user, err := svc.CreateUser("MiXeD@Test.COM", "mixeduser", "password123")
		testutil.AssertNoError(t, err)
		if user.Email != "mixed@test.com" {
			t.Errorf("expected lowercased email, got %s", user.Email)
		}

		// Same address in another case collides.
		_, err = svc.CreateUser("mixed@TEST.com", "otheruser", "password123")
		testutil.AssertAppError(t, err, "EMAIL_TAKEN")
	})

	t.Run("missing_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("", "user", "password123")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
		_, err = svc.CreateUser("a@test.com", "", "password123")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
		_, err = svc.CreateUser("a@test.com", "user", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetUserByEmail(t *testing.T) {
	t.Run("case_insensitive_lookup", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		created, err := svc.CreateUser("lookup@test.com", "lookupuser", "password123")
		testutil.AssertNoError(t, err)

		got, err := svc.GetUserByEmail("LOOKUP@test.com")
		testutil.AssertNoError(t, err)
		if got.ID != created.ID {
			t.Errorf("expected user %d, got %d", created.ID, got.ID)
		}
	})
}

func TestVerifyPassword(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewUserService(db)

	user, err := svc.CreateUser("verify@test.com", "verifyuser", "password123")
	testutil.AssertNoError(t, err)

	if !svc.VerifyPassword(user, "password123") {
		t.Error("expected correct password to verify")
	}
	if svc.VerifyPassword(user, "wrong") {
		t.Error("expected wrong password to fail")
	}
}
