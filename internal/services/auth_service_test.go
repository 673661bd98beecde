package services

import (
	"testing"
	"time"

	"spendwise/internal/testutil"
	"spendwise/internal/token"
)

func newTestIssuer(t *testing.T) *token.Issuer {
	t.Helper()
	issuer, err := token.NewIssuer("test-secret", "HS256", 30*time.Minute, 7*24*time.Hour)
	if err != nil {
		t.Fatalf("failed to create issuer: %v", err)
	}
	return issuer
}

func TestRegister(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAuthService(NewUserService(db), newTestIssuer(t))

		user, err := svc.Register("new@test.com", "newuser", "password123")
		testutil.AssertNoError(t, err)

		if user.ID == 0 {
			t.Fatal("expected non-zero user ID")
		}
		if user.Email != "new@test.com" {
			t.Errorf("expected email new@test.com, got %s", user.Email)
		}
		if !user.IsActive {
			t.Error("expected new user to be active")
		}
		if user.IsVerified {
			t.Error("expected new user to be unverified")
		}
		if user.Password == "password123" {
			t.Error("password must be stored hashed, not in plaintext")
		}
	})

	t.Run("duplicate_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAuthService(NewUserService(db), newTestIssuer(t))

		_, err := svc.Register("dup@test.com", "first", "password123")
		testutil.AssertNoError(t, err)

		_, err = svc.Register("dup@test.com", "second", "password123")
		testutil.AssertAppError(t, err, "EMAIL_TAKEN")
	})

	t.Run("duplicate_username", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAuthService(NewUserService(db), newTestIssuer(t))

		_, err := svc.Register("a@test.com", "samename", "password123")
		testutil.AssertNoError(t, err)

		_, err = svc.Register("b@test.com", "samename", "password123")
		testutil.AssertAppError(t, err, "USERNAME_TAKEN")
	})

	t.Run("different_password_same_identity_still_conflicts", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAuthService(NewUserService(db), newTestIssuer(t))

		_, err := svc.Register("p@test.com", "puser", "password123")
		testutil.AssertNoError(t, err)

		_, err = svc.Register("p@test.com", "puser2", "completely-different")
		testutil.AssertAppError(t, err, "EMAIL_TAKEN")
	})
}

func TestLogin(t *testing.T) {
	t.Run("valid_credentials", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		issuer := newTestIssuer(t)
		svc := NewAuthService(NewUserService(db), issuer)

		_, err := svc.Register("login@test.com", "loginuser", "password123")
		testutil.AssertNoError(t, err)

		pair, err := svc.Login("login@test.com", "password123")
		testutil.AssertNoError(t, err)

		if pair.AccessToken == "" || pair.RefreshToken == "" {
			t.Fatal("expected non-empty token pair")
		}
		if pair.TokenType != "bearer" {
			t.Errorf("expected token_type bearer, got %s", pair.TokenType)
		}
		if pair.ExpiresIn != 1800 {
			t.Errorf("expected expires_in 1800, got %d", pair.ExpiresIn)
		}

		claims, err := issuer.Verify(pair.AccessToken)
		testutil.AssertNoError(t, err)
		if claims.TokenType != "access" {
			t.Errorf("expected access token, got %s", claims.TokenType)
		}
	})

	t.Run("wrong_password_and_unknown_email_are_identical", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAuthService(NewUserService(db), newTestIssuer(t))

		_, err := svc.Register("enum@test.com", "enumuser", "password123")
		testutil.AssertNoError(t, err)

		_, wrongPass := svc.Login("enum@test.com", "wrongpassword")
		_, noUser := svc.Login("ghost@test.com", "password123")

		testutil.AssertAppError(t, wrongPass, "INVALID_CREDENTIALS")
		testutil.AssertAppError(t, noUser, "INVALID_CREDENTIALS")
		if wrongPass.Error() != noUser.Error() {
			t.Errorf("login failures must be indistinguishable: %q vs %q", wrongPass.Error(), noUser.Error())
		}
	})

	t.Run("inactive_account", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAuthService(NewUserService(db), newTestIssuer(t))

		user := testutil.CreateInactiveUser(t, db)

		_, err := svc.Login(user.Email, "password123")
		testutil.AssertAppError(t, err, "INACTIVE_USER")
	})
}

func TestRefresh(t *testing.T) {
	t.Run("valid_refresh_token", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		issuer := newTestIssuer(t)
		svc := NewAuthService(NewUserService(db), issuer)

		_, err := svc.Register("refresh@test.com", "refreshuser", "password123")
		testutil.AssertNoError(t, err)
		pair, err := svc.Login("refresh@test.com", "password123")
		testutil.AssertNoError(t, err)

		rotated, err := svc.Refresh(pair.RefreshToken)
		testutil.AssertNoError(t, err)
		if rotated.AccessToken == "" || rotated.RefreshToken == "" {
			t.Fatal("expected a full rotated pair")
		}

		claims, err := issuer.Verify(rotated.AccessToken)
		testutil.AssertNoError(t, err)
		if claims.TokenType != "access" {
			t.Errorf("expected access token from refresh, got %s", claims.TokenType)
		}
	})

	t.Run("rejects_access_token", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		issuer := newTestIssuer(t)
		svc := NewAuthService(NewUserService(db), issuer)

		user := testutil.CreateTestUser(t, db)
		access, err := issuer.Issue(user, token.KindAccess)
		testutil.AssertNoError(t, err)

		// Well-formed and unexpired, but the wrong kind.
		_, err = svc.Refresh(access)
		testutil.AssertAppError(t, err, "INVALID_TOKEN")
	})

	t.Run("rejects_garbage_token", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAuthService(NewUserService(db), newTestIssuer(t))

		_, err := svc.Refresh("not-a-token")
		testutil.AssertAppError(t, err, "INVALID_TOKEN")
	})

	t.Run("rejects_token_for_deleted_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		issuer := newTestIssuer(t)
		svc := NewAuthService(NewUserService(db), issuer)

		user := testutil.CreateTestUser(t, db)
		refresh, err := issuer.Issue(user, token.KindRefresh)
		testutil.AssertNoError(t, err)

		if err := db.Unscoped().Delete(user).Error; err != nil {
			t.Fatalf("failed to delete user: %v", err)
		}

		_, err = svc.Refresh(refresh)
		testutil.AssertAppError(t, err, "INVALID_TOKEN")
	})

	t.Run("rejects_inactive_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		issuer := newTestIssuer(t)
		svc := NewAuthService(NewUserService(db), issuer)

		user := testutil.CreateInactiveUser(t, db)
		refresh, err := issuer.Issue(user, token.KindRefresh)
		testutil.AssertNoError(t, err)

		_, err = svc.Refresh(refresh)
		testutil.AssertAppError(t, err, "INACTIVE_USER")
	})
}

func TestCurrentUser(t *testing.T) {
	t.Run("existing_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAuthService(NewUserService(db), newTestIssuer(t))

		user := testutil.CreateTestUser(t, db)

		got, err := svc.CurrentUser(user.ID)
		testutil.AssertNoError(t, err)
		if got.Email != user.Email {
			t.Errorf("expected email %s, got %s", user.Email, got.Email)
		}
	})

	t.Run("unknown_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAuthService(NewUserService(db), newTestIssuer(t))

		_, err := svc.CurrentUser(99999)
		testutil.AssertAppError(t, err, "INVALID_TOKEN")
	})

	t.Run("inactive_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAuthService(NewUserService(db), newTestIssuer(t))

		user := testutil.CreateInactiveUser(t, db)

		_, err := svc.CurrentUser(user.ID)
		testutil.AssertAppError(t, err, "INACTIVE_USER")
	})
}
