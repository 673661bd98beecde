package services

import (
	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
	"spendwise/internal/token"
)

// authService orchestrates registration, login, refresh, and current-user
// resolution over the credential store and the token issuer.
type authService struct {
	users  UserServicer
	issuer *token.Issuer
}

// NewAuthService creates a new AuthServicer.
func NewAuthService(users UserServicer, issuer *token.Issuer) AuthServicer {
	return &authService{users: users, issuer: issuer}
}

// Register creates a new user account. Input length constraints are enforced
// at the binding layer; the credential store enforces uniqueness.
func (s *authService) Register(email, username, password string) (*models.User, error) {
	return s.users.CreateUser(email, username, password)
}

// Login authenticates by email and password. An unknown email and a wrong
// password return the identical error so attackers cannot enumerate users.
// A known-good but inactive account gets a distinct authorization failure.
func (s *authService) Login(email, password string) (*TokenPair, error) {
	user, err := s.users.GetUserByEmail(email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !s.users.VerifyPassword(user, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperrors.ErrInactiveUser
	}

	return s.issuePair(user)
}

// Refresh validates a refresh token and rotates the pair. The previous
// refresh token stays valid until its natural expiry; there is no revocation
// store, which is a known limitation.
func (s *authService) Refresh(refreshToken string) (*TokenPair, error) {
	claims, err := s.issuer.Verify(refreshToken)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	// An otherwise valid access token must not be usable for refresh.
	if claims.TokenType != string(token.KindRefresh) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidToken, "Refresh token required")
	}

	userID, err := claims.SubjectID()
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.users.GetUserByID(userID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if !user.IsActive {
		return nil, apperrors.ErrInactiveUser
	}

	return s.issuePair(user)
}

// CurrentUser resolves the public view of the authenticated user. A token
// whose subject no longer resolves is treated as invalid.
func (s *authService) CurrentUser(userID uint) (*models.User, error) {
	user, err := s.users.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, apperrors.ErrInactiveUser
	}
	return user, nil
}

func (s *authService) issuePair(user *models.User) (*TokenPair, error) {
	access, err := s.issuer.Issue(user, token.KindAccess)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	refresh, err := s.issuer.Issue(user, token.KindRefresh)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
		ExpiresIn:    int(s.issuer.AccessTTL().Seconds()),
	}, nil
}
