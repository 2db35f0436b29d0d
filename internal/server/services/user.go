// Package services contains server-side business logic that sits next to the
// sync engine: accounts and tokens, devices, room preferences and attachment
// storage.
package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/chatsync/internal/common"
	"github.com/dmitrijs2005/chatsync/internal/dbx"
	"github.com/dmitrijs2005/chatsync/internal/logging"
	"github.com/dmitrijs2005/chatsync/internal/server/auth"
	"github.com/dmitrijs2005/chatsync/internal/server/authz"
	"github.com/dmitrijs2005/chatsync/internal/server/config"
	"github.com/dmitrijs2005/chatsync/internal/server/mailer"
	"github.com/dmitrijs2005/chatsync/internal/server/models"
	"github.com/dmitrijs2005/chatsync/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/chatsync/internal/timex"
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
// SessionID is issued at sign-in, carried in the access token claims and
// kept across refreshes.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	SessionID    string
}

const (
	passwordCodeDigits   = 6
	passwordCodeAttempts = 5

	DefaultListUsersTake = 10
	MaxListUsersTake     = 50
)

// UserService handles accounts, sign-in, token rotation and the follower graph.
type UserService struct {
	repomanager                  repomanager.RepositoryManager
	log                          logging.Logger
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
	passwordCodeValidityDuration time.Duration
	bcryptCost                   int
	mailer                       mailer.Mailer
	now                          func() time.Time
}

type UserOption func(*UserService)

// WithMailer replaces the log mailer used for password reset codes.
func WithMailer(m mailer.Mailer) UserOption {
	return func(s *UserService) { s.mailer = m }
}

func NewUserService(m repomanager.RepositoryManager, cfg *config.Config, log logging.Logger, opts ...UserOption) *UserService {
	s := &UserService{
		repomanager:                  m,
		log:                          log.With("module", "users"),
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
		passwordCodeValidityDuration: cfg.PasswordCodeValidityDuration,
		bcryptCost:                   bcrypt.DefaultCost,
		mailer:                       mailer.NewLogMailer(log),
		now:                          time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func validateAccount(name, email, password string) error {
	if n := utf8.RuneCountInString(strings.TrimSpace(name)); n < 2 || n > 100 {
		return fmt.Errorf("%w: name must be 2 to 100 characters", common.ErrorValidation)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: must be a valid email", common.ErrorValidation)
	}
	return validatePassword(password)
}

func validatePassword(password string) error {
	if len(password) < 2 {
		return fmt.Errorf("%w: password is too short", common.ErrorValidation)
	}
	return nil
}

// CreateAccount registers a user with the "user" role.
func (s *UserService) CreateAccount(ctx context.Context, name, email, password string, pictureURI *string) (*models.User, error) {
	email = strings.TrimSpace(email)
	if err := validateAccount(name, email, password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		ID:         uuid.NewString(),
		Name:       strings.TrimSpace(name),
		Email:      email,
		Password:   string(hash),
		PictureURI: pictureURI,
		Role:       models.RoleUser,
	}
	u, err := s.repomanager.Users(s.repomanager.Conn()).Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	s.log.Info(ctx, "account created", "user_id", u.ID)
	return u, nil
}

// SignIn verifies credentials and returns a new TokenPair. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *UserService) SignIn(ctx context.Context, email, password string) (*TokenPair, error) {
	repo := s.repomanager.Users(s.repomanager.Conn())
	user, err := repo.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, common.ErrorUnauthorized
	}
	if err := repo.TouchLastAccess(ctx, user.ID); err != nil {
		s.log.Warn(ctx, "touch last access failed", "user_id", user.ID, "error", err)
	}
	return s.generateTokenPair(ctx, user.ID, uuid.NewString(), s.repomanager.Conn())
}

// RefreshToken validates a refresh token, rotates it transactionally, and
// returns a fresh TokenPair. Expired tokens yield ErrRefreshTokenExpired.
func (s *UserService) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	repo := s.repomanager.RefreshTokens(s.repomanager.Conn())

	token, err := repo.Find(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error searching refresh token: %w", err)
	}
	if token.Expires.Before(time.Now()) {
		return nil, common.ErrRefreshTokenExpired
	}

	sessionID := token.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	var pair *TokenPair
	if err := s.repomanager.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.RefreshTokens(tx).Delete(ctx, refreshToken); err != nil {
			return fmt.Errorf("error deleting refresh token: %w", err)
		}
		var genErr error
		pair, genErr = s.generateTokenPair(ctx, token.UserID, sessionID, tx)
		return genErr
	}); err != nil {
		return nil, err
	}
	return pair, nil
}

// Me returns the caller's account as seen through read:own:account.
func (s *UserService) Me(ctx context.Context, userID string) (map[string]any, error) {
	user, err := s.repomanager.Users(s.repomanager.Conn()).FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	perm, err := authz.Can(user.Role, authz.Scope{Action: authz.ActionRead, Possession: authz.Own, Resource: authz.ResourceAccount})
	if err != nil {
		return nil, err
	}
	return perm.Filter(accountAttributes(user)), nil
}

func accountAttributes(u *models.User) map[string]any {
	attrs := map[string]any{
		"id":           u.ID,
		"name":         u.Name,
		"email":        u.Email,
		"password":     u.Password,
		"role":         string(u.Role),
		"picture_uri":  u.PictureURI,
		"public_key":   u.PublicKey,
		"derived_salt": u.DerivedSalt,
		"created_at":   timex.Millis(u.CreatedAt),
		"updated_at":   timex.Millis(u.UpdatedAt),
	}
	if u.LastAccessAt != nil {
		attrs["last_access_at"] = timex.Millis(*u.LastAccessAt)
	}
	return attrs
}

// ListUsers searches active users. Take defaults to DefaultListUsersTake and
// may not exceed MaxListUsersTake.
func (s *UserService) ListUsers(ctx context.Context, q models.UserQuery) ([]*models.User, error) {
	if q.Take == 0 {
		q.Take = DefaultListUsersTake
	}
	if q.Take < 1 || q.Take > MaxListUsersTake {
		return nil, fmt.Errorf("%w: take must be 1 to %d", common.ErrorValidation, MaxListUsersTake)
	}
	if q.Skip < 0 {
		return nil, fmt.Errorf("%w: skip must not be negative", common.ErrorValidation)
	}
	return s.repomanager.Users(s.repomanager.Conn()).Search(ctx, q)
}

// ForgotPassword mails a one-time reset code to email. An unknown email
// succeeds silently so callers cannot probe for accounts.
func (s *UserService) ForgotPassword(ctx context.Context, email string) error {
	repo := s.repomanager.Users(s.repomanager.Conn())
	user, err := repo.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil
		}
		return err
	}

	expires := s.now().Add(s.passwordCodeValidityDuration)
	var code string
	for attempt := 0; ; attempt++ {
		code, err = common.MakeRandDigits(passwordCodeDigits)
		if err != nil {
			return common.ErrorInternal
		}
		err = repo.SetPasswordCode(ctx, user.ID, code, expires)
		if err == nil {
			break
		}
		if !errors.Is(err, common.ErrorAlreadyExists) || attempt+1 == passwordCodeAttempts {
			return fmt.Errorf("store password code: %w", err)
		}
	}

	if err := s.mailer.Send(ctx, mailer.PasswordCode(user.Email, code)); err != nil {
		return fmt.Errorf("send password code: %w", err)
	}
	s.log.Info(ctx, "password code issued", "user_id", user.ID)
	return nil
}

// ChangePassword redeems a reset code. Unknown codes are ErrorNotFound and
// expired ones ErrorForbidden.
func (s *UserService) ChangePassword(ctx context.Context, code, password string) error {
	if err := validatePassword(password); err != nil {
		return err
	}
	repo := s.repomanager.Users(s.repomanager.Conn())
	user, err := repo.FindByPasswordCode(ctx, code)
	if err != nil {
		return err
	}
	if user.PasswordCodeExpiresAt == nil || s.now().After(*user.PasswordCodeExpiresAt) {
		return fmt.Errorf("%w: code is invalid", common.ErrorForbidden)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := repo.ResetPassword(ctx, user.ID, string(hash)); err != nil {
		return err
	}
	s.log.Info(ctx, "password changed", "user_id", user.ID)
	return nil
}

// StartFollowing makes userID a follower of targetID. Both users are touched
// so the next pull re-derives their follow flags.
func (s *UserService) StartFollowing(ctx context.Context, userID, targetID string) error {
	return s.changeFollow(ctx, userID, targetID, true)
}

func (s *UserService) StopFollowing(ctx context.Context, userID, targetID string) error {
	return s.changeFollow(ctx, userID, targetID, false)
}

func (s *UserService) changeFollow(ctx context.Context, userID, targetID string, follow bool) error {
	if userID == targetID {
		return fmt.Errorf("%w: user cannot follow itself", common.ErrorValidation)
	}
	return s.repomanager.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		users := s.repomanager.Users(tx)
		if _, err := users.FindByID(ctx, targetID); err != nil {
			return err
		}
		var err error
		if follow {
			err = users.Follow(ctx, userID, targetID)
		} else {
			err = users.Unfollow(ctx, userID, targetID)
		}
		if err != nil {
			return err
		}
		return users.Touch(ctx, userID, targetID)
	})
}

func (s *UserService) generateTokenPair(ctx context.Context, userID, sessionID string, tx dbx.DBTX) (*TokenPair, error) {
	access, err := auth.GenerateToken(userID, sessionID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}
	refresh, err := common.MakeRandHexString(32)
	if err != nil {
		return nil, common.ErrorInternal
	}
	if err := s.repomanager.RefreshTokens(tx).Create(ctx, userID, sessionID, refresh, s.refreshTokenValidityDuration); err != nil {
		return nil, common.ErrorInternal
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh, SessionID: sessionID}, nil
}
