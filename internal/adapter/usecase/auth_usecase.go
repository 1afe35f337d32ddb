package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"bagpresto/internal/config/configs"
	"bagpresto/internal/core/apperr"
	"bagpresto/internal/core/domain"
	"bagpresto/internal/core/port"
	"bagpresto/internal/core/quote"
)

var signingMethod = jwt.SigningMethodHS256

// accessClaims is the payload of an access token. The user type is
// informative only: CurrentSession reloads the user from the store.
type accessClaims struct {
	UserID   uuid.UUID       `json:"user_id"`
	UserType domain.UserType `json:"user_type"`
	jwt.RegisteredClaims
}

// AuthService implements port.AuthProvider with bcrypt password hashes and
// HS256 access tokens whose ids are tracked in a SessionStore, so signing
// out revokes the token before it expires.
type AuthService struct {
	users    port.UserRepository
	sessions port.SessionStore
	cfg      configs.Auth
	logger   *slog.Logger
	now      func() time.Time
}

// NewAuthService creates the token-based auth provider.
func NewAuthService(users port.UserRepository, sessions port.SessionStore, cfg configs.Auth, logger *slog.Logger) *AuthService {
	return &AuthService{users: users, sessions: sessions, cfg: cfg, logger: logger, now: time.Now}
}

var errBadCredentials = apperr.New(apperr.CodeUnauthorized, "Email ou mot de passe incorrect.")

// SignUp creates a client or partner user. Admin accounts cannot be
// created this way; see EnsureAdmin.
func (s *AuthService) SignUp(ctx context.Context, email, password string, meta domain.UserMetadata) (*domain.User, error) {
	if !meta.UserType.IsValid() {
		return nil, apperr.Validation("Type de compte invalide")
	}
	if meta.UserType == domain.UserTypeAdmin {
		return nil, apperr.New(apperr.CodeForbidden, "Accès refusé")
	}
	return s.createUser(ctx, email, password, meta)
}

func (s *AuthService) createUser(ctx context.Context, email, password string, meta domain.UserMetadata) (*domain.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, apperr.Validation("Email et mot de passe requis")
	}
	if err := quote.CheckPassword(password); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, apperr.Validation("Le mot de passe est trop long")
		}
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := &domain.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		Metadata:     meta,
		CreatedAt:    s.now().UTC(),
	}
	if err = s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, port.ErrDuplicate) {
			return nil, apperr.New(apperr.CodeConflict, "Un compte avec cet email existe déjà.")
		}
		return nil, remote(err)
	}
	return user, nil
}

// SignIn checks the credentials and opens a session.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, apperr.Validation("Email et mot de passe requis")
	}
	user, err := s.users.GetUserByEmail(ctx, email)
	if errors.Is(err, port.ErrNotFound) {
		return nil, errBadCredentials
	}
	if err != nil {
		return nil, remote(err)
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errBadCredentials
	}
	return s.openSession(ctx, *user)
}

func (s *AuthService) openSession(ctx context.Context, user domain.User) (*domain.Session, error) {
	now := s.now()
	expires := now.Add(s.cfg.TokenTTL)
	tokenID := uuid.NewString()

	claims := accessClaims{
		UserID:   user.ID,
		UserType: user.Metadata.UserType,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.Issuer,
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
			ID:        tokenID,
		},
	}
	signed, err := jwt.NewWithClaims(signingMethod, claims).SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	if err = s.sessions.SaveSession(ctx, tokenID, user.ID, s.cfg.TokenTTL); err != nil {
		return nil, remote(err)
	}
	return &domain.Session{Token: signed, TokenID: tokenID, User: user, ExpiresAt: expires.UTC()}, nil
}

// SignOut revokes the session's token.
func (s *AuthService) SignOut(ctx context.Context, session domain.Session) error {
	if session.TokenID == "" {
		return nil
	}
	return remote(s.sessions.DeleteSession(ctx, session.TokenID))
}

// CurrentSession resolves a bearer token into a live session.
func (s *AuthService) CurrentSession(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, apperr.New(apperr.CodeUnauthorized, "Authentification requise")
	}
	claims := &accessClaims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(t *jwt.Token) (any, error) {
			return []byte(s.cfg.Secret), nil
		},
		jwt.WithValidMethods([]string{signingMethod.Alg()}),
		jwt.WithIssuer(s.cfg.Issuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeUnauthorized, err, "Session invalide ou expirée")
	}
	if claims.ID == "" {
		return nil, apperr.New(apperr.CodeUnauthorized, "Session invalide ou expirée")
	}

	live, err := s.sessions.HasSession(ctx, claims.ID)
	if err != nil {
		return nil, remote(err)
	}
	if !live {
		return nil, apperr.New(apperr.CodeUnauthorized, "Session invalide ou expirée")
	}

	user, err := s.users.GetUserByID(ctx, claims.UserID)
	if errors.Is(err, port.ErrNotFound) {
		return nil, apperr.New(apperr.CodeUnauthorized, "Session invalide ou expirée")
	}
	if err != nil {
		return nil, remote(err)
	}

	var expires time.Time
	if claims.ExpiresAt != nil {
		expires = claims.ExpiresAt.Time.UTC()
	}
	return &domain.Session{Token: token, TokenID: claims.ID, User: *user, ExpiresAt: expires}, nil
}

// EnsureAdmin creates the admin account when it does not exist yet. It is a
// no-op when email or password is empty.
func (s *AuthService) EnsureAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	_, err := s.users.GetUserByEmail(ctx, normalizeEmail(email))
	if err == nil {
		return nil
	}
	if !errors.Is(err, port.ErrNotFound) {
		return err
	}
	user, err := s.createUser(ctx, email, password, domain.UserMetadata{
		FullName: "Administrateur",
		UserType: domain.UserTypeAdmin,
	})
	if err != nil {
		return err
	}
	s.logger.Info("admin account created", slog.String("user_id", user.ID.String()))
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
