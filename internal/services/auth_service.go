package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"farmconnect/internal/dashboard"
	"farmconnect/internal/models"
	"farmconnect/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Session lifecycle event types.
const (
	SessionSignedUp  = "signed_up"
	SessionSignedIn  = "signed_in"
	SessionSignedOut = "signed_out"
)

// SessionEvent is delivered to subscribers whenever a session starts or ends.
type SessionEvent struct {
	Type   string
	UserID string
	At     time.Time
}

// Session is an issued bearer token and the user it belongs to.
type Session struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      *models.User `json:"user"`
}

// DefaultFarmSize is the farm size in acres recorded when sign-up leaves it out.
const DefaultFarmSize = 5

// SignUpProfile carries the profile fields collected at sign-up. A zero
// FarmSize means DefaultFarmSize.
type SignUpProfile struct {
	Name     string
	Location string
	Bio      string
	Phone    string
	FarmSize int
}

// AuthService signs farmers up, in and out, and validates their tokens.
type AuthService struct {
	userRepo    repositories.UserRepository
	revocations RevocationList
	logger      *zap.Logger
	jwtSecret   []byte
	tokenTTL    time.Duration

	mu          sync.RWMutex
	subscribers []func(SessionEvent)
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, revocations RevocationList, jwtSecret string, tokenTTL time.Duration, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		revocations: revocations,
		logger:      logger,
		jwtSecret:   []byte(jwtSecret),
		tokenTTL:    tokenTTL,
	}
}

// Subscribe registers fn to be called synchronously on every session event.
func (s *AuthService) Subscribe(fn func(SessionEvent)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

func (s *AuthService) notify(eventType, userID string) {
	s.mu.RLock()
	subs := append([]func(SessionEvent){}, s.subscribers...)
	s.mu.RUnlock()

	evt := SessionEvent{Type: eventType, UserID: userID, At: time.Now()}
	for _, fn := range subs {
		fn(evt)
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SignUp creates a new account at level 1 and signs it in.
func (s *AuthService) SignUp(ctx context.Context, email, password string, profile SignUpProfile) (*Session, error) {
	email = normalizeEmail(email)

	if existing, err := s.userRepo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, fmt.Errorf("email '%s': %w", email, ErrEmailTaken)
	} else if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	if profile.FarmSize == 0 {
		profile.FarmSize = DefaultFarmSize
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:             strings.TrimSpace(profile.Name),
		Email:            email,
		PasswordHash:     string(hashedPassword),
		Location:         strings.TrimSpace(profile.Location),
		XP:               0,
		Level:            dashboard.LevelForXP(0),
		Bio:              profile.Bio,
		Phone:            profile.Phone,
		FarmSize:         profile.FarmSize,
		PreferredProduce: []string{},
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, fmt.Errorf("email '%s': %w", email, ErrEmailTaken)
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	session, err := s.issue(user)
	if err != nil {
		return nil, err
	}
	s.logger.Info("user signed up", zap.String("user_id", user.ID))
	s.notify(SessionSignedUp, user.ID)
	return session, nil
}

// SignIn authenticates a user by email and password.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*Session, error) {
	user, err := s.userRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			s.logger.Error("sign-in lookup failed", zap.Error(err))
		}
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	session, err := s.issue(user)
	if err != nil {
		return nil, err
	}
	s.notify(SessionSignedIn, user.ID)
	return session, nil
}

// SignOut revokes the token so it can no longer be used.
func (s *AuthService) SignOut(ctx context.Context, tokenString string) error {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return err
	}

	jti, _ := claims["jti"].(string)
	if jti == "" {
		return fmt.Errorf("%w: missing jti", ErrInvalidToken)
	}
	expiresAt := time.Now().Add(s.tokenTTL)
	if exp, ok := claims["exp"].(float64); ok {
		expiresAt = time.Unix(int64(exp), 0)
	}
	s.revocations.Revoke(jti, expiresAt)

	userID, _ := claims["user_id"].(string)
	s.logger.Info("user signed out", zap.String("user_id", userID))
	s.notify(SessionSignedOut, userID)
	return nil
}

// CurrentUser loads the user a validated session belongs to.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session user: %w", err)
	}
	return user, nil
}

func (s *AuthService) issue(user *models.User) (*Session, error) {
	now := time.Now()
	expiresAt := now.Add(s.tokenTTL)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"jti":     uuid.New().String(),
		"exp":     expiresAt.Unix(),
		"iat":     now.Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &Session{
		Token:     tokenString,
		ExpiresAt: time.Unix(expiresAt.Unix(), 0).UTC(),
		User:      user,
	}, nil
}

// ValidateToken parses and validates a JWT token, returning the claims if
// it is well-formed, correctly signed, unexpired and not revoked.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		s.logger.Debug("token validation error", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if jti, _ := claims["jti"].(string); jti != "" && s.revocations.IsRevoked(jti) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, ErrTokenRevoked)
	}
	return claims, nil
}
