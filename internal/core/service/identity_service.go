package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/Jordanjay551/BitesNearU/internal/core/domain"
	"github.com/Jordanjay551/BitesNearU/internal/core/ports"
)

// IdentityService implements registration, sign-in and the session pointer.
//
// Credentials are stored and compared as plain values. That is the
// documented behavior of the system being ported; it has no backend trust
// boundary, and hashing would change observable state.
type IdentityService struct {
	store     ports.Store
	log       zerolog.Logger
	jwtSecret string
	tokenTTL  time.Duration
}

func NewIdentityService(store ports.Store, log zerolog.Logger, jwtSecret string, tokenTTL time.Duration) *IdentityService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &IdentityService{store: store, log: log, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

func (s *IdentityService) Register(ctx context.Context, email, password, name string) (*ports.AuthResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	users, err := s.store.Users(ctx)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	for _, u := range users {
		if u.Email == email {
			return nil, domain.ErrEmailTaken
		}
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = localPart(email)
	}

	user := domain.User{
		Name:   name,
		Email:  email,
		Pass:   password,
		Avatar: domain.DefaultAvatar,
	}
	users = append(users, user)
	if err := s.store.SaveUsers(ctx, users); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	if err := s.store.SaveSession(ctx, &domain.Session{Email: email}); err != nil {
		return nil, fmt.Errorf("register: activate session: %w", err)
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	s.log.Info().Str("email", email).Msg("user registered")
	return &ports.AuthResult{Token: token, User: user}, nil
}

func (s *IdentityService) SignIn(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	users, err := s.store.Users(ctx)
	if err != nil {
		return nil, fmt.Errorf("sign in: %w", err)
	}
	for _, u := range users {
		if u.Email == email && u.Pass == password {
			if err := s.store.SaveSession(ctx, &domain.Session{Email: email}); err != nil {
				return nil, fmt.Errorf("sign in: activate session: %w", err)
			}
			token, err := s.generateToken(u)
			if err != nil {
				return nil, fmt.Errorf("sign in: %w", err)
			}
			s.log.Info().Str("email", email).Msg("user signed in")
			return &ports.AuthResult{Token: token, User: u}, nil
		}
	}
	return nil, domain.ErrInvalidCredentials
}

func (s *IdentityService) SignOut(ctx context.Context) error {
	if err := s.store.SaveSession(ctx, nil); err != nil {
		return fmt.Errorf("sign out: %w", err)
	}
	return nil
}

func (s *IdentityService) Current(ctx context.Context) (*domain.User, error) {
	sess, err := s.store.Session(ctx)
	if err != nil {
		return nil, fmt.Errorf("current user: %w", err)
	}
	if sess == nil {
		return nil, domain.ErrNotAuthenticated
	}

	users, err := s.store.Users(ctx)
	if err != nil {
		return nil, fmt.Errorf("current user: %w", err)
	}
	for i := range users {
		if users[i].Email == sess.Email {
			return &users[i], nil
		}
	}
	return nil, domain.ErrNotAuthenticated
}

func (s *IdentityService) SetAvatar(ctx context.Context, avatar string) (*domain.User, error) {
	if !domain.ValidAvatar(avatar) {
		return nil, fmt.Errorf("set avatar: %q is not a selectable avatar", avatar)
	}

	sess, err := s.store.Session(ctx)
	if err != nil {
		return nil, fmt.Errorf("set avatar: %w", err)
	}
	if sess == nil {
		return nil, domain.ErrNotAuthenticated
	}

	users, err := s.store.Users(ctx)
	if err != nil {
		return nil, fmt.Errorf("set avatar: %w", err)
	}
	for i := range users {
		if users[i].Email == sess.Email {
			users[i].Avatar = avatar
			if err := s.store.SaveUsers(ctx, users); err != nil {
				return nil, fmt.Errorf("set avatar: %w", err)
			}
			return &users[i], nil
		}
	}
	return nil, domain.ErrNotAuthenticated
}

func (s *IdentityService) generateToken(user domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.Email,
		"name": user.Name,
		"exp":  time.Now().Add(s.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// localPart returns the part of an email before the '@', used as the
// fallback display name at sign-up.
func localPart(email string) string {
	if i := strings.Index(email, "@"); i > 0 {
		return email[:i]
	}
	return email
}
