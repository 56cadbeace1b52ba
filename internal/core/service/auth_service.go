package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/aviiiii01/AI-Workflow/internal/api/metrics"
	"github.com/aviiiii01/AI-Workflow/internal/core/domain"
	"github.com/aviiiii01/AI-Workflow/internal/core/ports"
)

// AuthService implements registration, login, and bearer-token identity
// resolution. It is the only gate in front of workflow operations.
type AuthService struct {
	repo       ports.UserRepository
	tokens     *TokenService
	bcryptCost int
	log        zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens *TokenService, bcryptCost int, log zerolog.Logger) *AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{repo: repo, tokens: tokens, bcryptCost: bcryptCost, log: log}
}

func (s *AuthService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}

	// The pre-check above races with concurrent registrations; the unique
	// index on email is what actually guarantees one account per address.
	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	metrics.RegistrationsTotal.Inc()
	s.log.Info().Int64("user_id", created.ID).Msg("user registered")
	return created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Same outcome as a wrong password so callers cannot probe
			// which addresses are registered.
			metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Email)
	if err != nil {
		return "", nil, err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	s.log.Info().Int64("user_id", user.ID).Msg("login succeeded")
	return token, user, nil
}

func (s *AuthService) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	subject, err := s.tokens.Verify(token)
	if err != nil {
		metrics.TokenRejectionsTotal.WithLabelValues(rejectionReason(err)).Inc()
		s.log.Debug().Err(err).Msg("token rejected")
		return nil, domain.ErrUnauthenticated
	}

	user, err := s.repo.FindByEmail(ctx, subject)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Token outlived its account. No delete-user operation exists
			// today, but the gate must still fail closed.
			metrics.TokenRejectionsTotal.WithLabelValues(rejectionReason(domain.ErrTokenUnknownUser)).Inc()
			s.log.Warn().Err(domain.ErrTokenUnknownUser).Msg("token rejected")
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}
	return user, nil
}

// rejectionReason maps internal token sentinels to a metrics label.
func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrTokenExpired):
		return "expired"
	case errors.Is(err, domain.ErrTokenMalformed):
		return "malformed"
	case errors.Is(err, domain.ErrTokenSignature):
		return "bad_signature"
	case errors.Is(err, domain.ErrTokenEmptySubject):
		return "empty_subject"
	case errors.Is(err, domain.ErrTokenUnknownUser):
		return "unknown_user"
	default:
		return "other"
	}
}
