package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/teamtrack/attendance-service/internal/attendance/domain"
	"github.com/teamtrack/attendance-service/internal/attendance/dto"
	apperr "github.com/teamtrack/attendance-service/internal/errors"
)

type UserService struct {
	repo         domain.UserRepository
	tokenService TokenGenerator
}

func NewUserService(repo domain.UserRepository, tokenService TokenGenerator) *UserService {
	return &UserService{
		repo:         repo,
		tokenService: tokenService,
	}
}

func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*domain.User, error) {
	byUsername, err := s.repo.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if byUsername != nil {
		return nil, apperr.ErrUsernameTaken
	}

	byEmail, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if byEmail != nil {
		return nil, apperr.ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	// The first registered account bootstraps the admin role.
	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		IsAdmin:      count == 0,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.TokenResponse, *domain.User, error) {
	user, err := s.repo.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, nil, err
	}

	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return nil, nil, apperr.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokenService.Generate(user)
	if err != nil {
		return nil, nil, err
	}

	return &dto.TokenResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt.UTC().Format(time.RFC3339),
	}, user, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

// CreateUser is the admin variant of Register: the admin flag comes from the
// input instead of the bootstrap rule.
func (s *UserService) CreateUser(ctx context.Context, input dto.CreateUserInput) (*domain.User, error) {
	byUsername, err := s.repo.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if byUsername != nil {
		return nil, apperr.ErrUsernameTaken
	}

	byEmail, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if byEmail != nil {
		return nil, apperr.ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		IsAdmin:      input.IsAdmin,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// ToggleAdmin flips the admin flag on the target user. Admins cannot demote
// themselves; that would allow a lone admin to lock everyone out.
func (s *UserService) ToggleAdmin(ctx context.Context, callerID, targetID string) (*domain.User, error) {
	if callerID == targetID {
		return nil, apperr.ErrSelfDemotion
	}

	user, err := s.repo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.ErrUserNotFound
	}

	if err := s.repo.SetAdmin(ctx, user.ID, !user.IsAdmin); err != nil {
		return nil, err
	}

	user.IsAdmin = !user.IsAdmin

	return user, nil
}
