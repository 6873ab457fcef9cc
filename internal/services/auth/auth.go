// Package auth реализует регистрацию и вход пользователей.
// Админская учетная запись задается конфигурацией и не хранится в базе,
// поэтому вход сначала сверяется с ней и только потом с PostgreSQL.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/magabrotheeeer/streamora/internal/config"
	"github.com/magabrotheeeer/streamora/internal/lib/jwt"
	"github.com/magabrotheeeer/streamora/internal/lib/password"
	"github.com/magabrotheeeer/streamora/internal/models"
	"github.com/magabrotheeeer/streamora/internal/storage/repository"
)

// Ошибки уровня бизнес-логики аутентификации.
var (
	ErrHandleTaken        = errors.New("username already taken")
	ErrHandleReserved     = errors.New("username is reserved")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// UserRepository доступ к справочнику пользователей.
type UserRepository interface {
	RegisterUser(ctx context.Context, user models.User) (string, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.UserSummary, error)
}

// Service сервис аутентификации.
type Service struct {
	repo  UserRepository
	maker jwt.Maker
	admin config.AdminAccount
}

// New создает сервис аутентификации.
func New(repo UserRepository, maker jwt.Maker, admin config.AdminAccount) *Service {
	return &Service{repo: repo, maker: maker, admin: admin}
}

// Register создает нового пользователя с ролью user и возвращает его uid.
// Username, совпадающий с админским без учета регистра, занять нельзя.
func (s *Service) Register(ctx context.Context, req models.DummyRegister) (string, error) {
	const op = "services.auth.Register"

	if strings.EqualFold(req.Username, s.admin.AdminUsername) {
		return "", ErrHandleReserved
	}
	if _, err := s.repo.GetUserByUsername(ctx, req.Username); err == nil {
		return "", ErrHandleTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	hash, err := password.GetHash(req.Password)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	uid, err := s.repo.RegisterUser(ctx, models.User{
		Name:         req.Name,
		Username:     req.Username,
		PasswordHash: hash,
		Role:         models.RoleUser,
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return uid, nil
}

// Login проверяет учетные данные и выпускает JWT.
// Возвращает токен и сессию, которую он кодирует.
func (s *Service) Login(ctx context.Context, req models.DummyLogin) (string, *models.Session, error) {
	const op = "services.auth.Login"

	if strings.EqualFold(req.Username, s.admin.AdminUsername) {
		if req.Password != s.admin.AdminPassword {
			return "", nil, ErrInvalidCredentials
		}
		session := &models.Session{
			Username: s.admin.AdminUsername,
			Name:     s.admin.AdminName,
			Role:     models.RoleAdmin,
		}
		token, err := s.maker.GenerateToken(session.Username, session.Name, session.Role)
		if err != nil {
			return "", nil, fmt.Errorf("%s: %w", op, err)
		}
		return token, session, nil
	}

	user, err := s.repo.GetUserByUsername(ctx, req.Username)
	if errors.Is(err, repository.ErrUserNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := password.CompareHash(user.PasswordHash, req.Password); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	session := &models.Session{
		Username: user.Username,
		Name:     user.Name,
		Role:     user.Role,
	}
	token, err := s.maker.GenerateToken(session.Username, session.Name, session.Role)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}
	return token, session, nil
}

// ListUsers возвращает всех пользователей для админского интерфейса.
func (s *Service) ListUsers(ctx context.Context) ([]models.UserSummary, error) {
	const op = "services.auth.ListUsers"

	result, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
