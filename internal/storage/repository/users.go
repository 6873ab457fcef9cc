package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/streamora/internal/models"
)

// ErrUserNotFound возвращается, когда пользователь с указанным username отсутствует.
var ErrUserNotFound = errors.New("user not found")

// RegisterUser сохраняет нового пользователя и возвращает его uid.
func (s *Storage) RegisterUser(ctx context.Context, user models.User) (string, error) {
	const op = "storage.RegisterUser"

	var uid string
	err := s.DB.QueryRowContext(ctx, `
        INSERT INTO users (name, username, password_hash, role)
        VALUES ($1, $2, $3, $4)
        RETURNING uid`,
		user.Name, user.Username, user.PasswordHash, user.Role).Scan(&uid)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return uid, nil
}

// GetUserByUsername возвращает пользователя по username без учёта регистра.
func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	const op = "storage.GetUserByUsername"

	var user models.User
	err := s.DB.QueryRowContext(ctx, `
        SELECT uid, name, username, password_hash, role
        FROM users
        WHERE LOWER(username) = LOWER($1)`,
		username).Scan(&user.UID, &user.Name, &user.Username, &user.PasswordHash, &user.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &user, nil
}

// ListUsers возвращает краткие сведения обо всех зарегистрированных пользователях.
func (s *Storage) ListUsers(ctx context.Context) ([]models.UserSummary, error) {
	const op = "storage.ListUsers"

	rows, err := s.DB.QueryContext(ctx, `
        SELECT uid, name, username, role
        FROM users
        ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []models.UserSummary
	for rows.Next() {
		var u models.UserSummary
		if err := rows.Scan(&u.UID, &u.Name, &u.Username, &u.Role); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
