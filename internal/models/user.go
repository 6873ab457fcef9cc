// Package models содержит доменные структуры платформы Streamora,
// а также вспомогательные типы для приёма данных из внешних источников (JSON-запросы).
package models

// Роли пользователей системы.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// BroadcastTarget сентинел-значение адресата уведомления "всем пользователям".
const BroadcastTarget = "ALL"

// User представляет зарегистрированного пользователя системы.
// Username — приватный уникальный ключ идентичности (без учета регистра),
// Name — публичное отображаемое имя.
type User struct {
	UID          string // Уникальный идентификатор пользователя
	Name         string // Публичное имя канала
	Username     string // Секретный username (уникальный, без учета регистра)
	PasswordHash string // Хэш пароля пользователя
	Role         string // Роль пользователя, admin или user
}

// UserSummary краткая карточка пользователя для админских списков.
type UserSummary struct {
	UID      string `json:"uid"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Session описывает эфемерную сессию, восстанавливаемую из JWT.
// Не сохраняется в хранилище, живет столько, сколько живет токен.
type Session struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// IsAdmin сообщает, принадлежит ли сессия привилегированной учетной записи.
func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// DummyRegister используется для приёма данных регистрации из JSON-запроса.
type DummyRegister struct {
	Name     string `json:"name" validate:"required"`
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
}

// DummyLogin используется для приёма данных входа из JSON-запроса.
type DummyLogin struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
