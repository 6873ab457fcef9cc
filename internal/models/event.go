package models

import "time"

// SiteEvent активное тематическое событие площадки.
// В хранилище живет не более одной записи.
type SiteEvent struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Theme     string    `json:"theme"`
	Active    bool      `json:"active"`
	StartedAt time.Time `json:"startedAt"`
}

// DummySiteEvent данные запуска события.
type DummySiteEvent struct {
	Name  string `json:"name" validate:"required"`
	Theme string `json:"theme" validate:"required"`
}
