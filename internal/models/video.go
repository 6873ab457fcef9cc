package models

import "time"

// VideoType тип ролика.
type VideoType string

// Возможные значения VideoType.
const (
	VideoLong     VideoType = "long"
	VideoShort    VideoType = "short"
	VideoEmbedded VideoType = "embedded"
)

// Video запись о ролике. Сами медиаданные система не хранит,
// только метаданные и счетчики.
type Video struct {
	ID               string    `json:"id"`
	Type             VideoType `json:"type"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Tags             []string  `json:"tags"`
	ThumbnailURL     string    `json:"thumbnailUrl,omitempty"`
	VideoURL         string    `json:"videoUrl,omitempty"`
	EmbedURL         string    `json:"embedUrl,omitempty"`
	EmbedSource      string    `json:"embedSource,omitempty"`
	UploaderUsername string    `json:"uploaderUsername"`
	UploaderName     string    `json:"uploaderName"`
	Views            int64     `json:"views"`
	Likes            int64     `json:"likes"`
	Comments         []Comment `json:"comments"`
	IsPromoted       bool      `json:"isPromoted"`
	CreatedAt        time.Time `json:"createdAt"`
	Duration         int       `json:"duration,omitempty"`
}

// PromotableToHome ролик попадает в домашнюю ленту только будучи
// продвигаемым и имея превью.
func (v Video) PromotableToHome() bool {
	return (v.Type == VideoLong || v.Type == VideoEmbedded) && v.IsPromoted && v.ThumbnailURL != ""
}

// Comment комментарий под роликом.
type Comment struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// DummyVideo используется для приёма метаданных ролика из JSON-запроса.
type DummyVideo struct {
	ID           string   `json:"id,omitempty"`
	Type         string   `json:"type" validate:"required,oneof=long short embedded"`
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description"`
	Tags         []string `json:"tags"`
	ThumbnailURL string   `json:"thumbnail_url"`
	VideoURL     string   `json:"video_url"`
	EmbedURL     string   `json:"embed_url"`
	EmbedSource  string   `json:"embed_source" validate:"omitempty,oneof=youtube rumble"`
	IsPromoted   bool     `json:"is_promoted"`
	Duration     int      `json:"duration" validate:"min=0"`
}

// DummyComment текст нового комментария.
type DummyComment struct {
	Text string `json:"text" validate:"required"`
}
