package models

import "time"

// NotificationCategory категория системного уведомления.
type NotificationCategory string

// Возможные значения NotificationCategory.
const (
	CategoryPayment      NotificationCategory = "payment"
	CategoryMonetization NotificationCategory = "monetization"
	CategoryStrike       NotificationCategory = "strike"
	CategoryGeneral      NotificationCategory = "general"
)

// ValidCategory проверяет, что категория входит в допустимый набор.
func ValidCategory(c NotificationCategory) bool {
	switch c {
	case CategoryPayment, CategoryMonetization, CategoryStrike, CategoryGeneral:
		return true
	}
	return false
}

// Notification системное сообщение пользователю или всем сразу.
//
// Широковещательное уведомление (TargetUsername == "ALL") хранится одной
// записью и видно во входящих каждого пользователя. Флаг Read у такой
// записи общий: отметка о прочтении одним пользователем действует для всех.
// Это осознанное упрощение хранения, а не ошибка.
type Notification struct {
	ID             string               `json:"id"`
	TargetUsername string               `json:"targetUsername"`
	Category       NotificationCategory `json:"category"`
	Message        string               `json:"message"`
	CreatedAt      time.Time            `json:"createdAt"`
	Read           bool                 `json:"read"`
}

// DummySendNotification данные админской рассылки уведомления.
type DummySendNotification struct {
	Target   string `json:"target" validate:"required"`
	Category string `json:"category" validate:"required,oneof=payment monetization strike general"`
	Message  string `json:"message" validate:"required"`
}
