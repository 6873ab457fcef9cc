package models

import "time"

// RequestStatus статус заявки на монетизацию или выплату.
type RequestStatus string

// Возможные значения RequestStatus.
const (
	StatusPending  RequestStatus = "pending"
	StatusApproved RequestStatus = "approved"
	StatusRejected RequestStatus = "rejected"
)

// MonetizationRequest заявка создателя на монетизацию.
// На одного пользователя существует не более одной записи:
// повторная заявка перезаписывает предыдущую (upsert по username, не по id).
type MonetizationRequest struct {
	ID          string        `json:"id"`
	Username    string        `json:"username"`
	Name        string        `json:"name"`
	RequestedAt time.Time     `json:"requestedAt"`
	Status      RequestStatus `json:"status"`
}

// PayoutRequest заявка на выплату. Записей на пользователя может быть
// несколько; Amount фиксируется в момент создания и далее не меняется,
// даже если totalEarnings создателя изменится.
type PayoutRequest struct {
	ID          string        `json:"id"`
	Username    string        `json:"username"`
	Name        string        `json:"name"`
	Amount      float64       `json:"amount"`
	PayPalEmail string        `json:"paypalEmail"`
	RequestedAt time.Time     `json:"requestedAt"`
	Status      RequestStatus `json:"status"`
}

// DummyResolve решение админа по заявке.
type DummyResolve struct {
	Decision string `json:"decision" validate:"required,oneof=approved rejected"`
}
