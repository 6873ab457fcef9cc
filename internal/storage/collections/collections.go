// Package collections реализует типизированные репозитории поверх
// key/value хранилища. Раскладка ключей повторяет клиентское хранилище
// Streamora: одна именованная коллекция — один JSON-блоб.
//
// Чтение при ошибке хранилища деградирует до пустой коллекции с warn
// в логе, запись возвращает ошибку вызывающему. Все операции
// read-modify-write без блокировок: последняя запись побеждает.
package collections

// Ключи коллекций в хранилище.
const (
	videosKey        = "streamora_videos"
	notificationsKey = "streamora_notifications"
	monRequestsKey   = "streamora_mon_requests"
	payoutsKey       = "streamora_payout_requests"
	userStatsKey     = "streamora_user_stats"
	siteEventKey     = "streamora_site_event"
	subscriptionsKey = "streamora_subscriptions"
)
