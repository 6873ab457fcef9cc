// Package kv определяет контракт низкоуровневого key/value хранилища
// коллекций. Каждая коллекция — один JSON-блоб под своим ключом,
// последняя запись побеждает, транзакций между коллекциями нет.
package kv

import "context"

// Store описывает методы доступа к значениям по ключу.
type Store interface {
	// Get возвращает значение и признак его наличия.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set сохраняет значение, перезаписывая предыдущее.
	Set(ctx context.Context, key string, value []byte) error
	// Del удаляет значение по ключу.
	Del(ctx context.Context, key string) error
}
