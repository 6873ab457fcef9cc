// Package records содержит generic-хелперы над kv.Store для работы
// с коллекциями, сериализованными в JSON одним блобом на коллекцию.
//
// Ошибки чтения (отсутствие ключа, испорченный JSON, недоступность
// хранилища) гасятся локально: вызывающий получает нулевое значение
// типа коллекции. Так поврежденная коллекция деградирует до пустой,
// а не роняет движок.
package records

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/magabrotheeeer/streamora/internal/storage/kv"
)

// Load читает и декодирует коллекцию. При любой ошибке возвращает
// нулевое значение T и саму ошибку — решать, логировать ли, вызывающему.
func Load[T any](ctx context.Context, store kv.Store, key string) (T, error) {
	var zero T
	raw, found, err := store.Get(ctx, key)
	if err != nil {
		return zero, err
	}
	if !found {
		return zero, nil
	}
	var result T
	if err := json.Unmarshal(raw, &result); err != nil {
		return zero, fmt.Errorf("records.Load: corrupt collection %q: %w", key, err)
	}
	return result, nil
}

// Store сериализует и сохраняет коллекцию целиком.
func Store[T any](ctx context.Context, store kv.Store, key string, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("records.Store: %w", err)
	}
	return store.Set(ctx, key, raw)
}

// UpsertBy заменяет первый элемент, удовлетворяющий match, либо
// добавляет запись в начало списка (самые свежие записи — первыми).
func UpsertBy[T any](list []T, match func(T) bool, record T) []T {
	for i := range list {
		if match(list[i]) {
			list[i] = record
			return list
		}
	}
	return append([]T{record}, list...)
}

// DeleteBy удаляет все элементы, удовлетворяющие match.
func DeleteBy[T any](list []T, match func(T) bool) []T {
	result := list[:0]
	for _, item := range list {
		if !match(item) {
			result = append(result, item)
		}
	}
	return result
}

// FindBy возвращает указатель на первый элемент, удовлетворяющий match,
// либо nil, если такого нет.
func FindBy[T any](list []T, match func(T) bool) *T {
	for i := range list {
		if match(list[i]) {
			return &list[i]
		}
	}
	return nil
}
