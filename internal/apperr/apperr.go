// Package apperr задает общую таксономию ошибок приложения.
// Хранилища оборачивают свои ошибки в эти sentinel-значения (%w),
// а HTTP-слой по errors.Is переводит их в статус-коды.
package apperr

import "errors"

var (
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("already exists")
	ErrNotFound     = errors.New("not found")
)
