package storage

import "errors"

var (
	// ErrAuthNotFound локальной сессии нет
	ErrAuthNotFound = errors.New("authentication data not found")

	// ErrBucketMissing файл базы создан не этим клиентом или поврежден
	ErrBucketMissing = errors.New("storage bucket missing")
)
