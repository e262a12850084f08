package boltdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/bookshelf/internal/client/storage"
)

// в bucket хранится единственная сессия
var sessionKey = []byte("session")

// sessionBucket возвращает bucket сессии или ErrBucketMissing
func sessionBucket(tx *bbolt.Tx) (*bbolt.Bucket, error) {
	b := tx.Bucket(bucketAuth)
	if b == nil {
		return nil, fmt.Errorf("%w: %s", storage.ErrBucketMissing, bucketAuth)
	}
	return b, nil
}

// SaveAuth заменяет сохраненную сессию
func (s *Storage) SaveAuth(ctx context.Context, auth *storage.AuthData) error {
	raw, err := json.Marshal(auth)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		b, err := sessionBucket(tx)
		if err != nil {
			return err
		}
		return b.Put(sessionKey, raw)
	})
}

// GetAuth читает сохраненную сессию
func (s *Storage) GetAuth(ctx context.Context) (*storage.AuthData, error) {
	var auth storage.AuthData

	err := s.db.View(func(tx *bbolt.Tx) error {
		b, err := sessionBucket(tx)
		if err != nil {
			return err
		}
		raw := b.Get(sessionKey)
		if raw == nil {
			return storage.ErrAuthNotFound
		}
		// raw живет только внутри транзакции, Unmarshal копирует значения
		if err := json.Unmarshal(raw, &auth); err != nil {
			return fmt.Errorf("failed to decode session: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &auth, nil
}

// DeleteAuth удаляет сессию (logout)
func (s *Storage) DeleteAuth(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b, err := sessionBucket(tx)
		if err != nil {
			return err
		}
		if b.Get(sessionKey) == nil {
			return storage.ErrAuthNotFound
		}
		return b.Delete(sessionKey)
	})
}

// IsAuthenticated есть ли сессия с неистекшим токеном
func (s *Storage) IsAuthenticated(ctx context.Context) (bool, error) {
	auth, err := s.GetAuth(ctx)
	switch {
	case errors.Is(err, storage.ErrAuthNotFound):
		return false, nil
	case err != nil:
		return false, err
	}
	return !auth.Expired(s.now()), nil
}
