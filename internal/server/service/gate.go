package service

import "github.com/iudanet/bookshelf/internal/server/session"

// authorize - проверка доступа для операций, требующих личность.
// Вызывается первой строкой операции, до любых обращений к коллабораторам.
func authorize(s *session.Session) (string, error) {
	if s == nil || s.AccountID == "" {
		return "", ErrUnauthenticated
	}
	return s.AccountID, nil
}
