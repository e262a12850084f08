package api

import "time"

// SignupRequest представляет запрос на регистрацию нового аккаунта
type SignupRequest struct {
	Username string `json:"username"` // имя пользователя
	Email    string `json:"email"`    // email, уникальный без учета регистра
	Password string `json:"password"` // пароль в открытом виде (только по TLS)
}

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse представляет ответ на успешные signup и login
type AuthResponse struct {
	ExpiresAt time.Time       `json:"expires_at"` // момент истечения токена
	Account   AccountResponse `json:"account"`
	Token     string          `json:"token"` // JWT для заголовка Authorization: Bearer
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // текст HTTP статуса
	Message string `json:"message,omitempty"` // безопасное для клиента сообщение
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status string `json:"status"`
}
