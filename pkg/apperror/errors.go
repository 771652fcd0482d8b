package apperror

import (
	"fmt"
	"net/http"
)

// Kind is an abstract error taxonomy independent of the specific error
// code, letting callers (middleware, metrics, retry policy) branch on the
// class of failure without enumerating every Code.
type Kind string

const (
	KindValidation     Kind = "VALIDATION"
	KindAuthentication Kind = "AUTHENTICATION"
	KindAuthorization  Kind = "AUTHORIZATION"
	KindConflict       Kind = "CONFLICT"
	KindNotFound       Kind = "NOT_FOUND"
	KindRateLimited    Kind = "RATE_LIMITED"
	KindInternal       Kind = "INTERNAL"
	KindUnavailable    Kind = "UNAVAILABLE"
)

// AppError is a structured error that maps to HTTP responses. MessageRU
// carries the Russian-language counterpart surfaced to dashboard users
// alongside the English Message, per the bilingual error contract.
type AppError struct {
	Code       string `json:"error_code"`
	Kind       Kind   `json:"kind"`
	Message    string `json:"message"`
	MessageRU  string `json:"message_ru,omitempty"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, kind Kind, message, messageRU string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Kind:       kind,
		Message:    message,
		MessageRU:  messageRU,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, kind Kind, message, messageRU string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Kind:       kind,
		Message:    message,
		MessageRU:  messageRU,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Security & Authentication (SEC) ----

func ErrInvalidToken() *AppError {
	return New("SEC_001", KindAuthentication, "Invalid authentication token", "Неверный токен", http.StatusUnauthorized)
}

func ErrTimestampExpired() *AppError {
	return New("SEC_002", KindAuthentication, "Request timestamp expired", "Истек срок действия запроса", http.StatusForbidden)
}

func ErrNonceUsed() *AppError {
	return New("SEC_003", KindAuthentication, "Nonce has already been used", "Повторное использование запроса", http.StatusForbidden)
}

func ErrTeamLocked() *AppError {
	return New("SEC_004", KindAuthorization, "Team is locked due to repeated authentication failures", "Команда заблокирована из-за повторных ошибок аутентификации", http.StatusForbidden)
}

// ---- Payment Business Logic (PAY) ----

func ErrInvalidAmount() *AppError {
	return New("PAY_001", KindValidation, "Invalid amount", "Неверная сумма", http.StatusBadRequest)
}

func ErrDuplicateOrder() *AppError {
	return New("PAY_002", KindConflict, "Order ID already used for this team", "Заказ с таким ID уже существует", http.StatusConflict)
}

func ErrNotFound(entity string) *AppError {
	return New("PAY_003", KindNotFound, fmt.Sprintf("%s not found", entity), "Объект не найден", http.StatusNotFound)
}

func ErrInvalidTransition(from, to string) *AppError {
	return New("PAY_004", KindConflict, fmt.Sprintf("invalid transition from %s to %s", from, to), "Недопустимый переход статуса", http.StatusConflict)
}

func ErrPaymentExpired() *AppError {
	return New("PAY_005", KindConflict, "Payment has expired", "Истек срок платежа", http.StatusConflict)
}

func ErrAmountOutsideLimits() *AppError {
	return New("PAY_006", KindValidation, "Amount outside the team's allowed limits", "Сумма вне допустимых пределов", http.StatusUnprocessableEntity)
}

func ErrDailyLimitExceeded() *AppError {
	return New("PAY_007", KindConflict, "Team daily payment limit exceeded", "Превышен дневной лимит", http.StatusUnprocessableEntity)
}

func ErrRefundExceedsRefundable() *AppError {
	return New("PAY_008", KindValidation, "Refund amount exceeds refundable balance", "Сумма возврата превышает доступный остаток", http.StatusBadRequest)
}

func ErrCurrencyNotSupported(currency string) *AppError {
	return New("PAY_009", KindValidation, fmt.Sprintf("currency %s not supported for this team", currency), "Валюта не поддерживается", http.StatusBadRequest)
}

func ErrRuleDenied() *AppError {
	return New("PAY_010", KindAuthorization, "Operation denied by business rule", "Операция отклонена правилом", http.StatusForbidden)
}

func ErrRollbackNotAllowed(reason string) *AppError {
	return New("PAY_011", KindConflict, fmt.Sprintf("rollback not allowed: %s", reason), "Откат операции невозможен", http.StatusConflict)
}

func ErrRetryNotAllowed(reason string) *AppError {
	return New("PAY_012", KindConflict, fmt.Sprintf("retry not allowed: %s", reason), "Повтор операции невозможен", http.StatusConflict)
}

// ---- Authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", KindAuthentication, "Invalid credentials", "Неверные учетные данные", http.StatusUnauthorized)
}

func ErrTeamSlugExists() *AppError {
	return New("AUTH_002", KindConflict, "Team slug already exists", "Такой идентификатор команды уже занят", http.StatusConflict)
}

func ErrInvalidSession() *AppError {
	return New("AUTH_003", KindAuthentication, "Invalid or expired session", "Недействительная сессия", http.StatusUnauthorized)
}

func ErrTeamSuspended() *AppError {
	return New("AUTH_004", KindAuthorization, "Team account is suspended", "Команда приостановлена", http.StatusForbidden)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", KindRateLimited, "Rate limit exceeded", "Превышен лимит запросов", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", KindInternal, "Internal database error", "Внутренняя ошибка базы данных", http.StatusInternalServerError, err)
}

func ErrLockTimeout(err error) *AppError {
	return Wrap("SYS_002", KindUnavailable, "Lock acquisition timeout", "Не удалось получить блокировку", http.StatusServiceUnavailable, err)
}

func ErrEncryptionFailure(err error) *AppError {
	return Wrap("SYS_003", KindInternal, "Encryption service failure", "Ошибка сервиса шифрования", http.StatusInternalServerError, err)
}

func ErrIntegrityViolation(err error) *AppError {
	return Wrap("SYS_004", KindInternal, "Audit integrity check failed", "Нарушена целостность аудита", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", KindInternal, "Internal server error", "Внутренняя ошибка сервера", http.StatusInternalServerError, err)
}

// Validation returns a PAY_001-style validation error with a custom message.
func Validation(message string) *AppError {
	return New("PAY_001", KindValidation, message, "Ошибка валидации", http.StatusBadRequest)
}
