package appErrors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode - тип для кодов ошибок
type ErrorCode string

// AppError - основная структура ошибки приложения
type AppError struct {
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
	Err     error       `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Конструктор
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// С цепочкой ошибок
func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Вспомогательные методы
func (e *AppError) WithDetails(details interface{}) *AppError {
	e.Details = details
	return e
}

// Is - обертка над стандартной функцией errors.Is
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As - обертка над стандартной функцией errors.As
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// CodeOf возвращает код ошибки, если err — *AppError.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// Функции-помощники для ошибок генерации

// DependencyMissing - родительский набор ключей пуст или слишком мал
func DependencyMissing(entity, parent string, need, have int) *AppError {
	return New(CodeDependencyMissing,
		fmt.Sprintf("cannot generate %s: parent %s has %d rows, need at least %d", entity, parent, have, need)).
		WithDetails(map[string]interface{}{
			"entity": entity,
			"parent": parent,
			"need":   need,
			"have":   have,
		})
}

// UniquenessViolation - дубликат уникального значения
func UniquenessViolation(entity, field, value string) *AppError {
	return New(CodeUniquenessViolation,
		fmt.Sprintf("duplicate %s for %s: %q", field, entity, value)).
		WithDetails(map[string]interface{}{
			"entity": entity,
			"field":  field,
			"value":  value,
		})
}

// ConstraintViolation - сгенерированное значение вне допустимого домена
func ConstraintViolation(entity, constraint string) *AppError {
	return New(CodeConstraintViolation,
		fmt.Sprintf("%s violates constraint: %s", entity, constraint)).
		WithDetails(map[string]interface{}{
			"entity":     entity,
			"constraint": constraint,
		})
}

// EmptyDomain - выборка из пустого множества
func EmptyDomain(operation string) *AppError {
	return New(CodeEmptyDomain, fmt.Sprintf("%s: cannot sample from an empty set", operation))
}
