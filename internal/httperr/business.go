package httperr

import "errors"

type Kind string

const (
	KindValidation   Kind = "validation"
	KindNotFound     Kind = "not_found"
	KindConstraint   Kind = "constraint_violation"
	KindReference    Kind = "reference"
	KindConflict     Kind = "conflict"
	KindInvalidState Kind = "invalid_state"
)

// BusinessError is the single error type the domain hands back to the
// request boundary. Fields maps a form field to its message.
type BusinessError struct {
	Kind    Kind
	Code    string
	Message string
	Fields  map[string]string
}

func (e *BusinessError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

func ErrBusiness(code string) error {
	return &BusinessError{Kind: KindInvalidState, Code: code}
}

func ErrInvalidState(code, message string) error {
	return &BusinessError{Kind: KindInvalidState, Code: code, Message: message}
}

func ErrValidation(fields map[string]string) error {
	return &BusinessError{
		Kind:    KindValidation,
		Code:    "validation_error",
		Message: "Error de validación",
		Fields:  fields,
	}
}

func ErrNotFound(message string) error {
	return &BusinessError{Kind: KindNotFound, Code: "not_found", Message: message}
}

func ErrConstraint(field, message string) error {
	return &BusinessError{
		Kind:    KindConstraint,
		Code:    "constraint_violation",
		Message: message,
		Fields:  map[string]string{field: message},
	}
}

func ErrReference(field, message string) error {
	return &BusinessError{
		Kind:    KindReference,
		Code:    "reference_error",
		Message: message,
		Fields:  map[string]string{field: message},
	}
}

func ErrConflict(message string) error {
	return &BusinessError{Kind: KindConflict, Code: "conflict", Message: message}
}

func As(err error) (*BusinessError, bool) {
	var be *BusinessError
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}

func IsKind(err error, kind Kind) bool {
	be, ok := As(err)
	return ok && be.Kind == kind
}

func IsBusiness(err error, code string) bool {
	be, ok := As(err)
	return ok && be.Code == code
}

// FieldErrors collects per-field messages; the first message for a field wins.
type FieldErrors map[string]string

func (f FieldErrors) Add(field, message string) {
	if _, ok := f[field]; !ok {
		f[field] = message
	}
}

func (f FieldErrors) Err() error {
	if len(f) == 0 {
		return nil
	}
	return ErrValidation(f)
}
