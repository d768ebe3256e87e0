package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Error kinds. Every *Error unwraps to one of these.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
)

// Error is a domain failure carrying a stable code for API clients
type Error struct {
	Kind    error
	Code    string
	Message string
	Count   int64 // referencing rows for conflicts
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func notFound(code, message string) *Error {
	return &Error{Kind: ErrNotFound, Code: code, Message: message}
}

func invalid(code, message string) *Error {
	return &Error{Kind: ErrValidation, Code: code, Message: message}
}

func conflict(code, message string, count int64) *Error {
	return &Error{Kind: ErrConflict, Code: code, Message: message, Count: count}
}

func errNoFields() *Error {
	return invalid("NO_FIELDS_TO_UPDATE", "No fields to update")
}

func errCustomerNotFound() *Error {
	return notFound("CUSTOMER_NOT_FOUND", "Customer not found")
}

func errTemplateNotFound() *Error {
	return notFound("TEMPLATE_NOT_FOUND", "Measurement template not found")
}

func errMeasurementNotFound() *Error {
	return notFound("MEASUREMENT_NOT_FOUND", "Measurement not found")
}

func errOrderNotFound() *Error {
	return notFound("ORDER_NOT_FOUND", "Order not found")
}

func errPaymentNotFound() *Error {
	return notFound("PAYMENT_NOT_FOUND", "Payment not found")
}

func errStaffNotFound() *Error {
	return notFound("STAFF_NOT_FOUND", "Staff member not found")
}

func errSampleNotFound() *Error {
	return notFound("SAMPLE_NOT_FOUND", "Sample not found")
}

// translate maps gorm errors onto domain errors, keeping anything else as is
func translate(err error, missing func() *Error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return missing()
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return conflict("DUPLICATE_RECORD", "Record already exists", 0)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return invalid("INVALID_REFERENCE", "Referenced record does not exist")
	default:
		return fmt.Errorf("database error: %w", err)
	}
}
