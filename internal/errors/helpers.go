package errors

import (
	"errors"
)

// As is errors.As narrowed to *Error
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is forwards to the standard library
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// coded returns the outermost *Error in err's chain
func coded(err error) (*Error, bool) {
	var e *Error
	if err == nil || !errors.As(err, &e) {
		return nil, false
	}
	return e, true
}

// GetCode extracts the error code from an error.
// Uncoded errors are reported as internal.
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}
	if e, ok := coded(err); ok {
		return e.Code
	}
	return CodeInternal
}

// GetMeta returns the metadata of the outermost coded error
func GetMeta(err error) map[string]any {
	if e, ok := coded(err); ok {
		return e.Meta
	}
	return nil
}

// GetMessage extracts the user-facing message from an error
func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	if e, ok := coded(err); ok {
		return e.Message
	}
	return err.Error()
}

// RoomID returns the room an error was tagged with, if any
func RoomID(err error) (string, bool) {
	id, ok := GetMeta(err)[MetaRoomID].(string)
	return id, ok
}

// Code predicates

func IsNotFound(err error) bool { return GetCode(err) == CodeNotFound }
func IsInvalidArgument(err error) bool { return GetCode(err) == CodeInvalidArgument }
func IsFailedPrecondition(err error) bool { return GetCode(err) == CodeFailedPrecondition }
func IsOutOfRange(err error) bool { return GetCode(err) == CodeOutOfRange }
func IsInternal(err error) bool { return GetCode(err) == CodeInternal }
func IsUnavailable(err error) bool { return GetCode(err) == CodeUnavailable }
