package errors

import (
	"errors"
	"fmt"
	"maps"
)

// Meta keys shared by the layout services. Handlers surface them to clients
// so a failing request can be tied back to the room or catalog entry.
const (
	MetaRoomID      = "room_id"
	MetaRoomType    = "room_type"
	MetaComponentID = "component_id"
	MetaElementID   = "element_id"
	MetaWall        = "wall"
	MetaFlag        = "flag"
)

// Error is a coded error with an optional cause and metadata
type Error struct {
	Code    Code           `json:"code"`
	Message string         `json:"message"`
	Cause   error          `json:"-"`
	Meta    map[string]any `json:"meta,omitempty"`
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error carrying the same code
func (e *Error) Is(target error) bool {
	var t *Error
	return errors.As(target, &t) && t.Code == e.Code
}

// WithMeta sets a metadata entry and returns the receiver
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any, 1)
	}
	e.Meta[key] = value
	return e
}

// WithMetaMap merges meta into the error's metadata
func (e *Error) WithMetaMap(meta map[string]any) *Error {
	for k, v := range meta {
		e.WithMeta(k, v)
	}
	return e
}

// WithRoom tags the error with the active room it concerns
func (e *Error) WithRoom(roomID string) *Error {
	return e.WithMeta(MetaRoomID, roomID)
}

// WithComponent tags the error with a catalog component id
func (e *Error) WithComponent(componentID string) *Error {
	return e.WithMeta(MetaComponentID, componentID)
}

// New creates an error with the given code and message
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates an error with a formatted message
func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap adds context to err. A coded cause keeps its code and metadata;
// anything else becomes internal.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var cause *Error
	if errors.As(err, &cause) {
		return &Error{Code: cause.Code, Message: message, Cause: err, Meta: maps.Clone(cause.Meta)}
	}
	return &Error{Code: CodeInternal, Message: message, Cause: err}
}

// Wrapf wraps an error with a formatted message
func Wrapf(err error, format string, args ...any) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps err under a new code, carrying over any metadata
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := &Error{Code: code, Message: message, Cause: err, Meta: map[string]any{}}
	var cause *Error
	if errors.As(err, &cause) {
		maps.Copy(wrapped.Meta, cause.Meta)
	}
	return wrapped
}

// WrapWithCodef wraps an error with a specific code and formatted message
func WrapWithCodef(err error, code Code, format string, args ...any) *Error {
	return WrapWithCode(err, code, fmt.Sprintf(format, args...))
}

// Constructors per code

func NotFound(message string) *Error { return New(CodeNotFound, message) }
func NotFoundf(format string, args ...any) *Error { return Newf(CodeNotFound, format, args...) }

func InvalidArgument(message string) *Error { return New(CodeInvalidArgument, message) }
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

func Internal(message string) *Error { return New(CodeInternal, message) }
func Internalf(format string, args ...any) *Error { return Newf(CodeInternal, format, args...) }

func Unavailable(message string) *Error { return New(CodeUnavailable, message) }
func Unavailablef(format string, args ...any) *Error {
	return Newf(CodeUnavailable, format, args...)
}

func FailedPrecondition(message string) *Error { return New(CodeFailedPrecondition, message) }
func FailedPreconditionf(format string, args ...any) *Error {
	return Newf(CodeFailedPrecondition, format, args...)
}

func OutOfRange(message string) *Error { return New(CodeOutOfRange, message) }
func OutOfRangef(format string, args ...any) *Error { return Newf(CodeOutOfRange, format, args...) }

func Unimplemented(message string) *Error { return New(CodeUnimplemented, message) }
func Unimplementedf(format string, args ...any) *Error {
	return Newf(CodeUnimplemented, format, args...)
}

// RoomNotActive reports a room id with no registered transform engine
func RoomNotActive(roomID string) *Error {
	return NotFoundf("room %s is not active", roomID).WithRoom(roomID)
}
