package errors

import (
	"fmt"
	"strings"
)

// Phase indicates which side of the boundary the failure occurred on
type Phase string

const (
	PhaseLower    Phase = "lower"    // native to foreign
	PhaseLift     Phase = "lift"     // foreign to native
	PhaseRead     Phase = "read"     // cursor reads inside compound decoding
	PhaseVersion  Phase = "version"  // generator/runtime token checks
	PhaseBoundary Phase = "boundary" // call status handling at the FFI edge
)

// Kind categorizes the error
type Kind string

const (
	KindUnderflow      Kind = "underflow"
	KindTrailingBytes  Kind = "trailing_bytes"
	KindInvalidUTF8    Kind = "invalid_utf8"
	KindInvalidEnum    Kind = "invalid_enum"
	KindInvalidVariant Kind = "invalid_variant"
	KindInvalidData    Kind = "invalid_data"
	KindOverflow       Kind = "overflow"
	KindNegativeLength Kind = "negative_length"
	KindVersionSkew    Kind = "version_skew"
	KindPanic          Kind = "panic"
)

// Error is the structured error type used throughout the runtime
type Error struct {
	Value   any
	Cause   error
	Phase   Phase
	Kind    Kind
	GoType  string
	FfiType string
	Detail  string
	Path    []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.GoType != "" || e.FfiType != "" {
		b.WriteString(": ")
		if e.GoType != "" && e.FfiType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
			b.WriteString(", FFI type ")
			b.WriteString(e.FfiType)
		} else if e.GoType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
		} else {
			b.WriteString("FFI type ")
			b.WriteString(e.FfiType)
		}
	}

	if e.Detail != "" {
		if e.GoType != "" || e.FfiType != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// IsDecodeError reports whether err is a recoverable decode failure, i.e. a
// structured error raised while lifting or reading untrusted foreign bytes.
func IsDecodeError(err error) bool {
	e, ok := err.(*Error)
	if !ok {
		return false
	}
	return e.Phase == PhaseLift || e.Phase == PhaseRead
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// GoType sets the Go type name
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// FfiType sets the FFI representation name
func (b *Builder) FfiType(t string) *Builder {
	b.err.FfiType = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// Underflow creates a buffer underflow error: a read needed more bytes than
// the cursor had remaining.
func Underflow(remaining, need int) *Error {
	return &Error{
		Phase:  PhaseRead,
		Kind:   KindUnderflow,
		Detail: fmt.Sprintf("not enough bytes remaining in buffer (%d < %d)", remaining, need),
	}
}

// TrailingBytes creates an error for unconsumed bytes after a strict-length
// single-value decode.
func TrailingBytes(n int) *Error {
	return &Error{
		Phase:  PhaseLift,
		Kind:   KindTrailingBytes,
		Detail: fmt.Sprintf("%d junk bytes left in buffer after lifting", n),
	}
}

// InvalidUTF8 creates an invalid UTF-8 error
func InvalidUTF8(phase Phase, path []string, data []byte) *Error {
	preview := data
	if len(preview) > 32 {
		preview = preview[:32]
	}
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidUTF8,
		Path:   path,
		Detail: fmt.Sprintf("invalid UTF-8 sequence: %x", preview),
	}
}

// InvalidDiscriminant creates an invalid discriminant error for variants/enums
func InvalidDiscriminant(phase Phase, path []string, disc uint32, maxValid uint32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidVariant,
		Path:   path,
		Detail: fmt.Sprintf("discriminant %d out of range (max %d)", disc, maxValid),
		Value:  disc,
	}
}

// InvalidEnum creates an invalid enum value error
func InvalidEnum(phase Phase, path []string, value any, enumType string) *Error {
	return &Error{
		Phase:   phase,
		Kind:    KindInvalidEnum,
		Path:    path,
		FfiType: enumType,
		Detail:  fmt.Sprintf("invalid enum value %v for %s", value, enumType),
		Value:   value,
	}
}

// NegativeLength creates an error for a negative length prefix received from
// the foreign side.
func NegativeLength(path []string, length int32) *Error {
	return &Error{
		Phase:  PhaseRead,
		Kind:   KindNegativeLength,
		Path:   path,
		Detail: fmt.Sprintf("negative length prefix %d", length),
		Value:  length,
	}
}

// Overflow creates an overflow error
func Overflow(phase Phase, path []string, value any, targetType string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOverflow,
		GoType: targetType,
		Path:   path,
		Detail: fmt.Sprintf("value %v overflows %s", value, targetType),
		Value:  value,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
	}
}

// VersionSkew creates a version token mismatch error for the load-time
// recheck. The build-time gate should have made this unreachable.
func VersionSkew(runtimeToken, generatedToken, classification string) *Error {
	detail := fmt.Sprintf("generated scaffolding targets protocol %q but the linked runtime is %q", generatedToken, runtimeToken)
	if classification != "" {
		detail += " (" + classification + ")"
	}
	return &Error{
		Phase:  PhaseVersion,
		Kind:   KindVersionSkew,
		Detail: detail,
	}
}

// Panic creates a contained-panic error reported back over the boundary
func Panic(recovered any) *Error {
	return &Error{
		Phase:  PhaseBoundary,
		Kind:   KindPanic,
		Detail: fmt.Sprintf("%v", recovered),
		Value:  recovered,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
