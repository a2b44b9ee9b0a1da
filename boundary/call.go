package boundary

import (
	stderrors "errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	uniffi "github.com/eigerco/uniffi-go"
	"github.com/eigerco/uniffi-go/convert"
	"github.com/eigerco/uniffi-go/wire"
)

// Call status codes. Mirrored by every foreign-language runtime; changing a
// value is a breaking protocol change.
const (
	CallSuccess         int8 = 0
	CallError           int8 = 1 // declared error, lowered into ErrorBuf
	CallUnexpectedError int8 = 2 // contained panic, message in ErrorBuf
)

// CallStatus is the out-parameter a boundary entry point fills to tell the
// foreign caller how the call ended. On CallError the buffer holds the
// declared error's encoding; on CallUnexpectedError it holds a message
// string. Either way the foreign side owns the buffer and must destroy it.
type CallStatus struct {
	Code     int8
	ErrorBuf wire.Buffer
}

// statusTag namespaces the converters used for the status buffer itself.
type statusTag struct{ uniffi.NamespaceTag }

var (
	panicHookOnce sync.Once
	panicHook     func(recovered any)
)

// InstallPanicHook registers the process-wide panic reporter. It is meant
// to run once at process start; the hook lives for the process and there is
// no teardown. Later calls are no-ops.
func InstallPanicHook(hook func(recovered any)) {
	panicHookOnce.Do(func() {
		panicHook = hook
	})
}

// Call runs a boundary call body with panic containment. The body's result
// is returned to be handed across; any failure is recorded in status so the
// call frame returns normally no matter what happened inside.
//
// Call is for signatures with no declared error type: an error return here
// means the body broke its own contract, so it is reported the same way a
// panic is.
func Call[R any](status *CallStatus, fn func() (R, error)) (result R) {
	defer containPanic(status)

	status.Code = CallSuccess
	result, err := fn()
	if err != nil {
		var zero R
		result = zero
		status.Code = CallUnexpectedError
		status.ErrorBuf = lowerMessage(fmt.Sprintf("unexpected error: %v", err))
		Logger().Error("undeclared error at boundary", zap.Error(err))
	}
	return result
}

// CallWithError runs a boundary call body whose signature declares the
// error type E. A returned error is recovered to E and lowered into the
// status buffer for the foreign bindings to reconstruct; panics are
// contained as in Call.
func CallWithError[R any, E error, C uniffi.FfiConverter[E, wire.Buffer]](conv C, status *CallStatus, fn func() (R, error)) (result R) {
	defer containPanic(status)

	status.Code = CallSuccess
	result, err := fn()
	if err != nil {
		var zero R
		result = zero
		status.Code = CallError
		status.ErrorBuf = LowerError(conv, err)
	}
	return result
}

// LowerError recovers the declared error type E from err and lowers it.
//
// A failed recovery means code generation or linking produced an error of
// the wrong declared type for this call site. Lowering the value we do have
// could hand the foreign side a representation it never agreed to, so this
// is a fatal defect: the process terminates immediately.
func LowerError[E error, C uniffi.FfiConverter[E, wire.Buffer]](conv C, err error) wire.Buffer {
	var declared E
	if !stderrors.As(err, &declared) {
		Logger().Fatal("error type at boundary does not match declared type",
			zap.String("go_type", fmt.Sprintf("%T", err)),
			zap.Error(err))
	}
	return conv.Lower(declared)
}

func containPanic(status *CallStatus) {
	r := recover()
	if r == nil {
		return
	}
	if panicHook != nil {
		panicHook(r)
	}
	Logger().Error("panic contained at boundary", zap.Any("panic", r))
	status.Code = CallUnexpectedError
	status.ErrorBuf = lowerMessage(fmt.Sprintf("%v", r))
}

func lowerMessage(msg string) wire.Buffer {
	// panic values can carry arbitrary bytes; the status buffer must stay
	// a valid string for the foreign side
	msg = strings.ToValidUTF8(msg, "�")
	return convert.String[statusTag]{}.Lower(msg)
}
