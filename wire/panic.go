package wire

import (
	"errors"
	"fmt"
	"runtime/debug"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// ErrPanic is wrapped by errors returned from boundary calls that panicked
// after InitPanicHandler was called.
var ErrPanic = errors.New("wire: recovered panic")

var (
	panicOnce   sync.Once
	panicLogger atomic.Pointer[zap.Logger]
)

// InitPanicHandler makes boundary calls recover from panics, log them with
// their stack to l and return an error wrapping ErrPanic. Only the first
// call has an effect. Until it is called panics propagate to the caller.
func InitPanicHandler(l *zap.Logger) {
	panicOnce.Do(func() {
		if l == nil {
			l = zap.NewNop()
		}
		panicLogger.Store(l)
	})
}

func recoverPanic(err *error) {
	a := recover()
	if a == nil {
		return
	}
	l := panicLogger.Load()
	if l == nil {
		panic(a)
	}
	l.Error("panic in boundary call",
		zap.Any("panic", a),
		zap.ByteString("stack", debug.Stack()),
	)
	*err = fmt.Errorf("%w: %v", ErrPanic, a)
}
