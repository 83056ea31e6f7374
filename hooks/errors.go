package hooks

import (
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrHookOrder is wrapped by every *HookOrderError.
	ErrHookOrder = errors.New("hooks: hook order violation")

	// ErrUnmounted is returned when an operation targets an instance that is
	// no longer mounted.
	ErrUnmounted = errors.New("hooks: instance is not mounted")

	// ErrBroken is returned when an instance that hit a hook order violation
	// is asked to render again.
	ErrBroken = errors.New("hooks: instance is broken")

	// ErrUnmountDuringRender is returned when an instance is unmounted from
	// inside its own render function.
	ErrUnmountDuringRender = errors.New("hooks: cannot unmount an instance while it renders")

	// ErrHookOutsideRender is raised when a hook is called with a Scope that
	// is not currently rendering.
	ErrHookOutsideRender = errors.New("hooks: hook called outside of a render")

	// ErrPassLimit is returned by Flush when WithMaxPasses is set and the
	// queue did not drain within the limit.
	ErrPassLimit = errors.New("hooks: render pass limit exceeded")
)

// HookOrderError reports that a render asked for a different sequence of
// hooks than the previous render of the same instance.
type HookOrderError struct {
	Instance  uuid.UUID
	Component string
	// Position is the zero-based hook call index where the mismatch was found.
	Position int
	// Want is the kind recorded at Position, SlotNone if the previous render
	// had no hook there.
	Want SlotKind
	// Got is the kind requested at Position, SlotNone if the render ended
	// early.
	Got    SlotKind
	Reason string
}

func (e *HookOrderError) Error() string {
	msg := fmt.Sprintf("hook #%d: want %s, got %s", e.Position, e.Want, e.Got)
	if e.Reason != "" {
		msg += " (" + e.Reason + ")"
	}
	if e.Component != "" {
		return fmt.Sprintf("%s in %s: %s", ErrHookOrder, e.Component, msg)
	}
	return fmt.Sprintf("%s: %s", ErrHookOrder, msg)
}

func (e *HookOrderError) Unwrap() error {
	return ErrHookOrder
}

// RenderPanicError is a panic recovered from a component's render function.
type RenderPanicError struct {
	Instance   uuid.UUID
	Component  string
	Value      any
	StackTrace string
	Timestamp  time.Time
}

func (e *RenderPanicError) Error() string {
	return fmt.Sprintf("panic in %s render: %v", e.Component, e.Value)
}

// Unwrap exposes the panic value when it was an error.
func (e *RenderPanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// EffectPanicError is a panic recovered from an effect body or its cleanup.
type EffectPanicError struct {
	Instance  uuid.UUID
	Component string
	// Slot is the hook index of the effect.
	Slot       int
	Cleanup    bool
	Value      any
	StackTrace string
	Timestamp  time.Time
}

func (e *EffectPanicError) Error() string {
	phase := "effect"
	if e.Cleanup {
		phase = "effect cleanup"
	}
	return fmt.Sprintf("panic in %s %s #%d: %v", e.Component, phase, e.Slot, e.Value)
}

func (e *EffectPanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// CommitError wraps a failure reported by the Reconciler.
type CommitError struct {
	Instance uuid.UUID
	Target   Target
	Err      error
}

func (e *CommitError) Error() string {
	return fmt.Sprintf("commit to %q: %v", e.Target, e.Err)
}

func (e *CommitError) Unwrap() error {
	return e.Err
}

// CaptureStack returns the current call stack as a string, skipping the
// frames of CaptureStack and its caller.
func CaptureStack() string {
	const maxDepth = 32
	var pcs [maxDepth]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return ""
	}

	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for {
		frame, more := frames.Next()
		sb.WriteString(frame.Function)
		sb.WriteString("\n\t")
		sb.WriteString(frame.File)
		sb.WriteString(":")
		sb.WriteString(strconv.Itoa(frame.Line))
		sb.WriteString("\n")
		if !more {
			break
		}
	}
	return sb.String()
}
