// Package renderrors defines the renderer's error taxonomy.
//
// Construction-time failures (context acquisition, shader compile/link,
// resource allocation, uniform lookup) are all treated as fatal: they
// indicate the host environment or a shader/variant mismatch, not a
// transient condition, so there is no retry path. Degenerate geometry and
// missing costumes are not errors at all; callers skip them silently.
package renderrors

import "fmt"

// Kind identifies which fatal-error category a Fatal wraps.
type Kind int

const (
	// KindContext covers failure to acquire a 2D or GPU rendering context.
	KindContext Kind = iota
	// KindShader covers shader compile or link failures.
	KindShader
	// KindResource covers texture/framebuffer/buffer allocation failures.
	KindResource
	// KindUniform covers uniform or attribute lookup failures.
	KindUniform
)

func (k Kind) String() string {
	switch k {
	case KindContext:
		return "context acquisition"
	case KindShader:
		return "shader compile/link"
	case KindResource:
		return "resource allocation"
	case KindUniform:
		return "uniform/attribute lookup"
	default:
		return "unknown"
	}
}

// Error wraps a fatal renderer error with its kind and an underlying cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// New builds a fatal Error of the given kind.
func New(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: cause}
}

// Fatal panics with err if non-nil. Construction-time and per-draw errors
// in this renderer are programming errors or unusable hosts, not
// recoverable conditions, so the teacher's chk(err) idiom is preserved
// verbatim: surface the message and crash rather than limp on.
func Fatal(err error) {
	if err != nil {
		panic(err)
	}
}

// FatalIf is Fatal with an inline kind/msg, for call sites that don't
// already have a *Error.
func FatalIf(cond bool, kind Kind, msg string) {
	if cond {
		panic(New(kind, msg, nil))
	}
}
