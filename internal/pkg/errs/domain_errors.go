package errs

import cr "github.com/cockroachdb/errors"

// Error kinds shared by every layer. Concrete sentinels carry one of these so
// transport code can map them without knowing each sentinel.
var (
	ErrNotFound           = New("not found")
	ErrConflict           = New("conflict")
	ErrInvalidState       = New("invalid state")
	ErrInvalidInterval    = New("invalid interval")
	ErrStorageUnavailable = New("storage unavailable")
	ErrValidation         = New("validation failed")
)

type kindError struct {
	msg  string
	kind error
}

func (e *kindError) Error() string { return e.msg }

// Is matches the kind only; two sentinels of the same kind stay distinct.
func (e *kindError) Is(target error) bool { return target == e.kind }

// Kind returns a new sentinel carrying the given kind.
func Kind(msg string, kind error) error {
	return &kindError{msg: msg, kind: kind}
}

// Translate replaces a low-level cause with a domain sentinel. The cause is kept
// as secondary detail for %+v output but does not take part in Is.
func Translate(cause, sentinel error, msg string) error {
	err := cr.Wrap(sentinel, msg)
	if cause == nil {
		return err
	}
	return cr.WithSecondaryError(err, cause)
}

// Message returns the text of the first kind sentinel in err's chain, or "" when there is none.
func Message(err error) string {
	var k *kindError
	if cr.As(err, &k) {
		return k.msg
	}
	return ""
}
