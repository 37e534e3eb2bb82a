// Package cerrors defines the error taxonomy from spec.md §7 as a single
// tagged type, the way the teacher codebase folds its error taxonomy into
// *IndexingError rather than one Go type per kind.
package cerrors

import "fmt"

// Kind is one of the taxonomy members from spec.md §7. It names a kind of
// failure, not a Go type: every CompileError carries exactly one Kind.
type Kind string

const (
	KindBadResourcePath      Kind = "bad_resource_path"
	KindInvalidConfiguration Kind = "invalid_configuration"
	KindInvalidFilePath      Kind = "invalid_file_path"
	KindIO                   Kind = "io_error"
	KindParse                Kind = "parse_error"
	KindPNG                  Kind = "png_error"
	KindArchive              Kind = "archive_error"
	// KindConfig is a startup-time kind (malformed tool config, package-id
	// map, or type-table override). It never marks a single input failed;
	// it aborts the whole run before any input is read. See SPEC_FULL.md §7.
	KindConfig Kind = "config_error"
)

// CompileError is the single concrete error type behind every taxonomy
// member. Source is the input path that was being compiled (empty for
// enumeration- or startup-phase errors); Op names the step that failed.
type CompileError struct {
	Kind       Kind
	Source     string
	Op         string
	Underlying error
}

func New(kind Kind, op string, err error) *CompileError {
	return &CompileError{Kind: kind, Op: op, Underlying: err}
}

// WithSource attaches the input path this error applies to and returns
// the receiver for chaining.
func (e *CompileError) WithSource(source string) *CompileError {
	e.Source = source
	return e
}

func (e *CompileError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("%s: %s %s: %v", e.Source, e.Kind, e.Op, e.Underlying)
	}
	return fmt.Sprintf("%s %s: %v", e.Kind, e.Op, e.Underlying)
}

// Unwrap supports errors.Is/errors.As against the wrapped cause.
func (e *CompileError) Unwrap() error {
	return e.Underlying
}

// Is reports whether target is a *CompileError with the same Kind,
// allowing callers to write errors.Is(err, cerrors.New(cerrors.KindPNG, "", nil)).
func (e *CompileError) Is(target error) bool {
	t, ok := target.(*CompileError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}
