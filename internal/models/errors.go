package models

type ErrorKind string

const (
	ErrKindValidation ErrorKind = "validation"
	ErrKindConfig     ErrorKind = "config"
	ErrKindUpstream   ErrorKind = "upstream"
)

// SearchError carries everything the handler needs to build a failure
// envelope: the kind picks the HTTP status, Fallback and Upstream fill the
// optional envelope fields.
type SearchError struct {
	Kind     ErrorKind
	Message  string
	Fallback string
	Upstream string
	Err      error
}

func (e *SearchError) Error() string {
	return e.Message
}

func (e *SearchError) Unwrap() error {
	return e.Err
}
