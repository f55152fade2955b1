package contact

import "time"

// Status is the submission state shown to the visitor.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusSending Status = "sending"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// String implements fmt.Stringer.
func (s Status) String() string { return string(s) }

// Message is the visitor-facing text for the status, empty when nothing is shown.
func (s Status) Message() string {
	switch s {
	case StatusSuccess:
		return "Message sent successfully!"
	case StatusError:
		return "Something went wrong. Please try again."
	}
	return ""
}

// CanSubmit reports whether a submit may start from this status.
func (s Status) CanSubmit() bool { return s != StatusSending }

// Transition is one status change of a form.
type Transition struct {
	From Status
	To   Status
	// Err is the relay error behind a move to StatusError.
	Err error
	// Elapsed is how long the form was sending, set when it settles.
	Elapsed time.Duration
}
