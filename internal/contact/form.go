package contact

import (
	"context"
	"sync"
	"time"
)

// Snapshot is a consistent view of a form for rendering.
type Snapshot struct {
	Values Submission
	Status Status
}

// Sending reports whether the submit control must be disabled.
func (s Snapshot) Sending() bool { return s.Status == StatusSending }

// Form is one instance of the contact form.
type Form struct {
	relay    Relay
	observer func(Transition)

	mu      sync.Mutex
	values  Submission
	website string
	status  Status
}

// FormOption configures a Form.
type FormOption func(*Form)

// WithObserver registers fn to be called, outside the form's lock, for every
// status transition.
func WithObserver(fn func(Transition)) FormOption {
	return func(f *Form) {
		f.observer = fn
	}
}

// NewForm creates an empty, idle form that submits through relay.
func NewForm(relay Relay, opts ...FormOption) *Form {
	f := &Form{
		relay:  relay,
		status: StatusIdle,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Set updates one field. Fields may be edited in any status, including
// while a submission is sending.
func (f *Form) Set(field Field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch field {
	case FieldName:
		f.values.Name = value
	case FieldEmail:
		f.values.Email = value
	case FieldMessage:
		f.values.Message = value
	case FieldHoneypot:
		f.website = value
	default:
		return ErrUnknownField
	}
	return nil
}

// Fill sets every field from in.
func (f *Form) Fill(in Input) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.values = in.Submission
	f.website = in.Website
}

// Values returns the current field values.
func (f *Form) Values() Submission {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values
}

// Status returns the current status.
func (f *Form) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// Snapshot returns values and status read together.
func (f *Form) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return Snapshot{Values: f.values, Status: f.status}
}

// HoneypotFilled reports whether the hidden field has been filled in.
func (f *Form) HoneypotFilled() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return Input{Website: f.website}.HoneypotFilled()
}

// Submit sends the current values to the relay and waits for the outcome.
//
// It returns ErrInFlight without sending while another submission of this
// form is pending, and a *RequiredFieldError without changing status when a
// required field is empty. Otherwise the form moves to sending, then to
// success (fields cleared) or error (fields kept); the returned error is the
// relay's.
func (f *Form) Submit(ctx context.Context) (Status, error) {
	return f.submit(ctx, nil)
}

// SubmitInput replaces every field with in and submits, as one step. While
// another submission is pending it returns ErrInFlight and leaves the
// fields untouched.
func (f *Form) SubmitInput(ctx context.Context, in Input) (Status, error) {
	return f.submit(ctx, &in)
}

func (f *Form) submit(ctx context.Context, in *Input) (Status, error) {
	f.mu.Lock()
	if !f.status.CanSubmit() {
		f.mu.Unlock()
		return StatusSending, ErrInFlight
	}
	if in != nil {
		f.values = in.Submission
		f.website = in.Website
	}
	if field, missing := f.values.missing(); missing {
		status := f.status
		f.mu.Unlock()
		return status, &RequiredFieldError{Field: field}
	}
	payload := f.values
	from := f.status
	f.status = StatusSending
	f.mu.Unlock()

	f.notify(Transition{From: from, To: StatusSending})

	started := time.Now()
	err := f.relay.Send(ctx, payload)
	elapsed := time.Since(started)

	f.mu.Lock()
	if err != nil {
		f.status = StatusError
	} else {
		f.status = StatusSuccess
		f.values = Submission{}
	}
	status := f.status
	f.mu.Unlock()

	f.notify(Transition{From: StatusSending, To: status, Err: err, Elapsed: elapsed})
	return status, err
}

func (f *Form) notify(t Transition) {
	if f.observer != nil {
		f.observer(t)
	}
}
