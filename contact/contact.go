// Package contact models the hire-page contact form: its transient field
// state, the required-field rule and a simulated, delayed submission.
// Nothing is sent anywhere.
package contact

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultDelay is the simulated time a submission takes.
const DefaultDelay = time.Second

// Field names, as used in the HTML form.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldMessage = "message"
)

var (
	// ErrIncomplete means at least one required field is blank.
	ErrIncomplete = errors.New("contact: required field is blank")
	// ErrInFlight means a submission is already pending for the form.
	ErrInFlight = errors.New("contact: submission in progress")
)

// Fields are the three free-text inputs of the form.
type Fields struct {
	Name    string
	Email   string
	Message string
}

// Missing returns the names of the blank fields in form order.
func (f Fields) Missing() []string {
	var missing []string
	if strings.TrimSpace(f.Name) == "" {
		missing = append(missing, FieldName)
	}
	if strings.TrimSpace(f.Email) == "" {
		missing = append(missing, FieldEmail)
	}
	if strings.TrimSpace(f.Message) == "" {
		missing = append(missing, FieldMessage)
	}
	return missing
}

// Validate reports ErrIncomplete, naming the blank fields.
func (f Fields) Validate() error {
	if missing := f.Missing(); len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrIncomplete, strings.Join(missing, ", "))
	}
	return nil
}

// Notice is the confirmation shown after a completed submission.
type Notice struct {
	Receipt uuid.UUID
	SentAt  time.Time
}

// View is a point-in-time copy of a form, safe to render.
type View struct {
	Fields     Fields
	Submitting bool
	Notice     *Notice
	Missing    []string
}

// Form holds one visitor's form state. It is safe for concurrent use.
type Form struct {
	mu         sync.Mutex
	fields     Fields
	submitting bool
	notice     *Notice
	missing    []string
}

// NewForm returns a form pre-filled with f.
func NewForm(f Fields) *Form {
	return &Form{fields: f}
}

// Set updates a single field by name. Unknown names are ignored.
func (f *Form) Set(field, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch field {
	case FieldName:
		f.fields.Name = value
	case FieldEmail:
		f.fields.Email = value
	case FieldMessage:
		f.fields.Message = value
	}
}

// Snapshot returns the current state.
func (f *Form) Snapshot() View {
	f.mu.Lock()
	defer f.mu.Unlock()
	v := View{
		Fields:     f.fields,
		Submitting: f.submitting,
		Missing:    append([]string(nil), f.missing...),
	}
	if f.notice != nil {
		n := *f.notice
		v.Notice = &n
	}
	return v
}

// Begin validates the fields and marks the form as submitting, which
// disables the submit button until Complete or Abort.
func (f *Form) Begin() (Fields, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitting {
		return Fields{}, ErrInFlight
	}
	if err := f.fields.Validate(); err != nil {
		f.missing = f.fields.Missing()
		return Fields{}, err
	}
	f.missing = nil
	f.notice = nil
	f.submitting = true
	return f.fields, nil
}

// Complete clears every field, re-enables the form and records n.
func (f *Form) Complete(n Notice) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fields = Fields{}
	f.submitting = false
	f.notice = &n
}

// Abort re-enables the form and keeps the entered values.
func (f *Form) Abort() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false
}

// Submitter runs the simulated submission.
type Submitter struct {
	Delay time.Duration

	after func(time.Duration) <-chan time.Time
	now   func() time.Time
}

// NewSubmitter returns a Submitter waiting delay per submission. A
// non-positive delay means DefaultDelay.
func NewSubmitter(delay time.Duration) *Submitter {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Submitter{Delay: delay, after: time.After, now: time.Now}
}

// Submit begins the form, waits for the delay and completes it. If ctx
// ends first the form is aborted with its values intact and ctx.Err() is
// returned.
func (s *Submitter) Submit(ctx context.Context, form *Form) (Notice, error) {
	if _, err := form.Begin(); err != nil {
		return Notice{}, err
	}
	select {
	case <-s.after(s.Delay):
	case <-ctx.Done():
		form.Abort()
		return Notice{}, ctx.Err()
	}
	n := Notice{Receipt: uuid.New(), SentAt: s.now()}
	form.Complete(n)
	return n, nil
}
