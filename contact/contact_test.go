package contact

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// manualSubmitter returns a Submitter whose delay ends when release is
// closed.
func manualSubmitter() (*Submitter, chan time.Time) {
	release := make(chan time.Time)
	s := NewSubmitter(time.Hour)
	s.after = func(time.Duration) <-chan time.Time { return release }
	return s, release
}

func filled() Fields {
	return Fields{Name: "Ana", Email: "ana@example.com", Message: "Let's talk"}
}

func TestMissing(t *testing.T) {
	tests := []struct {
		name   string
		fields Fields
		want   []string
	}{
		{"complete", filled(), nil},
		{"all blank", Fields{}, []string{FieldName, FieldEmail, FieldMessage}},
		{"whitespace counts as blank", Fields{Name: "  ", Email: "a@b.c", Message: "\n"}, []string{FieldName, FieldMessage}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.fields.Missing())
		})
	}
}

func TestValidateWrapsErrIncomplete(t *testing.T) {
	err := Fields{Name: "Ana"}.Validate()
	require.ErrorIs(t, err, ErrIncomplete)
	assert.Contains(t, err.Error(), "email, message")
	assert.NoError(t, filled().Validate())
}

func TestSubmitLifecycle(t *testing.T) {
	s, release := manualSubmitter()
	form := NewForm(filled())

	done := make(chan error, 1)
	var notice Notice
	go func() {
		var err error
		notice, err = s.Submit(context.Background(), form)
		done <- err
	}()

	assert.Eventually(t, func() bool {
		return form.Snapshot().Submitting
	}, time.Second, time.Millisecond, "submit button should be disabled while pending")

	_, err := form.Begin()
	assert.ErrorIs(t, err, ErrInFlight)

	close(release)
	require.NoError(t, <-done)

	v := form.Snapshot()
	assert.False(t, v.Submitting, "submit button re-enabled")
	assert.Equal(t, Fields{}, v.Fields, "all fields cleared")
	require.NotNil(t, v.Notice, "notification shown")
	assert.Equal(t, notice.Receipt, v.Notice.Receipt)
	assert.NotEqual(t, uuid.Nil, notice.Receipt)
}

func TestSubmitRejectsBlankFields(t *testing.T) {
	s, _ := manualSubmitter()
	form := NewForm(Fields{Name: "Ana", Message: "hi"})

	_, err := s.Submit(context.Background(), form)
	require.ErrorIs(t, err, ErrIncomplete)

	v := form.Snapshot()
	assert.False(t, v.Submitting)
	assert.Nil(t, v.Notice)
	assert.Equal(t, []string{FieldEmail}, v.Missing)
	assert.Equal(t, "Ana", v.Fields.Name, "values are kept")
}

func TestSubmitCanceled(t *testing.T) {
	s, _ := manualSubmitter()
	form := NewForm(filled())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		_, err := s.Submit(ctx, form)
		done <- err
	}()
	assert.Eventually(t, func() bool { return form.Snapshot().Submitting }, time.Second, time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)

	v := form.Snapshot()
	assert.False(t, v.Submitting)
	assert.Nil(t, v.Notice)
	assert.Equal(t, filled(), v.Fields)
}

func TestSubmitWithRealDelay(t *testing.T) {
	s := NewSubmitter(10 * time.Millisecond)
	start := time.Now()
	_, err := s.Submit(context.Background(), NewForm(filled()))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
}

func TestNewSubmitterDefaultDelay(t *testing.T) {
	assert.Equal(t, DefaultDelay, NewSubmitter(0).Delay)
	assert.Equal(t, DefaultDelay, NewSubmitter(-time.Second).Delay)
}

func TestSetIgnoresUnknownField(t *testing.T) {
	form := NewForm(Fields{})
	form.Set(FieldName, "Ana")
	form.Set("phone", "123")
	assert.Equal(t, Fields{Name: "Ana"}, form.Snapshot().Fields)
}

func TestSetFillsEveryField(t *testing.T) {
	form := NewForm(Fields{})
	form.Set(FieldName, "Ana")
	form.Set(FieldEmail, "ana@example.com")
	form.Set(FieldMessage, "Hello")

	fields, err := form.Begin()
	require.NoError(t, err)
	assert.Equal(t, Fields{Name: "Ana", Email: "ana@example.com", Message: "Hello"}, fields)
}
