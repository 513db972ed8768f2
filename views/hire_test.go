package views

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/estevanpithan/folio/contact"
	"github.com/estevanpithan/folio/i18n"
)

func testChrome(t *testing.T, key string) Chrome {
	t.Helper()
	tbl, err := i18n.LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}
	return Chrome{
		Site:    SiteConfig{Name: "Folio", Author: "Ana Souza", Initials: "AS", Email: "ana@example.com", HourlyRate: 75},
		Locale:  tbl.Lookup(key),
		Locales: tbl.Bundles(),
		CSRF:    "token-123",
	}
}

func renderString(t *testing.T, ch Chrome, data HireData) string {
	t.Helper()
	var buf bytes.Buffer
	if err := ContactForm(ch, data).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return buf.String()
}

func TestContactFormSubmitting(t *testing.T) {
	ch := testChrome(t, i18n.EnUS)
	out := renderString(t, ch, HireData{Form: contact.View{
		Fields:     contact.Fields{Name: "Ana", Email: "ana@example.com", Message: "Hi"},
		Submitting: true,
	}})

	if !strings.Contains(out, " disabled") {
		t.Errorf("submit button should be disabled while submitting: %s", out)
	}
	if !strings.Contains(out, ">Sending...</button>") {
		t.Errorf("expected sending label: %s", out)
	}
	if !strings.Contains(out, `value="token-123"`) {
		t.Errorf("expected csrf field: %s", out)
	}
}

func TestContactFormSent(t *testing.T) {
	ch := testChrome(t, i18n.EnUS)
	out := renderString(t, ch, HireData{Form: contact.View{Notice: &contact.Notice{}}})

	if strings.Contains(out, " disabled") {
		t.Errorf("submit button should be enabled after sending: %s", out)
	}
	if !strings.Contains(out, `class="notice"`) || !strings.Contains(out, "Message sent!") {
		t.Errorf("expected sent notice: %s", out)
	}
}

func TestContactFormMissingFields(t *testing.T) {
	ch := testChrome(t, i18n.PtBR)
	out := renderString(t, ch, HireData{Form: contact.View{
		Fields:  contact.Fields{Name: "Ana"},
		Missing: []string{contact.FieldEmail, contact.FieldMessage},
	}})

	if got := strings.Count(out, `aria-invalid="true"`); got != 2 {
		t.Errorf("aria-invalid count = %d, want 2", got)
	}
	if !strings.Contains(out, `value="Ana"`) {
		t.Errorf("name should be kept: %s", out)
	}
}
