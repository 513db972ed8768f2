package views

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func TestThumbURL(t *testing.T) {
	tests := []struct {
		src      string
		width    int
		expected string
	}{
		{"/public/avatar.jpg", 320, "/thumbs/320/avatar.jpg"},
		{"/public/img/hero.png", 960, "/thumbs/960/img/hero.png"},
		{"/public/", 320, "/public/"},
		{"https://images.example/a.jpg", 640, "https://images.example/a.jpg"},
		{"", 320, ""},
	}
	for _, tt := range tests {
		if got := ThumbURL(tt.src, tt.width); got != tt.expected {
			t.Errorf("ThumbURL(%q, %d) = %q, want %q", tt.src, tt.width, got, tt.expected)
		}
	}
}

func TestLocaleURL(t *testing.T) {
	if got := LocaleURL("ptBR", ""); got != "/locale/ptBR" {
		t.Errorf("LocaleURL without next = %q", got)
	}
	want := "/locale/enUS?next=%2Farticles%3Fq%3Dcss%26page%3D2"
	if got := LocaleURL("enUS", "/articles?q=css&page=2"); got != want {
		t.Errorf("LocaleURL = %q, want %q", got, want)
	}
}

func TestClassIf(t *testing.T) {
	if got := classIf("tab", true, "active"); got != "tab active" {
		t.Errorf("classIf on = %q", got)
	}
	if got := classIf("tab", false, "active"); got != "tab" {
		t.Errorf("classIf off = %q", got)
	}
}

func TestPageAndEmbedRoundTrip(t *testing.T) {
	child := templ.Raw("<em>inner</em>")
	cmp := page(func(ctx context.Context) g.Node {
		return h.Div(h.Class("wrap"), embed(ctx, child))
	})

	var buf bytes.Buffer
	if err := cmp.Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := buf.String(); got != `<div class="wrap"><em>inner</em></div>` {
		t.Errorf("rendered %q", got)
	}
}

func TestTimeElement(t *testing.T) {
	var buf bytes.Buffer
	if err := timeEl("2024-05-01", "May 1, 2024").Render(&buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(buf.String(), `datetime="2024-05-01"`) {
		t.Errorf("time element = %q", buf.String())
	}
}
