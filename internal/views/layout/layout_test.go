package layout

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"badgematic/internal/views/theme"
)

func TestPageRendersProvidedContent(t *testing.T) {
	t.Parallel()

	content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := w.Write([]byte("<section>wizard</section>"))
		return err
	})

	var buf bytes.Buffer
	err := Page("Badgematic", theme.Resolve(theme.DefaultName), content).Render(context.Background(), &buf)
	if err != nil {
		t.Fatalf("render page: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "<title>Badgematic</title>") {
		t.Fatalf("expected document title in output: %s", out)
	}
	if !strings.Contains(out, `data-theme="brand-light"`) {
		t.Fatalf("expected data-theme attribute in output: %s", out)
	}
	if !strings.Contains(out, "<section>wizard</section>") {
		t.Fatalf("expected content section in output: %s", out)
	}
	if !strings.Contains(out, "/assets/themes.css") {
		t.Fatalf("expected generated palette stylesheet link: %s", out)
	}
}

func TestPageEscapesTitle(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := Page("<script>", theme.Resolve(theme.DarkName), nil).Render(context.Background(), &buf)
	if err != nil {
		t.Fatalf("render page: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "<title><script></title>") {
		t.Fatalf("expected escaped title: %s", out)
	}
	if !strings.Contains(out, `data-theme="brand-teal-surface"`) {
		t.Fatalf("expected dark palette attribute: %s", out)
	}
}
