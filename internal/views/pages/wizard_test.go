package pages

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"badgematic/internal/badge"
)

func renderToString(t *testing.T, render func(ctx context.Context, buf *bytes.Buffer) error) string {
	t.Helper()
	var buf bytes.Buffer
	if err := render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func TestWelcomeLinksToForm(t *testing.T) {
	t.Parallel()

	out := renderToString(t, func(ctx context.Context, buf *bytes.Buffer) error {
		return Welcome().Render(ctx, buf)
	})
	if !strings.Contains(out, `href="/form"`) {
		t.Fatalf("expected start link in welcome page: %s", out)
	}
	if !strings.Contains(out, "Badgematic") {
		t.Fatalf("expected product name in welcome page: %s", out)
	}
}

func TestDetailsFormPrefillsValues(t *testing.T) {
	t.Parallel()

	attendee := badge.Attendee{
		Name:           "Jo Doe",
		EmployeeNumber: "4711",
		Title:          "Engineer",
		Phone:          "555-0100",
		Email:          "jo@example.com",
	}
	out := renderToString(t, func(ctx context.Context, buf *bytes.Buffer) error {
		return DetailsForm(attendee, "").Render(ctx, buf)
	})
	for _, token := range []string{`value="Jo Doe"`, `value="4711"`, `value="Engineer"`, `value="555-0100"`, `value="jo@example.com"`} {
		if !strings.Contains(out, token) {
			t.Fatalf("expected %s in details form: %s", token, out)
		}
	}
	if !strings.Contains(out, `action="/form"`) {
		t.Fatalf("expected form action in details form: %s", out)
	}
}

func TestDetailsFormEscapesValues(t *testing.T) {
	t.Parallel()

	out := renderToString(t, func(ctx context.Context, buf *bytes.Buffer) error {
		return DetailsForm(badge.Attendee{Name: `"><script>`}, "").Render(ctx, buf)
	})
	if strings.Contains(out, `"><script>`) {
		t.Fatalf("expected attendee values to be escaped: %s", out)
	}
}

func TestDetailsFormShowsFlashMessage(t *testing.T) {
	t.Parallel()

	out := renderToString(t, func(ctx context.Context, buf *bytes.Buffer) error {
		return DetailsForm(badge.Attendee{}, "All fields are required.").Render(ctx, buf)
	})
	if !strings.Contains(out, "All fields are required.") {
		t.Fatalf("expected flash message in output: %s", out)
	}
}

func TestPhotoCaptureWiresCameraControls(t *testing.T) {
	t.Parallel()

	out := renderToString(t, func(ctx context.Context, buf *bytes.Buffer) error {
		return PhotoCapture(badge.Attendee{Name: "Jo"}).Render(ctx, buf)
	})
	for _, token := range []string{`id="camera-preview"`, `id="photo-data"`, `name="photo_data"`, `action="/photo"`} {
		if !strings.Contains(out, token) {
			t.Fatalf("expected %s in photo page: %s", token, out)
		}
	}
}

func TestReviewShowsPhotoAndActions(t *testing.T) {
	t.Parallel()

	out := renderToString(t, func(ctx context.Context, buf *bytes.Buffer) error {
		return Review(badge.Attendee{Name: "Jo"}, "data:image/png;base64,abcd").Render(ctx, buf)
	})
	for _, token := range []string{
		`src="data:image/png;base64,abcd"`,
		`action="/review/retake_photo"`,
		`action="/review/edit"`,
		`action="/print"`,
	} {
		if !strings.Contains(out, token) {
			t.Fatalf("expected %s in review page: %s", token, out)
		}
	}
}
