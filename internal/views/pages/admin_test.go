package pages

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"badgematic/models"
)

func TestAdminLoginRendersForm(t *testing.T) {
	t.Parallel()

	out := renderToString(t, func(ctx context.Context, buf *bytes.Buffer) error {
		return AdminLogin("Wrong passphrase.").Render(ctx, buf)
	})
	if !strings.Contains(out, `name="passphrase"`) {
		t.Fatalf("expected passphrase input: %s", out)
	}
	if !strings.Contains(out, "Wrong passphrase.") {
		t.Fatalf("expected flash message: %s", out)
	}
}

func TestAdminRendersEmptyState(t *testing.T) {
	t.Parallel()

	out := renderToString(t, func(ctx context.Context, buf *bytes.Buffer) error {
		return Admin(nil, nil).Render(ctx, buf)
	})
	if !strings.Contains(out, "No badges printed yet.") {
		t.Fatalf("expected empty badge state: %s", out)
	}
	if !strings.Contains(out, "No feedback submitted yet.") {
		t.Fatalf("expected empty feedback state: %s", out)
	}
}

func TestAdminRendersRows(t *testing.T) {
	t.Parallel()

	badges := []models.BadgeRecord{{
		JobID:          "job-1",
		AttendeeName:   "Jo Doe",
		EmployeeNumber: "4711",
		BadgePath:      "/srv/badges/4711_badge.png",
	}}
	feedback := []models.Feedback{{Rating: 4, Comments: "smooth & quick"}}

	out := renderToString(t, func(ctx context.Context, buf *bytes.Buffer) error {
		return Admin(badges, feedback).Render(ctx, buf)
	})
	for _, token := range []string{"Jo Doe", "4711", "4 / 5"} {
		if !strings.Contains(out, token) {
			t.Fatalf("expected %q in admin page: %s", token, out)
		}
	}
	if strings.Contains(out, "smooth & quick") {
		t.Fatalf("expected comments to be HTML-escaped: %s", out)
	}
	if !strings.Contains(out, "smooth &amp; quick") {
		t.Fatalf("expected escaped comments in output: %s", out)
	}
}
