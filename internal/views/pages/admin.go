package pages

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"badgematic/internal/views/components"
	"badgematic/models"
)

// AdminLogin renders the operator passphrase prompt.
func AdminLogin(message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := components.Flash(message).Render(ctx, w); err != nil {
			return err
		}
		var b strings.Builder
		b.WriteString(`<div class="card bg-base-200 p-6 max-w-md mx-auto">`)
		b.WriteString(`<h1 class="text-2xl font-bold mb-4">Operator access</h1>`)
		b.WriteString(`<form method="post" action="/admin">`)
		b.WriteString(`<input class="input input-bordered w-full" type="password" name="passphrase" placeholder="Passphrase" required>`)
		b.WriteString(`<button class="btn btn-primary mt-4" type="submit">Unlock</button>`)
		b.WriteString(`</form></div>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// Admin renders recent badge history and visitor feedback for the
// kiosk operator.
func Admin(badges []models.BadgeRecord, feedback []models.Feedback) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<h1 class="text-2xl font-bold mb-6">Kiosk activity</h1>`)

		b.WriteString(`<h2 class="text-xl font-semibold mb-2">Recent badges</h2>`)
		if len(badges) == 0 {
			b.WriteString(`<p class="mb-6">No badges printed yet.</p>`)
		} else {
			b.WriteString(`<table class="table mb-6"><thead><tr><th>Printed</th><th>Name</th><th>Employee #</th><th>File</th></tr></thead><tbody>`)
			for _, record := range badges {
				fmt.Fprintf(&b, `<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>`,
					templ.EscapeString(FormatTimestamp(record.CreatedAt)),
					templ.EscapeString(DefaultDash(record.AttendeeName)),
					templ.EscapeString(DefaultDash(record.EmployeeNumber)),
					templ.EscapeString(DefaultDash(record.BadgePath)),
				)
			}
			b.WriteString(`</tbody></table>`)
		}

		b.WriteString(`<h2 class="text-xl font-semibold mb-2">Feedback</h2>`)
		if len(feedback) == 0 {
			b.WriteString(`<p>No feedback submitted yet.</p>`)
		} else {
			b.WriteString(`<table class="table"><thead><tr><th>Received</th><th>Rating</th><th>Comments</th></tr></thead><tbody>`)
			for _, entry := range feedback {
				fmt.Fprintf(&b, `<tr><td>%s</td><td>%d / 5</td><td>%s</td></tr>`,
					templ.EscapeString(FormatTimestamp(entry.CreatedAt)),
					entry.Rating,
					templ.EscapeString(DefaultDash(entry.Comments)),
				)
			}
			b.WriteString(`</tbody></table>`)
		}

		_, err := io.WriteString(w, b.String())
		return err
	})
}
