package pages

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"badgematic/internal/printjobs"
	"badgematic/internal/views/components"
)

// Confirm hosts the HTMX polling block that refreshes the print status
// fragment every second, plus the end-of-session feedback form.
func Confirm() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := components.StepIndicator("print").Render(ctx, w); err != nil {
			return err
		}
		var b strings.Builder
		b.WriteString(`<div id="print-status" hx-get="/status" hx-trigger="load, every 1s" hx-swap="innerHTML">`)
		b.WriteString(`<span class="loading loading-spinner"></span>`)
		b.WriteString(`</div>`)

		b.WriteString(`<div class="card bg-base-200 p-6 mt-8">`)
		b.WriteString(`<h2 class="text-xl font-semibold mb-2">How did it go?</h2>`)
		b.WriteString(`<form method="post" action="/feedback">`)
		b.WriteString(`<div class="rating mb-3">`)
		for rating := 1; rating <= 5; rating++ {
			fmt.Fprintf(&b, `<input type="radio" name="rating" value="%d" class="mask mask-star-2 bg-warning" aria-label="%d stars">`, rating, rating)
		}
		b.WriteString(`</div>`)
		b.WriteString(`<textarea class="textarea textarea-bordered w-full" name="comments" placeholder="Anything we should improve?"></textarea>`)
		b.WriteString(`<button class="btn btn-primary mt-3" type="submit">Send feedback</button>`)
		b.WriteString(`</form>`)
		b.WriteString(`<form method="post" action="/reset" class="mt-3">`)
		b.WriteString(`<button class="btn btn-ghost btn-sm" type="submit">Start over</button>`)
		b.WriteString(`</form></div>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// StatusBlock is the HTMX fragment polled by the confirm page.
func StatusBlock(job printjobs.Job) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		fmt.Fprintf(&b, `<div class="card bg-base-200 p-6" data-status=%q data-step=%q>`, string(job.Status), string(job.Step))
		switch job.Status {
		case printjobs.StatusSuccess:
			b.WriteString(`<h2 class="text-2xl font-bold text-success">Your badge is ready!</h2>`)
			b.WriteString(`<p class="mt-2">Collect it from the printer tray.</p>`)
		case printjobs.StatusError:
			b.WriteString(`<h2 class="text-2xl font-bold text-error">Something went wrong</h2>`)
			fmt.Fprintf(&b, `<p class="mt-2">%s</p>`, templ.EscapeString(DefaultDash(job.Error)))
			b.WriteString(`<a class="btn btn-secondary mt-4" href="/review">Back to review</a>`)
		case printjobs.StatusProcessing:
			b.WriteString(`<span class="loading loading-spinner text-primary"></span>`)
			fmt.Fprintf(&b, `<p class="mt-2">%s</p>`, templ.EscapeString(StepLabel(job.Step)))
		default:
			b.WriteString(`<p>No print job in progress.</p>`)
		}
		b.WriteString(`</div>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}
