package pages

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"badgematic/internal/badge"
	"badgematic/internal/views/components"
)

// Welcome renders the kiosk landing page.
func Welcome() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<div class="hero min-h-[60vh]"><div class="hero-content text-center"><div>`)
		b.WriteString(`<h1 class="text-4xl font-bold text-primary">Welcome to Badgematic</h1>`)
		b.WriteString(`<p class="py-4">Print your event badge in four quick steps.</p>`)
		b.WriteString(`<a class="btn btn-primary btn-lg" href="/form">Get started</a>`)
		b.WriteString(`</div></div></div>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// DetailsForm renders the attendee details step, pre-filled from the
// session when the visitor navigates back.
func DetailsForm(attendee badge.Attendee, message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := components.StepIndicator("details").Render(ctx, w); err != nil {
			return err
		}
		if err := components.Flash(message).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<form method="post" action="/form" class="card bg-base-200 p-6">`); err != nil {
			return err
		}
		if err := attendeeFields(attendee).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `<button class="btn btn-primary mt-4" type="submit">Continue to photo</button></form>`)
		return err
	})
}

func attendeeFields(attendee badge.Attendee) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fields := []struct {
			name, label, value, inputType string
		}{
			{"name", "Full name", attendee.Name, "text"},
			{"employee_number", "Employee number", attendee.EmployeeNumber, "text"},
			{"title", "Job title", attendee.Title, "text"},
			{"phone", "Phone", attendee.Phone, "tel"},
			{"email", "Email", attendee.Email, "email"},
		}
		for _, field := range fields {
			if err := components.TextField(field.name, field.label, field.value, field.inputType).Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

// PhotoCapture renders the camera step. camera.js feeds the captured
// frame into the hidden photo_data input as a base64 data URL.
func PhotoCapture(attendee badge.Attendee) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := components.StepIndicator("photo").Render(ctx, w); err != nil {
			return err
		}
		var b strings.Builder
		fmt.Fprintf(&b, `<p class="mb-4">Looking good, %s. Line up with the camera and take your badge photo.</p>`,
			templ.EscapeString(DefaultDash(attendee.Name)))
		b.WriteString(`<div class="card bg-base-200 p-6">`)
		b.WriteString(`<video id="camera-preview" class="rounded-lg w-full" autoplay playsinline></video>`)
		b.WriteString(`<canvas id="camera-canvas" class="hidden"></canvas>`)
		b.WriteString(`<form method="post" action="/photo" id="photo-form" class="mt-4">`)
		b.WriteString(`<input type="hidden" name="photo_data" id="photo-data">`)
		b.WriteString(`<button class="btn btn-primary" type="button" id="capture-button">Capture photo</button>`)
		b.WriteString(`<button class="btn btn-secondary ml-2 hidden" type="submit" id="use-photo-button">Use this photo</button>`)
		b.WriteString(`</form></div>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// Review renders the confirmation step with the captured photo and an
// inline edit form.
func Review(attendee badge.Attendee, photoDataURL string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := components.StepIndicator("review").Render(ctx, w); err != nil {
			return err
		}
		var b strings.Builder
		b.WriteString(`<div class="grid md:grid-cols-2 gap-6">`)
		b.WriteString(`<div class="card bg-base-200 p-6">`)
		fmt.Fprintf(&b, `<img class="rounded-lg" alt="Badge photo" src=%q>`, templ.EscapeString(photoDataURL))
		b.WriteString(`<form method="post" action="/review/retake_photo" class="mt-4">`)
		b.WriteString(`<button class="btn btn-secondary btn-sm" type="submit">Retake photo</button>`)
		b.WriteString(`</form></div>`)
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<form method="post" action="/review/edit" class="card bg-base-200 p-6">`); err != nil {
			return err
		}
		if err := attendeeFields(attendee).Render(ctx, w); err != nil {
			return err
		}
		var c strings.Builder
		c.WriteString(`<button class="btn btn-secondary btn-sm mt-2" type="submit">Save changes</button></form>`)
		c.WriteString(`</div>`)
		c.WriteString(`<form method="post" action="/print" class="mt-6 text-center">`)
		c.WriteString(`<button class="btn btn-primary btn-lg" type="submit">Print my badge</button></form>`)
		_, err := io.WriteString(w, c.String())
		return err
	})
}
