package components

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"badgematic/internal/views/theme"
)

// wizardSteps is the fixed order of the badge flow.
var wizardSteps = []struct {
	Key   string
	Label string
}{
	{"details", "Details"},
	{"photo", "Photo"},
	{"review", "Review"},
	{"print", "Print"},
}

// StepIndicator renders the wizard progress strip with the active step
// highlighted.
func StepIndicator(active string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<ul class="steps w-full mb-6">`)
		reached := true
		for _, step := range wizardSteps {
			class := "step"
			if reached {
				class = "step step-primary"
			}
			fmt.Fprintf(&b, `<li class=%q data-step=%q>%s</li>`, class, step.Key, templ.EscapeString(step.Label))
			if step.Key == active {
				reached = false
			}
		}
		b.WriteString("</ul>")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// Flash renders an alert banner, or nothing when the message is blank.
func Flash(message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if strings.TrimSpace(message) == "" {
			return nil
		}
		_, err := fmt.Fprintf(w, `<div class="alert alert-warning mb-4" role="alert">%s</div>`, templ.EscapeString(message))
		return err
	})
}

// ThemeSwitcher renders the palette selection form. Submitting it stores
// the choice in the session and reloads the current page.
func ThemeSwitcher(current string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<form method="post" action="/theme" class="flex items-center gap-2">`)
		b.WriteString(`<select class="select select-bordered select-sm" name="theme">`)
		for _, opt := range theme.Options() {
			selected := ""
			if opt.Value == current {
				selected = " selected"
			}
			fmt.Fprintf(&b, `<option value=%q%s>%s</option>`, opt.Value, selected, templ.EscapeString(opt.Label))
		}
		b.WriteString(`</select>`)
		b.WriteString(`<button class="btn btn-ghost btn-sm" type="submit">Apply</button>`)
		b.WriteString(`</form>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// TextField renders a labelled required input bound to the given form name.
func TextField(name, label, value, inputType string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if inputType == "" {
			inputType = "text"
		}
		var b strings.Builder
		b.WriteString(`<label class="form-control w-full mb-3">`)
		fmt.Fprintf(&b, `<span class="label-text">%s</span>`, templ.EscapeString(label))
		fmt.Fprintf(&b, `<input class="input input-bordered w-full" type=%q name=%q value=%q required>`,
			inputType, name, templ.EscapeString(value))
		b.WriteString("</label>")
		_, err := io.WriteString(w, b.String())
		return err
	})
}
