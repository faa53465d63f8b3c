package layout

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"badgematic/internal/views/components"
	"badgematic/internal/views/theme"
)

// Page wraps content in the kiosk document shell. The palette name is set
// as the data-theme attribute that /assets/themes.css keys its custom
// properties on.
func Page(title string, palette theme.Palette, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<!DOCTYPE html>\n")
		fmt.Fprintf(&b, "<html lang=\"en\" data-theme=%q>\n", palette.Name)
		b.WriteString("<head>\n")
		b.WriteString("<meta charset=\"utf-8\">\n")
		b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
		fmt.Fprintf(&b, "<title>%s</title>\n", templ.EscapeString(title))
		b.WriteString("<link rel=\"stylesheet\" href=\"/assets/css/app.css\">\n")
		b.WriteString("<link rel=\"stylesheet\" href=\"/assets/themes.css\">\n")
		b.WriteString("<script src=\"/assets/js/htmx.min.js\" defer></script>\n")
		b.WriteString("<script src=\"/assets/js/camera.js\" defer></script>\n")
		b.WriteString("</head>\n")
		fmt.Fprintf(&b, "<body class=%q>\n", bodyClass())
		b.WriteString("<main class=\"container mx-auto max-w-3xl p-6\">\n")
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if content != nil {
			if err := content.Render(ctx, w); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n</main>\n<footer class=\"footer footer-center p-4 text-base-content\">\n"); err != nil {
			return err
		}
		if err := components.ThemeSwitcher(palette.Name).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n</footer>\n</body>\n</html>\n")
		return err
	})
}

func bodyClass() string {
	return "min-h-screen bg-base-100 text-base-content"
}
