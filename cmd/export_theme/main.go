package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"badgematic/internal/views/theme"
)

// export_theme regenerates the static styling artifacts from the theme
// catalogue: the Tailwind build configuration and the CSS custom-property
// sheet served at /assets/themes.css. Run it after changing palette values
// so the checked-in files stay in lockstep with the Go source of truth.
func main() {
	configPath := flag.String("config", "tailwind.config.js", "output path for the Tailwind configuration")
	cssPath := flag.String("css", filepath.Join("app", "static", "css", "themes.css"), "output path for the theme stylesheet")
	flag.Parse()

	cfg := theme.Load()
	if err := cfg.Validate(); err != nil {
		fail("theme catalogue is invalid: %v", err)
	}

	if err := writeFile(*configPath, theme.TailwindConfigJS()); err != nil {
		fail("writing %s: %v", *configPath, err)
	}
	color.Green("wrote %s", *configPath)

	if err := writeFile(*cssPath, theme.StylesheetCSS()); err != nil {
		fail("writing %s: %v", *cssPath, err)
	}
	color.Green("wrote %s", *cssPath)

	for _, palette := range cfg.ThemeDefinitions {
		color.Cyan("palette %s: %d roles", palette.Name, len(palette.ColorRoles))
	}
}

func writeFile(path, contents string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(contents), 0o644)
}

func fail(format string, args ...any) {
	color.New(color.FgRed).Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
