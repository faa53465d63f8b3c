package theme

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Role is a semantic color slot (e.g. "primary", "accent") consumed by
// style rules rather than a literal color.
type Role string

const (
	RolePrimary          Role = "primary"
	RolePrimaryContent   Role = "primary-content"
	RoleSecondary        Role = "secondary"
	RoleSecondaryContent Role = "secondary-content"
	RoleAccent           Role = "accent"
	RoleAccentContent    Role = "accent-content"
	RoleNeutral          Role = "neutral"
	RoleNeutralContent   Role = "neutral-content"
	RoleBase100          Role = "base-100"
	RoleBase200          Role = "base-200"
	RoleBase300          Role = "base-300"
	RoleBaseContent      Role = "base-content"
	RoleInfo             Role = "info"
	RoleSuccess          Role = "success"
	RoleWarning          Role = "warning"
	RoleError            Role = "error"
)

// roleOrder fixes the enumeration and the emission order of color roles.
var roleOrder = []Role{
	RolePrimary, RolePrimaryContent,
	RoleSecondary, RoleSecondaryContent,
	RoleAccent, RoleAccentContent,
	RoleNeutral, RoleNeutralContent,
	RoleBase100, RoleBase200, RoleBase300, RoleBaseContent,
	RoleInfo, RoleSuccess, RoleWarning, RoleError,
}

// Roles returns the fixed set of recognized color roles in emission order.
func Roles() []Role {
	out := make([]Role, len(roleOrder))
	copy(out, roleOrder)
	return out
}

// Palette is a named set of color-role-to-hex-value mappings representing
// one visual theme.
type Palette struct {
	Name       string
	ColorRoles map[Role]string
}

// Config is the static styling configuration consumed by the CSS utility
// build: content globs to scan, base-theme extensions, active plugins,
// and the palette definitions rendered by the component-theming plugin.
type Config struct {
	ContentGlobs     []string
	ThemeExtensions  map[string]any
	PluginList       []string
	ThemeDefinitions []Palette
}

const (
	// DefaultName is the palette applied when no visitor preference exists.
	DefaultName = "brand-light"

	// DarkName is the dark surface variant of the brand palette.
	DarkName = "brand-teal-surface"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ValidHexColor reports whether value is a six-digit hex color such as
// "#0E2A30".
func ValidHexColor(value string) bool {
	return hexColorPattern.MatchString(value)
}

var brandLight = Palette{
	Name: DefaultName,
	ColorRoles: map[Role]string{
		RolePrimary:          "#0E2A30",
		RolePrimaryContent:   "#F9F9F9",
		RoleSecondary:        "#155E63",
		RoleSecondaryContent: "#F9F9F9",
		RoleAccent:           "#37B5AD",
		RoleAccentContent:    "#04201E",
		RoleNeutral:          "#020F13",
		RoleNeutralContent:   "#F9F9F9",
		RoleBase100:          "#F9F9F9",
		RoleBase200:          "#EDF1F1",
		RoleBase300:          "#DCE4E4",
		RoleBaseContent:      "#020F13",
		RoleInfo:             "#0EA5E9",
		RoleSuccess:          "#16A34A",
		RoleWarning:          "#F59E0B",
		RoleError:            "#DC2626",
	},
}

var brandTealSurface = Palette{
	Name: DarkName,
	ColorRoles: map[Role]string{
		RolePrimary:          "#4FD1C5",
		RolePrimaryContent:   "#04201E",
		RoleSecondary:        "#155E63",
		RoleSecondaryContent: "#E6F4F1",
		RoleAccent:           "#E9B44C",
		RoleAccentContent:    "#211703",
		RoleNeutral:          "#020F13",
		RoleNeutralContent:   "#E6F4F1",
		RoleBase100:          "#0E2A30",
		RoleBase200:          "#0A2026",
		RoleBase300:          "#06161B",
		RoleBaseContent:      "#E6F4F1",
		RoleInfo:             "#38BDF8",
		RoleSuccess:          "#4ADE80",
		RoleWarning:          "#FBBF24",
		RoleError:            "#F87171",
	},
}

var catalogue = Config{
	ContentGlobs: []string{
		"./app/templates/**/*.html",
		"./app/static/**/*.js",
	},
	ThemeExtensions:  map[string]any{},
	PluginList:       []string{"daisyui"},
	ThemeDefinitions: []Palette{brandLight, brandTealSurface},
}

// Options exposes the available palette selections for rendering in a
// form control.
type Option struct {
	Value string
	Label string
}

var options = []Option{
	{Value: DefaultName, Label: "Brand Light"},
	{Value: DarkName, Label: "Brand Teal Surface (Dark)"},
}

// Load returns a deep copy of the styling configuration. The backing data
// never mutates, so repeated loads are structurally identical.
func Load() Config {
	cfg := Config{
		ContentGlobs:     append([]string(nil), catalogue.ContentGlobs...),
		ThemeExtensions:  make(map[string]any, len(catalogue.ThemeExtensions)),
		PluginList:       append([]string(nil), catalogue.PluginList...),
		ThemeDefinitions: make([]Palette, 0, len(catalogue.ThemeDefinitions)),
	}
	for key, value := range catalogue.ThemeExtensions {
		cfg.ThemeExtensions[key] = value
	}
	for _, palette := range catalogue.ThemeDefinitions {
		cfg.ThemeDefinitions = append(cfg.ThemeDefinitions, palette.clone())
	}
	return cfg
}

func (p Palette) clone() Palette {
	out := Palette{Name: p.Name, ColorRoles: make(map[Role]string, len(p.ColorRoles))}
	for role, value := range p.ColorRoles {
		out.ColorRoles[role] = value
	}
	return out
}

// Resolve returns the registered palette for the provided name, falling
// back to the default palette for unknown or blank names.
func Resolve(name string) Palette {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, palette := range catalogue.ThemeDefinitions {
		if palette.Name == normalized {
			return palette.clone()
		}
	}
	return brandLight.clone()
}

// Known reports whether name identifies a registered palette.
func Known(name string) bool {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, palette := range catalogue.ThemeDefinitions {
		if palette.Name == normalized {
			return true
		}
	}
	return false
}

// Options lists the selectable palettes in definition order.
func Options() []Option {
	out := make([]Option, len(options))
	copy(out, options)
	return out
}

// Validate checks that the palette covers the complete role set with
// well-formed hex values. Unrecognized roles are ignored rather than
// rejected; the downstream plugin skips them.
func (p Palette) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("palette name must not be empty")
	}
	for _, role := range roleOrder {
		value, ok := p.ColorRoles[role]
		if !ok {
			return fmt.Errorf("palette %q: missing role %q", p.Name, role)
		}
		if !ValidHexColor(value) {
			return fmt.Errorf("palette %q: role %q has malformed color %q", p.Name, role, value)
		}
	}
	return nil
}

// Validate checks palette name uniqueness and delegates to each palette.
func (c Config) Validate() error {
	seen := make(map[string]struct{}, len(c.ThemeDefinitions))
	for _, palette := range c.ThemeDefinitions {
		if _, ok := seen[palette.Name]; ok {
			return fmt.Errorf("duplicate palette name %q", palette.Name)
		}
		seen[palette.Name] = struct{}{}
		if err := palette.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// StylesheetCSS renders one CSS custom-property block per palette, keyed
// by the data-theme attribute the layout sets on the document root.
func StylesheetCSS() string {
	var b strings.Builder
	for _, palette := range catalogue.ThemeDefinitions {
		fmt.Fprintf(&b, "[data-theme=%q] {\n", palette.Name)
		for _, role := range roleOrder {
			fmt.Fprintf(&b, "  --color-%s: %s;\n", role, palette.ColorRoles[role])
		}
		b.WriteString("}\n")
	}
	return b.String()
}

// TailwindConfigJS renders the configuration as a tailwind.config.js
// document for the CSS utility toolchain.
func TailwindConfigJS() string {
	var b strings.Builder
	b.WriteString("/** @type {import('tailwindcss').Config} */\n")
	b.WriteString("module.exports = {\n")

	b.WriteString("  content: [\n")
	for _, glob := range catalogue.ContentGlobs {
		fmt.Fprintf(&b, "    %q,\n", glob)
	}
	b.WriteString("  ],\n")

	b.WriteString("  theme: {\n    extend: {")
	b.WriteString(renderExtensions(catalogue.ThemeExtensions))
	b.WriteString("},\n  },\n")

	b.WriteString("  plugins: [")
	for i, plugin := range catalogue.PluginList {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "require(%q)", plugin)
	}
	b.WriteString("],\n")

	b.WriteString("  daisyui: {\n    themes: [\n")
	for _, palette := range catalogue.ThemeDefinitions {
		fmt.Fprintf(&b, "      {\n        %q: {\n", palette.Name)
		for _, role := range roleOrder {
			fmt.Fprintf(&b, "          %q: %q,\n", string(role), palette.ColorRoles[role])
		}
		b.WriteString("        },\n      },\n")
	}
	b.WriteString("    ],\n  },\n")

	b.WriteString("};\n")
	return b.String()
}

func renderExtensions(extensions map[string]any) string {
	if len(extensions) == 0 {
		return ""
	}
	keys := make([]string, 0, len(extensions))
	for key := range extensions {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	var b strings.Builder
	b.WriteString("\n")
	for _, key := range keys {
		fmt.Fprintf(&b, "      %q: %v,\n", key, extensions[key])
	}
	b.WriteString("    ")
	return b.String()
}
