package badge

import (
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/jpeg"

	qrcode "github.com/skip2/go-qrcode"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	applog "badgematic/internal/log"
	"badgematic/internal/views/theme"
)

// Card dimensions approximate a CR80 badge at 150dpi.
const (
	cardWidth  = 860
	cardHeight = 540

	photoWidth  = 300
	photoHeight = 375
	photoLeft   = 40
	photoTop    = 80

	qrSize   = 140
	qrMargin = 40

	textLeft = 370
)

// Attendee holds the details printed on a badge.
type Attendee struct {
	Name           string
	EmployeeNumber string
	Title          string
	Phone          string
	Email          string
}

// Composer renders badge PNGs into OutputDir, optionally layering the
// template image at TemplatePath over the base card.
type Composer struct {
	OutputDir    string
	TemplatePath string
	Organization string
}

// DecodePhoto parses a "data:image/...;base64,..." payload into an image.
func DecodePhoto(dataURL string) (image.Image, error) {
	_, encoded, found := strings.Cut(dataURL, ",")
	if !found {
		return nil, fmt.Errorf("photo payload is not a data URL")
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decode photo base64: %w", err)
	}
	img, _, err := image.Decode(strings.NewReader(string(raw)))
	if err != nil {
		return nil, fmt.Errorf("decode photo image: %w", err)
	}
	return img, nil
}

// Compose renders the badge for the attendee and returns the absolute
// path of the written PNG.
func (c *Composer) Compose(ctx context.Context, attendee Attendee, photoDataURL string) (string, error) {
	applog.Debug(ctx, "composing badge", "employee", attendee.EmployeeNumber)

	photo, err := DecodePhoto(photoDataURL)
	if err != nil {
		return "", err
	}

	palette := theme.Resolve(theme.DefaultName)
	canvas := image.NewRGBA(image.Rect(0, 0, cardWidth, cardHeight))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(mustHexColor(palette.ColorRoles[theme.RoleBase100])), image.Point{}, draw.Src)

	if overlay := c.loadTemplate(ctx); overlay != nil {
		scaled := image.NewRGBA(canvas.Bounds())
		xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), overlay, overlay.Bounds(), xdraw.Over, nil)
		draw.Draw(canvas, canvas.Bounds(), scaled, image.Point{}, draw.Over)
	}

	portrait := scalePhoto(photo)
	draw.Draw(canvas, image.Rect(photoLeft, photoTop, photoLeft+photoWidth, photoTop+photoHeight), portrait, image.Point{}, draw.Over)

	if err := c.drawQR(canvas, attendee); err != nil {
		return "", err
	}

	if err := drawText(canvas, attendee, palette); err != nil {
		return "", err
	}

	return c.write(ctx, canvas, attendee)
}

func (c *Composer) loadTemplate(ctx context.Context) image.Image {
	path := strings.TrimSpace(c.TemplatePath)
	if path == "" {
		return nil
	}
	file, err := os.Open(path)
	if err != nil {
		applog.Debug(ctx, "badge template not available, skipping overlay", "path", path)
		return nil
	}
	defer file.Close()

	overlay, _, err := image.Decode(file)
	if err != nil {
		applog.Warn(ctx, "failed to decode badge template", "path", path, "error", err)
		return nil
	}
	return overlay
}

// scalePhoto center-crops the photo to a 4:5 ratio and scales it to the
// badge portrait size.
func scalePhoto(photo image.Image) image.Image {
	bounds := photo.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	const targetRatio = 4.0 / 5.0
	currentRatio := float64(width) / float64(height)

	crop := bounds
	if currentRatio > targetRatio {
		newWidth := int(float64(height) * targetRatio)
		x0 := bounds.Min.X + (width-newWidth)/2
		crop = image.Rect(x0, bounds.Min.Y, x0+newWidth, bounds.Max.Y)
	} else if currentRatio < targetRatio {
		newHeight := int(float64(width) / targetRatio)
		y0 := bounds.Min.Y + (height-newHeight)/2
		crop = image.Rect(bounds.Min.X, y0, bounds.Max.X, y0+newHeight)
	}

	scaled := image.NewRGBA(image.Rect(0, 0, photoWidth, photoHeight))
	xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), photo, crop, xdraw.Src, nil)
	return scaled
}

func (c *Composer) drawQR(canvas *image.RGBA, attendee Attendee) error {
	qr, err := qrcode.New(c.vCard(attendee), qrcode.Medium)
	if err != nil {
		return fmt.Errorf("build vcard qr: %w", err)
	}
	qrImage := qr.Image(qrSize)
	target := image.Rect(
		cardWidth-qrMargin-qrSize,
		cardHeight-qrMargin-qrSize,
		cardWidth-qrMargin,
		cardHeight-qrMargin,
	)
	draw.Draw(canvas, target, qrImage, qrImage.Bounds().Min, draw.Over)
	return nil
}

// vCard renders a version 3.0 vCard so a phone camera can import the
// attendee's contact details from the badge.
func (c *Composer) vCard(attendee Attendee) string {
	org := strings.TrimSpace(c.Organization)
	if org == "" {
		org = "YourOrg"
	}
	return strings.Join([]string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"N:" + attendee.Name,
		"TEL:" + attendee.Phone,
		"EMAIL:" + attendee.Email,
		"ORG:" + org,
		"TITLE:" + attendee.Title,
		"END:VCARD",
	}, "\n")
}

func drawText(canvas *image.RGBA, attendee Attendee, palette theme.Palette) error {
	nameFace, err := newFace(gobold.TTF, 42)
	if err != nil {
		return err
	}
	titleFace, err := newFace(goregular.TTF, 28)
	if err != nil {
		return err
	}
	detailFace, err := newFace(goregular.TTF, 24)
	if err != nil {
		return err
	}

	nameColor := mustHexColor(palette.ColorRoles[theme.RolePrimary])
	inkColor := mustHexColor(palette.ColorRoles[theme.RoleNeutral])

	drawString(canvas, nameFace, nameColor, textLeft, 120, attendee.Name)
	drawString(canvas, titleFace, inkColor, textLeft, 180, attendee.Title)
	drawString(canvas, detailFace, inkColor, textLeft, 220, "#"+attendee.EmployeeNumber)
	return nil
}

func newFace(ttf []byte, size float64) (font.Face, error) {
	parsed, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("build font face: %w", err)
	}
	return face, nil
}

// drawString places text with (x, y) as the top-left corner of the line.
func drawString(canvas *image.RGBA, face font.Face, col color.Color, x, y int, text string) {
	drawer := font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, y+face.Metrics().Ascent.Ceil()),
	}
	drawer.DrawString(text)
}

func (c *Composer) write(ctx context.Context, canvas *image.RGBA, attendee Attendee) (string, error) {
	outDir := strings.TrimSpace(c.OutputDir)
	if outDir == "" {
		outDir = "app/badge_outputs"
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("create badge output dir: %w", err)
	}

	stem := strings.TrimSpace(attendee.EmployeeNumber)
	if stem == "" {
		stem = "badge"
	}
	outPath := filepath.Join(outDir, stem+"_badge.png")

	file, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("create badge file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, canvas); err != nil {
		return "", fmt.Errorf("encode badge png: %w", err)
	}

	absolute, err := filepath.Abs(outPath)
	if err != nil {
		return "", fmt.Errorf("resolve badge path: %w", err)
	}
	applog.Info(ctx, "badge written", "path", absolute)
	return absolute, nil
}

func mustHexColor(value string) color.RGBA {
	var r, g, b uint8
	if _, err := fmt.Sscanf(value, "#%02x%02x%02x", &r, &g, &b); err != nil {
		// Palette values are validated at build time; fall back to black.
		return color.RGBA{A: 0xFF}
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}
