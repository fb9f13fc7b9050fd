package qrcode

import (
	"bytes"
	"image/color"
	"image/png"

	"github.com/fogleman/gg"
	"github.com/nfnt/resize"
	"github.com/skip2/go-qrcode"
)

// Config describes how an invite QR code is rendered.
type Config struct {
	Content         string
	Size            int
	Background      color.Color
	Foreground      color.Color
	RecoveryLevel   int     // qrcode.Low..qrcode.Highest; keep high when a logo covers modules
	LogoPath        string  // optional logo drawn centered on a badge
	LogoScale       float64 // logo size relative to the code
	LogoBorderWidth float64
}

// Default is the rendering used for shareable club invite codes.
var Default = Config{
	Size:            512,
	Background:      color.RGBA{R: 20, G: 20, B: 20, A: 255},
	Foreground:      color.RGBA{R: 230, G: 230, B: 230, A: 255},
	RecoveryLevel:   int(qrcode.Highest),
	LogoScale:       0.2,
	LogoBorderWidth: 6,
}

// Generate renders the configured content as a PNG image.
func (c Config) Generate() ([]byte, error) {
	code, err := qrcode.New(c.Content, qrcode.RecoveryLevel(c.RecoveryLevel))
	if err != nil {
		return nil, err
	}
	code.BackgroundColor = c.Background
	code.ForegroundColor = c.Foreground

	dc := gg.NewContext(c.Size, c.Size)
	dc.SetColor(c.Background)
	dc.Clear()
	dc.DrawImage(code.Image(c.Size), 0, 0)

	if c.LogoPath != "" {
		logo, err := gg.LoadImage(c.LogoPath)
		if err != nil {
			return nil, err
		}
		logoSize := uint(float64(c.Size) * c.LogoScale)
		scaled := resize.Thumbnail(logoSize, logoSize, logo, resize.Lanczos3)

		// Badge behind the logo so it stays readable on dense codes.
		cx := float64(c.Size) / 2
		dc.SetColor(c.Background)
		dc.DrawCircle(cx, cx, float64(logoSize)/2+c.LogoBorderWidth)
		dc.Fill()
		dc.DrawImageAnchored(scaled, c.Size/2, c.Size/2, 0.5, 0.5)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, dc.Image()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
