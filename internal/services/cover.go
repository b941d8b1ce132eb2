package services

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"hash/fnv"
	"image"
	"image/color"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/yungbote/bookfront/internal/platform/logger"
)

const (
	coverWidth  = 600
	coverHeight = 900

	MinCoverWidth = 64
	MaxCoverWidth = coverWidth
)

// CoverService draws the stand-in cover shown when a book has no image or the
// image fails to load.
type CoverService interface {
	Placeholder(ctx context.Context, key, title, author string, width int) (bytes.Buffer, error)
}

type coverService struct {
	log *logger.Logger

	bgColors   []color.NRGBA
	titleFace  font.Face
	authorFace font.Face
}

var defaultCoverColors = []string{
	"#1F2937", "#312E81", "#7C2D12", "#064E3B", "#4C1D95", "#831843", "#0C4A6E", "#3F3F46",
}

func NewCoverService(log *logger.Logger) (CoverService, error) {
	if log == nil {
		log = logger.Nop()
	}
	serviceLog := log.With("service", "CoverService")

	bgColors := make([]color.NRGBA, 0, len(defaultCoverColors))
	for _, h := range defaultCoverColors {
		c, err := hexToNRGBA(h)
		if err != nil {
			return nil, fmt.Errorf("cover palette %q: %w", h, err)
		}
		bgColors = append(bgColors, c)
	}

	titleFace, err := loadFontFace(gobold.TTF, 58)
	if err != nil {
		return nil, fmt.Errorf("could not load cover title font: %w", err)
	}
	authorFace, err := loadFontFace(goregular.TTF, 30)
	if err != nil {
		return nil, fmt.Errorf("could not load cover author font: %w", err)
	}

	return &coverService{
		log:        serviceLog,
		bgColors:   bgColors,
		titleFace:  titleFace,
		authorFace: authorFace,
	}, nil
}

// Placeholder renders a PNG cover. The background colour is derived from key
// so the same book always gets the same cover. width is clamped to
// [MinCoverWidth, MaxCoverWidth]; the aspect ratio is fixed at 2:3.
func (cs *coverService) Placeholder(ctx context.Context, key, title, author string, width int) (bytes.Buffer, error) {
	var out bytes.Buffer
	if err := ctx.Err(); err != nil {
		return out, err
	}

	title = strings.TrimSpace(title)
	if title == "" {
		title = "Untitled"
	}

	dc := gg.NewContext(coverWidth, coverHeight)

	base := cs.pickColor(key)
	grad := gg.NewLinearGradient(0, 0, 0, coverHeight)
	grad.AddColorStop(0, base)
	grad.AddColorStop(1, darken(base, 0.55))
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, coverWidth, coverHeight)
	dc.Fill()

	// Spine shadow.
	dc.SetColor(color.NRGBA{A: 70})
	dc.DrawRectangle(0, 0, 24, coverHeight)
	dc.Fill()

	dc.SetColor(color.NRGBA{R: 255, G: 255, B: 255, A: 90})
	dc.SetLineWidth(3)
	dc.DrawRectangle(48, 48, coverWidth-96, coverHeight-96)
	dc.Stroke()

	dc.SetColor(color.White)
	dc.SetFontFace(cs.titleFace)
	dc.DrawStringWrapped(title, coverWidth/2, coverHeight*0.38, 0.5, 0.5, coverWidth-160, 1.3, gg.AlignCenter)

	if author = strings.TrimSpace(author); author != "" {
		dc.SetColor(color.NRGBA{R: 255, G: 255, B: 255, A: 210})
		dc.SetFontFace(cs.authorFace)
		dc.DrawStringWrapped(author, coverWidth/2, coverHeight*0.82, 0.5, 0.5, coverWidth-160, 1.2, gg.AlignCenter)
	}

	img := dc.Image()
	if w := clampCoverWidth(width); w != coverWidth {
		img = scaleCover(img, w)
	}

	if err := gg.NewContextForImage(img).EncodePNG(&out); err != nil {
		return out, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return out, nil
}

func clampCoverWidth(w int) int {
	switch {
	case w <= 0:
		return coverWidth
	case w < MinCoverWidth:
		return MinCoverWidth
	case w > MaxCoverWidth:
		return MaxCoverWidth
	default:
		return w
	}
}

func scaleCover(src image.Image, width int) image.Image {
	height := width * coverHeight / coverWidth
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}

func (cs *coverService) pickColor(key string) color.NRGBA {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strings.TrimSpace(key)))
	return cs.bgColors[int(h.Sum32()%uint32(len(cs.bgColors)))]
}

func darken(c color.NRGBA, f float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}

func hexToNRGBA(s string) (color.NRGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return color.NRGBA{}, fmt.Errorf("expected 6 hex chars")
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex")
	}
	return color.NRGBA{R: raw[0], G: raw[1], B: raw[2], A: 255}, nil
}

func loadFontFace(ttf []byte, size float64) (font.Face, error) {
	parsedFont, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TTF: %w", err)
	}
	return truetype.NewFace(parsedFont, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	}), nil
}
