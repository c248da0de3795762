package spectrum

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/vector"

	"miner-radar.klederson.com/internal/config"
	"miner-radar.klederson.com/internal/signal"
)

const (
	fontSize     = 12.0
	dpi          = 72.0
	barHalfWidth = 3
	markerRadius = 4.0
	dashLen      = 2
)

var imageMargins = Margins{Top: 30, Right: 24, Bottom: 44, Left: 56}

var (
	colorBackground = hexColor("#ffffff")
	colorGrid       = hexColor("#e2e8f0")
	colorAxis       = hexColor("#94a3b8")
	colorText       = hexColor("#1e293b")
)

func hexColor(s string) color.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.Black
	}
	return c
}

// ImageRenderer draws the spectrum chart onto a raster image, used when a
// report is exported.
type ImageRenderer struct {
	width, height int
	context       *freetype.Context
	face          font.Face
}

// NewImageRenderer prepares a renderer for images of the given size.
func NewImageRenderer(width, height int) (*ImageRenderer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", width, height)
	}

	parsed, err := freetype.ParseFont(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}

	ctx := freetype.NewContext()
	ctx.SetDPI(dpi)
	ctx.SetFont(parsed)
	ctx.SetFontSize(fontSize)
	ctx.SetHinting(font.HintingNone)

	return &ImageRenderer{
		width:   width,
		height:  height,
		context: ctx,
		face: truetype.NewFace(parsed, &truetype.Options{
			Size:    fontSize,
			DPI:     dpi,
			Hinting: font.HintingNone,
		}),
	}, nil
}

// Close releases the font face.
func (r *ImageRenderer) Close() error {
	if r.face != nil {
		return r.face.Close()
	}
	return nil
}

// Draw renders the batch. The layout and tier colours match the terminal
// chart.
func (r *ImageRenderer) Draw(signals []signal.Signal, base float64) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	draw.Draw(img, img.Bounds(), image.NewUniform(colorBackground), image.Point{}, draw.Src)

	r.context.SetDst(img)
	r.context.SetClip(img.Bounds())

	l := NewLayout(base, float64(r.width), float64(r.height), imageMargins)
	left, right := round(l.Left()), round(l.Right())
	top, bottom := round(l.Top()), round(l.Bottom())

	metrics := r.face.Metrics()
	ascent := metrics.Ascent.Round()

	for _, t := range l.FrequencyTicks() {
		x := round(t.Pos)
		for y := top; y < bottom; y += 2 * dashLen {
			for d := 0; d < dashLen; d++ {
				img.Set(x, y+d, colorGrid)
			}
		}
		label := strconv.FormatFloat(t.Value, 'f', 0, 64)
		if err := r.text(label, x, bottom+ascent+4, alignCenter, colorText); err != nil {
			return nil, err
		}
	}
	for _, t := range l.AmplitudeTicks() {
		y := round(t.Pos)
		for x := left; x < right; x += 2 * dashLen {
			for d := 0; d < dashLen; d++ {
				img.Set(x+d, y, colorGrid)
			}
		}
		label := strconv.FormatFloat(t.Value, 'f', 0, 64)
		if err := r.text(label, left-5, y+ascent/2, alignRight, colorText); err != nil {
			return nil, err
		}
	}

	for x := left; x <= right; x++ {
		img.Set(x, bottom, colorAxis)
	}
	for y := top; y <= bottom; y++ {
		img.Set(left, y, colorAxis)
	}

	if err := r.text(titleFrequency, r.width/2, r.height-6, alignCenter, colorText); err != nil {
		return nil, err
	}
	if err := r.text(titleAmplitude, 6, ascent+4, alignLeft, colorText); err != nil {
		return nil, err
	}

	if len(signals) == 0 {
		err := r.text(Placeholder, r.width/2, (top+bottom)/2, alignCenter, colorAxis)
		if err != nil {
			return nil, err
		}
		return img, nil
	}

	for _, s := range signals {
		x := l.X(s.Frequency)
		if math.IsNaN(x) || math.IsInf(x, 0) || x < l.Left() || x > l.Right() {
			continue
		}
		y := l.Y(math.Max(0, math.Min(config.SpectrumMaxAmp, s.Amplitude)))
		c := hexColor(TierOf(s.SuspicionLevel).Hex())
		src := image.NewUniform(c)

		bar := image.Rect(round(x)-barHalfWidth, round(y), round(x)+barHalfWidth, bottom)
		draw.Draw(img, bar.Intersect(img.Bounds()), src, image.Point{}, draw.Over)
		fillCircle(img, x, y, markerRadius, src)

		label := strconv.FormatFloat(s.Frequency, 'f', 1, 64)
		if err := r.text(label, round(x), round(y)-10, alignCenter, colorText); err != nil {
			return nil, err
		}
	}
	return img, nil
}

type align int

const (
	alignLeft align = iota
	alignCenter
	alignRight
)

// text draws s with its baseline at y, positioned horizontally around x.
func (r *ImageRenderer) text(s string, x, y int, a align, c color.Color) error {
	width := font.MeasureString(r.face, s).Round()
	switch a {
	case alignCenter:
		x -= width / 2
	case alignRight:
		x -= width
	}

	r.context.SetSrc(image.NewUniform(c))
	if _, err := r.context.DrawString(s, freetype.Pt(x, y)); err != nil {
		return fmt.Errorf("drawing label %q: %w", s, err)
	}
	return nil
}

// fillCircle rasterises an anti-aliased disc approximated by a polygon.
func fillCircle(img *image.RGBA, cx, cy, radius float64, src image.Image) {
	const segments = 24

	b := img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.MoveTo(float32(cx+radius), float32(cy))
	for i := 1; i < segments; i++ {
		a := 2 * math.Pi * float64(i) / segments
		z.LineTo(float32(cx+radius*math.Cos(a)), float32(cy+radius*math.Sin(a)))
	}
	z.ClosePath()
	z.Draw(img, b, src, image.Point{})
}
