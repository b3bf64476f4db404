package export

import (
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"
	"time"

	"github.com/san-kum/hexfield/internal/geom"
	"github.com/san-kum/hexfield/internal/render"
	"github.com/san-kum/hexfield/internal/world"
)

// paletteSteps is the number of blend shades between background and dot.
const paletteSteps = 16

// Recorder captures frames from an Image surface into an animated GIF.
// Add it as a world.Observer to capture once per tick.
type Recorder struct {
	img     *render.Image
	palette color.Palette
	delay   int
	frames  []*image.Paletted
}

var _ world.Observer = (*Recorder)(nil)

func NewRecorder(img *render.Image, interval time.Duration, palette color.Palette) *Recorder {
	delay := int(interval / (10 * time.Millisecond))
	if delay < 1 {
		delay = 1
	}
	return &Recorder{img: img, palette: palette, delay: delay}
}

// Palette spans background to dot so anti-aliased or translucent dots keep
// their shade after quantisation.
func Palette(background, dot geom.Color) color.Palette {
	bg := color.NRGBAModel.Convert(background).(color.NRGBA)
	fg := color.NRGBAModel.Convert(dot.WithAlpha(1)).(color.NRGBA)

	p := make(color.Palette, 0, paletteSteps+1)
	for i := 0; i <= paletteSteps; i++ {
		t := float64(i) / paletteSteps
		p = append(p, color.RGBA{
			R: lerp(bg.R, fg.R, t),
			G: lerp(bg.G, fg.G, t),
			B: lerp(bg.B, fg.B, t),
			A: 0xff,
		})
	}
	return p
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}

func (r *Recorder) OnTick(_ int, _ []world.Dot) { r.Capture() }

// Capture snapshots the current surface contents.
func (r *Recorder) Capture() {
	src := r.img.Snapshot()
	bounds := src.Bounds()
	frame := image.NewPaletted(bounds, r.palette)
	draw.Draw(frame, bounds, src, bounds.Min, draw.Src)
	r.frames = append(r.frames, frame)
}

func (r *Recorder) Frames() int { return len(r.frames) }

func (r *Recorder) WriteGIF(w io.Writer) error {
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range r.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, r.delay)
	}
	return gif.EncodeAll(w, &anim)
}
