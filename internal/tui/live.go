package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/hexfield/internal/render"
	"github.com/san-kum/hexfield/internal/world"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// LiveRenderer repaints a Braille canvas to a plain terminal after every
// world tick. It is the no-frills alternative to the Bubble Tea view.
type LiveRenderer struct {
	out    io.Writer
	canvas *render.Canvas
	title  string
}

var _ world.Observer = (*LiveRenderer)(nil)

func NewLiveRenderer(out io.Writer, canvas *render.Canvas, title string) *LiveRenderer {
	return &LiveRenderer{out: out, canvas: canvas, title: title}
}

func (r *LiveRenderer) OnTick(tick int, dots []world.Dot) {
	r.render(tick, len(dots))
}

func (r *LiveRenderer) render(tick, dots int) {
	var b strings.Builder
	b.WriteString(clearScreen)
	b.WriteString(fmt.Sprintf("  %s  tick=%d  dots=%d\n", r.title, tick, dots))
	b.WriteString("  " + strings.Repeat("-", r.canvas.Width) + "\n")

	for _, line := range strings.Split(r.canvas.String(), "\n") {
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("  " + strings.Repeat("-", r.canvas.Width) + "\n")
	fmt.Fprint(r.out, b.String())
}

func (r *LiveRenderer) Start() { fmt.Fprint(r.out, hideCursor) }
func (r *LiveRenderer) Stop()  { fmt.Fprint(r.out, showCursor) }
