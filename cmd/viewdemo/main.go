// Command viewdemo is a terminal viewer demonstrating the viewport
// engine: it pans and zooms an image inside the terminal window, mapping
// mouse and keyboard events onto the engine's abstract gestures and
// painting the rendered tiles with unicode half-blocks.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"log/slog"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/viewport"
)

func main() {
	var (
		filterName = flag.String("filter", "nearest", "resampling filter: nearest, bilinear, catmullrom")
		fit        = flag.Bool("fit", true, "fit the image to the window on load")
		clip       = flag.Float64("clip", 0.005, "histogram tail fraction clipped by the auto stretch")
		logPath    = flag.String("log", "", "write debug logs to this file")
	)
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: viewdemo [options] <image>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			log.Fatalf("open log file: %v", err)
		}
		defer f.Close()
		viewport.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	filter, err := parseFilter(*filterName)
	if err != nil {
		log.Fatal(err)
	}

	img, err := loadSamples(flag.Arg(0))
	if err != nil {
		log.Fatalf("load %s: %v", flag.Arg(0), err)
	}

	if err := run(img, flag.Arg(0), filter, *fit, *clip); err != nil {
		log.Fatal(err)
	}
}

func parseFilter(name string) (viewport.Filter, error) {
	switch name {
	case "nearest":
		return viewport.FilterNearest, nil
	case "bilinear":
		return viewport.FilterBilinear, nil
	case "catmullrom":
		return viewport.FilterCatmullRom, nil
	default:
		return 0, fmt.Errorf("unknown filter %q", name)
	}
}

// loadSamples decodes the image file and converts it to the engine's
// luminance sample buffer.
func loadSamples(path string) (*viewport.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}

	b := src.Bounds()
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			gray.Set(x, y, src.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return viewport.FromGray(gray)
}

// viewer drives one terminal session: it owns the tcell screen and the
// viewport session, translating events into gestures.
type viewer struct {
	screen  tcell.Screen
	session *viewport.Session
	img     *viewport.Image
	title   string

	zoomPct  float64
	dragging bool
}

func run(img *viewport.Image, title string, filter viewport.Filter, fit bool, clip float64) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()

	v := &viewer{screen: screen, img: img, title: title, zoomPct: 100}
	v.session = viewport.NewSession(
		viewport.WithFilter(filter),
		viewport.WithFitToView(fit),
		viewport.WithStretch(viewport.AutoStretch(img, clip)),
		viewport.WithScaleCallback(func(scale float64) {
			v.zoomPct = scale * 100
		}),
	)

	w, h := screen.Size()
	v.session.Resize(deviceSize(w, h))
	if err := v.session.LoadImage(img); err != nil {
		return err
	}
	v.draw()

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			w, h := ev.Size()
			v.session.Resize(deviceSize(w, h))
			screen.Sync()
		case *tcell.EventKey:
			if v.handleKey(ev) {
				return nil
			}
		case *tcell.EventMouse:
			v.handleMouse(ev)
		}
		v.draw()
	}
}

// deviceSize maps terminal cells to device pixels: one cell is one pixel
// wide and, with half-blocks, two pixels tall. The bottom row is
// reserved for the status bar.
func deviceSize(cells, rows int) (w, h int) {
	return cells, 2 * (rows - 1)
}

// cellToDevice maps a mouse position in cells to device pixels.
func cellToDevice(x, y int) viewport.Point {
	return viewport.Pt(float64(x), float64(2*y))
}

const panStep = 16

func (v *viewer) handleKey(ev *tcell.EventKey) (quit bool) {
	pan := func(dx, dy float64) {
		v.session.DragStart(viewport.Pt(0, 0))
		v.session.DragMove(viewport.Pt(-dx, -dy))
		v.session.DragEnd()
	}

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		pan(0, -panStep)
	case tcell.KeyDown:
		pan(0, panStep)
	case tcell.KeyLeft:
		pan(-panStep, 0)
	case tcell.KeyRight:
		pan(panStep, 0)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case '+', '=':
			v.session.ZoomCenter(viewport.ZoomIn)
		case '-', '_':
			v.session.ZoomCenter(viewport.ZoomOut)
		case 'h':
			pan(-panStep, 0)
		case 'j':
			pan(0, panStep)
		case 'k':
			pan(0, -panStep)
		case 'l':
			pan(panStep, 0)
		case '0':
			// Reload to reset scale and offset.
			if err := v.session.LoadImage(v.img); err == nil {
				v.dragging = false
			}
		}
	}
	return false
}

func (v *viewer) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	p := cellToDevice(x, y)
	btns := ev.Buttons()

	switch {
	case btns&tcell.WheelUp != 0:
		v.session.Wheel(viewport.ZoomIn, p)
	case btns&tcell.WheelDown != 0:
		v.session.Wheel(viewport.ZoomOut, p)
	case btns&tcell.Button1 != 0:
		if v.dragging {
			v.session.DragMove(p)
		} else {
			v.session.DragStart(p)
			v.dragging = true
		}
	default:
		if v.dragging {
			v.session.DragEnd()
			v.dragging = false
		}
	}
}

// draw paints the current frame: the tile as half-block cells, the rest
// of the screen black, and a one-line status bar.
func (v *viewer) draw() {
	v.screen.Clear()

	tile, err := v.session.Frame()
	if err == nil && !tile.Empty() {
		v.paintTile(tile)
	}
	v.paintStatus()
	v.screen.Show()
}

func (v *viewer) paintTile(tile *viewport.Tile) {
	for cy := tile.Dest.Min.Y / 2; 2*cy < tile.Dest.Max.Y; cy++ {
		for cx := tile.Dest.Min.X; cx < tile.Dest.Max.X; cx++ {
			top := tilePixel(tile, cx, 2*cy)
			bot := tilePixel(tile, cx, 2*cy+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bot.R), int32(bot.G), int32(bot.B)))
			v.screen.SetContent(cx, cy, '▀', nil, style)
		}
	}
}

// tilePixel returns the tile pixel at device coordinates, or black for
// device points the tile does not cover (half-block rows can straddle
// the tile edge).
func tilePixel(tile *viewport.Tile, x, y int) color.RGBA {
	if x < tile.Dest.Min.X || x >= tile.Dest.Max.X || y < tile.Dest.Min.Y || y >= tile.Dest.Max.Y {
		return color.RGBA{A: 255}
	}
	return tile.Pixels.RGBAAt(x-tile.Dest.Min.X, y-tile.Dest.Min.Y)
}

func (v *viewer) paintStatus() {
	w, rows := v.screen.Size()
	status := fmt.Sprintf(" %s  %dx%d  zoom %.0f%%  [wheel/+- zoom, drag/arrows pan, 0 reset, q quit]",
		v.title, v.img.Width(), v.img.Height(), v.zoomPct)
	style := tcell.StyleDefault.Reverse(true)
	for x := 0; x < w; x++ {
		r := ' '
		if x < len(status) {
			r = rune(status[x])
		}
		v.screen.SetContent(x, rows-1, r, nil, style)
	}
}
