// Package visuals renders the charts of the census income exercise.
//
// Each chart is built as a Figure: a grid of plots with an overall title. A Figure is drawn onto a canvas of any
// format gonum/plot supports (png, jpg, tif, svg, pdf, eps), saved to a file, or shown by writing it to a
// uniquely named file in the temporary directory.
package visuals

import (
	"image/color"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgeps"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

// DefaultFormat is the image format figures are shown in.
const DefaultFormat = "png"

var (
	// ErrNoData is returned when a chart would have nothing to draw.
	ErrNoData = errors.New("no data to plot")

	titleSize = vg.Points(16)
	titlePad  = vg.Points(6)
)

// Figure is a grid of plots under a common title.
type Figure struct {
	Title  string
	Width  vg.Length
	Height vg.Length
	// Panels are indexed by row then column. Every row has the same number of columns.
	Panels [][]*plot.Plot
}

// NewFigure creates a figure with an empty rows by cols grid.
func NewFigure(title string, width, height vg.Length, rows, cols int) *Figure {
	panels := make([][]*plot.Plot, rows)
	for i := range panels {
		panels[i] = make([]*plot.Plot, cols)
	}
	return &Figure{
		Title:  title,
		Width:  width,
		Height: height,
		Panels: panels,
	}
}

// Rows is the number of rows in the grid.
func (f *Figure) Rows() int {
	return len(f.Panels)
}

// Cols is the number of columns in the grid.
func (f *Figure) Cols() int {
	if len(f.Panels) == 0 {
		return 0
	}
	return len(f.Panels[0])
}

// Draw draws the title along the top of the canvas and the panels, aligned, below it.
func (f *Figure) Draw(dc draw.Canvas) {
	body := dc
	if len(f.Title) > 0 {
		sty := titleStyle()
		pt := vg.Point{X: dc.Min.X + (dc.Max.X-dc.Min.X)/2, Y: dc.Max.Y - titlePad}
		dc.FillText(sty, pt, f.Title)
		body = draw.Crop(dc, 0, 0, 0, -(sty.Height(f.Title) + 2*titlePad))
	}

	if f.Rows() == 0 || f.Cols() == 0 {
		return
	}
	tiles := draw.Tiles{
		Rows:      f.Rows(),
		Cols:      f.Cols(),
		PadX:      vg.Millimeter * 6,
		PadY:      vg.Millimeter * 6,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}
	canvases := plot.Align(f.Panels, tiles, body)
	for j := range f.Panels {
		for i, p := range f.Panels[j] {
			if p != nil {
				p.Draw(canvases[j][i])
			}
		}
	}
}

// Render draws the figure in the given image format and writes it to w.
func (f *Figure) Render(w io.Writer, format string) error {
	c, err := newCanvas(f.Width, f.Height, format)
	if err != nil {
		return err
	}
	f.Draw(draw.New(c))
	_, err = c.WriteTo(w)
	return errors.Wrap(err, "writing figure")
}

// formats are the image formats a figure can be rendered in.
var formats = map[string]func(w, h vg.Length) vg.CanvasWriterTo{
	"png":  func(w, h vg.Length) vg.CanvasWriterTo { return vgimg.PngCanvas{Canvas: vgimg.New(w, h)} },
	"jpg":  func(w, h vg.Length) vg.CanvasWriterTo { return vgimg.JpegCanvas{Canvas: vgimg.New(w, h)} },
	"jpeg": func(w, h vg.Length) vg.CanvasWriterTo { return vgimg.JpegCanvas{Canvas: vgimg.New(w, h)} },
	"tif":  func(w, h vg.Length) vg.CanvasWriterTo { return vgimg.TiffCanvas{Canvas: vgimg.New(w, h)} },
	"tiff": func(w, h vg.Length) vg.CanvasWriterTo { return vgimg.TiffCanvas{Canvas: vgimg.New(w, h)} },
	"svg":  func(w, h vg.Length) vg.CanvasWriterTo { return vgsvg.New(w, h) },
	"pdf":  func(w, h vg.Length) vg.CanvasWriterTo { return vgpdf.New(w, h) },
	"eps":  func(w, h vg.Length) vg.CanvasWriterTo { return vgeps.New(w, h) },
}

func newCanvas(w, h vg.Length, format string) (vg.CanvasWriterTo, error) {
	fn, ok := formats[strings.ToLower(format)]
	if !ok {
		return nil, errors.Errorf("unsupported image format %q", format)
	}
	return fn(w, h), nil
}

// Save renders the figure to a file, choosing the format from the file extension.
func (f *Figure) Save(path string) (err error) {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	if len(format) == 0 {
		return errors.Errorf("cannot tell the image format of %s", path)
	}
	if _, ok := formats[strings.ToLower(format)]; !ok {
		return errors.Errorf("unsupported image format %q", format)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	return f.Render(file, format)
}

// Show writes the figure to a new file in the temporary directory and returns its path.
func Show(f *Figure, format string) (string, error) {
	if len(format) == 0 {
		format = DefaultFormat
	}
	path := filepath.Join(os.TempDir(), "census-"+uuid.New().String()+"."+format)
	if err := f.Save(path); err != nil {
		return "", err
	}
	log.Printf("%q written to %s\n", f.Title, path)
	return path, nil
}

func titleStyle() text.Style {
	sty := plot.New().Title.TextStyle
	sty.Font.Size = titleSize
	sty.XAlign = text.XCenter
	sty.YAlign = text.YTop
	return sty
}

// hex parses one of the fixed colours used by the charts.
func hex(s string) color.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// pixels converts a screen size at 96 dpi to a canvas length.
func pixels(n float64) vg.Length {
	return vg.Length(n) * vg.Inch / 96
}

// barWidth approximates a bar width given in data units for a panel that is panelWidth wide and spans span data
// units along x.
func barWidth(panelWidth vg.Length, span, units float64) vg.Length {
	return panelWidth * 0.75 * vg.Length(units/span)
}
