// Package render plots cheque fields onto a character canvas for
// terminal preview and text-only printing. It consumes coordinates from
// the layout engine and text from the words converter; it owns the
// millimeter-to-cell scaling for its surface.
package render

import (
	"strings"

	"github.com/chequeflow/chequeflow/internal/model"
)

// Physical cheque dimensions in millimeters.
const (
	ChequeWidthMM  = 178
	ChequeHeightMM = 89
)

// Mode selects what the canvas shows.
type Mode int

const (
	// ModeTextOnly renders only the field text, for printing onto a
	// real cheque form.
	ModeTextOnly Mode = iota
	// ModePreview adds the cheque guide artwork behind the fields.
	ModePreview
)

// Cheque is everything the renderer needs for one cheque face.
type Cheque struct {
	Layout     model.Layout
	Offset     model.Offset
	Language   model.Language
	BankLabel  string
	Date       model.DateDigits
	Payee      string
	AmountText string
	AmountBox  string
	ACPayee    bool
	NoBearer   bool
}

// Rect is a field's occupied cell region, used by the TUI for mouse
// hit-testing.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) falls inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Renderer scales millimeters to terminal cells. Cell geometry is not
// square, so the two axes carry separate densities; CellsPerMM doubles
// as the surface's pointer calibration ratio.
type Renderer struct {
	CellsPerMM float64
	LinesPerMM float64
	Mode       Mode
}

// NewRenderer builds a renderer sized to the given canvas width in
// cells. Line density is derived from the cheque's aspect ratio with
// terminal cells assumed twice as tall as wide.
func NewRenderer(widthCells int, mode Mode) Renderer {
	if widthCells < 40 {
		widthCells = 40
	}
	cellsPerMM := float64(widthCells) / ChequeWidthMM
	return Renderer{
		CellsPerMM: cellsPerMM,
		LinesPerMM: cellsPerMM / 2,
		Mode:       mode,
	}
}

// Size returns the canvas dimensions in cells.
func (r Renderer) Size() (w, h int) {
	return r.cellX(ChequeWidthMM), r.cellY(ChequeHeightMM)
}

func (r Renderer) cellX(mm float64) int { return int(mm * r.CellsPerMM) }
func (r Renderer) cellY(mm float64) int { return int(mm * r.LinesPerMM) }

// FieldRect returns the cell region a field's text occupies once
// rendered, offset included.
func (r Renderer) FieldRect(c Cheque, id model.FieldID) (Rect, bool) {
	pos, ok := c.Layout[id]
	if !ok {
		return Rect{}, false
	}
	text := fieldText(c, id)
	return Rect{
		X: r.cellX(pos.X + c.Offset.X),
		Y: r.cellY(pos.Y + c.Offset.Y),
		W: max(len([]rune(text)), 1),
		H: 1,
	}, true
}

// Render draws the cheque into a newline-joined cell grid.
func (r Renderer) Render(c Cheque) string {
	w, h := r.Size()
	grid := make([][]rune, h)
	for y := range grid {
		grid[y] = make([]rune, w)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}

	if r.Mode == ModePreview {
		r.drawGuides(grid, c)
	}

	for _, id := range model.AllFields {
		pos, ok := c.Layout[id]
		if !ok {
			continue
		}
		text := fieldText(c, id)
		if text == "" {
			continue
		}
		place(grid, r.cellX(pos.X+c.Offset.X), r.cellY(pos.Y+c.Offset.Y), text)
	}

	lines := make([]string, h)
	for y := range grid {
		lines[y] = strings.TrimRight(string(grid[y]), " ")
	}
	return strings.Join(lines, "\n")
}

// fieldText resolves the printed text for each positionable field.
// Optional stamps render empty when toggled off.
func fieldText(c Cheque, id model.FieldID) string {
	switch id {
	case model.FieldDate:
		return c.Date.String()
	case model.FieldPayee:
		return c.Payee
	case model.FieldAmountText:
		return c.AmountText
	case model.FieldAmountNumber:
		return c.AmountBox
	case model.FieldACPayeeStamp:
		if !c.ACPayee {
			return ""
		}
		return "& A/C PAYEE ONLY"
	case model.FieldBearerStrike:
		if !c.NoBearer {
			return ""
		}
		return strings.Repeat("-", 8)
	default:
		return ""
	}
}

// drawGuides sketches the cheque form: border, date and amount boxes,
// the pay line, and the MICR strip.
func (r Renderer) drawGuides(grid [][]rune, c Cheque) {
	w, h := r.Size()
	for x := 0; x < w; x++ {
		grid[0][x] = '─'
		grid[h-1][x] = '─'
	}
	for y := 0; y < h; y++ {
		grid[y][0] = '│'
		grid[y][w-1] = '│'
	}
	grid[0][0], grid[0][w-1] = '┌', '┐'
	grid[h-1][0], grid[h-1][w-1] = '└', '┘'

	place(grid, r.cellX(5), r.cellY(5), c.BankLabel)
	if c.Language == model.LangThai {
		place(grid, r.cellX(110), r.cellY(10), "วันที่")
		place(grid, r.cellX(5), r.cellY(27), "จ่าย")
		place(grid, r.cellX(5), r.cellY(37), "จำนวนเงิน")
	} else {
		place(grid, r.cellX(110), r.cellY(10), "Date")
		place(grid, r.cellX(5), r.cellY(27), "Pay")
		place(grid, r.cellX(5), r.cellY(37), "Amount")
	}
	place(grid, r.cellX(60), r.cellY(80), "12345678 : 9999999 : 1234567890")
}

// place writes text into the grid, clipping at the edges. Off-canvas
// coordinates are legal; dragged-away fields simply vanish from view.
func place(grid [][]rune, x, y int, text string) {
	if y < 0 || y >= len(grid) {
		return
	}
	row := grid[y]
	for i, r := range []rune(text) {
		cx := x + i
		if cx < 0 || cx >= len(row) {
			continue
		}
		row[cx] = r
	}
}
