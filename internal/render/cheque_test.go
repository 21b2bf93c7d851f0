package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chequeflow/chequeflow/internal/model"
)

func testCheque() Cheque {
	return Cheque{
		Layout: model.Layout{
			model.FieldDate:         {X: 125, Y: 12},
			model.FieldPayee:        {X: 20, Y: 26},
			model.FieldAmountText:   {X: 25, Y: 36},
			model.FieldAmountNumber: {X: 125, Y: 35},
			model.FieldACPayeeStamp: {X: 8, Y: 8},
			model.FieldBearerStrike: {X: 148, Y: 28},
		},
		Language:   model.LangEnglish,
		BankLabel:  "Standard",
		Date:       model.SplitDate("2026-08-29", model.LangEnglish),
		Payee:      "ACME Supplies",
		AmountText: "One Hundred Baht Only",
		AmountBox:  "=100.00=",
		ACPayee:    true,
		NoBearer:   true,
	}
}

func TestRenderPlacesFieldText(t *testing.T) {
	r := NewRenderer(178, ModeTextOnly)
	out := r.Render(testCheque())

	assert.Contains(t, out, "ACME Supplies")
	assert.Contains(t, out, "One Hundred Baht Only")
	assert.Contains(t, out, "=100.00=")
	assert.Contains(t, out, "& A/C PAYEE ONLY")
	assert.Contains(t, out, "29 08 2026")
}

func TestRenderRespectsToggles(t *testing.T) {
	r := NewRenderer(178, ModeTextOnly)
	c := testCheque()
	c.ACPayee = false
	c.NoBearer = false

	out := r.Render(c)
	assert.NotContains(t, out, "A/C PAYEE")
}

func TestRenderOffsetShiftsEverything(t *testing.T) {
	r := NewRenderer(178, ModeTextOnly)
	c := testCheque()

	base := r.Render(c)
	c.Offset = model.Offset{X: 10, Y: 0}
	shifted := r.Render(c)

	baseLine := lineContaining(t, base, "ACME")
	shiftedLine := lineContaining(t, shifted, "ACME")
	assert.Equal(t, strings.Index(baseLine, "ACME")+10, strings.Index(shiftedLine, "ACME"))
}

func TestRenderClipsOffCanvasFields(t *testing.T) {
	r := NewRenderer(178, ModeTextOnly)
	c := testCheque()
	c.Layout[model.FieldPayee] = model.Position{X: -500, Y: -500}

	// Must not panic, and the field simply disappears from view.
	out := r.Render(c)
	assert.NotContains(t, out, "ACME")
}

func TestFieldRectTracksOffset(t *testing.T) {
	r := NewRenderer(178, ModeTextOnly)
	c := testCheque()

	rect, ok := r.FieldRect(c, model.FieldPayee)
	require.True(t, ok)
	assert.Equal(t, 20, rect.X)
	assert.True(t, rect.Contains(rect.X, rect.Y))
	assert.False(t, rect.Contains(rect.X-1, rect.Y))

	c.Offset = model.Offset{X: 5, Y: 2}
	shifted, _ := r.FieldRect(c, model.FieldPayee)
	assert.Equal(t, 25, shifted.X)

	_, ok = r.FieldRect(c, model.FieldID("watermark"))
	assert.False(t, ok)
}

func TestPreviewModeDrawsGuides(t *testing.T) {
	r := NewRenderer(178, ModePreview)
	out := r.Render(testCheque())

	assert.Contains(t, out, "┌")
	assert.Contains(t, out, "Pay")
	assert.Contains(t, out, "12345678 : 9999999 : 1234567890")
}

func lineContaining(t *testing.T, s, substr string) string {
	t.Helper()
	for _, line := range strings.Split(s, "\n") {
		if strings.Contains(line, substr) {
			return line
		}
	}
	t.Fatalf("no line contains %q", substr)
	return ""
}
