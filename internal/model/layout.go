package model

// Language selects the written-text language for the cheque face.
type Language string

// Supported cheque languages.
const (
	LangThai    Language = "TH"
	LangEnglish Language = "EN"
)

// Valid reports whether the language is one of the supported selectors.
func (l Language) Valid() bool {
	return l == LangThai || l == LangEnglish
}

// FieldID identifies one positionable field on the cheque canvas.
type FieldID string

// The six positionable cheque fields.
const (
	FieldDate         FieldID = "date"
	FieldPayee        FieldID = "payee"
	FieldAmountText   FieldID = "amountText"
	FieldAmountNumber FieldID = "amountNumber"
	FieldACPayeeStamp FieldID = "acPayeeStamp"
	FieldBearerStrike FieldID = "bearerStrike"
)

// AllFields lists every positionable field in render order.
var AllFields = []FieldID{
	FieldDate,
	FieldPayee,
	FieldAmountText,
	FieldAmountNumber,
	FieldACPayeeStamp,
	FieldBearerStrike,
}

// Valid reports whether the field identifier is one of the known fields.
func (f FieldID) Valid() bool {
	for _, known := range AllFields {
		if f == known {
			return true
		}
	}
	return false
}

// Position is a field anchor on the cheque, in millimeters from the
// top-left corner of the canvas.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Layout is the complete field-to-coordinate mapping for one bank preset.
type Layout map[FieldID]Position

// Clone returns an independent copy of the layout. Presets hand out clones
// so per-user customization never mutates the shipped defaults.
func (l Layout) Clone() Layout {
	if l == nil {
		return nil
	}
	out := make(Layout, len(l))
	for id, pos := range l {
		out[id] = pos
	}
	return out
}

// Offset is a canvas-wide translation in millimeters, applied after
// per-field positioning.
type Offset struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Font size bounds for the print settings slider.
const (
	MinFontSize = 10
	MaxFontSize = 32
)

// FontConfig describes the typeface used on the cheque face.
type FontConfig struct {
	Family string `json:"family"`
	Size   int    `json:"size"`
	Bold   bool   `json:"isBold"`
}

// DefaultFont returns the font configuration a fresh user starts with.
func DefaultFont() FontConfig {
	return FontConfig{Family: "Sarabun", Size: 16}
}

// FontFamilies lists the selectable cheque typefaces.
var FontFamilies = []string{"Sarabun", "Charmonman", "Krub", "Courier New"}

// UserConfig is the full persisted settings unit for one user identity:
// the active layout, the global offset, the selected preset, the cheque
// language, and the font. It is written whole on every settings-affecting
// action and read once at session or user-switch start.
type UserConfig struct {
	Layout    Layout     `json:"positions"`
	Offset    Offset     `json:"offsets"`
	PresetID  string     `json:"selectedBank"`
	Language  Language   `json:"lang"`
	Font      FontConfig `json:"fontConfig"`
	UpdatedAt int64      `json:"updatedAt"`
}
