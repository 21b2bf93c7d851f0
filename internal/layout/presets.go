// Package layout maintains the mapping of cheque fields to millimeter
// coordinates for the active bank preset and user, including the
// interactive drag state machine and persistence of the result.
package layout

import (
	"github.com/chequeflow/chequeflow/internal/model"
)

// DefaultPresetID is the preset a fresh user starts on.
const DefaultPresetID = "standard"

// Preset is a shipped default layout for one bank's printed cheque
// geometry. Presets are immutable at runtime; they are the reset source
// for a user's layout.
type Preset struct {
	ID     string
	Label  string
	Layout model.Layout
}

// presetOrder fixes the catalog display order.
var presetOrder = []string{"standard", "kbank", "scb", "bbl", "ktb", "ttb"}

var presetCatalog = map[string]Preset{
	"standard": {
		ID:    "standard",
		Label: "มาตรฐานกลาง (Standard)",
		Layout: model.Layout{
			model.FieldDate:         {X: 125, Y: 12},
			model.FieldPayee:        {X: 20, Y: 26},
			model.FieldAmountText:   {X: 25, Y: 36},
			model.FieldAmountNumber: {X: 125, Y: 35},
			model.FieldACPayeeStamp: {X: 8, Y: 8},
			model.FieldBearerStrike: {X: 148, Y: 28},
		},
	},
	"kbank": {
		ID:    "kbank",
		Label: "กสิกรไทย (KBank)",
		Layout: model.Layout{
			model.FieldDate:         {X: 138, Y: 8},
			model.FieldPayee:        {X: 20, Y: 22},
			model.FieldAmountText:   {X: 30, Y: 32},
			model.FieldAmountNumber: {X: 130, Y: 33},
			model.FieldACPayeeStamp: {X: 5, Y: 5},
			model.FieldBearerStrike: {X: 155, Y: 28},
		},
	},
	"scb": {
		ID:    "scb",
		Label: "ไทยพาณิชย์ (SCB)",
		Layout: model.Layout{
			model.FieldDate:         {X: 130, Y: 10},
			model.FieldPayee:        {X: 15, Y: 24},
			model.FieldAmountText:   {X: 20, Y: 34},
			model.FieldAmountNumber: {X: 135, Y: 34},
			model.FieldACPayeeStamp: {X: 8, Y: 8},
			model.FieldBearerStrike: {X: 150, Y: 28},
		},
	},
	"bbl": {
		ID:    "bbl",
		Label: "กรุงเทพ (BBL)",
		Layout: model.Layout{
			model.FieldDate:         {X: 132, Y: 9},
			model.FieldPayee:        {X: 18, Y: 25},
			model.FieldAmountText:   {X: 22, Y: 35},
			model.FieldAmountNumber: {X: 132, Y: 35},
			model.FieldACPayeeStamp: {X: 10, Y: 10},
			model.FieldBearerStrike: {X: 152, Y: 28},
		},
	},
	"ktb": {
		ID:    "ktb",
		Label: "กรุงไทย (KTB)",
		Layout: model.Layout{
			model.FieldDate:         {X: 135, Y: 11},
			model.FieldPayee:        {X: 20, Y: 26},
			model.FieldAmountText:   {X: 25, Y: 36},
			model.FieldAmountNumber: {X: 135, Y: 36},
			model.FieldACPayeeStamp: {X: 8, Y: 8},
			model.FieldBearerStrike: {X: 150, Y: 28},
		},
	},
	"ttb": {
		ID:    "ttb",
		Label: "ทีทีบี (ttb)",
		Layout: model.Layout{
			model.FieldDate:         {X: 136, Y: 10},
			model.FieldPayee:        {X: 20, Y: 25},
			model.FieldAmountText:   {X: 28, Y: 35},
			model.FieldAmountNumber: {X: 136, Y: 35},
			model.FieldACPayeeStamp: {X: 6, Y: 6},
			model.FieldBearerStrike: {X: 154, Y: 28},
		},
	},
}

// PresetByID looks up a preset. The layout returned is a clone; callers
// may mutate it freely.
func PresetByID(id string) (Preset, bool) {
	p, ok := presetCatalog[id]
	if !ok {
		return Preset{}, false
	}
	p.Layout = p.Layout.Clone()
	return p, true
}

// Presets returns the catalog in display order.
func Presets() []Preset {
	out := make([]Preset, 0, len(presetOrder))
	for _, id := range presetOrder {
		p, _ := PresetByID(id)
		out = append(out, p)
	}
	return out
}

// PresetLabel returns the display label for a preset ID, or the ID
// itself when unknown.
func PresetLabel(id string) string {
	if p, ok := presetCatalog[id]; ok {
		return p.Label
	}
	return id
}
