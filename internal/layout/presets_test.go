package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chequeflow/chequeflow/internal/model"
)

func TestPresetCatalog(t *testing.T) {
	presets := Presets()
	require.Len(t, presets, 6)
	assert.Equal(t, DefaultPresetID, presets[0].ID)

	for _, p := range presets {
		for _, field := range model.AllFields {
			_, ok := p.Layout[field]
			assert.True(t, ok, "preset %s must position field %s", p.ID, field)
		}
	}
}

func TestPresetByIDReturnsClone(t *testing.T) {
	first, ok := PresetByID("kbank")
	require.True(t, ok)
	first.Layout[model.FieldDate] = model.Position{X: 0, Y: 0}

	second, _ := PresetByID("kbank")
	assert.Equal(t, model.Position{X: 138, Y: 8}, second.Layout[model.FieldDate],
		"mutating a handed-out preset layout must not corrupt the catalog")
}

func TestPresetByIDUnknown(t *testing.T) {
	_, ok := PresetByID("bank-of-nowhere")
	assert.False(t, ok)
}

func TestPresetLabel(t *testing.T) {
	assert.Equal(t, "กสิกรไทย (KBank)", PresetLabel("kbank"))
	assert.Equal(t, "mystery", PresetLabel("mystery"))
}
