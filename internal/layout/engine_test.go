package layout

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chequeflow/chequeflow/internal/common"
	"github.com/chequeflow/chequeflow/internal/model"
	"github.com/chequeflow/chequeflow/internal/storage"
)

func newTestEngine(t *testing.T, store *storage.MemoryStore, ratio float64) *Engine {
	t.Helper()
	return NewEngine(store,
		WithCalibrator(CalibratorFunc(func() float64 { return ratio })),
	)
}

func loadUser(t *testing.T, e *Engine, userID string) {
	t.Helper()
	require.NoError(t, e.LoadForUser(context.Background(), userID))
}

func TestSelectPresetThenResetMatchesDefaults(t *testing.T) {
	ctx := context.Background()

	for _, preset := range Presets() {
		t.Run(preset.ID, func(t *testing.T) {
			e := newTestEngine(t, storage.NewMemoryStore(), 2.0)
			loadUser(t, e, "u_email_tester")

			e.SelectPreset(ctx, preset.ID)

			// Customize, then reset; the reset must restore the shipped
			// defaults exactly.
			e.BeginDrag(model.FieldPayee, Pointer{X: 0, Y: 0})
			e.UpdateDrag(Pointer{X: 20, Y: 20})
			e.EndDrag(ctx)
			e.ApplyGlobalOffset(ctx, model.Offset{X: 3, Y: -2})

			e.ResetToPresetDefault(ctx)

			assert.Equal(t, preset.Layout, e.Layout())
			assert.Equal(t, model.Offset{}, e.Offset())
		})
	}
}

func TestDragWithoutMovementLeavesPositionUnchanged(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t, storage.NewMemoryStore(), 2.0)
	loadUser(t, e, "u_email_tester")

	before := e.Layout()[model.FieldDate]
	e.BeginDrag(model.FieldDate, Pointer{X: 50, Y: 50})
	e.EndDrag(ctx)

	assert.Equal(t, before, e.Layout()[model.FieldDate])
}

func TestDragDeltaUsesCalibratedRatio(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t, storage.NewMemoryStore(), 2.0)
	loadUser(t, e, "u_email_tester")

	initial := e.Layout()[model.FieldPayee]

	e.BeginDrag(model.FieldPayee, Pointer{X: 100, Y: 200})
	e.UpdateDrag(Pointer{X: 104, Y: 208})

	got := e.Layout()[model.FieldPayee]
	assert.InDelta(t, initial.X+2, got.X, 1e-9)
	assert.InDelta(t, initial.Y+4, got.Y, 1e-9)

	// A second update must use the original reference frame, not
	// re-baseline on every move.
	e.UpdateDrag(Pointer{X: 110, Y: 210})
	got = e.Layout()[model.FieldPayee]
	assert.InDelta(t, initial.X+5, got.X, 1e-9)
	assert.InDelta(t, initial.Y+5, got.Y, 1e-9)

	e.EndDrag(ctx)
}

func TestDragAllowsOffCanvasPositions(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t, storage.NewMemoryStore(), 1.0)
	loadUser(t, e, "u_email_tester")

	e.BeginDrag(model.FieldBearerStrike, Pointer{})
	e.UpdateDrag(Pointer{X: -500, Y: -500})
	e.EndDrag(ctx)

	got := e.Layout()[model.FieldBearerStrike]
	assert.Less(t, got.X, 0.0)
	assert.Less(t, got.Y, 0.0)
}

func TestBeginDragNoOps(t *testing.T) {
	e := newTestEngine(t, storage.NewMemoryStore(), 2.0)
	loadUser(t, e, "u_email_tester")

	// Unknown field: nothing starts.
	e.BeginDrag(model.FieldID("watermark"), Pointer{})
	_, active := e.Dragging()
	assert.False(t, active)

	// Second BeginDrag while a drag is in progress: ignored.
	e.BeginDrag(model.FieldDate, Pointer{X: 10, Y: 10})
	e.BeginDrag(model.FieldPayee, Pointer{X: 99, Y: 99})
	field, active := e.Dragging()
	assert.True(t, active)
	assert.Equal(t, model.FieldDate, field)

	// Moves still apply to the first drag's reference frame.
	before := e.Layout()[model.FieldPayee]
	e.UpdateDrag(Pointer{X: 12, Y: 10})
	assert.Equal(t, before, e.Layout()[model.FieldPayee])
}

func TestEndDragPersistsLayout(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	e := newTestEngine(t, store, 1.0)
	loadUser(t, e, "u_email_tester")

	e.BeginDrag(model.FieldAmountText, Pointer{})
	e.UpdateDrag(Pointer{X: 5, Y: 5})
	e.EndDrag(ctx)

	raw, ok, err := store.Get(ctx, storage.UserSettingsKey("u_email_tester"))
	require.NoError(t, err)
	require.True(t, ok, "EndDrag should persist the layout")

	var cfg model.UserConfig
	require.NoError(t, json.Unmarshal([]byte(raw), &cfg))
	assert.Equal(t, e.Layout()[model.FieldAmountText], cfg.Layout[model.FieldAmountText])
	assert.NotZero(t, cfg.UpdatedAt)
}

func TestEndDragWithoutActiveDragIsNoOp(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	e := newTestEngine(t, store, 1.0)
	loadUser(t, e, "u_email_tester")

	e.EndDrag(ctx)

	_, ok, err := store.Get(ctx, storage.UserSettingsKey("u_email_tester"))
	require.NoError(t, err)
	assert.False(t, ok, "an idle EndDrag must not persist anything")
}

func TestImplicitReleaseReturnsToIdleAndPersists(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	e := newTestEngine(t, store, 1.0)
	loadUser(t, e, "u_email_tester")

	e.BeginDrag(model.FieldDate, Pointer{})
	e.UpdateDrag(Pointer{X: 7, Y: 0})
	e.ImplicitRelease(ctx)

	_, active := e.Dragging()
	assert.False(t, active, "implicit release must return the state machine to idle")

	_, ok, err := store.Get(ctx, storage.UserSettingsKey("u_email_tester"))
	require.NoError(t, err)
	assert.True(t, ok)

	// A fresh drag can start afterwards.
	e.BeginDrag(model.FieldDate, Pointer{})
	_, active = e.Dragging()
	assert.True(t, active)
	e.EndDrag(ctx)
}

func TestPersistenceFailureKeepsInMemoryState(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	var warnings []string
	e := NewEngine(store,
		WithCalibrator(CalibratorFunc(func() float64 { return 1.0 })),
		WithWarnFunc(func(msg string, _ error) { warnings = append(warnings, msg) }),
	)
	loadUser(t, e, "u_email_tester")

	store.FailWith(errors.New("quota exceeded"))

	e.BeginDrag(model.FieldPayee, Pointer{})
	e.UpdateDrag(Pointer{X: 10, Y: 0})
	moved := e.Layout()[model.FieldPayee]
	e.EndDrag(ctx)

	assert.NotEmpty(t, warnings, "persistence failure must surface a warning")
	assert.Equal(t, moved, e.Layout()[model.FieldPayee],
		"in-memory layout remains authoritative when saving fails")

	// The session keeps working after the failure.
	store.FailWith(nil)
	e.ApplyGlobalOffset(ctx, model.Offset{X: 1})
	assert.Equal(t, model.Offset{X: 1}, e.Offset())
}

func TestLoadForUserIsolation(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	e := newTestEngine(t, store, 1.0)

	loadUser(t, e, "u_email_a")
	e.SelectPreset(ctx, "kbank")
	e.BeginDrag(model.FieldDate, Pointer{})
	e.UpdateDrag(Pointer{X: 3, Y: 3})
	e.EndDrag(ctx)
	savedForA := e.Layout()

	// Switching users must never leak A's settings into B.
	loadUser(t, e, "u_email_b")
	standard, _ := PresetByID(DefaultPresetID)
	assert.Equal(t, DefaultPresetID, e.Config().PresetID)
	assert.Equal(t, standard.Layout, e.Layout())

	// A's settings are restored intact on switch-back.
	loadUser(t, e, "u_email_a")
	assert.Equal(t, "kbank", e.Config().PresetID)
	assert.Equal(t, savedForA, e.Layout())
}

func TestLoadForUserResetsDragState(t *testing.T) {
	e := newTestEngine(t, storage.NewMemoryStore(), 1.0)
	loadUser(t, e, "u_email_a")

	e.BeginDrag(model.FieldDate, Pointer{})
	loadUser(t, e, "u_email_b")

	_, active := e.Dragging()
	assert.False(t, active, "a user switch must not carry a drag across namespaces")
}

func TestNoPersistenceWithoutUser(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	e := newTestEngine(t, store, 1.0)

	e.SelectPreset(ctx, "scb")
	e.ApplyGlobalOffset(ctx, model.Offset{X: 2, Y: 2})

	assert.Zero(t, store.Len(), "nothing may be written before a user is loaded")
}

func TestSelectPresetUnknownIsNoOp(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t, storage.NewMemoryStore(), 1.0)
	loadUser(t, e, "u_email_tester")

	before := e.Config()
	e.SelectPreset(ctx, "bank-of-nowhere")

	assert.Equal(t, before.PresetID, e.Config().PresetID)
	assert.Equal(t, before.Layout, e.Layout())
}

func TestSetFontClampsSize(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t, storage.NewMemoryStore(), 1.0)
	loadUser(t, e, "u_email_tester")

	e.SetFont(ctx, model.FontConfig{Family: "Krub", Size: 99})
	assert.Equal(t, model.MaxFontSize, e.Config().Font.Size)

	e.SetFont(ctx, model.FontConfig{Family: "Krub", Size: 2})
	assert.Equal(t, model.MinFontSize, e.Config().Font.Size)
}

func TestSelectPresetReplacesCustomization(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t, storage.NewMemoryStore(), 1.0)
	loadUser(t, e, "u_email_tester")

	e.BeginDrag(model.FieldPayee, Pointer{})
	e.UpdateDrag(Pointer{X: 40, Y: 0})
	e.EndDrag(ctx)

	e.SelectPreset(ctx, "bbl")
	bbl, _ := PresetByID("bbl")
	assert.Equal(t, bbl.Layout, e.Layout(),
		"preset switch replaces the whole layout with the preset defaults")
}

func TestSetFieldPosition(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	e := newTestEngine(t, store, 2.0)
	loadUser(t, e, "u_email_tester")

	require.NoError(t, e.SetFieldPosition(ctx, model.FieldPayee, model.Position{X: 42.5, Y: 19}))
	assert.Equal(t, model.Position{X: 42.5, Y: 19}, e.Layout()[model.FieldPayee])

	// The exact placement persists like a drag release does.
	raw, ok, err := store.Get(ctx, storage.UserSettingsKey("u_email_tester"))
	require.NoError(t, err)
	require.True(t, ok)
	var cfg model.UserConfig
	require.NoError(t, json.Unmarshal([]byte(raw), &cfg))
	assert.Equal(t, model.Position{X: 42.5, Y: 19}, cfg.Layout[model.FieldPayee])

	err = e.SetFieldPosition(ctx, model.FieldID("watermark"), model.Position{})
	assert.ErrorIs(t, err, common.ErrUnknownField)
}
