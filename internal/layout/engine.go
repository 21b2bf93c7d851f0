package layout

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/chequeflow/chequeflow/internal/common"
	"github.com/chequeflow/chequeflow/internal/model"
	"github.com/chequeflow/chequeflow/internal/service"
	"github.com/chequeflow/chequeflow/internal/storage"
)

// Pointer is a raw pointer position on the rendering surface, in surface
// units (pixels, terminal cells). The engine never interprets these
// beyond subtracting them.
type Pointer struct {
	X float64
	Y float64
}

// Calibrator supplies the surface's pixels-per-millimeter ratio. The
// ratio depends on the actual DPI/zoom of the rendering surface, so it
// is measured there rather than compiled in; the presentation layer
// derives it from a reference element of known physical width.
type Calibrator interface {
	PixelsPerMillimeter() float64
}

// CalibratorFunc adapts a function to the Calibrator interface.
type CalibratorFunc func() float64

// PixelsPerMillimeter implements Calibrator.
func (f CalibratorFunc) PixelsPerMillimeter() float64 { return f() }

// dragState is the reference frame of the drag in progress. It is
// captured once at BeginDrag and never re-baselined: every UpdateDrag
// computes against the same initial position, pointer start, and ratio.
type dragState struct {
	field   model.FieldID
	start   Pointer
	initial model.Position
	ratio   float64
	active  bool
}

// Engine owns the authoritative field-to-coordinate mapping for the
// active user and preset. It is a single-session object: one UI session
// mutates it, cooperatively, so it performs no internal locking.
type Engine struct {
	store     service.Storage
	calibrate Calibrator
	warn      service.WarnFunc
	now       func() time.Time
	userID    string
	cfg       model.UserConfig
	drag      dragState
}

// Option configures an Engine.
type Option func(*Engine)

// WithCalibrator sets the surface calibrator.
func WithCalibrator(c Calibrator) Option {
	return func(e *Engine) { e.calibrate = c }
}

// WithWarnFunc sets the sink for non-fatal warnings. Persistence
// failures go here; they never abort the session.
func WithWarnFunc(warn service.WarnFunc) Option {
	return func(e *Engine) { e.warn = warn }
}

// WithClock overrides the engine's clock. Test hook.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine creates a layout engine persisting through store. Until
// LoadForUser is called the engine holds the standard preset defaults
// and persists nothing.
func NewEngine(store service.Storage, opts ...Option) *Engine {
	e := &Engine{
		store: store,
		// A 96dpi surface measures ~3.78 px/mm; that stands in until
		// the rendering surface supplies a real calibration.
		calibrate: CalibratorFunc(func() float64 { return 3.78 }),
		warn:      func(string, error) {},
		now:       time.Now,
		cfg:       defaultConfig(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func defaultConfig() model.UserConfig {
	preset, _ := PresetByID(DefaultPresetID)
	return model.UserConfig{
		Layout:   preset.Layout,
		PresetID: DefaultPresetID,
		Language: model.LangThai,
		Font:     model.DefaultFont(),
	}
}

// LoadForUser switches the engine to a user's namespace and restores
// that user's persisted configuration, or preset defaults when none
// exists. This is the only path that changes the active namespace; no
// state from a previous user survives the switch.
func (e *Engine) LoadForUser(ctx context.Context, userID string) error {
	e.userID = userID
	e.drag = dragState{}
	e.cfg = defaultConfig()

	if userID == "" {
		return nil
	}

	raw, ok, err := e.store.Get(ctx, storage.UserSettingsKey(userID))
	if err != nil {
		e.warn("could not load saved layout; using defaults", err)
		return nil
	}
	if !ok {
		return nil
	}

	var cfg model.UserConfig
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		e.warn("saved layout is unreadable; using defaults", err)
		return nil
	}

	// Tolerate partially-populated saves from older versions.
	if cfg.Layout == nil {
		cfg.Layout = e.cfg.Layout
	}
	if cfg.PresetID == "" {
		cfg.PresetID = DefaultPresetID
	}
	if !cfg.Language.Valid() {
		cfg.Language = model.LangThai
	}
	if cfg.Font.Family == "" {
		cfg.Font = model.DefaultFont()
	}
	e.cfg = cfg
	return nil
}

// ActiveUser returns the user namespace the engine is loaded for.
func (e *Engine) ActiveUser() string {
	return e.userID
}

// Config returns a snapshot of the current configuration.
func (e *Engine) Config() model.UserConfig {
	cfg := e.cfg
	cfg.Layout = e.cfg.Layout.Clone()
	return cfg
}

// Layout returns a snapshot of the current field positions.
func (e *Engine) Layout() model.Layout {
	return e.cfg.Layout.Clone()
}

// Offset returns the current global canvas offset.
func (e *Engine) Offset() model.Offset {
	return e.cfg.Offset
}

// SelectPreset replaces the active layout with the preset's defaults and
// persists immediately. An unknown preset ID is a no-op, logged for
// diagnostics only.
func (e *Engine) SelectPreset(ctx context.Context, presetID string) {
	preset, ok := PresetByID(presetID)
	if !ok {
		slog.Debug("ignoring unknown bank preset", "preset", presetID)
		return
	}

	e.cfg.PresetID = preset.ID
	e.cfg.Layout = preset.Layout
	e.persist(ctx)
}

// BeginDrag captures the drag reference frame for a field: its current
// coordinates, the pointer's starting surface position, and the surface
// ratio. A no-op when the field does not exist or a drag is already in
// progress.
func (e *Engine) BeginDrag(fieldID model.FieldID, start Pointer) {
	if e.drag.active {
		return
	}
	initial, ok := e.cfg.Layout[fieldID]
	if !ok {
		slog.Debug("ignoring drag on unknown field", "field", fieldID)
		return
	}

	ratio := e.calibrate.PixelsPerMillimeter()
	if ratio <= 0 {
		slog.Debug("ignoring drag with unusable calibration", "ratio", ratio)
		return
	}

	e.drag = dragState{
		active:  true,
		field:   fieldID,
		start:   start,
		initial: initial,
		ratio:   ratio,
	}
}

// UpdateDrag moves the dragged field to its initial position plus the
// pointer delta converted to millimeters. Positions are not clamped: a
// field may leave the canvas, which the user corrects with a reset.
// A no-op when no drag is active.
func (e *Engine) UpdateDrag(current Pointer) {
	if !e.drag.active {
		return
	}

	e.cfg.Layout[e.drag.field] = model.Position{
		X: e.drag.initial.X + (current.X-e.drag.start.X)/e.drag.ratio,
		Y: e.drag.initial.Y + (current.Y-e.drag.start.Y)/e.drag.ratio,
	}
}

// EndDrag clears the drag state and persists the layout. A no-op when no
// drag is active.
func (e *Engine) EndDrag(ctx context.Context) {
	if !e.drag.active {
		return
	}
	e.drag = dragState{}
	e.persist(ctx)
}

// ImplicitRelease routes a loss-of-input signal (window blur, pointer
// tracking lost) to EndDrag so the state machine always returns to Idle.
func (e *Engine) ImplicitRelease(ctx context.Context) {
	e.EndDrag(ctx)
}

// Dragging reports the field currently being dragged, if any.
func (e *Engine) Dragging() (model.FieldID, bool) {
	return e.drag.field, e.drag.active
}

// SetFieldPosition places a field at exact millimeter coordinates and
// persists, bypassing the drag state machine.
func (e *Engine) SetFieldPosition(ctx context.Context, fieldID model.FieldID, pos model.Position) error {
	if _, ok := e.cfg.Layout[fieldID]; !ok {
		return fmt.Errorf("%w: %s", common.ErrUnknownField, fieldID)
	}
	e.cfg.Layout[fieldID] = pos
	e.persist(ctx)
	return nil
}

// ApplyGlobalOffset sets the canvas-wide translation and persists.
func (e *Engine) ApplyGlobalOffset(ctx context.Context, offset model.Offset) {
	e.cfg.Offset = offset
	e.persist(ctx)
}

// SetLanguage changes the cheque language and persists. Invalid values
// are a no-op.
func (e *Engine) SetLanguage(ctx context.Context, lang model.Language) {
	if !lang.Valid() {
		slog.Debug("ignoring invalid language", "lang", lang)
		return
	}
	e.cfg.Language = lang
	e.persist(ctx)
}

// SetFont changes the cheque typeface and persists. The size is clamped
// to the supported range.
func (e *Engine) SetFont(ctx context.Context, font model.FontConfig) {
	if font.Size < model.MinFontSize {
		font.Size = model.MinFontSize
	}
	if font.Size > model.MaxFontSize {
		font.Size = model.MaxFontSize
	}
	e.cfg.Font = font
	e.persist(ctx)
}

// ResetToPresetDefault discards all per-field customization and the
// global offset for the active preset, restoring the shipped defaults,
// and persists the reset state over any prior saved override.
func (e *Engine) ResetToPresetDefault(ctx context.Context) {
	preset, ok := PresetByID(e.cfg.PresetID)
	if !ok {
		preset, _ = PresetByID(DefaultPresetID)
	}
	e.cfg.Layout = preset.Layout
	e.cfg.Offset = model.Offset{}
	e.persist(ctx)
}

// persist writes the full configuration under the active user's
// settings key. Failures are reported as a non-fatal warning; the
// in-memory layout remains the source of truth for the session.
func (e *Engine) persist(ctx context.Context) {
	if e.userID == "" {
		return
	}

	e.cfg.UpdatedAt = e.now().UnixMilli()
	data, err := json.Marshal(e.cfg)
	if err != nil {
		e.warn("could not encode layout settings", err)
		return
	}

	if err := e.store.Set(ctx, storage.UserSettingsKey(e.userID), string(data)); err != nil {
		e.warn(fmt.Sprintf("layout changes are not being saved for %s", e.userID), err)
	}
}
