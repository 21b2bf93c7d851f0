package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/chequeflow/chequeflow/internal/layout"
	"github.com/chequeflow/chequeflow/internal/model"
	"github.com/chequeflow/chequeflow/internal/render"
	"github.com/chequeflow/chequeflow/internal/words"
)

// canvasTop is the number of header lines above the cheque canvas; mouse
// coordinates are translated by it before hit-testing.
const canvasTop = 2

// Model holds the positioning screen state. The layout engine is the
// source of truth for coordinates; the model only routes input to it and
// draws the result.
type Model struct {
	ctx      context.Context
	engine   *layout.Engine
	cal      *Calibration
	warnings *StatusSink
	renderer render.Renderer
	keymap   KeyMap
	help     help.Model

	payee    string
	amount   string
	chequeNo string
	date     string
	acPayee  bool
	noBearer bool

	selected int
	status   string
	width    int
	height   int
	quitting bool
}

func newModel(ctx context.Context, cfg Config) Model {
	warnings := cfg.Warnings
	if warnings == nil {
		warnings = NewStatusSink()
	}
	return Model{
		ctx:      ctx,
		engine:   cfg.Engine,
		cal:      cfg.Calibration,
		warnings: warnings,
		renderer: render.NewRenderer(render.ChequeWidthMM, render.ModePreview),
		keymap:   DefaultKeyMap(),
		help:     help.New(),
		payee:    cfg.Payee,
		amount:   cfg.Amount,
		chequeNo: cfg.ChequeNo,
		date:     cfg.Date,
		acPayee:  true,
		noBearer: true,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.EnterAltScreen, tea.EnableMouseAllMotion)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.renderer = render.NewRenderer(msg.Width, render.ModePreview)
		m.cal.Set(m.renderer.CellsPerMM)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.BlurMsg:
		// Focus left the terminal mid-drag; treat it as a release so
		// the drag state machine returns to idle.
		m.engine.ImplicitRelease(m.ctx)
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.engine.ImplicitRelease(m.ctx)
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keymap.NextField):
		m.selected = (m.selected + 1) % len(model.AllFields)
		m.status = "field: " + string(m.selectedField())

	case key.Matches(msg, m.keymap.PrevField):
		m.selected = (m.selected + len(model.AllFields) - 1) % len(model.AllFields)
		m.status = "field: " + string(m.selectedField())

	case key.Matches(msg, m.keymap.Up):
		m.nudge(0, -1)
	case key.Matches(msg, m.keymap.Down):
		m.nudge(0, 1)
	case key.Matches(msg, m.keymap.Left):
		m.nudge(-1, 0)
	case key.Matches(msg, m.keymap.Right):
		m.nudge(1, 0)

	case key.Matches(msg, m.keymap.CyclePreset):
		next := m.nextPresetID()
		m.engine.SelectPreset(m.ctx, next)
		m.status = "bank: " + layout.PresetLabel(next)

	case key.Matches(msg, m.keymap.ToggleLanguage):
		lang := model.LangThai
		if m.engine.Config().Language == model.LangThai {
			lang = model.LangEnglish
		}
		m.engine.SetLanguage(m.ctx, lang)
		m.status = "language: " + string(lang)

	case key.Matches(msg, m.keymap.ToggleACPayee):
		m.acPayee = !m.acPayee

	case key.Matches(msg, m.keymap.ToggleBearer):
		m.noBearer = !m.noBearer

	case key.Matches(msg, m.keymap.FontBigger):
		m.bumpFont(1)
	case key.Matches(msg, m.keymap.FontSmaller):
		m.bumpFont(-1)

	case key.Matches(msg, m.keymap.Reset):
		m.engine.ResetToPresetDefault(m.ctx)
		m.status = "positions reset to bank defaults"
	}

	return m, nil
}

// handleMouse routes pointer events into the drag state machine. The
// X axis is already in cell units; lines are doubled so one ratio covers
// both axes.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	ptr := layout.Pointer{
		X: float64(msg.X),
		Y: float64(msg.Y-canvasTop) * 2,
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if id, ok := m.hitTest(msg.X, msg.Y-canvasTop); ok {
			m.engine.BeginDrag(id, ptr)
			m.status = "dragging " + string(id)
		}

	case tea.MouseActionMotion:
		m.engine.UpdateDrag(ptr)

	case tea.MouseActionRelease:
		if _, dragging := m.engine.Dragging(); dragging {
			m.engine.EndDrag(m.ctx)
			m.status = "position saved"
		}
	}

	return m, nil
}

// hitTest finds the field whose rendered text covers the given canvas
// cell, if any.
func (m Model) hitTest(x, y int) (model.FieldID, bool) {
	c := m.cheque()
	for _, id := range model.AllFields {
		rect, ok := m.renderer.FieldRect(c, id)
		if ok && rect.Contains(x, y) {
			return id, true
		}
	}
	return "", false
}

func (m Model) selectedField() model.FieldID {
	return model.AllFields[m.selected]
}

// nudge moves the selected field by whole millimeters through the same
// drag path the mouse uses.
func (m *Model) nudge(dxMM, dyMM float64) {
	ratio := m.cal.PixelsPerMillimeter()
	m.engine.BeginDrag(m.selectedField(), layout.Pointer{})
	m.engine.UpdateDrag(layout.Pointer{X: dxMM * ratio, Y: dyMM * ratio})
	m.engine.EndDrag(m.ctx)

	pos := m.engine.Layout()[m.selectedField()]
	m.status = fmt.Sprintf("%s at %.1f, %.1f mm", m.selectedField(), pos.X, pos.Y)
}

func (m *Model) bumpFont(delta int) {
	font := m.engine.Config().Font
	font.Size += delta
	m.engine.SetFont(m.ctx, font)
	m.status = fmt.Sprintf("font: %s %dpt", font.Family, m.engine.Config().Font.Size)
}

// nextPresetID returns the preset after the active one, wrapping around.
func (m Model) nextPresetID() string {
	presets := layout.Presets()
	current := m.engine.Config().PresetID
	for i, p := range presets {
		if p.ID == current {
			return presets[(i+1)%len(presets)].ID
		}
	}
	return layout.DefaultPresetID
}

// cheque assembles the renderable cheque face from the engine's current
// configuration and the session's sample data.
func (m Model) cheque() render.Cheque {
	cfg := m.engine.Config()

	box := ""
	if amt, ok := model.ParseAmount(m.amount); ok {
		box = amt.Boxed()
	}

	date := m.date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	return render.Cheque{
		Layout:     cfg.Layout,
		Offset:     cfg.Offset,
		Language:   cfg.Language,
		BankLabel:  layout.PresetLabel(cfg.PresetID),
		Date:       model.SplitDate(date, cfg.Language),
		Payee:      m.payee,
		AmountText: words.Convert(m.amount, cfg.Language),
		AmountBox:  box,
		ACPayee:    m.acPayee,
		NoBearer:   m.noBearer,
	}
}
