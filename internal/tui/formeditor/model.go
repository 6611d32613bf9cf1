// ============================================================================
// sellerdesk - Department and seller records
// ============================================================================
//
// Package:     formeditor
// Description: Bubble Tea model for editing a department or seller
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package formeditor

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/sellerdesk/foundation/core/validation"
	"github.com/msto63/sellerdesk/internal/domain"
	"github.com/msto63/sellerdesk/internal/form"
	"github.com/msto63/sellerdesk/internal/refdata"
)

// DefaultTimeout bounds reference loading and saving
const DefaultTimeout = 10 * time.Second

// AlertTitleReferenceData is the title shown when departments can't be loaded
const AlertTitleReferenceData = "Error loading departments!"

// Config holds the configuration for the form editor
type Config struct {
	Editor    Editor
	Presenter *Presenter
	Timeout   time.Duration
}

// Model is the Bubble Tea model of a single form
type Model struct {
	// Dimensions
	width, height int
	ready         bool

	// State
	loading   bool
	saving    bool
	saved     bool
	cancelled bool
	failed    bool // reference data missing, the form can't be saved
	alert     *Alert

	// Form
	editor      Editor
	presenter   *Presenter
	fields      []Field
	inputs      []textinput.Model
	focus       int
	refs        refdata.List
	deptIndex   int
	fieldErrors validation.ErrorSet

	timeout time.Duration
}

// NewModel creates a model for a populated form
func NewModel(cfg Config) Model {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	presenter := cfg.Presenter
	if presenter == nil {
		presenter = NewPresenter()
	}

	fields := cfg.Editor.Fields()
	values := cfg.Editor.Values()
	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		in := textinput.New()
		in.Placeholder = f.Placeholder
		in.Width = 44
		in.SetValue(values[i])
		inputs[i] = in
	}

	m := Model{
		editor:    cfg.Editor,
		presenter: presenter,
		fields:    fields,
		inputs:    inputs,
		deptIndex: -1,
		loading:   cfg.Editor.HasDepartment(),
		timeout:   timeout,
	}
	m.updateFocus()
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.editor.HasDepartment() {
		cmds = append(cmds, loadReferenceData(m.editor, m.timeout))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.alert != nil {
			return m.updateAlert(msg)
		}
		return m.updateForm(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case referenceLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.failed = true
			m.alert = &Alert{Title: AlertTitleReferenceData, Message: msg.err.Error()}
			return m, nil
		}
		m.refs = msg.refs
		m.deptIndex = m.initialDepartment()

	case submitDoneMsg:
		return m.handleOutcome(msg.outcome)
	}

	return m, nil
}

// updateAlert only lets the user acknowledge the alert. Acknowledging a
// reference data failure closes the form.
func (m Model) updateAlert(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.alert = nil
		if m.failed {
			m.editor.Cancel()
			m.cancelled = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if m.saving {
			return m, nil
		}
		m.editor.Cancel()
		m.cancelled = true
		return m, tea.Quit

	case "ctrl+s":
		if m.saving || m.loading || m.failed {
			return m, nil
		}
		m.editor.Apply(m.values(), m.selectedDepartment())
		m.saving = true
		return m, submit(m.editor, m.timeout)

	case "tab", "down":
		m.focus = (m.focus + 1) % m.focusCount()
		m.updateFocus()
		return m, nil

	case "shift+tab", "up":
		m.focus = (m.focus - 1 + m.focusCount()) % m.focusCount()
		m.updateFocus()
		return m, nil
	}

	if m.onSelector() {
		switch msg.String() {
		case "left", "h":
			m.cycleDepartment(-1)
		case "right", "l":
			m.cycleDepartment(1)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) handleOutcome(outcome form.Outcome) (tea.Model, tea.Cmd) {
	m.saving = false
	switch outcome.Kind {
	case form.OutcomeSaved:
		m.saved = true
		m.fieldErrors = validation.ErrorSet{}
		return m, tea.Quit

	case form.OutcomeInvalid:
		m.fieldErrors = outcome.Errors.Clone()

	case form.OutcomeFailed:
		m.fieldErrors = validation.ErrorSet{}
		if a, ok := m.presenter.TakeAlert(); ok {
			m.alert = &a
		} else if outcome.Fault != nil {
			m.alert = &Alert{Title: form.AlertTitle, Message: outcome.Fault.Error()}
		}
	}
	return m, nil
}

// View implements tea.Model
func (m Model) View() string {
	if m.alert != nil {
		return m.viewAlert()
	}

	var b strings.Builder
	b.WriteString(LogoStyle.Render(Logo) + " " + SubHeaderStyle.Render(m.editor.Title()))
	b.WriteString("\n\n")

	id := m.editor.ID()
	if id == "" {
		id = "(new)"
	}
	b.WriteString(LabelStyle.Render("Id") + " " + ReadOnlyStyle.Render(id) + "\n")

	for i, f := range m.fields {
		style := InputBorderStyle
		switch {
		case m.fieldErrors.Has(f.Name):
			style = InputBorderErrorStyle
		case i == m.focus:
			style = InputBorderFocusedStyle
		}
		row := lipgloss.JoinHorizontal(lipgloss.Center,
			LabelStyle.Render(f.Label), " ", style.Render(m.inputs[i].View()))
		b.WriteString(row + "\n")
		if msg := m.fieldErrors.Message(f.Name); msg != "" {
			b.WriteString(FieldErrorStyle.Render(msg) + "\n")
		}
	}

	if m.editor.HasDepartment() {
		b.WriteString(m.viewDepartment() + "\n")
	}

	b.WriteString("\n" + StatusBarStyle.Render(m.status()))
	b.WriteString("\n" + m.viewHelp())
	return PanelStyle.Render(b.String())
}

func (m Model) viewDepartment() string {
	name := "(none)"
	if d := m.selectedDepartment(); d != nil {
		name = d.Name
	}
	value := name
	if m.onSelector() {
		value = SelectorStyle.Render("< " + name + " >")
	}
	line := LabelStyle.Render("Department") + " " + value
	if msg := m.fieldErrors.Message(form.FieldDepartment); msg != "" {
		line += "\n" + FieldErrorStyle.Render(msg)
	}
	return line
}

func (m Model) viewAlert() string {
	box := AlertStyle.Render(
		AlertTitleStyle.Render(m.alert.Title) + "\n" + m.alert.Message +
			"\n\n" + RenderKeyHint("enter", m.alertAction()))
	if !m.ready {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) alertAction() string {
	if m.failed {
		return "close form"
	}
	return "ok"
}

func (m Model) viewHelp() string {
	hints := []string{RenderKeyHint("tab", "next")}
	if m.editor.HasDepartment() {
		hints = append(hints, RenderKeyHint("←/→", "department"))
	}
	hints = append(hints,
		RenderKeyHint("ctrl+s", "save"),
		RenderKeyHint("esc", "cancel"),
	)
	return HelpStyle.Render(strings.Join(hints, "  "))
}

func (m Model) status() string {
	switch {
	case m.saving:
		return StatusBusyStyle.Render("Saving...")
	case m.loading:
		return StatusBusyStyle.Render("Loading departments...")
	case m.saved:
		return StatusOKStyle.Render("Saved")
	case !m.fieldErrors.IsEmpty():
		return fmt.Sprintf("%d field(s) need attention", m.fieldErrors.Len())
	default:
		return "Editing"
	}
}

// Saved reports whether the form was closed by a successful save
func (m Model) Saved() bool {
	return m.saved
}

// Cancelled reports whether the user discarded the form
func (m Model) Cancelled() bool {
	return m.cancelled
}

func (m Model) values() []string {
	out := make([]string, len(m.inputs))
	for i := range m.inputs {
		out[i] = m.inputs[i].Value()
	}
	return out
}

func (m Model) focusCount() int {
	if m.editor.HasDepartment() {
		return len(m.inputs) + 1
	}
	return len(m.inputs)
}

func (m Model) onSelector() bool {
	return m.focus == len(m.inputs)
}

func (m *Model) updateFocus() {
	for i := range m.inputs {
		if i == m.focus {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

// initialDepartment picks the edited department, else the first entry
func (m Model) initialDepartment() int {
	if m.refs.IsEmpty() {
		return -1
	}
	if d := m.editor.Department(); d != nil {
		if i := m.refs.IndexOf(*d); i >= 0 {
			return i
		}
	}
	return 0
}

func (m *Model) cycleDepartment(step int) {
	n := m.refs.Len()
	if n == 0 {
		return
	}
	m.deptIndex = (m.deptIndex + step + n) % n
}

func (m Model) selectedDepartment() *domain.Department {
	if m.deptIndex < 0 || m.deptIndex >= m.refs.Len() {
		return nil
	}
	d := m.refs.At(m.deptIndex)
	return &d
}

// Run starts the form editor and reports whether the entity was saved
func Run(cfg Config) (bool, error) {
	p := tea.NewProgram(NewModel(cfg), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(Model)
	return ok && m.Saved(), nil
}
