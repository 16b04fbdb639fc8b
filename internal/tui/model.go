package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"pizzaorder/internal/domain"
	"pizzaorder/internal/services/form"
)

const (
	focusName = iota
	focusSize
	focusFirstTopping
)

// sizeChoice is one entry of the size selector; the first is the placeholder.
type sizeChoice struct {
	size  domain.Size
	label string
}

var sizeChoices = []sizeChoice{
	{domain.SizeUnset, "----Choose Size----"},
	{domain.SizeSmall, "Small"},
	{domain.SizeMedium, "Medium"},
	{domain.SizeLarge, "Large"},
}

// submitResultMsg carries the result of the order request back to the loop.
type submitResultMsg struct {
	outcome domain.SubmissionOutcome
	err     error
}

// Model is the bubbletea model of the order form.
type Model struct {
	form      *form.State
	submitter domain.Submitter
	catalog   domain.ToppingCatalog

	ctx    context.Context
	cancel context.CancelFunc

	name    textinput.Model
	spinner spinner.Model
	help    help.Model
	keys    keyMap
	styles  Styles
	log     *zap.Logger

	focus int
	width int
}

// Option customises a Model.
type Option func(*Model)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option { return func(m *Model) { m.log = l } }

// WithStyles replaces the default styles.
func WithStyles(s Styles) Option { return func(m *Model) { m.styles = s } }

// WithContext sets the parent context of order requests.
func WithContext(ctx context.Context) Option { return func(m *Model) { m.ctx = ctx } }

// New returns a form model editing f and submitting through sub.
func New(f *form.State, sub domain.Submitter, catalog domain.ToppingCatalog, opts ...Option) Model {
	m := Model{
		form:      f,
		submitter: sub,
		catalog:   catalog,
		ctx:       context.Background(),
		keys:      defaultKeyMap(),
		styles:    DefaultStyles(),
		log:       zap.NewNop(),
		help:      help.New(),
	}
	for _, o := range opts {
		o(&m)
	}
	m.ctx, m.cancel = context.WithCancel(m.ctx)

	ti := textinput.New()
	ti.Placeholder = "Type full name"
	ti.Prompt = "│ "
	ti.CharLimit = 64
	ti.Width = 30
	ti.SetValue(f.Draft().FullName)
	ti.Focus()
	m.name = ti

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = m.styles.Spinner
	m.spinner = sp

	return m
}

// Form exposes the state holder driven by the model.
func (m Model) Form() *form.State { return m.form }

func (m Model) submitRow() int { return focusFirstTopping + len(m.catalog) }

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case submitResultMsg:
		m.form.FinishSubmit(msg.outcome, msg.err)
		if msg.err != nil {
			m.log.Warn("order submission failed", zap.Error(msg.err))
		}
		m.name.SetValue(m.form.Draft().FullName)
		return m, nil

	case spinner.TickMsg:
		if !m.form.InFlight() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.cancel()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	case key.Matches(msg, m.keys.Next):
		return m.moveFocus(1)
	case key.Matches(msg, m.keys.Prev):
		return m.moveFocus(-1)
	}

	if m.focus == focusName {
		var cmd tea.Cmd
		m.name, cmd = m.name.Update(msg)
		if v := m.name.Value(); v != m.form.Draft().FullName {
			m.form.SetFullName(v)
		}
		return m, cmd
	}

	switch {
	case m.focus == focusSize && key.Matches(msg, m.keys.Left):
		m.cycleSize(-1)
	case m.focus == focusSize && key.Matches(msg, m.keys.Right):
		m.cycleSize(1)
	case m.focus >= focusFirstTopping && m.focus < m.submitRow() && key.Matches(msg, m.keys.Toggle):
		m.form.ToggleTopping(m.catalog[m.focus-focusFirstTopping].ID)
	}
	return m, nil
}

func (m Model) moveFocus(delta int) (tea.Model, tea.Cmd) {
	rows := m.submitRow() + 1
	m.focus = (m.focus + delta + rows) % rows
	if m.focus == focusName {
		return m, m.name.Focus()
	}
	m.name.Blur()
	return m, nil
}

func (m Model) cycleSize(delta int) {
	cur := 0
	size := m.form.Draft().Size
	for i, c := range sizeChoices {
		if c.size == size {
			cur = i
			break
		}
	}
	next := (cur + delta + len(sizeChoices)) % len(sizeChoices)
	m.form.SetSize(sizeChoices[next].size)
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	if !m.form.CanSubmit() {
		return m, nil
	}
	draft, err := m.form.BeginSubmit()
	if err != nil {
		m.log.Debug("submit refused", zap.Error(err))
		return m, nil
	}
	return m, tea.Batch(m.spinner.Tick, submitCmd(m.ctx, m.submitter, draft))
}

func submitCmd(ctx context.Context, sub domain.Submitter, draft domain.OrderDraft) tea.Cmd {
	return func() tea.Msg {
		outcome, err := sub.Submit(ctx, draft)
		return submitResultMsg{outcome: outcome, err: err}
	}
}

func (m Model) View() string {
	var b strings.Builder
	draft := m.form.Draft()
	errs := m.form.Errors()

	b.WriteString(m.styles.Title.Render("Order Your Pizza"))
	b.WriteString("\n")

	if o := m.form.Outcome(); o.Succeeded() {
		b.WriteString(m.styles.Success.Render(o.Success) + "\n\n")
	} else if o.Failed() {
		b.WriteString(m.styles.Failure.Render(o.Failure) + "\n\n")
	}

	b.WriteString(m.cursor(focusName) + m.styles.Label.Render("Full Name") + "\n")
	b.WriteString("  " + m.name.View() + "\n")
	m.writeError(&b, errs, domain.FieldFullName)
	b.WriteString("\n")

	b.WriteString(m.cursor(focusSize) + m.styles.Label.Render("Size") + "\n")
	b.WriteString(fmt.Sprintf("  ◀ %s ▶\n", sizeLabel(draft.Size)))
	m.writeError(&b, errs, domain.FieldSize)
	b.WriteString("\n")

	for i, t := range m.catalog {
		box := "[ ]"
		if draft.HasTopping(t.ID) {
			box = "[x]"
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", m.cursor(focusFirstTopping+i), box, t.Text))
	}
	b.WriteString("\n")

	b.WriteString(m.cursor(m.submitRow()))
	switch {
	case m.form.InFlight():
		b.WriteString(m.styles.Disabled.Render("Submit") + " " + m.spinner.View() + " submitting…")
	case m.form.CanSubmit():
		b.WriteString(m.styles.Button.Render("Submit"))
	default:
		b.WriteString(m.styles.Disabled.Render("Submit"))
	}
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

func (m Model) cursor(row int) string {
	if m.focus == row {
		return m.styles.Cursor.Render("> ")
	}
	return "  "
}

func (m Model) writeError(b *strings.Builder, errs domain.ValidationResult, f domain.Field) {
	if msg, ok := errs[f]; ok {
		b.WriteString("  " + m.styles.Error.Render(msg) + "\n")
	}
}

func sizeLabel(s domain.Size) string {
	for _, c := range sizeChoices {
		if c.size == s {
			return c.label
		}
	}
	return s.String()
}
