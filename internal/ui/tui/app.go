package tui

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type field int

const (
	fieldCategory field = iota
	fieldFrom
	fieldTo
	fieldValue
	fieldCount
)

type model struct {
	theme Theme
	deps  Deps
	log   *slog.Logger
	keys  keyMap
	help  help.Model

	form  form
	focus field

	// seq is the number of the newest submission; inflight counts unanswered ones.
	seq      uint64
	inflight int

	width int
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, m.log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	log := deps.Logger
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	m := model{
		theme: DefaultTheme(),
		deps:  deps,
		log:   log,
		keys:  defaultKeys(),
		help:  help.New(),
		form:  newForm(deps.DefaultCategory),
		focus: fieldValue,
	}
	m.form.value.Focus()

	if deps.Debug {
		m.notify("Modo debug: logs em "+deps.LogPath, severityInfo)
	}

	m.log.Debug("form.init",
		"category", string(m.form.category()),
		"origin", deps.Origin,
		"latest_only", deps.LatestOnly,
	)
	return m
}

func (m model) Init() tea.Cmd {
	if m.form.toast.visible {
		return tea.Batch(textinput.Blink, cmdExpireToast(m.form.toast.gen))
	}
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case conversionDoneMsg:
		return m.handleConversion(msg)

	case toastExpiredMsg:
		// Only the newest notification's timer may hide it.
		if msg.gen == m.form.toast.gen {
			m.form.toast.visible = false
		}
		return m, nil

	case pulseDoneMsg:
		if msg.gen == m.form.pulse.gen {
			m.form.pulse.active = false
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Submit):
			return m.submit()

		case key.Matches(msg, m.keys.Next):
			m.setFocus((m.focus + 1) % fieldCount)
			return m, nil

		case key.Matches(msg, m.keys.Prev):
			m.setFocus((m.focus + fieldCount - 1) % fieldCount)
			return m, nil

		case m.focus != fieldValue && key.Matches(msg, m.keys.Left):
			m.moveSelection(-1)
			return m, nil

		case m.focus != fieldValue && key.Matches(msg, m.keys.Right):
			m.moveSelection(1)
			return m, nil
		}
	}

	if m.focus == fieldValue {
		var cmd tea.Cmd
		m.form.value, cmd = m.form.value.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *model) setFocus(f field) {
	m.focus = f
	if f == fieldValue {
		m.form.value.Focus()
	} else {
		m.form.value.Blur()
	}
}

func (m *model) moveSelection(delta int) {
	switch m.focus {
	case fieldCategory:
		m.form.moveCategory(delta)
		m.log.Debug("form.category_changed", "category", string(m.form.category()))
	case fieldFrom:
		m.form.from.move(delta)
	case fieldTo:
		m.form.to.move(delta)
	}
}

// submit validates locally and, only when valid, issues one async call.
func (m model) submit() (tea.Model, tea.Cmd) {
	req, err := m.deps.Submit.Prepare(
		m.form.category(),
		m.form.from.selected().Code,
		m.form.to.selected().Code,
		m.form.value.Value(),
	)
	if err != nil {
		m.log.Info("form.invalid", "err", err)
		return m, m.notify(userMessage(err), severityError)
	}

	m.seq++
	m.inflight++
	m.log.Debug("form.submit", "request_id", req.ID, "seq", m.seq, "inflight", m.inflight)
	return m, cmdConvert(m.deps.Submit, m.seq, req)
}

func (m model) handleConversion(msg conversionDoneMsg) (tea.Model, tea.Cmd) {
	if m.inflight > 0 {
		m.inflight--
	}

	if m.deps.LatestOnly && msg.seq != m.seq {
		m.log.Info("form.stale_response_dropped",
			"request_id", msg.req.ID,
			"seq", msg.seq,
			"latest", m.seq,
		)
		return m, nil
	}

	if msg.err != nil {
		m.log.Error("form.convert_failed", "request_id", msg.req.ID, "err", msg.err)
		return m, m.notify(userMessage(msg.err), severityError)
	}

	m.form.result = describe(msg)
	return m, m.restartPulse()
}

// notify replaces whatever notification is showing and restarts the hide timer.
func (m *model) notify(text string, sev severity) tea.Cmd {
	m.form.toast.gen++
	m.form.toast.text = text
	m.form.toast.severity = sev
	m.form.toast.visible = true

	m.log.Debug("toast.show", "severity", string(sev), "text", text, "gen", m.form.toast.gen)
	return cmdExpireToast(m.form.toast.gen)
}

// restartPulse re-arms the highlight even when the result text is unchanged.
func (m *model) restartPulse() tea.Cmd {
	m.form.pulse.gen++
	m.form.pulse.active = true
	return cmdEndPulse(m.form.pulse.gen)
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("Conversor de Unidades") + "\n" +
		m.theme.Subtitle.Render(fmt.Sprintf("Serviço: %s", m.deps.Origin)) + "\n"

	var b strings.Builder
	b.WriteString(m.row("Categoria", m.form.category().Label(), fieldCategory))
	b.WriteString(m.row("De", m.form.from.selected().Display(), fieldFrom))
	b.WriteString(m.row("Para", m.form.to.selected().Display(), fieldTo))
	b.WriteString(m.theme.Label.Render("Valor"))
	b.WriteString(m.form.value.View())
	b.WriteString("\n\n")

	resultStyle := m.theme.Result
	if m.form.pulse.active {
		resultStyle = m.theme.Pulse
	}
	result := m.form.result
	if m.width > 0 {
		result = clampString(result, m.width-20)
	}
	b.WriteString(m.theme.Label.Render("Resultado"))
	b.WriteString(resultStyle.Render(result))

	if m.inflight > 0 {
		b.WriteString("\n")
		b.WriteString(m.theme.Help.Render(fmt.Sprintf("convertendo… (%d)", m.inflight)))
	}

	out := header + "\n" + m.theme.Card.Render(b.String()) + "\n"
	if m.form.toast.visible {
		out += m.theme.toastStyle(m.form.toast.severity).Render(m.form.toast.text) + "\n"
	}
	out += m.help.View(m.keys)

	return wrap.Render(out)
}

func (m model) row(label, value string, f field) string {
	style := m.theme.Blurred
	if m.focus == f {
		style = m.theme.Focused
	}
	return m.theme.Label.Render(label) + style.Render(renderChoice(value, m.focus == f)) + "\n"
}
