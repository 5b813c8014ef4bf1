package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/aalvaropc/conversor/internal/domain"
)

// selector is a dropdown: ordered options plus the selected index.
type selector struct {
	options []domain.UnitOption
	index   int
}

func (s selector) selected() domain.UnitOption {
	if s.index < 0 || s.index >= len(s.options) {
		return domain.UnitOption{}
	}
	return s.options[s.index]
}

func (s *selector) move(delta int) {
	n := len(s.options)
	if n == 0 {
		return
	}
	s.index = ((s.index+delta)%n + n) % n
}

type severity string

const (
	severityError severity = "error"
	severityInfo  severity = "info"
)

type toast struct {
	text     string
	severity severity
	visible  bool
	gen      int
}

type pulse struct {
	active bool
	gen    int
}

// form is the whole UI state: category, both unit selectors, the raw value,
// the rendered result and the transient feedback.
type form struct {
	categories []domain.Category
	catIndex   int

	from selector
	to   selector

	value textinput.Model

	result string
	pulse  pulse
	toast  toast
}

func newForm(initial domain.Category) form {
	ti := textinput.New()
	ti.Placeholder = "ex: 12.34"
	ti.Prompt = ""
	ti.CharLimit = 64
	ti.Width = 24

	f := form{
		categories: domain.Categories(),
		value:      ti,
		result:     domain.ResultPlaceholder,
	}
	for i, c := range f.categories {
		if c == initial {
			f.catIndex = i
		}
	}
	f.populateUnits(f.category())
	return f
}

func (f form) category() domain.Category {
	return f.categories[f.catIndex]
}

// populateUnits refills both selectors with the category's units in catalog
// order. "to" starts on the second unit so the default pair is never a no-op.
func (f *form) populateUnits(c domain.Category) {
	f.setOptions(domain.Units(c))
}

func (f *form) setOptions(opts []domain.UnitOption) {
	f.from = selector{options: opts}
	f.to = selector{options: append([]domain.UnitOption(nil), opts...)}
	if len(f.to.options) > 1 {
		f.to.index = 1
	}
}

// moveCategory selects a neighbouring category and resets the result.
func (f *form) moveCategory(delta int) {
	n := len(f.categories)
	f.catIndex = ((f.catIndex+delta)%n + n) % n
	f.populateUnits(f.category())
	f.result = domain.ResultPlaceholder
}
