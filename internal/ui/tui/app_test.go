package tui

import (
	"context"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/conversor/internal/domain"
	"github.com/aalvaropc/conversor/internal/usecase"
)

// --- fakes ---

type fakeConverter struct {
	mu    sync.Mutex
	calls []domain.ConversionRequest
	res   domain.ConversionResult
	err   error
}

func (f *fakeConverter) Convert(_ context.Context, req domain.ConversionRequest) (domain.ConversionResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, req)
	return f.res, f.err
}

func (f *fakeConverter) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func newTestModel(fc *fakeConverter, latestOnly bool) model {
	return newModel(Deps{
		Submit:          usecase.NewSubmitConversion(fc),
		Origin:          "http://127.0.0.1:8000",
		DefaultCategory: domain.CategoryTemperature,
		LatestOnly:      latestOnly,
	})
}

func update(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(model)
	if !ok {
		t.Fatalf("expected model, got %T", next)
	}
	return mm, cmd
}

func codes(s selector) []string {
	out := make([]string, 0, len(s.options))
	for _, o := range s.options {
		out = append(out, o.Code)
	}
	return out
}

// submitValue types raw into the value field and presses enter.
func submitValue(t *testing.T, m model, raw string) (model, tea.Cmd) {
	t.Helper()
	m.form.value.SetValue(raw)
	return update(t, m, enter)
}

var enter = tea.KeyMsg{Type: tea.KeyEnter}

func TestPopulateUnits_AllCategories(t *testing.T) {
	for _, c := range domain.Categories() {
		f := newForm(c)

		want := codes(selector{options: domain.Units(c)})
		if got := codes(f.from); strings.Join(got, ",") != strings.Join(want, ",") {
			t.Errorf("%s from: expected %v, got %v", c, want, got)
		}
		if got := codes(f.to); strings.Join(got, ",") != strings.Join(want, ",") {
			t.Errorf("%s to: expected %v, got %v", c, want, got)
		}
		if f.from.index != 0 {
			t.Errorf("%s: expected from index 0, got %d", c, f.from.index)
		}
		if f.to.index != 1 {
			t.Errorf("%s: expected to index 1, got %d", c, f.to.index)
		}
	}
}

func TestPopulateUnits_SingleOptionDefaultsToFirst(t *testing.T) {
	var f form
	f.setOptions([]domain.UnitOption{{Code: "x", Label: "X"}})

	if f.to.index != 0 || f.to.selected().Code != "x" {
		t.Fatalf("expected to index 0, got %d", f.to.index)
	}
	if f.from.index != 0 || f.from.selected().Code != "x" {
		t.Fatalf("expected from index 0, got %d", f.from.index)
	}
}

func TestInit_UsesConfiguredCategory(t *testing.T) {
	m := newModel(Deps{Submit: usecase.NewSubmitConversion(&fakeConverter{}), DefaultCategory: domain.CategoryWeight})
	if m.form.category() != domain.CategoryWeight {
		t.Fatalf("expected weight, got %s", m.form.category())
	}
	if got := strings.Join(codes(m.form.from), ","); got != "kg,lb" {
		t.Fatalf("expected kg,lb got %s", got)
	}
	if m.form.to.selected().Code != "lb" {
		t.Fatalf("expected to=lb, got %s", m.form.to.selected().Code)
	}
	if m.form.result != domain.ResultPlaceholder {
		t.Fatalf("expected placeholder result")
	}
}

func TestCategoryChange_ResetsResultAndUnits(t *testing.T) {
	fc := &fakeConverter{res: domain.ConversionResult{Result: 98.6}}
	m := newTestModel(fc, false)

	m, cmd := submitValue(t, m, "37")
	m, _ = update(t, m, cmd())
	if m.form.result == domain.ResultPlaceholder {
		t.Fatalf("expected a rendered result first")
	}

	m.setFocus(fieldCategory)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})

	if m.form.category() != domain.CategoryDistance {
		t.Fatalf("expected distance, got %s", m.form.category())
	}
	if m.form.result != domain.ResultPlaceholder {
		t.Fatalf("expected placeholder after category change, got %q", m.form.result)
	}
	if got := strings.Join(codes(m.form.to), ","); got != "m,km,mi" {
		t.Fatalf("expected distance units, got %s", got)
	}
	if m.form.to.index != 1 {
		t.Fatalf("expected to index 1, got %d", m.form.to.index)
	}

	// Wraps around backwards as well.
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.form.category() != domain.CategoryWeight {
		t.Fatalf("expected weight after wrapping, got %s", m.form.category())
	}
}

func TestSubmit_EmptyInputShowsMessageWithoutCall(t *testing.T) {
	for _, raw := range []string{"", "   "} {
		fc := &fakeConverter{}
		m := newTestModel(fc, false)

		m, _ = submitValue(t, m, raw)

		if m.seq != 0 || m.inflight != 0 {
			t.Fatalf("raw %q: expected no submission, seq=%d inflight=%d", raw, m.seq, m.inflight)
		}
		if fc.count() != 0 {
			t.Fatalf("raw %q: expected no service call", raw)
		}
		if !m.form.toast.visible || m.form.toast.text != msgEmptyInput {
			t.Fatalf("raw %q: expected empty-input toast, got %+v", raw, m.form.toast)
		}
		if m.form.toast.severity != severityError {
			t.Fatalf("expected error severity, got %s", m.form.toast.severity)
		}
	}
}

func TestSubmit_InvalidNumberShowsMessageWithoutCall(t *testing.T) {
	fc := &fakeConverter{}
	m := newTestModel(fc, false)

	m, _ = submitValue(t, m, "abc")

	if m.seq != 0 || fc.count() != 0 {
		t.Fatalf("expected no service call")
	}
	if m.form.toast.text != msgInvalidNumber {
		t.Fatalf("expected invalid-number toast, got %q", m.form.toast.text)
	}
}

func TestSubmit_CommaIsDecimalSeparator(t *testing.T) {
	fc := &fakeConverter{res: domain.ConversionResult{Result: 1}}
	m := newTestModel(fc, false)

	m, cmd := submitValue(t, m, "12,5")
	if cmd == nil {
		t.Fatalf("expected a conversion command")
	}
	done, ok := cmd().(conversionDoneMsg)
	if !ok {
		t.Fatalf("expected conversionDoneMsg")
	}
	if done.req.Value != 12.5 {
		t.Fatalf("expected 12.5, got %v", done.req.Value)
	}
	if fc.calls[0].Value != 12.5 {
		t.Fatalf("expected service to receive 12.5, got %v", fc.calls[0].Value)
	}
	_ = m
}

func TestSubmit_RendersResult(t *testing.T) {
	fc := &fakeConverter{res: domain.ConversionResult{Result: 98.6}}
	m := newTestModel(fc, false)

	m, cmd := submitValue(t, m, "37")
	if m.inflight != 1 {
		t.Fatalf("expected one request in flight, got %d", m.inflight)
	}

	msg := cmd()
	req := fc.calls[0]
	if req.Category != domain.CategoryTemperature || req.FromUnit != "c" || req.ToUnit != "f" || req.Value != 37 {
		t.Fatalf("unexpected request %+v", req)
	}

	m, pulseCmd := update(t, m, msg)
	if m.form.result != "37 c = 98.6 f" {
		t.Fatalf("unexpected result %q", m.form.result)
	}
	if m.inflight != 0 {
		t.Fatalf("expected nothing in flight, got %d", m.inflight)
	}
	if !m.form.pulse.active || pulseCmd == nil {
		t.Fatalf("expected pulse to start")
	}
	if m.form.toast.visible {
		t.Fatalf("expected no toast on success")
	}
}

func TestSubmit_RoundsToSixDecimals(t *testing.T) {
	fc := &fakeConverter{res: domain.ConversionResult{Result: 1.23456789}}
	m := newTestModel(fc, false)

	m, cmd := submitValue(t, m, "1")
	m, _ = update(t, m, cmd())

	if m.form.result != "1 c = 1.234568 f" {
		t.Fatalf("unexpected result %q", m.form.result)
	}
}

func TestSubmit_PulseRestartsOnSameText(t *testing.T) {
	fc := &fakeConverter{res: domain.ConversionResult{Result: 98.6}}
	m := newTestModel(fc, false)

	m, cmd := submitValue(t, m, "37")
	m, _ = update(t, m, cmd())
	first := m.form.pulse.gen

	m, cmd = update(t, m, enter)
	m, _ = update(t, m, cmd())
	if m.form.pulse.gen != first+1 || !m.form.pulse.active {
		t.Fatalf("expected pulse to restart, gen %d -> %d", first, m.form.pulse.gen)
	}

	// The first pulse's timer must not end the second one.
	m, _ = update(t, m, pulseDoneMsg{gen: first})
	if !m.form.pulse.active {
		t.Fatalf("stale pulse timer ended the current pulse")
	}
	m, _ = update(t, m, pulseDoneMsg{gen: first + 1})
	if m.form.pulse.active {
		t.Fatalf("expected pulse to end")
	}
}

func TestSubmit_ServiceErrorShowsGenericMessage(t *testing.T) {
	fc := &fakeConverter{err: &domain.OpError{
		Op:   "convclient.convert",
		Kind: domain.KindServiceError,
		Err:  &domain.ServiceError{StatusCode: 400, Body: "bad unit"},
	}}
	m := newTestModel(fc, false)

	m, cmd := submitValue(t, m, "37")
	m, _ = update(t, m, cmd())

	if m.form.toast.text != msgConvertFailed {
		t.Fatalf("expected generic message, got %q", m.form.toast.text)
	}
	if strings.Contains(m.View(), "bad unit") {
		t.Fatalf("raw service body must not be shown")
	}
	if m.form.result != domain.ResultPlaceholder {
		t.Fatalf("expected result untouched, got %q", m.form.result)
	}
}

func TestToast_SecondReplacesFirstAndRestartsTimer(t *testing.T) {
	m := newTestModel(&fakeConverter{}, false)

	m, _ = submitValue(t, m, "")
	firstGen := m.form.toast.gen
	m, _ = submitValue(t, m, "abc")

	if m.form.toast.text != msgInvalidNumber {
		t.Fatalf("expected second message, got %q", m.form.toast.text)
	}
	if m.form.toast.gen != firstGen+1 {
		t.Fatalf("expected new generation")
	}

	m, _ = update(t, m, toastExpiredMsg{gen: firstGen})
	if !m.form.toast.visible {
		t.Fatalf("first timer must not hide the second notification")
	}

	m, _ = update(t, m, toastExpiredMsg{gen: firstGen + 1})
	if m.form.toast.visible {
		t.Fatalf("expected toast hidden after its own timer")
	}
	if strings.Contains(m.View(), msgInvalidNumber) {
		t.Fatalf("hidden toast must not render")
	}
}

func TestRacingSubmissions_LastWriterWins(t *testing.T) {
	fc := &fakeConverter{res: domain.ConversionResult{Result: 1}}
	m := newTestModel(fc, false)

	m, cmdOld := submitValue(t, m, "1")
	oldMsg := cmdOld()
	fc.res = domain.ConversionResult{Result: 2}
	m, cmdNew := submitValue(t, m, "2")
	newMsg := cmdNew()
	if m.inflight != 2 {
		t.Fatalf("expected two in flight, got %d", m.inflight)
	}

	// Newer answer arrives first, older overwrites it.
	m, _ = update(t, m, newMsg)
	m, _ = update(t, m, oldMsg)
	if m.form.result != "1 c = 1 f" {
		t.Fatalf("expected older response to win when unguarded, got %q", m.form.result)
	}
}

func TestRacingSubmissions_LatestOnlyDropsStale(t *testing.T) {
	fc := &fakeConverter{res: domain.ConversionResult{Result: 1}}
	m := newTestModel(fc, true)

	m, cmdOld := submitValue(t, m, "1")
	oldMsg := cmdOld()
	fc.res = domain.ConversionResult{Result: 2}
	m, cmdNew := submitValue(t, m, "2")
	newMsg := cmdNew()

	m, _ = update(t, m, newMsg)
	m, _ = update(t, m, oldMsg)
	if m.form.result != "2 c = 2 f" {
		t.Fatalf("expected newest response to stay, got %q", m.form.result)
	}
	if m.inflight != 0 {
		t.Fatalf("expected inflight=0, got %d", m.inflight)
	}
}

func TestFocusCycle(t *testing.T) {
	m := newTestModel(&fakeConverter{}, false)
	if m.focus != fieldValue {
		t.Fatalf("expected value field focused initially")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != fieldCategory || m.form.value.Focused() {
		t.Fatalf("expected focus to wrap to category, got %d", m.focus)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.focus != fieldValue || !m.form.value.Focused() {
		t.Fatalf("expected focus back on value")
	}
}

func TestUnitSelectorsMove(t *testing.T) {
	m := newTestModel(&fakeConverter{}, false)

	m.setFocus(fieldTo)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.form.to.selected().Code != "k" {
		t.Fatalf("expected to=k, got %s", m.form.to.selected().Code)
	}

	m.setFocus(fieldFrom)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.form.from.selected().Code != "k" {
		t.Fatalf("expected from to wrap to k, got %s", m.form.from.selected().Code)
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(&fakeConverter{}, false)
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestView_ShowsFormState(t *testing.T) {
	m := newTestModel(&fakeConverter{}, false)
	out := m.View()

	for _, want := range []string{"Temperatura", "Celsius (c)", "Fahrenheit (f)", domain.ResultPlaceholder, "http://127.0.0.1:8000"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}

func TestInit_DebugShowsInfoNotification(t *testing.T) {
	m := newModel(Deps{
		Submit:  usecase.NewSubmitConversion(&fakeConverter{}),
		Debug:   true,
		LogPath: "/tmp/x/conversor.log",
	})
	if !m.form.toast.visible || m.form.toast.severity != severityInfo {
		t.Fatalf("expected visible info toast, got %+v", m.form.toast)
	}
	if !strings.Contains(m.form.toast.text, "/tmp/x/conversor.log") {
		t.Fatalf("expected log path in toast, got %q", m.form.toast.text)
	}
	if m.Init() == nil {
		t.Fatal("expected init command")
	}

	m, _ = update(t, m, toastExpiredMsg{gen: m.form.toast.gen})
	if m.form.toast.visible {
		t.Fatal("expected toast hidden after expiry")
	}
}
