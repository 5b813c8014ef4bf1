package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/conversor/internal/domain"
)

const (
	toastDuration = 2800 * time.Millisecond
	pulseDuration = 400 * time.Millisecond
)

// cmdConvert runs one service call off the event loop. There is no deadline;
// the request ends when the network stack says so.
func cmdConvert(s Submitter, seq uint64, req domain.ConversionRequest) tea.Cmd {
	return func() tea.Msg {
		res, err := s.Execute(context.Background(), req)
		return conversionDoneMsg{seq: seq, req: req, res: res, err: err}
	}
}

func cmdExpireToast(gen int) tea.Cmd {
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{gen: gen}
	})
}

func cmdEndPulse(gen int) tea.Cmd {
	return tea.Tick(pulseDuration, func(time.Time) tea.Msg {
		return pulseDoneMsg{gen: gen}
	})
}
