package tui

import "github.com/aalvaropc/conversor/internal/domain"

type conversionDoneMsg struct {
	seq uint64
	req domain.ConversionRequest
	res domain.ConversionResult
	err error
}

type toastExpiredMsg struct {
	gen int
}

type pulseDoneMsg struct {
	gen int
}
