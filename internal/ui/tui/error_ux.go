package tui

import "github.com/aalvaropc/conversor/internal/domain"

const (
	msgEmptyInput    = "Informe um valor para converter."
	msgInvalidNumber = "Valor inválido. Use números (ex: 12.34)."
	msgConvertFailed = "Não foi possível converter. Verifique os dados e a API."
	msgUnexpected    = "Erro inesperado (veja os logs)."
)

// userMessage collapses any failure into one of the fixed messages.
// Service bodies and transport errors only ever reach the log.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	switch domain.KindOf(err) {
	case domain.KindEmptyInput:
		return msgEmptyInput
	case domain.KindInvalidNumber:
		return msgInvalidNumber
	default:
		return msgConvertFailed
	}
}
