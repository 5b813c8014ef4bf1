// Package domain contains the core model for the conversion form.
//
// The domain is transport- and UI-agnostic: it does not depend on net/http,
// YAML parsing or the terminal. Infra/adapters and the TUI map into/from these types.
package domain
