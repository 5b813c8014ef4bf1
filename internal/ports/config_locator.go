package ports

// ConfigLocator finds the directory holding conversor.yaml starting from an arbitrary directory.
type ConfigLocator interface {
	FindRoot(startDir string) (string, error)
}
