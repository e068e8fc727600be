package writer

type implWriter struct{}

// New creates a Writer
func New() Writer {
	return &implWriter{}
}
