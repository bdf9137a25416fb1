package emitter

// Output represents the operations required by the engine to replace the
// word on screen. It is satisfied by Terminal and enables tests to
// substitute lightweight fakes.
type Output interface {
	Close() error
	SendBackspace(count int) error
	SendText(text string) error
}

var _ Output = (*Terminal)(nil)
