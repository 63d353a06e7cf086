package usecase

// Recorder receives business events worth counting.
type Recorder interface {
	RecordUserCreated()
	RecordOrderCreated()
	RecordOrderTransition(from, to string)
}

// NopRecorder discards every event.
type NopRecorder struct{}

func (NopRecorder) RecordUserCreated()                {}
func (NopRecorder) RecordOrderCreated()               {}
func (NopRecorder) RecordOrderTransition(_, _ string) {}
