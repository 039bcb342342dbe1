package ui

// Stage is the step a document is at in the resolve pipeline.
type Stage uint8

const (
	StageQueued Stage = iota
	StageDecode
	StageBuild
	StageResolve
	StageDone
	StageFailed
)

func (s Stage) String() string {
	switch s {
	case StageQueued:
		return "queued"
	case StageDecode:
		return "decoding"
	case StageBuild:
		return "building"
	case StageResolve:
		return "resolving"
	case StageDone:
		return "done"
	case StageFailed:
		return "error"
	}
	return ""
}

// Event reports a document moving to a new stage. An event with an empty
// File updates the header only.
type Event struct {
	File     string
	Stage    Stage
	Errors   int
	Warnings int
}

// Sink receives pipeline events. Implementations must be safe for
// concurrent use.
type Sink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel read by the progress model.
type ChannelSink chan<- Event

func (c ChannelSink) OnEvent(ev Event) {
	c <- ev
}
