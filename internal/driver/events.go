package driver

import "time"

// Stage describes a pipeline phase of one instrument.
type Stage string

const (
	StageLoad     Stage = "load"
	StageInclude  Stage = "include"
	StageExpand   Stage = "expand"
	StageTokenize Stage = "tokenize"
	StageBuild    Stage = "build"
)

// Status captures progress state within a stage.
type Status string

const (
	// StatusQueued indicates the file is waiting for a worker.
	StatusQueued  Status = "queued"
	StatusWorking Status = "working"
	StatusDone    Status = "done"
	// StatusCached means the disk cache answered without parsing.
	StatusCached Status = "cached"
	StatusError  Status = "error"
)

// Event reports progress for a file (or for the whole run when File is empty).
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// PhaseEvent is sent to Options.Observer when a stage of one instrument
// starts (Done false) and when it ends. Note repeats the line that goes
// into the timing table, e.g. "files=2" for include.
type PhaseEvent struct {
	File    string
	Stage   Stage
	Done    bool
	Elapsed time.Duration
	Note    string
	Err     error
}

// PhaseObserver is called synchronously from the goroutine parsing File.
type PhaseObserver func(PhaseEvent)

// ProgressSink consumes progress events. Implementations must be safe for
// concurrent use: directory runs report from several workers.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

func emit(sink ProgressSink, file string, stage Stage, status Status, err error, elapsed time.Duration) {
	if sink == nil {
		return
	}
	sink.OnEvent(Event{File: file, Stage: stage, Status: status, Err: err, Elapsed: elapsed})
}
