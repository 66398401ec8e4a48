package storage

import (
	"fmt"
	"io"
	"time"
)

// OpEvent records metadata about a single store operation.
type OpEvent struct {
	Op        string // "load" or "save"
	Path      string
	Bytes     int
	LatencyMs int64
	Success   bool
}

// Observer receives events about store operations for diagnostics.
type Observer interface {
	OnOpComplete(event OpEvent)
}

// LogObserver writes store events to an io.Writer.
type LogObserver struct {
	w io.Writer
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnOpComplete(event OpEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	status := "ok"
	if !event.Success {
		status = "err"
	}
	fmt.Fprintf(o.w, "[%s] store_%s path=%s bytes=%d latency_ms=%d status=%s\n",
		ts, event.Op, event.Path, event.Bytes, event.LatencyMs, status)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnOpComplete(OpEvent) {}
