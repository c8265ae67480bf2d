package host

import "sync"

// Snapshot is an immutable point-in-time view of the session counters.
type Snapshot struct {
	FramesRead         int64
	ResponsesSent      int64
	ParseFailures      int64
	ValidationFailures int64
	UnknownActions     int64
	DownloadsOK        int64
	DownloadsFailed    int64
}

// Collector accumulates counters for one host session, logged once when the
// serve loop exits. Thread-safe; all increment methods are nil-receiver safe
// so wiring it is optional.
type Collector struct {
	mu sync.Mutex

	framesRead         int64
	responsesSent      int64
	parseFailures      int64
	validationFailures int64
	unknownActions     int64
	downloadsOK        int64
	downloadsFailed    int64
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) inc(field *int64) {
	c.mu.Lock()
	*field++
	c.mu.Unlock()
}

// IncFrameRead records a frame read from the channel.
func (c *Collector) IncFrameRead() {
	if c == nil {
		return
	}
	c.inc(&c.framesRead)
}

// IncResponseSent records a response written to the channel.
func (c *Collector) IncResponseSent() {
	if c == nil {
		return
	}
	c.inc(&c.responsesSent)
}

// IncParseFailure records a request that was not valid JSON.
func (c *Collector) IncParseFailure() {
	if c == nil {
		return
	}
	c.inc(&c.parseFailures)
}

// IncValidationFailure records a download request missing parameters.
func (c *Collector) IncValidationFailure() {
	if c == nil {
		return
	}
	c.inc(&c.validationFailures)
}

// IncUnknownAction records a request with an unrecognized action.
func (c *Collector) IncUnknownAction() {
	if c == nil {
		return
	}
	c.inc(&c.unknownActions)
}

// IncDownloadOK records a successful tool invocation.
func (c *Collector) IncDownloadOK() {
	if c == nil {
		return
	}
	c.inc(&c.downloadsOK)
}

// IncDownloadFailed records a failed tool invocation.
func (c *Collector) IncDownloadFailed() {
	if c == nil {
		return
	}
	c.inc(&c.downloadsFailed)
}

// Snapshot returns a copy of all counters.
func (c *Collector) Snapshot() Snapshot {
	if c == nil {
		return Snapshot{}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		FramesRead:         c.framesRead,
		ResponsesSent:      c.responsesSent,
		ParseFailures:      c.parseFailures,
		ValidationFailures: c.validationFailures,
		UnknownActions:     c.unknownActions,
		DownloadsOK:        c.downloadsOK,
		DownloadsFailed:    c.downloadsFailed,
	}
}
