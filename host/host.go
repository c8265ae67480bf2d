package host

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/FahadBinHussain/ImgVault/ipc"
	"github.com/FahadBinHussain/ImgVault/log"
)

// Host runs the synchronous request/response loop over a framed channel.
type Host struct {
	channel    *ipc.Channel
	dispatcher *Dispatcher
	logger     *log.Logger
	collector  *Collector
}

// New creates a host over the given stream pair. In production r and w are
// the process stdin and stdout.
func New(r io.Reader, w io.Writer, runner Downloader, logger *log.Logger) *Host {
	collector := NewCollector()
	return &Host{
		channel:    ipc.NewChannel(r, w),
		dispatcher: NewDispatcher(runner, logger, collector),
		logger:     logger,
		collector:  collector,
	}
}

// Serve processes requests until the peer closes the channel.
//
// Read-side terminations (EOF, truncated frame) are normal shutdown and
// return nil: the browser closing the pipe is how a session ends. A write
// failure means responses can no longer be delivered and is returned as an
// error. Session counters are logged on every exit path.
func (h *Host) Serve(ctx context.Context) error {
	defer h.logSession()

	h.logger.Info("native messaging loop started", nil)

	for {
		payload, err := h.channel.ReadFrame()
		if err != nil {
			if errors.Is(err, io.EOF) {
				h.logger.Info("channel closed by peer", nil)
				return nil
			}
			// Truncated frame: the stream cannot be resynced, but a
			// dying browser is shutdown, not a reportable failure.
			h.logger.Warn("channel terminated mid-frame", map[string]any{
				"error": err.Error(),
			})
			return nil
		}
		h.collector.IncFrameRead()

		response := h.dispatcher.Dispatch(ctx, payload)

		body, err := json.Marshal(response)
		if err != nil {
			// Response structs always marshal; this guards future fields.
			return fmt.Errorf("failed to encode response: %w", err)
		}
		if err := h.channel.WriteFrame(body); err != nil {
			h.logger.Error("failed to write response", map[string]any{
				"error": err.Error(),
			})
			return fmt.Errorf("channel write failed: %w", err)
		}
		h.collector.IncResponseSent()
	}
}

// Stats returns the session counters.
func (h *Host) Stats() Snapshot {
	return h.collector.Snapshot()
}

func (h *Host) logSession() {
	stats := h.collector.Snapshot()
	h.logger.Info("session finished", map[string]any{
		"frames_read":         stats.FramesRead,
		"responses_sent":      stats.ResponsesSent,
		"parse_failures":      stats.ParseFailures,
		"validation_failures": stats.ValidationFailures,
		"unknown_actions":     stats.UnknownActions,
		"downloads_ok":        stats.DownloadsOK,
		"downloads_failed":    stats.DownloadsFailed,
	})
}
