// Package host implements the native messaging request loop: frames in from
// the browser, typed dispatch, frames out. One request is fully processed,
// download included, before the next frame is read.
package host

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/FahadBinHussain/ImgVault/log"
	"github.com/FahadBinHussain/ImgVault/types"
)

// Downloader abstracts the captured-mode subprocess runner for testing.
type Downloader interface {
	Download(ctx context.Context, url, outputPath string) (string, error)
}

// Dispatcher decodes request payloads, routes on action and encodes typed
// responses. Dispatch is total: every failure mode becomes a failure
// response, never an error to the loop.
type Dispatcher struct {
	runner    Downloader
	logger    *log.Logger
	collector *Collector
}

// NewDispatcher creates a dispatcher. collector may be nil.
func NewDispatcher(runner Downloader, logger *log.Logger, collector *Collector) *Dispatcher {
	return &Dispatcher{
		runner:    runner,
		logger:    logger,
		collector: collector,
	}
}

// Dispatch handles one raw request payload and returns the response to send.
//
// Failure taxonomy, each with a distinct message:
//   - malformed JSON: parse failure
//   - unknown action: action echoed for observability
//   - download without url/output_path: missing parameter
//   - runner failure: the runner's diagnostic, verbatim
func (d *Dispatcher) Dispatch(ctx context.Context, payload []byte) types.Response {
	// Short correlation id ties together the log lines of one exchange.
	reqID := uuid.NewString()[:8]

	var req types.Request
	if err := json.Unmarshal(payload, &req); err != nil {
		d.collector.IncParseFailure()
		d.logger.Warn("failed to parse request", map[string]any{
			"request_id": reqID,
			"error":      err.Error(),
		})
		return types.Fail(fmt.Sprintf("failed to parse message: %v", err))
	}

	d.logger.Info("request received", map[string]any{
		"request_id": reqID,
		"action":     req.Action,
	})

	switch req.Action {
	case types.ActionDownload:
		return d.download(ctx, reqID, req)
	default:
		d.collector.IncUnknownAction()
		d.logger.Warn("unknown action", map[string]any{
			"request_id": reqID,
			"action":     req.Action,
		})
		return types.Fail(fmt.Sprintf("unknown action %q", req.Action))
	}
}

func (d *Dispatcher) download(ctx context.Context, reqID string, req types.Request) types.Response {
	if req.URL == nil || req.OutputPath == nil {
		d.collector.IncValidationFailure()
		d.logger.Warn("download request rejected", map[string]any{
			"request_id": reqID,
			"has_url":    req.URL != nil,
			"has_output": req.OutputPath != nil,
		})
		return types.Fail("missing parameter: url and output_path are required for download")
	}

	d.logger.Info("starting download", map[string]any{
		"request_id":  reqID,
		"url":         *req.URL,
		"output_path": *req.OutputPath,
	})

	filePath, err := d.runner.Download(ctx, *req.URL, *req.OutputPath)
	if err != nil {
		d.collector.IncDownloadFailed()
		d.logger.Error("download failed", map[string]any{
			"request_id": reqID,
			"error":      err.Error(),
		})
		return types.Fail(err.Error())
	}

	d.collector.IncDownloadOK()
	d.logger.Info("download complete", map[string]any{
		"request_id": reqID,
		"file_path":  filePath,
	})
	return types.Ok("Download complete", filePath)
}
