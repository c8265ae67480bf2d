// Package ipc implements the browser native messaging framing: a 4-byte
// unsigned length prefix in host-native byte order followed by that many
// bytes of UTF-8 JSON, both directions over stdio.
package ipc

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"unicode/utf8"
)

// LengthPrefixSize is the size of the length prefix in bytes.
const LengthPrefixSize = 4

// FrameErrorKind classifies frame decoding errors.
type FrameErrorKind int

const (
	// FrameErrorPartial indicates a frame body shorter than its declared
	// length. The stream cannot be resynced afterwards.
	FrameErrorPartial FrameErrorKind = iota
	// FrameErrorWrite indicates a failed frame write. The peer has closed
	// the pipe; the channel is unusable.
	FrameErrorWrite
)

// FrameError represents a channel-level framing error. All kinds are fatal
// to the channel; per-request errors never surface here.
type FrameError struct {
	Kind FrameErrorKind
	Msg  string
	Err  error
}

func (e *FrameError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *FrameError) Unwrap() error {
	return e.Err
}

// Channel reads and writes length-prefixed frames over a stream pair.
// In production the pair is the process stdin/stdout; tests substitute
// in-memory buffers. Access is strictly sequential, one goroutine.
type Channel struct {
	reader io.Reader
	writer *bufio.Writer
}

// NewChannel creates a channel over the given stream pair.
func NewChannel(r io.Reader, w io.Writer) *Channel {
	return &Channel{
		reader: r,
		writer: bufio.NewWriter(w),
	}
}

// ReadFrame reads the next frame body from the stream.
//
// Frames whose body is not valid UTF-8 are silently discarded and reading
// continues with the next frame; the peer gets no reply for them.
//
// Errors:
//   - io.EOF: the stream closed at a frame boundary, or the length prefix was
//     truncated. This is the normal shutdown signal, not a reportable error.
//   - *FrameError with Kind=FrameErrorPartial: body shorter than declared.
func (c *Channel) ReadFrame() ([]byte, error) {
	for {
		var lengthBuf [LengthPrefixSize]byte
		if _, err := io.ReadFull(c.reader, lengthBuf[:]); err != nil {
			// A short prefix read means the browser closed the pipe;
			// collapse both cases into the shutdown signal.
			return nil, io.EOF
		}

		// Host-native byte order: the peer is the browser on the same
		// machine, and the protocol is defined in terms of native u32.
		bodySize := binary.NativeEndian.Uint32(lengthBuf[:])

		body := make([]byte, bodySize)
		if _, err := io.ReadFull(c.reader, body); err != nil {
			return nil, &FrameError{
				Kind: FrameErrorPartial,
				Msg:  fmt.Sprintf("frame body truncated (declared %d bytes)", bodySize),
				Err:  err,
			}
		}

		if !utf8.Valid(body) {
			continue
		}

		return body, nil
	}
}

// WriteFrame writes one frame and flushes it so the peer observes the bytes
// without buffering delay. Any failure is fatal to the channel.
func (c *Channel) WriteFrame(body []byte) error {
	var lengthBuf [LengthPrefixSize]byte
	binary.NativeEndian.PutUint32(lengthBuf[:], uint32(len(body)))

	if _, err := c.writer.Write(lengthBuf[:]); err != nil {
		return &FrameError{Kind: FrameErrorWrite, Msg: "failed to write length prefix", Err: err}
	}
	if _, err := c.writer.Write(body); err != nil {
		return &FrameError{Kind: FrameErrorWrite, Msg: "failed to write frame body", Err: err}
	}
	if err := c.writer.Flush(); err != nil {
		return &FrameError{Kind: FrameErrorWrite, Msg: "failed to flush frame", Err: err}
	}
	return nil
}
