package host

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"io"
	"testing"

	"github.com/FahadBinHussain/ImgVault/ipc"
	"github.com/FahadBinHussain/ImgVault/types"
)

func encodeFrame(body []byte) []byte {
	buf := make([]byte, ipc.LengthPrefixSize+len(body))
	binary.NativeEndian.PutUint32(buf[:ipc.LengthPrefixSize], uint32(len(body)))
	copy(buf[ipc.LengthPrefixSize:], body)
	return buf
}

// decodeResponses reads every response frame from the host's output stream.
func decodeResponses(t *testing.T, out *bytes.Buffer) []types.Response {
	t.Helper()
	ch := ipc.NewChannel(out, io.Discard)
	var responses []types.Response
	for {
		body, err := ch.ReadFrame()
		if err == io.EOF {
			return responses
		}
		if err != nil {
			t.Fatalf("reading response frame: %v", err)
		}
		var resp types.Response
		if err := json.Unmarshal(body, &resp); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		responses = append(responses, resp)
	}
}

func TestServe_RequestResponseSequence(t *testing.T) {
	var input bytes.Buffer
	input.Write(encodeFrame([]byte(`{"action":"download","url":"https://example.com/a","output_path":"/v/a.mp4"}`)))
	input.Write(encodeFrame([]byte(`{"action":"nonsense"}`)))

	var output bytes.Buffer
	runner := &fakeRunner{path: "/v/a.webm"}
	h := New(&input, &output, runner, testLogger())

	if err := h.Serve(context.Background()); err != nil {
		t.Fatalf("Serve returned %v, want nil on clean shutdown", err)
	}

	responses := decodeResponses(t, &output)
	if len(responses) != 2 {
		t.Fatalf("got %d responses, want 2", len(responses))
	}
	if !responses[0].Success || *responses[0].FilePath != "/v/a.webm" {
		t.Errorf("first response = %+v, want download success", responses[0])
	}
	if responses[1].Success {
		t.Errorf("second response = %+v, want unknown-action failure", responses[1])
	}

	stats := h.Stats()
	if stats.FramesRead != 2 || stats.ResponsesSent != 2 {
		t.Errorf("stats = %+v, want 2 frames read and 2 responses sent", stats)
	}
	if stats.DownloadsOK != 1 || stats.UnknownActions != 1 {
		t.Errorf("stats = %+v, want one download and one unknown action", stats)
	}
}

func TestServe_EmptyInputShutsDownCleanly(t *testing.T) {
	h := New(bytes.NewReader(nil), io.Discard, &fakeRunner{}, testLogger())
	if err := h.Serve(context.Background()); err != nil {
		t.Errorf("Serve = %v, want nil", err)
	}
}

func TestServe_TruncatedFrameEndsLoopQuietly(t *testing.T) {
	frame := encodeFrame([]byte(`{"action":"download"}`))

	tests := []struct {
		name  string
		input []byte
	}{
		{"short prefix", frame[:2]},
		{"short body", frame[:len(frame)-3]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New(bytes.NewReader(tt.input), io.Discard, &fakeRunner{}, testLogger())
			if err := h.Serve(context.Background()); err != nil {
				t.Errorf("Serve = %v, want nil for truncated input", err)
			}
		})
	}
}

func TestServe_WriteFailureIsFatal(t *testing.T) {
	var input bytes.Buffer
	input.Write(encodeFrame([]byte(`{"action":"x"}`)))

	h := New(&input, failingWriter{}, &fakeRunner{}, testLogger())
	if err := h.Serve(context.Background()); err == nil {
		t.Error("Serve = nil, want error when the response pipe is broken")
	}
}

func TestServe_MalformedEncodingSkippedNotAnswered(t *testing.T) {
	var input bytes.Buffer
	input.Write(encodeFrame([]byte{0xff, 0xfe})) // not UTF-8, silently dropped
	input.Write(encodeFrame([]byte(`{"action":"x"}`)))

	var output bytes.Buffer
	h := New(&input, &output, &fakeRunner{}, testLogger())
	if err := h.Serve(context.Background()); err != nil {
		t.Fatalf("Serve failed: %v", err)
	}

	responses := decodeResponses(t, &output)
	if len(responses) != 1 {
		t.Errorf("got %d responses, want 1 (malformed frame gets no reply)", len(responses))
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, io.ErrClosedPipe
}
