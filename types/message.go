// Package types defines the wire-level message types exchanged with the
// browser extension over the native messaging channel.
package types

// ActionDownload is the only action the dispatcher currently understands.
const ActionDownload = "download"

// Request is one message received from the extension. Which optional fields
// are required depends on Action: "download" needs both URL and OutputPath.
type Request struct {
	Action     string  `json:"action"`
	URL        *string `json:"url,omitempty"`
	OutputPath *string `json:"output_path,omitempty"`
}

// Response is the reply sent back for every request. Message and FilePath are
// serialized as explicit nulls when absent; the extension relies on the keys
// being present.
//
// Invariants: Success == true implies FilePath is set (the final path reported
// by the download tool); Success == false implies Message is set.
type Response struct {
	Success  bool    `json:"success"`
	Message  *string `json:"message"`
	FilePath *string `json:"filePath"`
}

// Ok builds a success response carrying the final file path.
func Ok(message, filePath string) Response {
	return Response{
		Success:  true,
		Message:  &message,
		FilePath: &filePath,
	}
}

// Fail builds a failure response with a human-readable cause.
func Fail(message string) Response {
	return Response{
		Success: false,
		Message: &message,
	}
}
