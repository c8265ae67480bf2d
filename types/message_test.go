package types

import (
	"encoding/json"
	"testing"
)

func TestResponseJSON_FailureKeepsNullFilePath(t *testing.T) {
	data, err := json.Marshal(Fail("yt-dlp failed"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if v, ok := decoded["filePath"]; !ok || v != nil {
		t.Errorf("filePath = %v (present=%v), want explicit null", v, ok)
	}
	if decoded["success"] != false {
		t.Errorf("success = %v, want false", decoded["success"])
	}
	if decoded["message"] != "yt-dlp failed" {
		t.Errorf("message = %v, want %q", decoded["message"], "yt-dlp failed")
	}
}

func TestResponseJSON_SuccessCarriesFilePath(t *testing.T) {
	data, err := json.Marshal(Ok("Download complete", "/videos/clip.mp4"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if decoded["success"] != true {
		t.Errorf("success = %v, want true", decoded["success"])
	}
	if decoded["filePath"] != "/videos/clip.mp4" {
		t.Errorf("filePath = %v, want %q", decoded["filePath"], "/videos/clip.mp4")
	}
}

func TestRequestJSON_OptionalFieldsOmitted(t *testing.T) {
	data, err := json.Marshal(Request{Action: "ping"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if _, exists := decoded["url"]; exists {
		t.Error("url should be omitted when unset")
	}
	if _, exists := decoded["output_path"]; exists {
		t.Error("output_path should be omitted when unset")
	}
}

func TestRequestJSON_SnakeCaseOutputPath(t *testing.T) {
	var req Request
	raw := `{"action":"download","url":"https://example.com/v","output_path":"/tmp/out.mp4"}`
	if err := json.Unmarshal([]byte(raw), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if req.Action != ActionDownload {
		t.Errorf("Action = %q, want %q", req.Action, ActionDownload)
	}
	if req.URL == nil || *req.URL != "https://example.com/v" {
		t.Errorf("URL = %v, want %q", req.URL, "https://example.com/v")
	}
	if req.OutputPath == nil || *req.OutputPath != "/tmp/out.mp4" {
		t.Errorf("OutputPath = %v, want %q", req.OutputPath, "/tmp/out.mp4")
	}
}
