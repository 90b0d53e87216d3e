package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"os"
	"sync"
	"time"
)

// Attachment references a temporary upload on local disk. The relay owns
// the file for the duration of the call and always deletes it before
// returning.
type Attachment struct {
	Path         string
	OriginalName string
	MimeType     string
}

// RelayResult reports the outcome of one webhook delivery. Success
// reflects the downstream HTTP status only; transport failures carry a
// classification code instead of a status.
type RelayResult struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Status  int    `json:"status,omitempty"`
	Code    string `json:"code,omitempty"`
}

// RelayService forwards announcements and chat messages to the bot
// webhook endpoints.
type RelayService struct {
	announcementURL string
	messageURL      string
	client          *http.Client
}

func NewRelayService(announcementURL, messageURL string, timeout time.Duration) *RelayService {
	return &RelayService{
		announcementURL: announcementURL,
		messageURL:      messageURL,
		client:          &http.Client{Timeout: timeout},
	}
}

// SendAnnouncement posts the payload and attachments as multipart form
// data. Attachments whose file has vanished are skipped with a warning.
// Every attachment's backing file is deleted before this returns, no
// matter how delivery went.
func (s *RelayService) SendAnnouncement(ctx context.Context, payload map[string]any, files []Attachment) RelayResult {
	defer s.cleanup(files)

	if s.announcementURL == "" {
		return RelayResult{Error: ErrRelayNotConfigured.Error(), Code: "CONFIG_ERROR"}
	}

	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)

	if len(payload) > 0 {
		data, err := json.Marshal(payload)
		if err != nil {
			return RelayResult{Error: fmt.Sprintf("encoding announcement data: %v", err), Code: "ENCODE_ERROR"}
		}
		if err := form.WriteField("announcementData", string(data)); err != nil {
			return RelayResult{Error: err.Error(), Code: "ENCODE_ERROR"}
		}
	}

	for i, f := range files {
		if err := appendFilePart(form, f, i); err != nil {
			if os.IsNotExist(err) {
				log.Printf("relay: file not found, skipping: %s", f.Path)
				continue
			}
			return RelayResult{Error: err.Error(), Code: "ENCODE_ERROR"}
		}
	}

	if err := form.Close(); err != nil {
		return RelayResult{Error: err.Error(), Code: "ENCODE_ERROR"}
	}

	return s.post(ctx, s.announcementURL, form.FormDataContentType(), body)
}

func appendFilePart(form *multipart.Writer, f Attachment, index int) error {
	file, err := os.Open(f.Path)
	if err != nil {
		return err
	}
	defer file.Close()

	name := f.OriginalName
	if name == "" {
		name = fmt.Sprintf("file_%d", index)
	}
	mimeType := f.MimeType
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="files"; filename=%q`, name))
	header.Set("Content-Type", mimeType)

	part, err := form.CreatePart(header)
	if err != nil {
		return err
	}
	_, err = io.Copy(part, file)
	return err
}

// SendMessage posts a text-only payload as a JSON envelope. There are no
// attachments and therefore no cleanup phase.
func (s *RelayService) SendMessage(ctx context.Context, messageData map[string]any) RelayResult {
	if s.messageURL == "" {
		return RelayResult{Error: ErrRelayNotConfigured.Error(), Code: "CONFIG_ERROR"}
	}
	if len(messageData) == 0 {
		return RelayResult{Error: "message data is empty", Code: "EMPTY_PAYLOAD"}
	}

	envelope := map[string]any{
		"messageData": messageData,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"type":        "text_message",
	}
	body, err := json.Marshal(envelope)
	if err != nil {
		return RelayResult{Error: err.Error(), Code: "ENCODE_ERROR"}
	}

	return s.post(ctx, s.messageURL, "application/json", bytes.NewReader(body))
}

// Ping sends a canned test message to verify the webhook wiring.
func (s *RelayService) Ping(ctx context.Context) RelayResult {
	return s.SendMessage(ctx, map[string]any{
		"message": "Ping test",
		"sender":  "webhook-client",
		"test":    true,
	})
}

func (s *RelayService) post(ctx context.Context, target, contentType string, body io.Reader) RelayResult {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, body)
	if err != nil {
		return RelayResult{Error: err.Error(), Code: "BAD_REQUEST"}
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("relay: webhook request failed: %v", err)
		return RelayResult{Error: err.Error(), Code: classifyNetError(err)}
	}
	defer resp.Body.Close()

	text, err := io.ReadAll(resp.Body)
	if err != nil {
		return RelayResult{Error: err.Error(), Status: resp.StatusCode, Code: "READ_ERROR"}
	}

	var data any
	if err := json.Unmarshal(text, &data); err != nil {
		log.Printf("relay: webhook returned non-JSON response: %v", err)
		data = map[string]any{
			"raw_response": string(text),
			"parse_error":  err.Error(),
		}
	}

	return RelayResult{
		Success: resp.StatusCode >= 200 && resp.StatusCode < 300,
		Data:    data,
		Status:  resp.StatusCode,
	}
}

func classifyNetError(err error) string {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return "TIMEOUT"
	}
	return "UNKNOWN_ERROR"
}

// cleanup removes every attachment's backing file, attempting all of
// them concurrently and waiting for every attempt before returning.
// Individual failures are logged and never affect the relay outcome.
func (s *RelayService) cleanup(files []Attachment) {
	if len(files) == 0 {
		return
	}
	var wg sync.WaitGroup
	for _, f := range files {
		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
				log.Printf("relay: failed to delete temp file %s: %v", path, err)
			}
		}(f.Path)
	}
	wg.Wait()
}
