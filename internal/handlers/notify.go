package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/spectexnika/listing-api/internal/services"
)

// NotifyHandler forwards incoming notifications to the bot webhook.
// Multipart requests become announcement relays with file attachments;
// JSON bodies become text-message relays.
type NotifyHandler struct {
	relay     RelayServiceInterface
	uploadDir string
}

func NewNotifyHandler(relay RelayServiceInterface, uploadDir string) *NotifyHandler {
	return &NotifyHandler{relay: relay, uploadDir: uploadDir}
}

func (h *NotifyHandler) Send(c *drift.Context) {
	if strings.Contains(c.GetHeader("Content-Type"), "multipart/form-data") {
		h.sendAnnouncement(c)
		return
	}
	h.sendMessage(c)
}

// Ping relays a canned test message to verify the webhook wiring.
func (h *NotifyHandler) Ping(c *drift.Context) {
	respondRelay(c, h.relay.Ping(context.Background()))
}

func (h *NotifyHandler) sendAnnouncement(c *drift.Context) {
	if err := c.Request.ParseMultipartForm(32 << 20); err != nil {
		respondError(c, 400, "invalid multipart form")
		return
	}

	payload := map[string]any{}
	if formData := c.Request.FormValue("formData"); formData != "" {
		if err := json.Unmarshal([]byte(formData), &payload); err != nil {
			respondError(c, 400, "formData must be a JSON object")
			return
		}
	}

	headers := c.Request.MultipartForm.File["files"]
	if len(headers) == 0 {
		headers = c.Request.MultipartForm.File["files[]"]
	}
	attachments := h.saveUploads(headers)

	result := h.relay.SendAnnouncement(context.Background(), payload, attachments)
	respondRelay(c, result)
}

func (h *NotifyHandler) sendMessage(c *drift.Context) {
	var messageData map[string]any
	if err := c.BindJSON(&messageData); err != nil {
		respondError(c, 400, "invalid request body")
		return
	}

	result := h.relay.SendMessage(context.Background(), messageData)
	respondRelay(c, result)
}

// saveUploads spools multipart file parts to the upload directory. A
// part that cannot be saved is logged and skipped; the relay still runs
// with whatever was saved.
func (h *NotifyHandler) saveUploads(headers []*multipart.FileHeader) []services.Attachment {
	var attachments []services.Attachment
	for _, fh := range headers {
		path, err := h.saveUpload(fh)
		if err != nil {
			log.Printf("notify: failed to spool upload %s: %v", fh.Filename, err)
			continue
		}
		attachments = append(attachments, services.Attachment{
			Path:         path,
			OriginalName: fh.Filename,
			MimeType:     fh.Header.Get("Content-Type"),
		})
	}
	return attachments
}

func (h *NotifyHandler) saveUpload(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(h.uploadDir, uuid.New().String()+filepath.Ext(fh.Filename))
	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}

// respondRelay surfaces the relay outcome: downstream success as 200,
// anything else (non-2xx, transport failure, config error) as 500 with
// the captured status and body. Relays are never retried.
func respondRelay(c *drift.Context, result services.RelayResult) {
	if result.Success {
		_ = c.JSON(200, result)
		return
	}
	_ = c.JSON(500, result)
}
