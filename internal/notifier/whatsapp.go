// Package notifier proxies messaging to the WhatsApp bridge microservice.
// The bridge owns the WhatsApp session; this client only forwards requests
// and never lets a messaging failure break the business operation that
// triggered it.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/ports/services"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/dto"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/middleware"
)

// WhatsAppClient talks HTTP to the WhatsApp bridge.
type WhatsAppClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewWhatsAppClient creates a client for the bridge at baseURL
// (e.g. http://localhost:3001).
func NewWhatsAppClient(baseURL string) *WhatsAppClient {
	return &WhatsAppClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			// Document uploads over the bridge can be slow.
			Timeout: 30 * time.Second,
		},
	}
}

var _ portssvc.MessagingNotifier = (*WhatsAppClient)(nil)

func (c *WhatsAppClient) logger(ctx context.Context) *slog.Logger {
	if l := middleware.GetLoggerFromCtx(ctx); l != nil {
		return l
	}
	return slog.Default()
}

func (c *WhatsAppClient) getJSON(ctx context.Context, path string) (map[string]interface{}, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("whatsapp bridge unreachable: %w", err)
	}
	defer resp.Body.Close()

	var out map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("whatsapp bridge returned invalid JSON: %w", err)
	}
	return out, nil
}

func (c *WhatsAppClient) postJSON(ctx context.Context, path string, payload any) (int, []byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("whatsapp bridge unreachable: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	return resp.StatusCode, respBody, nil
}

// Status returns the bridge connection state.
func (c *WhatsAppClient) Status(ctx context.Context) (map[string]interface{}, error) {
	return c.getJSON(ctx, "/status")
}

// QRCode returns the pairing QR payload while the bridge is unlinked.
func (c *WhatsAppClient) QRCode(ctx context.Context) (map[string]interface{}, error) {
	return c.getJSON(ctx, "/qr")
}

// Disconnect unlinks the bridge session.
func (c *WhatsAppClient) Disconnect(ctx context.Context) (map[string]interface{}, error) {
	status, body, err := c.postJSON(ctx, "/disconnect", struct{}{})
	if err != nil {
		return nil, err
	}
	var out map[string]interface{}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("whatsapp bridge returned invalid JSON: %w", err)
	}
	if status >= http.StatusBadRequest {
		return out, fmt.Errorf("whatsapp bridge disconnect failed with status %d", status)
	}
	return out, nil
}

func (c *WhatsAppClient) send(ctx context.Context, path string, payload any) dto.NotifyResult {
	status, body, err := c.postJSON(ctx, path, payload)
	if err != nil {
		c.logger(ctx).Warn("whatsapp send failed",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return dto.NotifyResult{Success: false, Detail: err.Error()}
	}
	if status >= http.StatusBadRequest {
		detail := fmt.Sprintf("bridge responded %d: %s", status, string(body))
		c.logger(ctx).Warn("whatsapp send rejected",
			slog.String("path", path),
			slog.Int("status", status))
		return dto.NotifyResult{Success: false, Detail: detail}
	}
	return dto.NotifyResult{Success: true}
}

// SendMessage sends a plain text message.
func (c *WhatsAppClient) SendMessage(ctx context.Context, phoneNumber, message string) dto.NotifyResult {
	return c.send(ctx, "/send-message", map[string]string{
		"phoneNumber": phoneNumber,
		"message":     message,
	})
}

// SendDocument sends a document with an optional caption.
func (c *WhatsAppClient) SendDocument(ctx context.Context, phoneNumber, filePath, fileName, caption string) dto.NotifyResult {
	return c.send(ctx, "/send-document", map[string]string{
		"phoneNumber": phoneNumber,
		"filePath":    filePath,
		"fileName":    fileName,
		"caption":     caption,
	})
}

// SendInvoice sends an invoice PDF with a templated caption.
func (c *WhatsAppClient) SendInvoice(ctx context.Context, req dto.SendInvoiceRequest) dto.NotifyResult {
	return c.send(ctx, "/send-invoice", req)
}
