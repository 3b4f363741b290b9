package notifications

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"saude_conecta/internal/domain/entities"
	"saude_conecta/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrMissingWebhookURL = errors.New("missing NOTIFICATIONS_WEBHOOK_URL")

const (
	signatureHeader = "X-Signature"
	eventIDHeader   = "X-Event-Id"
	eventTypeHeader = "X-Event-Type"

	eventTypeWorkflowAdvanced = "contract.workflow_advanced"

	defaultDispatchTimeout = 10 * time.Second
)

// WebhookDispatcher delivers workflow events to the notification
// collaborator as signed HTTP POSTs.
//
// Wire contract:
//   - body: the WorkflowEvent as JSON
//   - X-Event-Id: unique id for caller-side deduplication
//   - X-Event-Type: contract.workflow_advanced
//   - X-Signature: hex HMAC-SHA256 of the raw body under the shared secret
//
// Retries and ordering are the consumer's concern; one POST per event.

type WebhookDispatcher struct {
	url    string
	secret string
	client *http.Client
}

var _ interfaces.INotificationDispatcher = (*WebhookDispatcher)(nil)

func NewWebhookDispatcher(url, secret string) (*WebhookDispatcher, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, ErrMissingWebhookURL
	}
	return &WebhookDispatcher{
		url:    url,
		secret: strings.TrimSpace(secret),
		client: &http.Client{Timeout: defaultDispatchTimeout},
	}, nil
}

func (d *WebhookDispatcher) DispatchWorkflowAdvanced(ctx context.Context, ev entities.WorkflowEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(eventIDHeader, uuid.NewString())
	req.Header.Set(eventTypeHeader, eventTypeWorkflowAdvanced)
	if d.secret != "" {
		req.Header.Set(signatureHeader, signBody(d.secret, body))
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("notification webhook returned status %d", resp.StatusCode)
	}
	log.Printf("[notifications][webhook] event delivered contract_id=%s %s->%s", ev.ContractID, ev.OldStatus, ev.NewStatus)
	return nil
}

func signBody(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	_, _ = mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}
