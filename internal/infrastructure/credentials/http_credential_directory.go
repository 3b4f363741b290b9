package credentials

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"saude_conecta/internal/usecase/interfaces"
)

var ErrMissingCredentialsServiceURL = errors.New("missing CREDENTIALS_SERVICE_URL")

const defaultLookupTimeout = 5 * time.Second

// HTTPCredentialDirectory resolves expected signature-token hashes from
// the external credential collaborator.
//
// Wire contract: GET {base}/contracts/{id}/signature-token returns
//
//	{"token_hash": "<hex sha-256>", "required": true}
//
// 404 means no expectation is registered for the contract, which is a
// valid answer (tokenless signing stays permitted).

type HTTPCredentialDirectory struct {
	baseURL string
	client  *http.Client
}

var _ interfaces.ICredentialDirectory = (*HTTPCredentialDirectory)(nil)

func NewHTTPCredentialDirectory(baseURL string) (*HTTPCredentialDirectory, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, ErrMissingCredentialsServiceURL
	}
	return &HTTPCredentialDirectory{
		baseURL: baseURL,
		client:  &http.Client{Timeout: defaultLookupTimeout},
	}, nil
}

func (d *HTTPCredentialDirectory) ExpectedTokenHash(ctx context.Context, contractID string) (string, bool, error) {
	endpoint := fmt.Sprintf("%s/contracts/%s/signature-token", d.baseURL, url.PathEscape(contractID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", false, err
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return "", false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", false, nil
	}
	if resp.StatusCode != http.StatusOK {
		return "", false, fmt.Errorf("credential service returned status %d", resp.StatusCode)
	}

	var payload struct {
		TokenHash string `json:"token_hash"`
		Required  bool   `json:"required"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", false, err
	}
	return strings.TrimSpace(payload.TokenHash), payload.Required, nil
}
