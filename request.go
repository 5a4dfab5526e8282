package agreements

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

// postJSON sends an authenticated POST to path under the session's endpoint
// and returns the raw response body.  Transport errors and non-2xx statuses
// are folded into an ErrRequestFailed tagged with the operation name.
func (c *Client) postJSON(ctx context.Context, session *AuthSession, op, path string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, FailedRequest(op, fmt.Errorf("encode request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, session.Endpoint+path, bytes.NewReader(body))
	if err != nil {
		return nil, FailedRequest(op, err)
	}

	session.apply(req)

	c.logger().Debug("POST", slog.String("path", path), slog.String("body", string(body)))

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, FailedRequest(op, err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, FailedRequest(op, fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode/100 != 2 {
		return nil, FailedRequest(op, fmt.Errorf("status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(respBody))))
	}

	c.logger().Debug("response", slog.String("path", path), slog.Int("status", resp.StatusCode), slog.String("body", string(respBody)))

	return respBody, nil
}

func decodeResponse(body []byte, out any) error {
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
