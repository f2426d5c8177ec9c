package paypal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2/clientcredentials"

	"github.com/Nexora712/linkbio-backend/internal/modules/payment/domain"
	"github.com/Nexora712/linkbio-backend/internal/shared/infrastructure/config"
)

// Client is a minimal PayPal REST client covering order checkout and webhook
// verification. Authentication uses the client-credentials flow; the oauth2
// transport caches and refreshes the access token.
type Client struct {
	http      *http.Client
	apiBase   string
	webhookID string
}

func NewClient(cfg config.PayPalConfig) *Client {
	cc := clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.Secret,
		TokenURL:     strings.TrimSuffix(cfg.APIBase, "/") + "/v1/oauth2/token",
	}

	httpClient := cc.Client(context.Background())
	httpClient.Timeout = 30 * time.Second

	return &Client{
		http:      httpClient,
		apiBase:   strings.TrimSuffix(cfg.APIBase, "/"),
		webhookID: cfg.WebhookID,
	}
}

type orderAmount struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

type purchaseUnit struct {
	Description string      `json:"description,omitempty"`
	Amount      orderAmount `json:"amount"`
}

type orderResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// CreateOrder opens a PayPal order for the given amount in minor units and
// returns PayPal's order id for client-side approval.
func (c *Client) CreateOrder(ctx context.Context, amount int, currency, description string) (string, error) {
	body := map[string]any{
		"intent": "CAPTURE",
		"purchase_units": []purchaseUnit{{
			Description: description,
			Amount: orderAmount{
				CurrencyCode: currency,
				Value:        fmt.Sprintf("%d.%02d", amount/100, amount%100),
			},
		}},
	}

	var resp orderResponse
	if err := c.post(ctx, "/v2/checkout/orders", body, &resp); err != nil {
		return "", fmt.Errorf("create paypal order: %w", err)
	}
	if resp.ID == "" {
		return "", fmt.Errorf("create paypal order: empty order id in response")
	}
	return resp.ID, nil
}

// CaptureOrder captures an approved order and returns PayPal's final status
// (COMPLETED on success).
func (c *Client) CaptureOrder(ctx context.Context, paypalOrderID string) (string, error) {
	var resp orderResponse
	path := fmt.Sprintf("/v2/checkout/orders/%s/capture", paypalOrderID)
	if err := c.post(ctx, path, struct{}{}, &resp); err != nil {
		return "", fmt.Errorf("capture paypal order: %w", err)
	}
	return resp.Status, nil
}

// WebhookHeadersFromRequest extracts the signature headers from a webhook
// delivery.
func WebhookHeadersFromRequest(r *http.Request) domain.WebhookHeaders {
	return domain.WebhookHeaders{
		TransmissionID:   r.Header.Get("Paypal-Transmission-Id"),
		TransmissionTime: r.Header.Get("Paypal-Transmission-Time"),
		TransmissionSig:  r.Header.Get("Paypal-Transmission-Sig"),
		CertURL:          r.Header.Get("Paypal-Cert-Url"),
		AuthAlgo:         r.Header.Get("Paypal-Auth-Algo"),
	}
}

// VerifyWebhookSignature asks PayPal to verify a webhook delivery against the
// configured webhook id. Only a SUCCESS verdict counts as verified.
func (c *Client) VerifyWebhookSignature(ctx context.Context, headers domain.WebhookHeaders, event []byte) (bool, error) {
	body := map[string]any{
		"transmission_id":   headers.TransmissionID,
		"transmission_time": headers.TransmissionTime,
		"transmission_sig":  headers.TransmissionSig,
		"cert_url":          headers.CertURL,
		"auth_algo":         headers.AuthAlgo,
		"webhook_id":        c.webhookID,
		"webhook_event":     json.RawMessage(event),
	}

	var resp struct {
		VerificationStatus string `json:"verification_status"`
	}
	if err := c.post(ctx, "/v1/notification/verify-webhook-signature", body, &resp); err != nil {
		return false, fmt.Errorf("verify webhook signature: %w", err)
	}
	return resp.VerificationStatus == "SUCCESS", nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiBase+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("paypal returned %d: %s", resp.StatusCode, detail)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
