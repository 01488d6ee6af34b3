// Package payment implements the PaymentGateway domain service against a
// Paystack-compatible REST API.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"orda/config"
	"orda/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultTimeout = 15 * time.Second

// paystackGateway talks to the processor's transaction endpoints. It holds
// no business logic; amount and reference rules live in the use cases.
type paystackGateway struct {
	baseURL     string
	secretKey   string
	callbackURL string
	httpClient  *http.Client
	logger      *slog.Logger
}

// NewPaystackGateway is the constructor for paystackGateway.
func NewPaystackGateway(cfg *config.Config, logger *slog.Logger) (service.PaymentGateway, error) {
	if cfg.Payment == nil || cfg.Payment.SecretKey == "" {
		return nil, errors.New("payment secret key must be provided")
	}
	if cfg.Payment.BaseURL == "" {
		return nil, errors.New("payment base URL must be provided")
	}

	timeout := defaultTimeout
	if cfg.Payment.Timeout > 0 {
		timeout = cfg.Payment.Timeout
	}

	return &paystackGateway{
		baseURL:     strings.TrimRight(cfg.Payment.BaseURL, "/"),
		secretKey:   cfg.Payment.SecretKey,
		callbackURL: cfg.Payment.CallbackURL,
		httpClient:  &http.Client{Timeout: timeout},
		logger:      logger,
	}, nil
}

// initializeBody is the request payload for POST /transaction/initialize.
// Amount is integer minor units, matching the processor's API.
type initializeBody struct {
	Email       string `json:"email"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency,omitempty"`
	Reference   string `json:"reference"`
	CallbackURL string `json:"callback_url,omitempty"`
}

// apiEnvelope is the processor's standard response wrapper.
type apiEnvelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type initializeData struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

type verifyData struct {
	ID        int64  `json:"id"`
	Status    string `json:"status"`
	Reference string `json:"reference"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Message   string `json:"gateway_response"`
}

// InitializeTransaction opens a transaction and returns the hosted checkout handoff.
func (g *paystackGateway) InitializeTransaction(ctx context.Context, req *service.InitializeRequest) (*service.InitializeResult, error) {
	body := initializeBody{
		Email:       req.Email,
		Amount:      req.AmountMinor,
		Currency:    req.Currency,
		Reference:   req.Reference,
		CallbackURL: g.callbackURL,
	}

	var data initializeData
	if err := g.post(ctx, "/transaction/initialize", body, &data); err != nil {
		return nil, err
	}

	g.logger.Info("payment transaction initialized",
		slog.String("reference", data.Reference),
	)

	return &service.InitializeResult{
		AuthorizationURL: data.AuthorizationURL,
		AccessCode:       data.AccessCode,
		Reference:        data.Reference,
	}, nil
}

// VerifyTransaction asks the processor for the final state of a reference.
func (g *paystackGateway) VerifyTransaction(ctx context.Context, reference string) (*service.VerifyResult, error) {
	var data verifyData
	if err := g.get(ctx, "/transaction/verify/"+reference, &data); err != nil {
		return nil, err
	}

	transactionRef := ""
	if data.ID != 0 {
		transactionRef = strconv.FormatInt(data.ID, 10)
	}

	return &service.VerifyResult{
		Status:         mapProcessorStatus(data.Status),
		TransactionRef: transactionRef,
		AmountMinor:    data.Amount,
		Currency:       data.Currency,
		Message:        data.Message,
	}, nil
}

// mapProcessorStatus folds the processor's status vocabulary into ours.
func mapProcessorStatus(status string) service.PaymentStatus {
	switch status {
	case "success":
		return service.PaymentStatusSuccess
	case "abandoned":
		return service.PaymentStatusCancelled
	case "failed":
		return service.PaymentStatusFailed
	default:
		return service.PaymentStatusPending
	}
}

func (g *paystackGateway) post(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	return g.do(req, out)
}

func (g *paystackGateway) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+path, nil)
	if err != nil {
		return errors.WithStack(err)
	}

	return g.do(req, out)
}

func (g *paystackGateway) do(req *http.Request, out any) error {
	req.Header.Set("Authorization", "Bearer "+g.secretKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "payment processor request failed")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WithStack(err)
	}

	var envelope apiEnvelope
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return errors.Wrapf(err, "unexpected processor response (status %d)", resp.StatusCode)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !envelope.Status {
		return errors.Errorf("processor rejected request: %s (status %d)", envelope.Message, resp.StatusCode)
	}

	if out != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return errors.Wrap(err, "failed to decode processor response data")
		}
	}

	return nil
}
