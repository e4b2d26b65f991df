package adapter

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-drip-watch/internal/config"
	"github.com/MKhiriev/go-drip-watch/internal/logger"
	"github.com/MKhiriev/go-drip-watch/internal/utils"
	"github.com/MKhiriev/go-drip-watch/models"
)

const (
	requestPath = "/api/request"
	pingPath    = "/api/ping"

	// TraceIDHeader carries the request trace id.
	TraceIDHeader = "X-Trace-ID"

	probeTimeout = 2 * time.Second
)

type httpCompanionAdapter struct {
	client *utils.HTTPClient
	probe  ConnectivityProbe
	signer *utils.Signer
	ids    utils.IDGenerator

	logger *logger.Logger
}

// NewCompanionAdapter constructs the HTTP/JSON implementation of
// [CompanionAdapter]. It normalises the base URL from cfg.HTTPAddress and
// picks the gRPC health probe when cfg.GRPCAddress is set, the HTTP ping
// otherwise.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a valid
// URL, or if the gRPC client cannot be created.
func NewCompanionAdapter(cfg config.WatchAdapter, logger *logger.Logger) (CompanionAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	a := &httpCompanionAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		signer: utils.NewSigner(cfg.HashKey),
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}

	if cfg.GRPCAddress != "" {
		probe, err := NewGRPCHealthProbe(cfg.GRPCAddress, logger)
		if err != nil {
			return nil, fmt.Errorf("invalid adapter grpc address: %w", err)
		}
		a.probe = probe
	} else {
		a.probe = &httpPingProbe{client: a.client, logger: logger}
	}

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetInfo implements [CompanionAdapter]. It POSTs a get_info request to
// /api/request and unwraps the result. The payload is returned verbatim when
// the result is a JSON string and re-encoded when it is an object.
func (h *httpCompanionAdapter) GetInfo(ctx context.Context, params string) (string, error) {
	result, err := h.call(ctx, models.ChannelRequest{Method: models.MethodGetInfo, Params: params})
	if err != nil {
		return "", err
	}

	var payload string
	if err := json.Unmarshal(result, &payload); err == nil {
		return payload, nil
	}

	// object results are compacted into the payload string
	var buf bytes.Buffer
	if err := json.Compact(&buf, result); err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return buf.String(), nil
}

// GetImg implements [CompanionAdapter]. The result must be a base64 string.
func (h *httpCompanionAdapter) GetImg(ctx context.Context, path string) ([]byte, error) {
	result, err := h.call(ctx, models.ChannelRequest{Method: models.MethodGetImg, Params: path})
	if err != nil {
		return nil, err
	}

	var encoded string
	if err := json.Unmarshal(result, &encoded); err != nil {
		return nil, fmt.Errorf("%w: image result is not a string", ErrMalformedResponse)
	}

	img, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	return img, nil
}

// Connected implements [CompanionAdapter].
func (h *httpCompanionAdapter) Connected(ctx context.Context) bool {
	return h.probe.Connected(ctx)
}

// Close implements [CompanionAdapter].
func (h *httpCompanionAdapter) Close() error {
	return h.probe.Close()
}

type responseEnvelope struct {
	Result json.RawMessage `json:"result"`
	Error  string          `json:"error,omitempty"`
}

// call sends one signed request and returns the raw result. Embedded error
// markers are returned as ErrApplication.
func (h *httpCompanionAdapter) call(ctx context.Context, req models.ChannelRequest) (json.RawMessage, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode %s request: %w", req.Method, err)
	}

	traceID, ok := utils.GetTraceIDFromContext(ctx)
	if !ok {
		traceID = h.ids.Generate()
	}
	log := h.logger.WithStr("trace_id", traceID)

	r := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(TraceIDHeader, traceID).
		SetBody(body)
	if h.signer.Enabled() {
		r.SetHeader(utils.HashHeader, h.signer.Sign(body))
	}

	started := time.Now()
	resp, err := r.Post(requestPath)
	if err != nil {
		mapped := mapTransportError(err)
		log.Debug().Err(mapped).
			Str("func", "httpCompanionAdapter.call").
			Str("method", req.Method).
			Dur("elapsed", time.Since(started)).
			Msg("companion request failed")
		return nil, fmt.Errorf("%s request: %w", req.Method, mapped)
	}
	if err := mapHTTPError(resp); err != nil {
		log.Debug().Err(err).
			Str("func", "httpCompanionAdapter.call").
			Str("method", req.Method).
			Int("status", resp.StatusCode()).
			Msg("companion answered with error status")
		return nil, fmt.Errorf("%s request: %w", req.Method, err)
	}

	log.Debug().
		Str("func", "httpCompanionAdapter.call").
		Str("method", req.Method).
		Dur("elapsed", time.Since(started)).
		Msg("companion responded")

	return decodeResult(resp)
}

func decodeResult(resp *resty.Response) (json.RawMessage, error) {
	var envelope responseEnvelope
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	if envelope.Error != "" {
		return nil, fmt.Errorf("%w: %s", ErrApplication, envelope.Error)
	}

	result := bytes.TrimSpace(envelope.Result)
	if len(result) == 0 || bytes.Equal(result, []byte("null")) {
		return nil, fmt.Errorf("%w: empty result", ErrApplication)
	}

	if result[0] == '{' {
		var marker models.ChannelError
		if err := json.Unmarshal(result, &marker); err == nil && marker.Error {
			return nil, fmt.Errorf("%w: %s", ErrApplication, marker.Message)
		}
	}

	return result, nil
}

// httpPingProbe checks reachability with GET /api/ping.
type httpPingProbe struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

func (p *httpPingProbe) Connected(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	resp, err := p.client.R().SetContext(ctx).Get(pingPath)
	if err != nil {
		p.logger.Debug().Err(err).Str("func", "httpPingProbe.Connected").Msg("companion ping failed")
		return false
	}

	return mapHTTPError(resp) == nil
}

func (p *httpPingProbe) Close() error {
	return nil
}
