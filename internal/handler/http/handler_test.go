// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-drip-watch/internal/companion"
	"github.com/MKhiriev/go-drip-watch/internal/logger"
	"github.com/MKhiriev/go-drip-watch/internal/utils"
	"github.com/MKhiriev/go-drip-watch/models"
)

type stubInfo struct {
	payload models.InfoPayload
	err     error
	params  string
}

func (s *stubInfo) Info(_ context.Context, params string) (models.InfoPayload, error) {
	s.params = params
	return s.payload, s.err
}

type stubImages struct {
	img []byte
	err error
}

func (s *stubImages) Image(context.Context, string) ([]byte, error) {
	return s.img, s.err
}

func samplePayload() models.InfoPayload {
	return models.InfoPayload{
		BG:     &models.BGPayload{Val: "5.6", Delta: "+0.1", Trend: "Flat", Time: 1_760_000_000_000},
		Status: &models.StatusPayload{Now: 1_760_000_060_000},
	}
}

func newTestRouter(info InfoSource, images ImageSource, hashKey string) (http.Handler, *bytes.Buffer) {
	var buf bytes.Buffer
	h := NewHandler(info, images, hashKey, &logger.Logger{Logger: zerolog.New(&buf)})
	return h.Init(), &buf
}

func channelCall(t *testing.T, router http.Handler, body string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, RequestPath, strings.NewReader(body))
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

type envelope struct {
	Result json.RawMessage `json:"result"`
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) json.RawMessage {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	return env.Result
}

func TestRequest_GetInfo(t *testing.T) {
	info := &stubInfo{payload: samplePayload()}
	router, _ := newTestRouter(info, &stubImages{}, "")

	rr := channelCall(t, router, `{"method":"get_info","params":"full"}`, nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Equal(t, "full", info.params)

	var raw string
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rr), &raw), "payload is a json string")
	var got models.InfoPayload
	require.NoError(t, json.Unmarshal([]byte(raw), &got))
	assert.Equal(t, samplePayload(), got)
}

func TestRequest_GetImg(t *testing.T) {
	router, _ := newTestRouter(&stubInfo{}, &stubImages{img: []byte{1, 2, 3}}, "")

	rr := channelCall(t, router, `{"method":"get_img","params":"/bg.png"}`, nil)

	require.Equal(t, http.StatusOK, rr.Code)
	var encoded string
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rr), &encoded))
	img, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, img)
}

func TestRequest_ApplicationErrors(t *testing.T) {
	tests := []struct {
		name    string
		info    *stubInfo
		images  *stubImages
		body    string
		message string
	}{
		{
			name:    "unknown method",
			info:    &stubInfo{},
			images:  &stubImages{},
			body:    `{"method":"get_weather"}`,
			message: companion.ErrUnknownMethod.Error(),
		},
		{
			name:    "info fails",
			info:    &stubInfo{err: errors.New("sensor warmup")},
			images:  &stubImages{},
			body:    `{"method":"get_info"}`,
			message: "sensor warmup",
		},
		{
			name:    "image missing",
			info:    &stubInfo{},
			images:  &stubImages{err: companion.ErrImageNotFound},
			body:    `{"method":"get_img","params":"nope.png"}`,
			message: companion.ErrImageNotFound.Error(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newTestRouter(tt.info, tt.images, "")

			rr := channelCall(t, router, tt.body, nil)

			require.Equal(t, http.StatusOK, rr.Code)
			var marker models.ChannelError
			require.NoError(t, json.Unmarshal(decodeEnvelope(t, rr), &marker))
			assert.True(t, marker.Error)
			assert.Contains(t, marker.Message, tt.message)
		})
	}
}

func TestRequest_InvalidJSON(t *testing.T) {
	router, _ := newTestRouter(&stubInfo{}, &stubImages{}, "")

	rr := channelCall(t, router, `{"method":`, nil)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRequest_Signature(t *testing.T) {
	const key = "secret"
	body := `{"method":"get_info"}`
	signer := utils.NewSigner(key)

	tests := []struct {
		name   string
		header map[string]string
		want   int
	}{
		{"valid", map[string]string{utils.HashHeader: signer.Sign([]byte(body))}, http.StatusOK},
		{"missing", nil, http.StatusUnauthorized},
		{"wrong key", map[string]string{utils.HashHeader: utils.HashString(body, "other")}, http.StatusUnauthorized},
		{"not hex", map[string]string{utils.HashHeader: "zz"}, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newTestRouter(&stubInfo{payload: samplePayload()}, &stubImages{}, key)

			rr := channelCall(t, router, body, tt.header)

			assert.Equal(t, tt.want, rr.Code)
		})
	}
}

func TestPing(t *testing.T) {
	router, _ := newTestRouter(&stubInfo{}, &stubImages{}, "secret")

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, PingPath, nil))

	assert.Equal(t, http.StatusOK, rr.Code, "ping is not signed")
	assert.Equal(t, "pong", rr.Body.String())
}

func TestRoutes_WrongMethodIsNotFound(t *testing.T) {
	router, _ := newTestRouter(&stubInfo{}, &stubImages{}, "")

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, RequestPath, nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestWithTraceID(t *testing.T) {
	router, logs := newTestRouter(&stubInfo{}, &stubImages{}, "")

	t.Run("echoes header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, PingPath, nil)
		req.Header.Set(traceIDHeader, "trace-123")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, "trace-123", rr.Header().Get(traceIDHeader))
		assert.Contains(t, logs.String(), `"trace_id":"trace-123"`)
	})

	t.Run("generates uuid", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, PingPath, nil))

		_, err := uuid.Parse(rr.Header().Get(traceIDHeader))
		assert.NoError(t, err)
	})
}

func TestWithTraceID_ContextCarriesID(t *testing.T) {
	h := NewHandler(&stubInfo{}, &stubImages{}, "", logger.Nop())
	var got string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = utils.GetTraceIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "abc")
	h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "abc", got)
}

func TestWithLogging(t *testing.T) {
	router, logs := newTestRouter(&stubInfo{payload: samplePayload()}, &stubImages{}, "")

	channelCall(t, router, `{"method":"get_info"}`, nil)

	out := logs.String()
	assert.Contains(t, out, `"method":"POST"`)
	assert.Contains(t, out, `"uri":"/api/request"`)
	assert.Contains(t, out, `"status":200`)
	assert.Contains(t, out, `"size":`)
}

func TestStatusWriter(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &statusWriter{ResponseWriter: rr}
	assert.Equal(t, http.StatusOK, w.Status())

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError)
	n, err := w.Write([]byte("abc"))

	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, http.StatusCreated, w.Status())
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, 3, w.size)
}
