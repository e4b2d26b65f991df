package http

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-drip-watch/internal/adapter"
	"github.com/MKhiriev/go-drip-watch/internal/clock"
	"github.com/MKhiriev/go-drip-watch/internal/companion"
	"github.com/MKhiriev/go-drip-watch/internal/config"
	"github.com/MKhiriev/go-drip-watch/internal/logger"
	"github.com/MKhiriev/go-drip-watch/models"
)

// The watch adapter talking to the simulator over real HTTP.
func TestCompanion_AdapterRoundTrip(t *testing.T) {
	now := time.UnixMilli(1_760_000_000_000)
	h := NewHandler(companion.NewGenerator(clock.NewFake(now), false), companion.NewImages(""), "secret", logger.Nop())
	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)

	newAdapter := func(hashKey string) adapter.CompanionAdapter {
		a, err := adapter.NewCompanionAdapter(config.WatchAdapter{
			HTTPAddress:    srv.URL,
			RequestTimeout: 2 * time.Second,
			HashKey:        hashKey,
		}, logger.Nop())
		require.NoError(t, err)
		t.Cleanup(func() { _ = a.Close() })
		return a
	}
	ctx := context.Background()

	a := newAdapter("secret")
	assert.True(t, a.Connected(ctx))

	raw, err := a.GetInfo(ctx, "full")
	require.NoError(t, err)
	var payload models.InfoPayload
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))
	require.NotNil(t, payload.BG)
	assert.Equal(t, now.UnixMilli(), payload.Status.Now)

	img, err := a.GetImg(ctx, "/bg.png")
	require.NoError(t, err)
	assert.NotEmpty(t, img)

	_, err = a.GetInfo(ctx, "")
	require.NoError(t, err)

	_, err = newAdapter("wrong").GetInfo(ctx, "full")
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}
