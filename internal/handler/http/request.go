package http

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-drip-watch/internal/companion"
	"github.com/MKhiriev/go-drip-watch/internal/logger"
	"github.com/MKhiriev/go-drip-watch/internal/utils"
	"github.com/MKhiriev/go-drip-watch/models"
)

// request serves one channel call. Failures of the method itself are
// answered with 200 and an embedded error marker; only an undecodable
// request is a 400.
func (h *Handler) request(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ChannelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.request").Msg("failed to decode channel request")
		http.Error(w, "invalid channel request", http.StatusBadRequest)
		return
	}
	log = log.WithStr("method", req.Method)

	switch req.Method {
	case models.MethodGetInfo:
		payload, err := h.info.Info(r.Context(), req.Params)
		if err != nil {
			h.writeApplicationError(w, log, err)
			return
		}
		raw, err := json.Marshal(payload)
		if err != nil {
			h.writeApplicationError(w, log, err)
			return
		}
		log.Debug().Str("params", req.Params).Msg("get_info answered")
		utils.WriteResult(w, string(raw))
	case models.MethodGetImg:
		img, err := h.images.Image(r.Context(), req.Params)
		if err != nil {
			h.writeApplicationError(w, log, err)
			return
		}
		log.Debug().Str("path", req.Params).Int("bytes", len(img)).Msg("get_img answered")
		utils.WriteResult(w, base64.StdEncoding.EncodeToString(img))
	default:
		h.writeApplicationError(w, log, fmt.Errorf("%w: %q", companion.ErrUnknownMethod, req.Method))
	}
}

func (h *Handler) writeApplicationError(w http.ResponseWriter, log *logger.Logger, err error) {
	log.Warn().Err(err).Msg("channel request failed")
	utils.WriteResult(w, models.ChannelError{Error: true, Message: err.Error()})
}

func (h *Handler) ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("pong"))
}
