package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-drip-watch/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID takes the trace id from the request header or generates one,
// echoes it in the response and attaches a logger carrying it to the
// request context.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = h.ids.Generate()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		ctx := utils.WithTraceID(l.WithContext(r.Context()), traceID)

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
