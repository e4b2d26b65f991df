// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/go-drip-watch/internal/logger"
	"github.com/MKhiriev/go-drip-watch/internal/utils"
)

// verifySignature rejects requests whose HashSHA256 header is not the HMAC
// of the body. It passes everything through when no key is configured.
func (h *Handler) verifySignature(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.signer.Enabled() {
			next.ServeHTTP(w, r)
			return
		}
		log := logger.FromRequest(r)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Str("func", "*Handler.verifySignature").Msg("failed to read request body")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		signature := r.Header.Get(utils.HashHeader)
		if signature == "" || !h.signer.Verify(body, signature) {
			log.Warn().Str("func", "*Handler.verifySignature").
				Str("signature", signature).
				Msg("request signature mismatch")
			http.Error(w, "signature mismatch", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
