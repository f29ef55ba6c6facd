package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/betsolutions/casino-sdk-go/internal/core"
	middlewarex "github.com/betsolutions/casino-sdk-go/internal/http/middleware"
	"github.com/betsolutions/casino-sdk-go/pkg/casino"
)

// signedBody is a wire request as decoded by the backend.
type signedBody interface {
	casino.Signed
	SignedBy() (merchantID int64, hash string)
}

// respond writes the backend envelope. Domain outcomes always travel over
// HTTP 200.
func respond[T any](w http.ResponseWriter, status casino.StatusCode, message string, data *T) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(casino.Envelope[T]{
		StatusCode:    status,
		StatusMessage: message,
		Data:          data,
	})
}

func respondStatus(w http.ResponseWriter, status casino.StatusCode, message string) {
	respond[casino.NoData](w, status, message, nil)
}

// decodeSigned decodes the body into req and checks its hash against the
// merchant resolved by MerchantAuth. On failure the envelope is already
// written and ok is false.
func decodeSigned(w http.ResponseWriter, r *http.Request, req signedBody) (merchantID int64, ok bool) {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		respondStatus(w, casino.StatusInvalidRequest, "invalid request body")
		return 0, false
	}

	m, found := middlewarex.MerchantFrom(r.Context())
	id, hash := req.SignedBy()
	if !found || m.ID != id || !casino.VerifyRequest(m.ID, m.PrivateKey, req, hash) {
		zerolog.Ctx(r.Context()).Warn().Int64("merchant_id", id).Msg("hash verification failed")
		respondStatus(w, casino.StatusInvalidHash, "invalid hash")
		return 0, false
	}
	return m.ID, true
}

func fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, core.ErrNotFound) {
		respondStatus(w, casino.StatusNotFound, "not found")
		return
	}
	zerolog.Ctx(r.Context()).Error().Err(err).Msg("store failure")
	respondStatus(w, casino.StatusInternalError, "internal error")
}

func pageOf(p casino.Paging) core.Page {
	return core.Page{
		Offset:    p.Offset(),
		Limit:     p.PageSize,
		OrderBy:   p.OrderingField,
		Direction: p.OrderingDirection,
	}
}

func ptr[T any](v T) *T { return &v }
