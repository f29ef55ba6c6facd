package middlewarex

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/betsolutions/casino-sdk-go/internal/core"
	"github.com/betsolutions/casino-sdk-go/internal/store/repositories"
)

const maxBodyBytes = 1 << 20

// MerchantAuth reads merchantId from the JSON body and resolves the
// merchant's signing key. The body is restored for the handler. Requests whose
// merchant cannot be resolved pass through without a Merchant in the context;
// handlers answer them with an invalid hash status.
func MerchantAuth(keys repositories.KeyStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
			_ = r.Body.Close()
			if err != nil {
				http.Error(w, "unreadable body", http.StatusBadRequest)
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			var probe struct {
				MerchantID int64 `json:"merchantId"`
			}
			if err := json.Unmarshal(body, &probe); err != nil || probe.MerchantID <= 0 {
				next.ServeHTTP(w, r)
				return
			}

			logger := zerolog.Ctx(r.Context())
			logger.UpdateContext(func(c zerolog.Context) zerolog.Context {
				return c.Int64("merchant_id", probe.MerchantID)
			})

			key, err := keys.PrivateKey(r.Context(), probe.MerchantID)
			if err != nil {
				if !errors.Is(err, core.ErrNotFound) {
					logger.Error().Err(err).Msg("merchant key lookup failed")
				}
				next.ServeHTTP(w, r)
				return
			}

			ctx := WithMerchant(r.Context(), Merchant{ID: probe.MerchantID, PrivateKey: key})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
