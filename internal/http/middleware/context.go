package middlewarex

import "context"

type ctxKey string

const (
	ctxMerchant ctxKey = "merchant"
)

// Merchant is the caller resolved from the request body.
type Merchant struct {
	ID         int64
	PrivateKey string
}

func WithMerchant(ctx context.Context, m Merchant) context.Context {
	return context.WithValue(ctx, ctxMerchant, m)
}

func MerchantFrom(ctx context.Context) (Merchant, bool) {
	m, ok := ctx.Value(ctxMerchant).(Merchant)
	return m, ok
}
