package casino_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/betsolutions/casino-sdk-go/pkg/casino"
	"github.com/betsolutions/casino-sdk-go/pkg/casino/casinotest"
)

// failing answers with err for the first n calls, then succeeds.
func failing(n int, err error) func(*casino.Request) (*casino.HTTPResponse, error) {
	calls := 0
	return func(*casino.Request) (*casino.HTTPResponse, error) {
		calls++
		if calls <= n {
			return nil, err
		}
		return casinotest.Envelope(casino.StatusSuccess, nil), nil
	}
}

func TestRetryDispatcher_RetriesTemporaryReads(t *testing.T) {
	inner := &casinotest.Dispatcher{Respond: failing(2, &casino.ConnectivityError{StatusCode: 503, Status: "503 Service Unavailable"})}
	d := casino.NewRetryDispatcher(inner, 3, time.Millisecond, zerolog.Nop())

	resp, err := d.Dispatch(context.Background(), &casino.Request{Controller: "C", Resource: "R"})
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, 3, inner.CallCount())
}

func TestRetryDispatcher_GivesUpAfterMaxRetries(t *testing.T) {
	inner := &casinotest.Dispatcher{Respond: failing(10, &casino.ConnectivityError{Err: errors.New("connection reset")})}
	d := casino.NewRetryDispatcher(inner, 2, time.Millisecond, zerolog.Nop())

	_, err := d.Dispatch(context.Background(), &casino.Request{Controller: "C", Resource: "R"})
	require.Error(t, err)
	assert.True(t, casino.IsConnectivity(err))
	assert.Equal(t, 3, inner.CallCount())
}

func TestRetryDispatcher_NeverRepeatsMutating(t *testing.T) {
	inner := &casinotest.Dispatcher{Respond: failing(1, &casino.ConnectivityError{StatusCode: 503})}
	d := casino.NewRetryDispatcher(inner, 5, time.Millisecond, zerolog.Nop())

	_, err := d.Dispatch(context.Background(), &casino.Request{Controller: "C", Resource: "R", Mutating: true})
	require.Error(t, err)
	assert.Equal(t, 1, inner.CallCount())
}

func TestRetryDispatcher_PermanentFailuresNotRetried(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"client error", &casino.ConnectivityError{StatusCode: 400, Status: "400 Bad Request"}},
		{"not found", &casino.ConnectivityError{StatusCode: 404, Status: "404 Not Found"}},
		{"local failure", errors.New("failed to marshal JSON payload")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner := &casinotest.Dispatcher{Respond: failing(10, tt.err)}
			d := casino.NewRetryDispatcher(inner, 5, time.Millisecond, zerolog.Nop())

			_, err := d.Dispatch(context.Background(), &casino.Request{Controller: "C", Resource: "R"})
			require.Error(t, err)
			assert.Equal(t, tt.err, err)
			assert.Equal(t, 1, inner.CallCount())
		})
	}
}

func TestRetryDispatcher_StopsOnCancelledContext(t *testing.T) {
	inner := &casinotest.Dispatcher{Respond: failing(10, &casino.ConnectivityError{StatusCode: 503})}
	d := casino.NewRetryDispatcher(inner, 50, time.Second, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := d.Dispatch(ctx, &casino.Request{Controller: "C", Resource: "R"})
	require.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
	assert.Less(t, inner.CallCount(), 5)
}

func TestClient_WithRetryOnlyAffectsReads(t *testing.T) {
	inner := &casinotest.Dispatcher{Respond: failing(1, &casino.ConnectivityError{StatusCode: 500})}
	creds, err := casino.NewMerchantCredentials("https://casino.example.com", 42, "k")
	require.NoError(t, err)

	client := casino.NewClient(creds,
		casino.WithDispatcher(inner),
		casino.WithRetry(2, time.Millisecond),
		casino.WithLogger(zerolog.Nop()),
	)

	read := casino.Operation[*pagedRequest, casino.NoData, casino.NoData]{Controller: "C", Resource: "Read"}
	res, err := casino.Execute(context.Background(), client, read, &pagedRequest{})
	require.NoError(t, err)
	assert.True(t, res.OK())
	assert.Equal(t, 2, inner.CallCount())
}
