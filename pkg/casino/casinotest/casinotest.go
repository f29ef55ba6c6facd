// Package casinotest provides an in-process Dispatcher for testing code built
// on the casino SDK without a backend.
package casinotest

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/betsolutions/casino-sdk-go/pkg/casino"
)

// Dispatcher records every request and answers with Respond. A nil Respond
// answers with an empty success envelope.
type Dispatcher struct {
	Respond func(req *casino.Request) (*casino.HTTPResponse, error)

	mu    sync.Mutex
	calls []*casino.Request
}

func (d *Dispatcher) Dispatch(_ context.Context, req *casino.Request) (*casino.HTTPResponse, error) {
	d.mu.Lock()
	d.calls = append(d.calls, req)
	d.mu.Unlock()

	if d.Respond == nil {
		return Envelope(casino.StatusSuccess, nil), nil
	}
	return d.Respond(req)
}

// Calls returns the requests dispatched so far.
func (d *Dispatcher) Calls() []*casino.Request {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]*casino.Request(nil), d.calls...)
}

// CallCount returns how many requests reached the dispatcher.
func (d *Dispatcher) CallCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.calls)
}

// Envelope builds an HTTP 200 response carrying a backend envelope.
// It panics if data cannot be marshalled.
func Envelope(status casino.StatusCode, data any) *casino.HTTPResponse {
	env := map[string]any{"statusCode": int(status)}
	if data != nil {
		env["data"] = data
	}
	body, err := json.Marshal(env)
	if err != nil {
		panic(err)
	}
	return Raw(body)
}

// Raw builds an HTTP 200 response with the given body.
func Raw(body []byte) *casino.HTTPResponse {
	return &casino.HTTPResponse{
		StatusCode: http.StatusOK,
		Headers:    http.Header{"Content-Type": []string{"application/json"}},
		Body:       body,
	}
}

// Respond always answers with resp.
func Respond(resp *casino.HTTPResponse) func(*casino.Request) (*casino.HTTPResponse, error) {
	return func(*casino.Request) (*casino.HTTPResponse, error) { return resp, nil }
}
