package casino

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Envelope is the response wrapper every backend resource answers with.
type Envelope[T any] struct {
	StatusCode    StatusCode `json:"statusCode"`
	StatusMessage string     `json:"statusMessage,omitempty"`
	Data          *T         `json:"data,omitempty"`
}

// Result is what facades hand back to SDK consumers. Data is set only when
// StatusCode is StatusSuccess and the operation returns a payload.
type Result[T any] struct {
	StatusCode StatusCode
	Message    string
	Data       *T
}

// OK reports whether the call succeeded.
func (r *Result[T]) OK() bool {
	return r.StatusCode.OK()
}

// Invalid folds a pre-dispatch failure into a result.
func Invalid[T any](err error) *Result[T] {
	return &Result[T]{StatusCode: StatusInvalidRequest, Message: err.Error()}
}

// NoData is the payload type of operations answering with a status only.
type NoData struct{}

// Operation is the per-endpoint configuration of the pipeline.
type Operation[Req Signed, Wire, Out any] struct {
	Controller string
	Resource   string
	Mutating   bool
	// Project maps the wire payload to the public type. A nil Project means
	// the operation carries no payload.
	Project func(*Wire) (Out, error)
}

var shape = validator.New(validator.WithRequiredStructEnabled())

// Execute signs req, dispatches it and normalizes the answer. Domain failures
// come back as a Result; transport and shape failures as an error.
func Execute[Req Signed, Wire, Out any](ctx context.Context, c *Client, op Operation[Req, Wire, Out], req Req) (*Result[Out], error) {
	req.SetSignature(c.creds.merchantID, SignRequest(c.creds.merchantID, c.creds.privateKey, req))

	resp, err := c.dispatcher.Dispatch(ctx, &Request{
		BaseURL:    c.creds.baseURL,
		Controller: op.Controller,
		Resource:   op.Resource,
		Body:       req,
		Mutating:   op.Mutating,
	})
	if err != nil {
		return nil, err
	}

	var env Envelope[Wire]
	if err := resp.Decode(&env); err != nil {
		return nil, mappingError(c, op.Controller, op.Resource, "undecodable envelope", err)
	}

	if !env.StatusCode.OK() {
		c.log.Debug().
			Str("controller", op.Controller).
			Str("resource", op.Resource).
			Int("status_code", int(env.StatusCode)).
			Str("status_message", env.StatusMessage).
			Msg("backend returned failure status")
		return &Result[Out]{StatusCode: env.StatusCode}, nil
	}

	if op.Project == nil {
		return &Result[Out]{StatusCode: env.StatusCode}, nil
	}
	if env.Data == nil {
		return nil, mappingError(c, op.Controller, op.Resource, "missing data", nil)
	}
	if err := shape.Struct(env.Data); err != nil {
		var invalid *validator.InvalidValidationError
		if !errors.As(err, &invalid) {
			return nil, mappingError(c, op.Controller, op.Resource, "missing required field", err)
		}
	}

	out, err := op.Project(env.Data)
	if err != nil {
		return nil, mappingError(c, op.Controller, op.Resource, "projection failed", err)
	}
	return &Result[Out]{StatusCode: env.StatusCode, Data: &out}, nil
}

func mappingError(c *Client, controller, resource, reason string, err error) error {
	me := &MappingError{Controller: controller, Resource: resource, Reason: reason, Err: err}
	c.log.Error().Err(me).Msg("backend payload does not match SDK contract")
	return me
}

// UnknownCode is returned by projections for enum codes outside their table.
func UnknownCode(kind string, code int) error {
	return fmt.Errorf("unknown %s code %d", kind, code)
}
