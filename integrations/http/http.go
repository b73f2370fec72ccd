// Package http maps Results to HTTP responses and back.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/aponysus/outcome/aggregate"
	"github.com/aponysus/outcome/codec"
	"github.com/aponysus/outcome/message"
	"github.com/aponysus/outcome/observe"
	"github.com/aponysus/outcome/result"
)

// ContentType is the media type of problem bodies.
const ContentType = "application/problem+json"

// maxBody bounds how much of a problem body is decoded.
const maxBody = 1 << 20

// StatusCode returns 200 for Success, 207 for Partial and 422 for Error.
// Invalid kinds map to 500.
func StatusCode(r result.Result) int {
	switch r.Kind() {
	case result.KindSuccess:
		return http.StatusOK
	case result.KindPartial:
		return http.StatusMultiStatus
	case result.KindError:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// Problem is a JSON problem body describing a Result.
type Problem struct {
	Type     string             `json:"type"`
	Title    string             `json:"title"`
	Status   int                `json:"status"`
	Kind     string             `json:"kind"`
	Messages []codec.MessageDoc `json:"messages"`
}

// NewProblem describes r. Messages that cannot be encoded are skipped.
func NewProblem(r result.Result) Problem {
	status := StatusCode(r)
	p := Problem{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Kind:     r.Kind().String(),
		Messages: make([]codec.MessageDoc, 0, r.Len()),
	}
	for _, m := range r.All() {
		if d, err := codec.EncodeMessage(m); err == nil {
			p.Messages = append(p.Messages, d)
		}
	}
	return p
}

// Result validates p and rebuilds the Result it describes.
func (p Problem) Result() (result.Result, error) {
	return codec.FromDocument(codec.Document{Kind: p.Kind, Messages: p.Messages})
}

// Write sends r as a problem body with StatusCode(r).
func Write(w http.ResponseWriter, r result.Result) error {
	p := NewProblem(r)
	w.Header().Set("Content-Type", ContentType)
	w.WriteHeader(p.Status)
	return json.NewEncoder(w).Encode(p)
}

// Handler runs fn for each request, reports its Result to agg, and writes
// it with Write.
//
// The reported operation is the one already on the request context, else
// the ServeMux pattern that matched (such as "GET /orders/{id}"), else the
// request method alone. The raw path is never used, so IDs in paths do not
// become metric labels.
func Handler(agg *aggregate.Aggregator, fn func(*http.Request) result.Result) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()
		if _, ok := observe.OperationFromContext(ctx); !ok {
			ctx = observe.WithOperation(ctx, operationName(req))
		}
		res := agg.Merge(ctx, fn(req.WithContext(ctx)))
		_ = Write(w, res)
	})
}

func operationName(req *http.Request) string {
	if req.Pattern != "" {
		return req.Pattern
	}
	return req.Method
}

// StatusError reports a response that carried no problem body.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return "http status " + strconv.Itoa(e.Code)
}

// FromResponse rebuilds a Result from resp and closes its body.
//
// Problem bodies are decoded and validated. Any other 2xx response is
// Success; any other status is an Error with one message coded
// "http_<status>", and the returned error is a *StatusError.
func FromResponse(resp *http.Response) (result.Result, error) {
	if resp == nil {
		return result.Result{}, errors.New("outcome: nil response")
	}
	defer resp.Body.Close()

	if isProblem(resp.Header.Get("Content-Type")) {
		var p Problem
		if err := json.NewDecoder(io.LimitReader(resp.Body, maxBody)).Decode(&p); err != nil {
			return result.Result{}, err
		}
		return p.Result()
	}

	// Drain so the connection can be reused.
	_, _ = io.CopyN(io.Discard, resp.Body, 4096)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return result.Success(), nil
	}
	r := result.Error(message.MustError("http_"+strconv.Itoa(resp.StatusCode), http.StatusText(resp.StatusCode)))
	return r, &StatusError{Code: resp.StatusCode}
}

// Do sends req with client and rebuilds the Result of the response.
func Do(ctx context.Context, client *http.Client, req *http.Request) (result.Result, error) {
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req.WithContext(ctx))
	if err != nil {
		return result.Result{}, err
	}
	return FromResponse(resp)
}

func isProblem(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	return err == nil && mt == ContentType
}
