// Package apistub runs an in-process stand-in for the developer-platform
// API. Tests point an api.Client at it, script the next response, and then
// inspect the captured requests, including how many were made at all.
package apistub

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
)

// Call records one request as received by the stub.
type Call struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// Stub is an httptest-backed platform API double. The zero response is
// 200 with an empty Success envelope; use Respond to script something else.
type Stub struct {
	*httptest.Server

	mu     sync.Mutex
	status int
	body   string
	calls  []Call
}

// New starts a stub server. Callers must Close it when done; pairing with
// t.Cleanup is the usual pattern.
func New() *Stub {
	s := &Stub{
		status: http.StatusOK,
		body:   `{"status":"Success","data":{}}`,
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

// Respond scripts the status and body returned to every subsequent request.
func (s *Stub) Respond(status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
	s.body = body
}

// CallCount reports how many requests the stub has served.
func (s *Stub) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

// Calls returns a copy of every captured request, in arrival order.
func (s *Stub) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Call, len(s.calls))
	copy(out, s.calls)
	return out
}

// LastCall returns the most recent captured request, or nil if none.
func (s *Stub) LastCall() *Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.calls) == 0 {
		return nil
	}
	c := s.calls[len(s.calls)-1]
	return &c
}

func (s *Stub) handle(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	s.mu.Lock()
	s.calls = append(s.calls, Call{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
		Header: r.Header.Clone(),
		Body:   body,
	})
	status, respBody := s.status, s.body
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, respBody)
}
