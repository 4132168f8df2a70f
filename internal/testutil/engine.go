// Package testutil provides a fake engine REST server backed by JSON fixtures.
package testutil

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
)

// RESTRoot is the path under which NewFixtureEngine registers its routes.
const RESTRoot = "/engine-rest"

// Request is one call received by a FakeEngine.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// JSON decodes the request body into v.
func (r Request) JSON(v any) error {
	return json.Unmarshal(r.Body, v)
}

// FakeEngine serves canned engine responses and records every request.
// Unknown routes answer 404 with an engine exception body.
type FakeEngine struct {
	*httptest.Server

	mu       sync.Mutex
	routes   map[string]http.HandlerFunc
	requests []Request
}

// NewFakeEngine starts an empty fake engine that is closed when t finishes.
func NewFakeEngine(t testing.TB) *FakeEngine {
	t.Helper()
	f := &FakeEngine{routes: make(map[string]http.HandlerFunc)}
	f.Server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.Close)
	return f
}

// NewFixtureEngine starts a fake engine answering the list and count routes
// of tasks, process instances, process definitions, incidents and external
// tasks from the fixture files, plus process instance variables.
func NewFixtureEngine(t testing.TB) *FakeEngine {
	t.Helper()
	f := NewFakeEngine(t)
	for _, r := range []struct {
		method, path, fixture string
	}{
		{http.MethodPost, "/task", "tasks.json"},
		{http.MethodPost, "/process-instance", "process_instances.json"},
		{http.MethodPost, "/external-task", "external_tasks.json"},
		{http.MethodGet, "/process-definition", "process_definitions.json"},
		{http.MethodGet, "/incident", "incidents.json"},
	} {
		data := Fixture(t, r.fixture)
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			t.Fatalf("fixture %s: %v", r.fixture, err)
		}
		f.RespondRaw(r.method, RESTRoot+r.path, http.StatusOK, data)
		f.Respond(r.method, RESTRoot+r.path+"/count", http.StatusOK, map[string]int{"count": len(items)})
	}
	f.RespondRaw(http.MethodGet, RESTRoot+"/process-instance/"+FixtureProcessInstanceID+"/variables",
		http.StatusOK, Fixture(t, "process_instance_variables.json"))
	return f
}

// FixtureProcessInstanceID is the process instance the fixture tasks belong to.
const FixtureProcessInstanceID = "c3b2b0c8-2046-11e7-8f94-34f39ab71d4e"

// BaseURL returns the engine REST root of f.
func (f *FakeEngine) BaseURL() string {
	return f.URL + RESTRoot
}

// Handle registers a handler for method and path, replacing any previous one.
func (f *FakeEngine) Handle(method, path string, h http.HandlerFunc) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routes[method+" "+path] = h
}

// Respond answers method and path with body encoded as JSON.
func (f *FakeEngine) Respond(method, path string, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		panic(fmt.Sprintf("testutil: encode response for %s %s: %v", method, path, err))
	}
	f.RespondRaw(method, path, status, data)
}

// RespondRaw answers method and path with a raw JSON body.
func (f *FakeEngine) RespondRaw(method, path string, status int, body []byte) {
	f.Handle(method, path, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write(body)
	})
}

// Fail answers method and path with an engine exception body.
func (f *FakeEngine) Fail(method, path string, status int, excType, message string) {
	f.Respond(method, path, status, map[string]string{"type": excType, "message": message})
}

// Requests returns the recorded requests in arrival order.
func (f *FakeEngine) Requests() []Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Request(nil), f.requests...)
}

// Last returns the most recent request. It fails t when there is none.
func (f *FakeEngine) Last(t testing.TB) Request {
	t.Helper()
	reqs := f.Requests()
	if len(reqs) == 0 {
		t.Fatal("fake engine received no request")
	}
	return reqs[len(reqs)-1]
}

func (f *FakeEngine) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	f.requests = append(f.requests, Request{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
		Header: r.Header.Clone(),
		Body:   body,
	})
	h, ok := f.routes[r.Method+" "+r.URL.Path]
	f.mu.Unlock()

	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = fmt.Fprintf(w, `{"type":"InvalidRequestException","message":"no route for %s %s"}`, r.Method, r.URL.Path)
		return
	}
	h(w, r)
}

// FixturesDir returns the absolute path of the fixture directory.
func FixturesDir() string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "fixtures")
}

// Fixture reads a fixture file, failing t when it is missing.
func Fixture(t testing.TB, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(FixturesDir(), name))
	if err != nil {
		t.Fatalf("read fixture %s: %v", name, err)
	}
	return data
}
