package query

import (
	"context"
	"sync"
	"time"
)

// stubEndpoint records the requests it receives and answers with canned records.
type stubEndpoint[Req, Rec any] struct {
	mu sync.Mutex

	records []Rec
	count   int64
	err     error

	listCalls, countCalls int
	lastReq               Req
	firstResult           int
	maxResults            int
}

func (s *stubEndpoint[Req, Rec]) List(_ context.Context, req Req, firstResult, maxResults int) ([]Rec, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listCalls++
	s.lastReq = req
	s.firstResult, s.maxResults = firstResult, maxResults
	if s.err != nil {
		return nil, s.err
	}
	return s.records, nil
}

func (s *stubEndpoint[Req, Rec]) Count(_ context.Context, req Req) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countCalls++
	s.lastReq = req
	if s.err != nil {
		return 0, s.err
	}
	return s.count, nil
}

func (s *stubEndpoint[Req, Rec]) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listCalls + s.countCalls
}

type executedCall struct {
	kind, call string
	err        error
}

// recordingObserver captures observer callbacks.
type recordingObserver struct {
	mu       sync.Mutex
	executed []executedCall
	dropped  []string
}

func (o *recordingObserver) QueryExecuted(_ context.Context, kind, call string, _ time.Duration, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.executed = append(o.executed, executedCall{kind: kind, call: call, err: err})
}

func (o *recordingObserver) SortKeyDropped(_ context.Context, kind, property string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.dropped = append(o.dropped, kind+"."+property)
}
