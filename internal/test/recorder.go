package test

import (
	"sync"
	"time"
)

var testTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// RecorderStub counts business events reported by use cases.
type RecorderStub struct {
	mu            sync.Mutex
	UsersCreated  int
	OrdersCreated int
	Transitions   []string
}

func (r *RecorderStub) RecordUserCreated() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.UsersCreated++
}

func (r *RecorderStub) RecordOrderCreated() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.OrdersCreated++
}

// RecordOrderTransition stores transitions as "FROM->TO".
func (r *RecorderStub) RecordOrderTransition(from, to string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Transitions = append(r.Transitions, from+"->"+to)
}

// StatusSinkStub captures gauge updates pushed by the status reporter.
type StatusSinkStub struct {
	mu     sync.Mutex
	Users  map[string]int
	Orders map[string]int
	Calls  int
}

func (s *StatusSinkStub) SetUsersByStatus(counts map[string]int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Users = counts
	s.Calls++
}

func (s *StatusSinkStub) SetOrdersByStatus(counts map[string]int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Orders = counts
}

// Snapshot returns the last pushed values and number of collections.
func (s *StatusSinkStub) Snapshot() (users, orders map[string]int, calls int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Users, s.Orders, s.Calls
}
