package memory

import (
	"strconv"
	"sync"

	domainErrors "github.com/polkiloo/shopapi/internal/domain/errors"
)

// table keeps rows keyed by a store-assigned id and remembers insertion order.
// Ids come from a counter that starts at 1 and is never rewound, so a deleted
// id is never handed out again.
type table[T any] struct {
	mu    sync.RWMutex
	rows  map[string]T
	order []string
	next  int64
	clone func(T) T
}

func newTable[T any](clone func(T) T) *table[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &table[T]{
		rows:  make(map[string]T),
		next:  1,
		clone: clone,
	}
}

// insert assigns the next id and stores the row built for it. build runs under
// the write lock; when it fails nothing is stored and the id is not consumed.
func (t *table[T]) insert(build func(id string) (T, error)) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := strconv.FormatInt(t.next, 10)
	row, err := build(id)
	if err != nil {
		var zero T
		return zero, err
	}
	t.next++
	t.rows[id] = row
	t.order = append(t.order, id)
	return t.clone(row), nil
}

func (t *table[T]) get(id string) (T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, domainErrors.ErrNotFound
	}
	return t.clone(row), nil
}

// list returns copies of rows accepted by keep, oldest first. A nil keep accepts all.
func (t *table[T]) list(keep func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	result := make([]T, 0, len(t.order))
	for _, id := range t.order {
		row := t.rows[id]
		if keep != nil && !keep(row) {
			continue
		}
		result = append(result, t.clone(row))
	}
	return result
}

// find returns the first row accepted by match under the read lock.
func (t *table[T]) find(match func(T) bool) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, id := range t.order {
		if row := t.rows[id]; match(row) {
			return t.clone(row), true
		}
	}
	var zero T
	return zero, false
}

// replace swaps the stored row for the one returned by change. change runs
// under the write lock and receives a copy of the current row.
func (t *table[T]) replace(id string, change func(current T) (T, error)) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	current, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, domainErrors.ErrNotFound
	}
	next, err := change(t.clone(current))
	if err != nil {
		var zero T
		return zero, err
	}
	t.rows[id] = next
	return t.clone(next), nil
}

// remove deletes the row and reports whether it existed. onRemove, if set, runs
// under the write lock with the removed row.
func (t *table[T]) remove(id string, onRemove func(T)) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	row, ok := t.rows[id]
	if !ok {
		return false
	}
	delete(t.rows, id)
	for i, existing := range t.order {
		if existing == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	if onRemove != nil {
		onRemove(row)
	}
	return true
}
