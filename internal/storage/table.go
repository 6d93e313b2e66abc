package storage

import (
	"slices"
)

// row is the constraint every stored entity satisfies.
type row[T any] interface {
	withID(id int64) T
	OwnerID() int64
}

// source is a read view over a single table, committed or staged.
type source[T any] interface {
	get(id int64) (T, bool)
	ids() []int64
}

// table holds the committed rows of one entity type, keyed by id.
type table[T row[T]] struct {
	rows   map[int64]T
	nextID int64
}

func newTable[T row[T]]() *table[T] {
	return &table[T]{
		rows:   make(map[int64]T),
		nextID: 1,
	}
}

// committed reads a table under the storage read lock.
type committed[T row[T]] struct {
	s *Storage
	t *table[T]
}

func (c committed[T]) get(id int64) (T, bool) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()
	v, ok := c.t.rows[id]
	return v, ok
}

func (c committed[T]) ids() []int64 {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()
	out := make([]int64, 0, len(c.t.rows))
	for id := range c.t.rows {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

// staged overlays uncommitted changes on top of a committed table. A nil
// change marks a deleted row.
type staged[T row[T]] struct {
	base    committed[T]
	changes map[int64]*T
	nextID  int64
}

func newStaged[T row[T]](base committed[T]) *staged[T] {
	base.s.mu.RLock()
	next := base.t.nextID
	base.s.mu.RUnlock()

	return &staged[T]{
		base:    base,
		changes: make(map[int64]*T),
		nextID:  next,
	}
}

func (s *staged[T]) get(id int64) (T, bool) {
	if c, ok := s.changes[id]; ok {
		if c == nil {
			var zero T
			return zero, false
		}
		return *c, true
	}
	return s.base.get(id)
}

func (s *staged[T]) ids() []int64 {
	seen := make(map[int64]struct{})
	var out []int64
	for _, id := range s.base.ids() {
		if c, ok := s.changes[id]; ok && c == nil {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	for id, c := range s.changes {
		if c == nil {
			continue
		}
		if _, ok := seen[id]; !ok {
			out = append(out, id)
		}
	}
	slices.Sort(out)
	return out
}

func (s *staged[T]) insert(v T) T {
	id := s.nextID
	s.nextID++
	v = v.withID(id)
	s.changes[id] = &v
	return v
}

func (s *staged[T]) update(id int64, v T) error {
	if _, ok := s.get(id); !ok {
		return ErrNotFound
	}
	v = v.withID(id)
	s.changes[id] = &v
	return nil
}

func (s *staged[T]) remove(id int64) error {
	if _, ok := s.get(id); !ok {
		return ErrNotFound
	}
	s.changes[id] = nil
	return nil
}

// apply writes the staged changes into the committed table. The caller holds
// the storage write lock.
func (s *staged[T]) apply() {
	for id, c := range s.changes {
		if c == nil {
			delete(s.base.t.rows, id)
			continue
		}
		s.base.t.rows[id] = *c
	}
	s.base.t.nextID = s.nextID
}

// Rows is the read API shared by every entity table.
type Rows[T row[T]] struct {
	src source[T]
}

// FindByID returns a copy of the row, or nil when it does not exist.
func (r Rows[T]) FindByID(id int64) *T {
	v, ok := r.src.get(id)
	if !ok {
		return nil
	}
	return &v
}

// FindOwned returns the row only when it exists and belongs to userID.
func (r Rows[T]) FindOwned(id, userID int64) *T {
	v := r.FindByID(id)
	if v == nil || (*v).OwnerID() != userID {
		return nil
	}
	return v
}

// Where returns copies of all rows matching the predicate, ordered by id.
func (r Rows[T]) Where(match func(*T) bool) []*T {
	var out []*T
	for _, id := range r.src.ids() {
		v, ok := r.src.get(id)
		if !ok {
			continue
		}
		if match == nil || match(&v) {
			out = append(out, &v)
		}
	}
	return out
}

// ListByUser returns every row owned by userID, ordered by id.
func (r Rows[T]) ListByUser(userID int64) []*T {
	return r.Where(func(v *T) bool {
		return (*v).OwnerID() == userID
	})
}

// WriteRows adds staged mutations to Rows. Reads see the staged changes.
type WriteRows[T row[T]] struct {
	Rows[T]
	stage *staged[T]
}

func newWriteRows[T row[T]](stage *staged[T]) WriteRows[T] {
	return WriteRows[T]{
		Rows:  Rows[T]{src: stage},
		stage: stage,
	}
}

// Insert assigns the next id to v and stages it.
func (w WriteRows[T]) Insert(v T) T {
	return w.stage.insert(v)
}

// Update replaces the row with the given id.
func (w WriteRows[T]) Update(id int64, v T) error {
	return w.stage.update(id, v)
}

// Delete removes the row with the given id.
func (w WriteRows[T]) Delete(id int64) error {
	return w.stage.remove(id)
}
