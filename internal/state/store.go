package state

// Store is the ordered shape collection, keyed by shape ID. IDs equal the
// index a shape was appended at and never change.
//
// Store is not safe for concurrent use. The UI feeds it one event at a time.
type Store struct {
	shapes  []Shape
	version uint64
}

// NewStore returns an empty collection at version 0.
func NewStore() *Store {
	return &Store{shapes: make([]Shape, 0)}
}

// NextID is the ID the next appended shape must carry.
func (s *Store) NextID() int {
	return len(s.shapes)
}

// Len is the number of shapes held.
func (s *Store) Len() int {
	return len(s.shapes)
}

// Version increases on every Append and Replace. Renderers compare it with
// the last version they drew to skip redundant rebuilds.
func (s *Store) Version() uint64 {
	return s.version
}

// Append adds sh at the end. It returns false when sh.ID is not NextID.
func (s *Store) Append(sh Shape) bool {
	if sh.ID != len(s.shapes) {
		return false
	}
	s.shapes = append(s.shapes, sh)
	s.version++
	return true
}

// Replace swaps the shape stored under sh.ID for sh.
func (s *Store) Replace(sh Shape) bool {
	if sh.ID < 0 || sh.ID >= len(s.shapes) {
		return false
	}
	s.shapes[sh.ID] = sh
	s.version++
	return true
}

// At returns the shape with the given ID, false when id is out of range.
func (s *Store) At(id int) (Shape, bool) {
	if id < 0 || id >= len(s.shapes) {
		return Shape{}, false
	}
	return s.shapes[id], true
}

// All returns a copy of the collection in ID order.
func (s *Store) All() []Shape {
	out := make([]Shape, len(s.shapes))
	copy(out, s.shapes)
	return out
}
