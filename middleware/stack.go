package middleware

import (
	"context"
	"fmt"
	"strings"
)

// RelativePosition provides specifying the relative position of a middleware
// in an ordered group.
type RelativePosition int

// Relative position for middleware in the stack.
const (
	After RelativePosition = iota
	Before
)

// Stack provides an ordered, named collection of middleware invoked around
// an operation handler.
type Stack struct {
	id  string
	ids *orderedIDs
}

// NewStack returns an initialized empty stack.
func NewStack(id string) *Stack {
	return &Stack{id: id, ids: newOrderedIDs()}
}

// ID returns the unique ID for the stack as a middleware.
func (s *Stack) ID() string { return s.id }

// String returns a string representation of the stack's middleware order.
func (s *Stack) String() string {
	var b strings.Builder
	b.WriteString(s.id)
	b.WriteString(":\n")
	for _, id := range s.ids.List() {
		b.WriteString("\t")
		b.WriteString(id)
		b.WriteString("\n")
	}
	return b.String()
}

// Add injects the middleware to the relative position of the stack.
// Returns an error if the middleware already exists.
func (s *Stack) Add(m Middleware, pos RelativePosition) error {
	return s.ids.Add(m, pos)
}

// Insert injects the middleware relative to an existing middleware ID.
// Returns an error if the original middleware does not exist, or the
// middleware being added already exists.
func (s *Stack) Insert(m Middleware, relativeTo string, pos RelativePosition) error {
	return s.ids.Insert(m, relativeTo, pos)
}

// Get retrieves the middleware identified by id.
func (s *Stack) Get(id string) (Middleware, bool) {
	return s.ids.Get(id)
}

// Swap removes the middleware by id, replacing it with the new middleware.
// Returns the middleware removed, or an error if the middleware to be
// removed was not found.
func (s *Stack) Swap(id string, m Middleware) (Middleware, error) {
	return s.ids.Swap(id, m)
}

// Remove removes the middleware by id. Returns error if the middleware
// doesn't exist.
func (s *Stack) Remove(id string) (Middleware, error) {
	return s.ids.Remove(id)
}

// List returns a list of the middleware in the stack, in invocation order.
func (s *Stack) List() []string {
	return s.ids.List()
}

// HandleMiddleware invokes the middleware stack decorating the next handler.
func (s *Stack) HandleMiddleware(ctx context.Context, input interface{}, next Handler) (
	output interface{}, err error,
) {
	return DecorateHandler(next, s.ids.GetOrder()...).Handle(ctx, input)
}

// orderedIDs provides an ordered collection of middleware with relative
// ordering by ID.
type orderedIDs struct {
	order *relativeOrder
	items map[string]Middleware
}

func newOrderedIDs() *orderedIDs {
	return &orderedIDs{
		order: &relativeOrder{},
		items: map[string]Middleware{},
	}
}

// Add injects the item to the relative position of the item group. Returns
// an error if the item already exists.
func (g *orderedIDs) Add(m Middleware, pos RelativePosition) error {
	id := m.ID()
	if len(id) == 0 {
		return fmt.Errorf("empty ID, ID must not be empty")
	}

	if err := g.order.Add(pos, id); err != nil {
		return err
	}

	g.items[id] = m
	return nil
}

// Insert injects the item relative to an existing item id. Returns an error
// if the original item does not exist, or the item being added already
// exists.
func (g *orderedIDs) Insert(m Middleware, relativeTo string, pos RelativePosition) error {
	if len(m.ID()) == 0 {
		return fmt.Errorf("insert ID must not be empty")
	}
	if len(relativeTo) == 0 {
		return fmt.Errorf("relative to ID must not be empty")
	}

	if err := g.order.Insert(relativeTo, pos, m.ID()); err != nil {
		return err
	}

	g.items[m.ID()] = m
	return nil
}

// Get returns the item identified by id.
func (g *orderedIDs) Get(id string) (Middleware, bool) {
	v, ok := g.items[id]
	return v, ok
}

// Swap removes the item by id, replacing it with the new item. Returns an
// error if the original item doesn't exist.
func (g *orderedIDs) Swap(id string, m Middleware) (Middleware, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("swap from ID must not be empty")
	}

	iderID := m.ID()
	if len(iderID) == 0 {
		return nil, fmt.Errorf("swap to ID must not be empty")
	}

	if err := g.order.Swap(id, iderID); err != nil {
		return nil, err
	}

	removed := g.items[id]

	delete(g.items, id)
	g.items[iderID] = m

	return removed, nil
}

// Remove removes the item by id. Returns error if the item doesn't exist.
func (g *orderedIDs) Remove(id string) (Middleware, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("remove ID must not be empty")
	}

	if err := g.order.Remove(id); err != nil {
		return nil, err
	}

	removed := g.items[id]
	delete(g.items, id)
	return removed, nil
}

func (g *orderedIDs) List() []string {
	items := g.order.List()
	order := make([]string, len(items))
	copy(order, items)
	return order
}

// GetOrder returns the item in the order it should be invoked in.
func (g *orderedIDs) GetOrder() []Middleware {
	order := g.order.List()
	ordered := make([]Middleware, len(order))
	for i := 0; i < len(order); i++ {
		ordered[i] = g.items[order[i]]
	}

	return ordered
}

// relativeOrder provides ordering of item
type relativeOrder struct {
	order []string
}

// Add inserts an item into the order relative to the position provided.
func (s *relativeOrder) Add(pos RelativePosition, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}

	for _, id := range ids {
		if _, ok := s.has(id); ok {
			return fmt.Errorf("already exists, %v", id)
		}
	}

	switch pos {
	case Before:
		return s.insert(0, Before, ids...)

	case After:
		s.order = append(s.order, ids...)

	default:
		return fmt.Errorf("invalid position, %v", int(pos))
	}

	return nil
}

// Insert injects an item before or after the relative item. Returns
// an error if the relative item does not exist.
func (s *relativeOrder) Insert(relativeTo string, pos RelativePosition, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}

	for _, id := range ids {
		if _, ok := s.has(id); ok {
			return fmt.Errorf("already exists, %v", id)
		}
	}

	i, ok := s.has(relativeTo)
	if !ok {
		return fmt.Errorf("not found, %v", relativeTo)
	}

	return s.insert(i, pos, ids...)
}

// Swap will replace the item id with the to item. Returns an
// error if the original item id does not exist. Allows swapping out an
// item for another item with the same id.
func (s *relativeOrder) Swap(id, to string) error {
	i, ok := s.has(id)
	if !ok {
		return fmt.Errorf("not found, %v", id)
	}

	if _, ok = s.has(to); ok && id != to {
		return fmt.Errorf("already exists, %v", to)
	}

	s.order[i] = to
	return nil
}

func (s *relativeOrder) Remove(id string) error {
	i, ok := s.has(id)
	if !ok {
		return fmt.Errorf("not found, %v", id)
	}

	s.order = append(s.order[:i], s.order[i+1:]...)
	return nil
}

func (s *relativeOrder) List() []string {
	return s.order
}

func (s *relativeOrder) insert(i int, pos RelativePosition, ids ...string) error {
	switch pos {
	case Before:
		n := len(ids)
		var src []string
		if n <= cap(s.order)-len(s.order) {
			s.order = s.order[:len(s.order)+n]
			src = s.order
		} else {
			src = s.order
			s.order = make([]string, len(s.order)+n)
			copy(s.order[:i], src[:i]) // only when allocating a new slice do we need to copy the front half
		}
		copy(s.order[i+n:], src[i:])
		copy(s.order[i:], ids)
	case After:
		if i == len(s.order)-1 || len(s.order) == 0 {
			s.order = append(s.order, ids...)
		} else {
			s.order = append(s.order[:i+1], append(ids, s.order[i+1:]...)...)
		}

	default:
		return fmt.Errorf("invalid position, %v", int(pos))
	}

	return nil
}

func (s *relativeOrder) has(id string) (i int, found bool) {
	for i := 0; i < len(s.order); i++ {
		if s.order[i] == id {
			return i, true
		}
	}
	return 0, false
}
