package parabox

import (
	"fmt"
	"iter"
)

// Box is a handle to a box record owned by a World. The zero value is NoBox
// and never refers to a record.
type Box uint32

// NoBox is the invalid box handle.
const NoBox Box = 0

// Entry is one direct child binding of a box.
type Entry struct {
	Index CellIndex
	Box   Box
}

type binding struct {
	index CellIndex
	child Box
}

type boxRecord struct {
	kind     Kind
	parent   Box
	slot     CellIndex
	children []binding // insertion order
}

// World is an arena of boxes. Boxes are never freed; detached boxes keep
// their record and can be attached again. Boxes form a forest: every box has
// at most one parent slot and no box is its own descendant.
//
// A World is not safe for concurrent use. All mutation happens inside one
// frame update.
type World struct {
	grid    Grid
	records []boxRecord
	debug   bool
}

// NewWorld creates an empty world whose boxes address children with grid.
func NewWorld(grid Grid) *World {
	return &World{grid: grid}
}

// Grid returns the grid used to address box slots.
func (w *World) Grid() Grid {
	return w.grid
}

// Len returns the number of boxes ever created in the world.
func (w *World) Len() int {
	return len(w.records)
}

// Create allocates a new box with no children.
func (w *World) Create(kind Kind) Box {
	w.records = append(w.records, boxRecord{kind: kind})
	return Box(len(w.records))
}

func (w *World) record(b Box) *boxRecord {
	if b == NoBox || int(b) > len(w.records) {
		return nil
	}
	return &w.records[b-1]
}

// Contains reports whether b is a box of this world.
func (w *World) Contains(b Box) bool {
	return w.record(b) != nil
}

// Kind returns the kind of b, or 0 if b is not a box of this world.
func (w *World) Kind(b Box) Kind {
	r := w.record(b)
	if r == nil {
		return 0
	}
	return r.kind
}

// Parent returns the box holding b and the slot it occupies.
// ok is false for roots and unknown boxes.
func (w *World) Parent(b Box) (parent Box, index CellIndex, ok bool) {
	r := w.record(b)
	if r == nil || r.parent == NoBox {
		return NoBox, 0, false
	}
	return r.parent, r.slot, true
}

// Add binds child at index on parent.
//
// A binding already present at index is replaced in place: the new child
// takes the old one's position in insertion order and the old child is
// detached. Re-adding a child of the same parent at another index moves it.
// The call fails without changing anything when the index is invalid, a
// handle is unknown, the child sits in another parent, or the binding would
// make a box its own descendant.
func (w *World) Add(parent Box, index CellIndex, child Box) error {
	pr := w.record(parent)
	if pr == nil {
		return fmt.Errorf("add to box %d: %w", parent, ErrUnknownBox)
	}
	cr := w.record(child)
	if cr == nil {
		return fmt.Errorf("add box %d: %w", child, ErrUnknownBox)
	}
	if !w.grid.ValidIndex(index) {
		return fmt.Errorf("add box %d at %d: %w", child, index, ErrInvalidAddress)
	}
	if w.isAncestor(child, parent) {
		return fmt.Errorf("add box %d under box %d: %w", child, parent, ErrCyclicContainment)
	}
	if cr.parent != NoBox && cr.parent != parent {
		return fmt.Errorf("add box %d: held by box %d: %w", child, cr.parent, ErrAlreadyAttached)
	}

	if cr.parent == parent {
		if cr.slot == index {
			return nil
		}
		pr.removeBinding(cr.slot)
	}

	replaced := false
	for i := range pr.children {
		if pr.children[i].index != index {
			continue
		}
		if old := w.record(pr.children[i].child); old != nil {
			old.parent = NoBox
			old.slot = 0
		}
		pr.children[i].child = child
		replaced = true
		break
	}
	if !replaced {
		pr.children = append(pr.children, binding{index: index, child: child})
	}
	cr.parent = parent
	cr.slot = index

	if w.debug {
		debugCheckBoxDepth(w, child)
	}
	return nil
}

// Remove detaches the child bound at index on parent and returns it.
func (w *World) Remove(parent Box, index CellIndex) (Box, bool) {
	pr := w.record(parent)
	if pr == nil {
		return NoBox, false
	}
	child := pr.removeBinding(index)
	if child == NoBox {
		return NoBox, false
	}
	cr := w.record(child)
	cr.parent = NoBox
	cr.slot = 0
	return child, true
}

// Flatten returns the direct child bindings of b in insertion order. The
// sequence is lazy and can be ranged over any number of times; it does not
// descend into grandchildren.
func (w *World) Flatten(b Box) iter.Seq2[CellIndex, Box] {
	return func(yield func(CellIndex, Box) bool) {
		r := w.record(b)
		if r == nil {
			return
		}
		for _, bd := range r.children {
			if !yield(bd.index, bd.child) {
				return
			}
		}
	}
}

// Entries collects Flatten(b) into a slice.
func (w *World) Entries(b Box) []Entry {
	var out []Entry
	for index, child := range w.Flatten(b) {
		out = append(out, Entry{Index: index, Box: child})
	}
	return out
}

// Walk visits b and every descendant depth-first, parents before children.
// fn receives the depth below b and the slot the box occupies in its parent
// (0 for b itself). Returning false from fn skips that box's children.
func (w *World) Walk(b Box, fn func(depth int, index CellIndex, box Box) bool) {
	if w.record(b) == nil {
		return
	}
	w.walk(b, 0, 0, fn)
}

func (w *World) walk(b Box, depth int, index CellIndex, fn func(int, CellIndex, Box) bool) {
	if !fn(depth, index, b) {
		return
	}
	for i, child := range w.Flatten(b) {
		w.walk(child, depth+1, i, fn)
	}
}

// Depth returns the number of ancestors of b.
func (w *World) Depth(b Box) int {
	depth := 0
	for r := w.record(b); r != nil && r.parent != NoBox; r = w.record(r.parent) {
		depth++
	}
	return depth
}

// Kinds returns every distinct kind in use, in creation order.
func (w *World) Kinds() []Kind {
	var kinds []Kind
	seen := make(map[Kind]bool)
	for i := range w.records {
		k := w.records[i].kind
		if !seen[k] {
			seen[k] = true
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// isAncestor reports whether candidate is node or one of its ancestors.
func (w *World) isAncestor(candidate, node Box) bool {
	for b := node; b != NoBox; {
		if b == candidate {
			return true
		}
		r := w.record(b)
		if r == nil {
			return false
		}
		b = r.parent
	}
	return false
}

// removeBinding deletes the binding at index, preserving the order of the
// rest, and returns the child that was bound there.
func (r *boxRecord) removeBinding(index CellIndex) Box {
	for i, bd := range r.children {
		if bd.index == index {
			copy(r.children[i:], r.children[i+1:])
			r.children[len(r.children)-1] = binding{}
			r.children = r.children[:len(r.children)-1]
			return bd.child
		}
	}
	return NoBox
}
