package cascade

import (
	"errors"
	"fmt"
)

// Sentinel errors for contract violations. None of these are meant for end
// users; they point at a mismatch between what was rendered and the tree.
var (
	// ErrInvalidItem indicates an id or row that does not resolve among the
	// children of the current node.
	ErrInvalidItem = errors.New("invalid item reference")

	// ErrNotLeaf indicates a selection of a submenu, which is expandable and
	// not itself selectable.
	ErrNotLeaf = errors.New("item is a submenu, not a selectable leaf")

	// ErrForeignNode indicates a node from another tree, or a jump target
	// that is not an ancestor of the current node.
	ErrForeignNode = errors.New("node is not reachable from the current node")

	// ErrClosed indicates an interaction with a menu that is not open.
	ErrClosed = errors.New("menu is closed")
)

// ItemError describes a failed navigation or selection request.
type ItemError struct {
	Op  string // Operation that failed (e.g., "descend", "select")
	ID  any    // Identifier that was requested
	In  string // Title of the node the lookup ran against
	Err error  // Underlying sentinel
}

func (e *ItemError) Error() string {
	if e.In != "" {
		return fmt.Sprintf("cascade: %s %v in %q: %v", e.Op, e.ID, e.In, e.Err)
	}
	return fmt.Sprintf("cascade: %s %v: %v", e.Op, e.ID, e.Err)
}

func (e *ItemError) Unwrap() error {
	return e.Err
}

func newItemError[T comparable](op string, id T, in Node[T], err error) *ItemError {
	title := in.Title()
	if !in.HasParent() {
		title = ""
	}
	return &ItemError{Op: op, ID: id, In: title, Err: err}
}

// DefinitionError reports a malformed menu definition file.
type DefinitionError struct {
	Path string // Position of the offending entry, e.g. "item[2].item[0]"
	Msg  string
}

func (e *DefinitionError) Error() string {
	if e.Path == "" {
		return "cascade: menu definition: " + e.Msg
	}
	return fmt.Sprintf("cascade: menu definition %s: %s", e.Path, e.Msg)
}

// IsInvalidItem checks if an error reports an unresolvable item reference.
func IsInvalidItem(err error) bool {
	return errors.Is(err, ErrInvalidItem)
}

// IsClosed checks if an error reports an interaction with a closed menu.
func IsClosed(err error) bool {
	return errors.Is(err, ErrClosed)
}
