package cascade

// RowKind tells a presentation adapter how a row behaves when tapped.
type RowKind int

const (
	RowBack    RowKind = iota // Header that returns to the parent level
	RowSubmenu                // Expandable entry, opens its children
	RowLeaf                   // Selectable action, fires the selection callback
)

// String returns a string representation of the row kind.
func (k RowKind) String() string {
	switch k {
	case RowBack:
		return "back"
	case RowSubmenu:
		return "submenu"
	case RowLeaf:
		return "leaf"
	default:
		return ""
	}
}

// ActivateResult reports what an activation did.
type ActivateResult int

const (
	ActivateNone      ActivateResult = iota // Nothing changed
	ActivateAscended                        // Cursor moved to the parent
	ActivateDescended                       // Cursor moved into a submenu
	ActivateSelected                        // A leaf was selected and the menu closed
)
