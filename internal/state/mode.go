package state

import "fmt"

// ModeKind tags the active Mode.
type ModeKind int

const (
	ModeNormal ModeKind = iota
	ModeAdd
	ModeEdit
	ModeDelete
	ModeExit
)

// Mode decides how the next key is interpreted. Index is the station captured
// when ModeEdit or ModeDelete was entered; it is meaningless otherwise.
type Mode struct {
	Kind  ModeKind
	Index int
}

func normalMode() Mode      { return Mode{Kind: ModeNormal} }
func addMode() Mode         { return Mode{Kind: ModeAdd} }
func editMode(i int) Mode   { return Mode{Kind: ModeEdit, Index: i} }
func deleteMode(i int) Mode { return Mode{Kind: ModeDelete, Index: i} }
func exitMode() Mode        { return Mode{Kind: ModeExit} }

// Modal reports whether the mode shows a dialog over the list.
func (m Mode) Modal() bool {
	switch m.Kind {
	case ModeAdd, ModeEdit, ModeDelete:
		return true
	default:
		return false
	}
}

// Editing reports whether a Draft is open.
func (m Mode) Editing() bool {
	return m.Kind == ModeAdd || m.Kind == ModeEdit
}

func (m Mode) String() string {
	switch m.Kind {
	case ModeAdd:
		return "add"
	case ModeEdit:
		return fmt.Sprintf("edit(%d)", m.Index)
	case ModeDelete:
		return fmt.Sprintf("delete(%d)", m.Index)
	case ModeExit:
		return "exit"
	default:
		return "normal"
	}
}
