package drafts

// FieldState is the edit state of a single inline-editable field.
type FieldState int

const (
	Display FieldState = iota
	Editing
)

// FieldEditor models an inline title/description editor: display -> editing
// on edit start, editing -> display on blur/commit. Commit reports a change
// only when the value differs from the last committed one, so unchanged
// blurs do not produce update notifications.
type FieldEditor struct {
	state     FieldState
	committed string
	value     string
}

func NewFieldEditor(committed string) *FieldEditor {
	return &FieldEditor{committed: committed, value: committed}
}

func (f *FieldEditor) State() FieldState { return f.state }

func (f *FieldEditor) Value() string { return f.value }

// BeginEdit enters the editing state. Calling it while editing keeps the
// pending value.
func (f *FieldEditor) BeginEdit() {
	if f.state == Display {
		f.value = f.committed
		f.state = Editing
	}
}

// Change updates the pending value; ignored outside the editing state.
func (f *FieldEditor) Change(v string) {
	if f.state == Editing {
		f.value = v
	}
}

// Commit leaves the editing state and returns the committed value and whether
// it changed. Committing from display is a no-op.
func (f *FieldEditor) Commit() (string, bool) {
	if f.state != Editing {
		return f.committed, false
	}
	f.state = Display
	if f.value == f.committed {
		return f.committed, false
	}
	f.committed = f.value
	return f.committed, true
}

// Cancel drops the pending value and returns to display.
func (f *FieldEditor) Cancel() {
	f.value = f.committed
	f.state = Display
}
