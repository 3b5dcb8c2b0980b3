package recordgen

// State holds the persistence flags of a record: whether it is new
// (not yet stored), modified since it was loaded or created, and marked
// for deletion. The flags are independent; any combination is valid.
//
// The zero State is not fresh. Records get a fresh State, with IsNew set,
// from NewRecord and Clear.
type State struct {
	isNew      bool
	isModified bool
	isDeleted  bool
}

// NewState returns the state of a freshly constructed record.
func NewState() State {
	return State{isNew: true}
}

// IsNew reports whether the record has not been stored yet.
func (s *State) IsNew() bool { return s.isNew }

// SetNew sets the new flag. It does not affect the other flags.
func (s *State) SetNew(v bool) { s.isNew = v }

// IsModified reports whether a field was set since construction,
// the last Clear or the last ResetModified.
func (s *State) IsModified() bool { return s.isModified }

// IsDeleted reports whether the record is marked as deleted.
func (s *State) IsDeleted() bool { return s.isDeleted }

// SetDeleted sets the deleted flag. It does not affect the other flags.
func (s *State) SetDeleted(v bool) { s.isDeleted = v }

func (s *State) markModified() { s.isModified = true }

func (s *State) reset() { *s = NewState() }
