package controls

// List is the set of control values to apply at one point in time, keyed by
// numeric control id. Insertion order is irrelevant; a later Set for the same
// control replaces the earlier value.
type List map[uint32]Value

// Set stores the value for a control.
func (l List) Set(id *ID, v Value) {
	l[id.Num()] = v
}

// Get returns the value stored for a control and whether one is present.
func (l List) Get(id *ID) (Value, bool) {
	v, ok := l[id.Num()]
	return v, ok
}

// Len returns the number of controls in the list.
func (l List) Len() int { return len(l) }
