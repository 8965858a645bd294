package lift

// JumpTarget holds a branch operand through its two observable states: an
// initial byte-relative signed offset (measured from the address of the
// jump opcode), and a final resolved instruction index. The transition is
// total and happens exactly once, during Pass 2 of the Code lift; after
// resolution the original offset is no longer addressable (§3, §9 — this is
// a plain two-variant sum, not the source's storage-sharing union, which was
// an optimization choice rather than a contract).
type JumpTarget struct {
	resolved bool
	offset   int32
	index    uint32
}

// NewJumpTarget constructs an unresolved target from a byte-relative signed
// offset, as read directly off the bytecode operand.
func NewJumpTarget(offset int32) JumpTarget {
	return JumpTarget{offset: offset}
}

// Offset returns the unresolved byte-relative offset and true, or (0, false)
// if the target has already been resolved.
func (j JumpTarget) Offset() (int32, bool) {
	if j.resolved {
		return 0, false
	}
	return j.offset, true
}

// Index returns the resolved instruction index and true, or (0, false) if
// the target has not yet been resolved.
func (j JumpTarget) Index() (uint32, bool) {
	if !j.resolved {
		return 0, false
	}
	return j.index, true
}

// Resolve performs the one allowed offset -> index transition.
func (j *JumpTarget) Resolve(index uint32) {
	j.resolved = true
	j.index = index
}
