package classfile

import "fmt"

// AccessFlags is the bitset attached to a class, field, or method. The full
// catalogue of flag *meanings* is an external, out-of-scope concern (§1); the
// bits below are the wire-format values parsing itself must recognize in
// order to validate that no unknown bit is set (§4.3, §7 UnknownAccessFlags).
type AccessFlags uint16

const (
	AccPublic       AccessFlags = 0x0001
	AccPrivate      AccessFlags = 0x0002
	AccProtected    AccessFlags = 0x0004
	AccStatic       AccessFlags = 0x0008
	AccFinal        AccessFlags = 0x0010
	AccSuper        AccessFlags = 0x0020 // == AccSynchronized on methods
	AccSynchronized AccessFlags = 0x0020
	AccVolatile     AccessFlags = 0x0040 // == AccBridge on methods
	AccBridge       AccessFlags = 0x0040
	AccVarargs      AccessFlags = 0x0080
	AccTransient    AccessFlags = 0x0080
	AccNative       AccessFlags = 0x0100
	AccInterface    AccessFlags = 0x0200
	AccAbstract     AccessFlags = 0x0400
	AccStrict       AccessFlags = 0x0800
	AccSynthetic    AccessFlags = 0x1000
	AccAnnotation   AccessFlags = 0x2000
	AccEnum         AccessFlags = 0x4000
	AccModule       AccessFlags = 0x8000
)

// Is reports whether all bits in mask are set.
func (f AccessFlags) Is(mask AccessFlags) bool {
	return f&mask == mask
}

const (
	classFlagsMask  = AccPublic | AccFinal | AccSuper | AccInterface | AccAbstract | AccSynthetic | AccAnnotation | AccEnum | AccModule
	fieldFlagsMask  = AccPublic | AccPrivate | AccProtected | AccStatic | AccFinal | AccVolatile | AccTransient | AccSynthetic | AccEnum
	methodFlagsMask = AccPublic | AccPrivate | AccProtected | AccStatic | AccFinal | AccSynchronized | AccBridge | AccVarargs | AccNative | AccAbstract | AccStrict | AccSynthetic
)

// UnknownAccessFlagsError is returned when an access-flag bitset has a bit
// set outside the known mask for its context (class, field, or method).
type UnknownAccessFlagsError struct {
	Flags   AccessFlags
	Context string
}

func (e UnknownAccessFlagsError) Error() string {
	return fmt.Sprintf("classfile: unknown access flags %#04x for %s", uint16(e.Flags), e.Context)
}

func checkAccessFlags(f AccessFlags, mask AccessFlags, context string) error {
	if f&^mask != 0 {
		return UnknownAccessFlagsError{Flags: f, Context: context}
	}
	return nil
}
