// Package descriptor parses JVM field and method type descriptors into a
// structured Type representation, as used by the expression lifter to
// determine call-site arity and return handling (C8).
package descriptor

import "fmt"

// Kind discriminates a primitive Type from a Class or Array Type.
type Kind int

const (
	KindVoid Kind = iota
	KindBoolean
	KindByte
	KindShort
	KindChar
	KindInt
	KindFloat
	KindLong
	KindDouble
	KindClass
	KindArray
)

// Type is the descriptor AST: a primitive kind, a class reference, or an
// array of some component type.
type Type struct {
	Kind Kind
	// BinaryName is set when Kind == KindClass; it is the internal form
	// (slash-separated) binary name, without the leading 'L' or trailing ';'.
	BinaryName string
	// Component is set when Kind == KindArray.
	Component *Type
}

func (t Type) String() string {
	switch t.Kind {
	case KindVoid:
		return "void"
	case KindBoolean:
		return "boolean"
	case KindByte:
		return "byte"
	case KindShort:
		return "short"
	case KindChar:
		return "char"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindLong:
		return "long"
	case KindDouble:
		return "double"
	case KindClass:
		return t.BinaryName
	case KindArray:
		return t.Component.String() + "[]"
	default:
		return "?"
	}
}

// IsCategory2 reports whether the type occupies two stack/local-variable
// slots in the bytecode (long and double).
func (t Type) IsCategory2() bool {
	return t.Kind == KindLong || t.Kind == KindDouble
}

// MethodType is the parsed shape of a method descriptor: ( params ) return.
type MethodType struct {
	Params     []Type
	ReturnType Type
}

// ErrInvalidDescriptor is returned when a descriptor string doesn't match
// any recognized grammar production at the point parsing stopped.
type ErrInvalidDescriptor struct {
	Descriptor string
	Pos        int
}

func (e ErrInvalidDescriptor) Error() string {
	return fmt.Sprintf("descriptor: invalid descriptor %q at byte %d", e.Descriptor, e.Pos)
}

// ParseField parses a field descriptor (a single type token).
func ParseField(s string) (Type, error) {
	t, pos, err := parseType(s, 0)
	if err != nil {
		return Type{}, err
	}
	if pos != len(s) {
		return Type{}, ErrInvalidDescriptor{Descriptor: s, Pos: pos}
	}
	return t, nil
}

// ParseMethod parses a method descriptor: '(' param-types ')' return-type.
func ParseMethod(s string) (MethodType, error) {
	if len(s) == 0 || s[0] != '(' {
		return MethodType{}, ErrInvalidDescriptor{Descriptor: s, Pos: 0}
	}
	pos := 1
	var params []Type
	for pos < len(s) && s[pos] != ')' {
		t, next, err := parseType(s, pos)
		if err != nil {
			return MethodType{}, err
		}
		params = append(params, t)
		pos = next
	}
	if pos >= len(s) || s[pos] != ')' {
		return MethodType{}, ErrInvalidDescriptor{Descriptor: s, Pos: pos}
	}
	pos++ // consume ')'

	ret, pos, err := parseType(s, pos)
	if err != nil {
		return MethodType{}, err
	}
	if pos != len(s) {
		return MethodType{}, ErrInvalidDescriptor{Descriptor: s, Pos: pos}
	}
	return MethodType{Params: params, ReturnType: ret}, nil
}

// parseType parses one type token starting at pos, returning the type and
// the position immediately after it.
func parseType(s string, pos int) (Type, int, error) {
	if pos >= len(s) {
		return Type{}, pos, ErrInvalidDescriptor{Descriptor: s, Pos: pos}
	}
	switch s[pos] {
	case 'V':
		return Type{Kind: KindVoid}, pos + 1, nil
	case 'Z':
		return Type{Kind: KindBoolean}, pos + 1, nil
	case 'B':
		return Type{Kind: KindByte}, pos + 1, nil
	case 'S':
		return Type{Kind: KindShort}, pos + 1, nil
	case 'C':
		return Type{Kind: KindChar}, pos + 1, nil
	case 'I':
		return Type{Kind: KindInt}, pos + 1, nil
	case 'F':
		return Type{Kind: KindFloat}, pos + 1, nil
	case 'J':
		return Type{Kind: KindLong}, pos + 1, nil
	case 'D':
		return Type{Kind: KindDouble}, pos + 1, nil
	case '[':
		comp, next, err := parseType(s, pos+1)
		if err != nil {
			return Type{}, next, err
		}
		return Type{Kind: KindArray, Component: &comp}, next, nil
	case 'L':
		end := pos + 1
		for end < len(s) && s[end] != ';' {
			end++
		}
		if end >= len(s) {
			return Type{}, end, ErrInvalidDescriptor{Descriptor: s, Pos: pos}
		}
		return Type{Kind: KindClass, BinaryName: s[pos+1 : end]}, end + 1, nil
	default:
		return Type{}, pos, ErrInvalidDescriptor{Descriptor: s, Pos: pos}
	}
}
