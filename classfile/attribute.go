package classfile

// AttributeInfo is the closed sum of recognized attribute variants, plus a
// catch-all Unparsed sink. Dispatch is by the attribute's name-index,
// resolved against the enclosing constant pool.
type AttributeInfo interface {
	attributeInfo()
}

// Unparsed is the sink for any attribute name not in the recognized set.
// Exactly Length bytes were consumed from the attribute's info blob with no
// further interpretation — the dispatcher, not this variant, owns that
// length-bounded consumption (§4.4).
type Unparsed struct {
	Name   string
	Length uint32
}

type ConstantValue struct{ ValueIndex uint16 }

// CodeAttribute carries a method body's raw bytecode without decoding it.
// Instruction decoding, jump resolution, and CFG construction (C6) are a
// distinct, lazily-invoked step (lift.LiftCode) so that a malformed method
// body cannot fail the class-level parse (§7).
type CodeAttribute struct {
	MaxStack       uint16
	MaxLocals      uint16
	Code           []byte
	ExceptionTable []ExceptionTableEntry
	Attributes     []AttributeInfo
}

// ExceptionTableEntry mirrors one row of a Code attribute's exception table.
// Exception-handler edges are not added to any CFG in this revision (§9 Open
// Question #1; acknowledged limitation carried from spec.md).
type ExceptionTableEntry struct {
	StartPC   uint16
	EndPC     uint16
	HandlerPC uint16
	CatchType uint16
}

type Exceptions struct{ IndexTable []uint16 }

type InnerClassEntry struct {
	InnerClassInfoIndex   uint16
	OuterClassInfoIndex   uint16
	InnerNameIndex        uint16
	InnerClassAccessFlags AccessFlags
}
type InnerClasses struct{ Classes []InnerClassEntry }

type EnclosingMethod struct {
	ClassIndex  uint16
	MethodIndex uint16
}

type Synthetic struct{}

type Signature struct{ SignatureIndex uint16 }

type SourceFile struct{ SourceFileIndex uint16 }

type SourceDebugExtension struct{ DebugExtension []byte }

type LineNumberEntry struct {
	StartPC    uint16
	LineNumber uint16
}
type LineNumberTable struct{ Entries []LineNumberEntry }

type LocalVariableEntry struct {
	StartPC         uint16
	Length          uint16
	NameIndex       uint16
	DescriptorIndex uint16
	Index           uint16
}
type LocalVariableTable struct{ Entries []LocalVariableEntry }

type LocalVariableTypeEntry struct {
	StartPC        uint16
	Length         uint16
	NameIndex      uint16
	SignatureIndex uint16
	Index          uint16
}
type LocalVariableTypeTable struct{ Entries []LocalVariableTypeEntry }

type Deprecated struct{}

type BootstrapMethod struct {
	MethodRefIndex uint16
	Arguments      []uint16
}
type BootstrapMethods struct{ Methods []BootstrapMethod }

// RuntimeAnnotations covers RuntimeVisibleAnnotations and
// RuntimeInvisibleAnnotations: both share the same wire shape, and neither is
// interpreted beyond its raw bytes (annotation value parsing is outside the
// Code-lift core this module concentrates on).
type RuntimeAnnotations struct {
	Visible bool
	Raw     []byte
}

func (Unparsed) attributeInfo()               {}
func (ConstantValue) attributeInfo()          {}
func (CodeAttribute) attributeInfo()          {}
func (Exceptions) attributeInfo()             {}
func (InnerClasses) attributeInfo()           {}
func (EnclosingMethod) attributeInfo()        {}
func (Synthetic) attributeInfo()              {}
func (Signature) attributeInfo()              {}
func (SourceFile) attributeInfo()             {}
func (SourceDebugExtension) attributeInfo()   {}
func (LineNumberTable) attributeInfo()        {}
func (LocalVariableTable) attributeInfo()     {}
func (LocalVariableTypeTable) attributeInfo() {}
func (Deprecated) attributeInfo()             {}
func (BootstrapMethods) attributeInfo()       {}
func (RuntimeAnnotations) attributeInfo()     {}

// parseAttribute reads one name-indexed, length-prefixed attribute and
// dispatches to the variant parser named by its resolved UTF8 name. The
// dispatcher slices out exactly `length` bytes before dispatching and hands
// the variant parser a reader bounded to that slice, so the outer cursor
// always advances by exactly `length` — the critical correctness requirement
// of §4.4 — whether the variant (or the Unparsed fallback) reads all of the
// slice or only part of it.
func parseAttribute(r *reader, pool *ConstantPool) (AttributeInfo, error) {
	nameIndex, err := r.u16()
	if err != nil {
		return nil, err
	}
	length, err := r.u32()
	if err != nil {
		return nil, err
	}
	body, err := r.bytes(int(length))
	if err != nil {
		return nil, err
	}

	name, ok := pool.Utf8(nameIndex)
	if !ok {
		// Name doesn't resolve to UTF8: treat as opaque, still fully
		// consumed per the length-bounded discipline.
		return Unparsed{Name: "", Length: length}, nil
	}

	br := newReader(body)
	switch name {
	case "ConstantValue":
		idx, err := br.u16()
		if err != nil {
			return nil, err
		}
		return ConstantValue{ValueIndex: idx}, nil
	case "Code":
		return parseCodeAttribute(br, pool)
	case "Exceptions":
		idx, err := length_count16(br, func(r *reader) (uint16, error) { return r.u16() }, 0)
		if err != nil {
			return nil, err
		}
		return Exceptions{IndexTable: idx}, nil
	case "InnerClasses":
		entries, err := length_count16(br, func(r *reader) (InnerClassEntry, error) {
			var e InnerClassEntry
			var err error
			if e.InnerClassInfoIndex, err = r.u16(); err != nil {
				return e, err
			}
			if e.OuterClassInfoIndex, err = r.u16(); err != nil {
				return e, err
			}
			if e.InnerNameIndex, err = r.u16(); err != nil {
				return e, err
			}
			flags, err := r.u16()
			e.InnerClassAccessFlags = AccessFlags(flags)
			return e, err
		}, 0)
		if err != nil {
			return nil, err
		}
		return InnerClasses{Classes: entries}, nil
	case "EnclosingMethod":
		c, err := br.u16()
		if err != nil {
			return nil, err
		}
		m, err := br.u16()
		if err != nil {
			return nil, err
		}
		return EnclosingMethod{ClassIndex: c, MethodIndex: m}, nil
	case "Synthetic":
		return Synthetic{}, nil
	case "Signature":
		idx, err := br.u16()
		if err != nil {
			return nil, err
		}
		return Signature{SignatureIndex: idx}, nil
	case "SourceFile":
		idx, err := br.u16()
		if err != nil {
			return nil, err
		}
		return SourceFile{SourceFileIndex: idx}, nil
	case "SourceDebugExtension":
		return SourceDebugExtension{DebugExtension: append([]byte(nil), body...)}, nil
	case "LineNumberTable":
		entries, err := length_count16(br, func(r *reader) (LineNumberEntry, error) {
			var e LineNumberEntry
			var err error
			if e.StartPC, err = r.u16(); err != nil {
				return e, err
			}
			e.LineNumber, err = r.u16()
			return e, err
		}, 0)
		if err != nil {
			return nil, err
		}
		return LineNumberTable{Entries: entries}, nil
	case "LocalVariableTable":
		entries, err := length_count16(br, func(r *reader) (LocalVariableEntry, error) {
			var e LocalVariableEntry
			var err error
			if e.StartPC, err = r.u16(); err != nil {
				return e, err
			}
			if e.Length, err = r.u16(); err != nil {
				return e, err
			}
			if e.NameIndex, err = r.u16(); err != nil {
				return e, err
			}
			if e.DescriptorIndex, err = r.u16(); err != nil {
				return e, err
			}
			e.Index, err = r.u16()
			return e, err
		}, 0)
		if err != nil {
			return nil, err
		}
		return LocalVariableTable{Entries: entries}, nil
	case "LocalVariableTypeTable":
		entries, err := length_count16(br, func(r *reader) (LocalVariableTypeEntry, error) {
			var e LocalVariableTypeEntry
			var err error
			if e.StartPC, err = r.u16(); err != nil {
				return e, err
			}
			if e.Length, err = r.u16(); err != nil {
				return e, err
			}
			if e.NameIndex, err = r.u16(); err != nil {
				return e, err
			}
			if e.SignatureIndex, err = r.u16(); err != nil {
				return e, err
			}
			e.Index, err = r.u16()
			return e, err
		}, 0)
		if err != nil {
			return nil, err
		}
		return LocalVariableTypeTable{Entries: entries}, nil
	case "Deprecated":
		return Deprecated{}, nil
	case "BootstrapMethods":
		methods, err := length_count16(br, func(r *reader) (BootstrapMethod, error) {
			var m BootstrapMethod
			idx, err := r.u16()
			if err != nil {
				return m, err
			}
			m.MethodRefIndex = idx
			args, err := length_count16(r, func(r *reader) (uint16, error) { return r.u16() }, 0)
			m.Arguments = args
			return m, err
		}, 0)
		if err != nil {
			return nil, err
		}
		return BootstrapMethods{Methods: methods}, nil
	case "RuntimeVisibleAnnotations":
		return RuntimeAnnotations{Visible: true, Raw: append([]byte(nil), body...)}, nil
	case "RuntimeInvisibleAnnotations":
		return RuntimeAnnotations{Visible: false, Raw: append([]byte(nil), body...)}, nil
	default:
		return Unparsed{Name: name, Length: length}, nil
	}
}

func parseAttributes(r *reader, pool *ConstantPool, maxAlloc int) ([]AttributeInfo, error) {
	return length_count16(r, func(r *reader) (AttributeInfo, error) {
		return parseAttribute(r, pool)
	}, maxAlloc)
}

// parseCodeAttribute reads the Code attribute's header and raw bytecode, then
// its exception table and nested attributes, exactly mirroring the nesting
// order spec.md §4.6 describes — but stops short of the three-pass
// instruction lift (that's lift.LiftCode).
func parseCodeAttribute(r *reader, pool *ConstantPool) (AttributeInfo, error) {
	maxStack, err := r.u16()
	if err != nil {
		return nil, err
	}
	maxLocals, err := r.u16()
	if err != nil {
		return nil, err
	}
	codeLength, err := r.u32()
	if err != nil {
		return nil, err
	}
	code, err := r.bytes(int(codeLength))
	if err != nil {
		return nil, err
	}

	excTable, err := length_count16(r, func(r *reader) (ExceptionTableEntry, error) {
		var e ExceptionTableEntry
		var err error
		if e.StartPC, err = r.u16(); err != nil {
			return e, err
		}
		if e.EndPC, err = r.u16(); err != nil {
			return e, err
		}
		if e.HandlerPC, err = r.u16(); err != nil {
			return e, err
		}
		e.CatchType, err = r.u16()
		return e, err
	}, 0)
	if err != nil {
		return nil, err
	}

	attrs, err := parseAttributes(r, pool, 0)
	if err != nil {
		return nil, err
	}

	return CodeAttribute{
		MaxStack:       maxStack,
		MaxLocals:      maxLocals,
		Code:           append([]byte(nil), code...),
		ExceptionTable: excTable,
		Attributes:     attrs,
	}, nil
}
