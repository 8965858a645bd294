package classfile

import (
	"fmt"
	"unicode/utf8"
)

// ConstantTag is the one-byte tag that discriminates a constant-pool entry.
type ConstantTag uint8

const (
	TagClass              ConstantTag = 7
	TagFieldRef           ConstantTag = 9
	TagMethodRef          ConstantTag = 10
	TagInterfaceMethodRef ConstantTag = 11
	TagString             ConstantTag = 8
	TagInteger            ConstantTag = 3
	TagFloat              ConstantTag = 4
	TagLong               ConstantTag = 5
	TagDouble             ConstantTag = 6
	TagNameAndType        ConstantTag = 12
	TagUtf8               ConstantTag = 1
	TagMethodHandle       ConstantTag = 15
	TagMethodType         ConstantTag = 16
	TagInvokeDynamic      ConstantTag = 18
)

// UnknownConstantTagError is returned when a constant-pool entry's tag byte
// is not one of the known TagXxx values.
type UnknownConstantTagError struct {
	Tag ConstantTag
	// Offset is the pool index (one-based) at which the unknown tag was found.
	Offset int
}

func (e UnknownConstantTagError) Error() string {
	return fmt.Sprintf("classfile: unknown constant pool tag %d at index %d", e.Tag, e.Offset)
}

// UtfDecodeError is returned when a UTF8 constant's bytes are not valid
// UTF-8. See SPEC_FULL.md §9 for the tolerated MUTF-8 deviation: this check
// only rejects outright invalid byte sequences, it does not fully validate
// modified-UTF8 nul/surrogate-pair encoding.
type UtfDecodeError struct {
	Index int
}

func (e UtfDecodeError) Error() string {
	return fmt.Sprintf("classfile: invalid UTF-8 in constant pool entry %d", e.Index)
}

// ConstantEntry is the closed sum of constant-pool entry shapes.
type ConstantEntry interface {
	constantEntry()
}

type ClassConstant struct{ NameIndex uint16 }
type FieldRefConstant struct {
	ClassIndex       uint16
	NameAndTypeIndex uint16
}
type MethodRefConstant struct {
	ClassIndex       uint16
	NameAndTypeIndex uint16
}
type InterfaceMethodRefConstant struct {
	ClassIndex       uint16
	NameAndTypeIndex uint16
}
type StringConstant struct{ Utf8Index uint16 }
type IntegerConstant struct{ Value uint32 }
type FloatConstant struct{ Value uint32 }
type LongConstant struct{ Value uint64 }
type DoubleConstant struct{ Value uint64 }
type NameAndTypeConstant struct {
	NameIndex       uint16
	DescriptorIndex uint16
}
type Utf8Constant struct{ Text string }
type MethodHandleConstant struct {
	ReferenceKind  uint8
	ReferenceIndex uint16
}
type MethodTypeConstant struct{ DescriptorIndex uint16 }
type InvokeDynamicConstant struct {
	BootstrapMethodAttrIndex uint16
	NameAndTypeIndex         uint16
}

// reservedSlot occupies the unusable pool slot that follows every Long and
// Double entry in the wire format (§9 Open Question #1: an implementation
// must either insert a placeholder here or otherwise expose the gap). It is
// never returned to a caller resolving an index into a valid entry.
type reservedSlot struct{}

func (ClassConstant) constantEntry()             {}
func (FieldRefConstant) constantEntry()          {}
func (MethodRefConstant) constantEntry()         {}
func (InterfaceMethodRefConstant) constantEntry() {}
func (StringConstant) constantEntry()            {}
func (IntegerConstant) constantEntry()           {}
func (FloatConstant) constantEntry()             {}
func (LongConstant) constantEntry()              {}
func (DoubleConstant) constantEntry()            {}
func (NameAndTypeConstant) constantEntry()       {}
func (Utf8Constant) constantEntry()              {}
func (MethodHandleConstant) constantEntry()      {}
func (MethodTypeConstant) constantEntry()        {}
func (InvokeDynamicConstant) constantEntry()     {}
func (reservedSlot) constantEntry()              {}

// ConstantPool is an ordered, one-indexed sequence of constant-pool entries.
// Index 0 is never valid; Get performs the one-based translation.
type ConstantPool struct {
	entries []ConstantEntry
}

// Count returns the number of addressable one-based slots, including any
// reserved Long/Double placeholder slots.
func (p *ConstantPool) Count() int {
	return len(p.entries)
}

// Get resolves a one-based pool index to its entry. It returns (nil, false)
// for index 0, any index beyond the pool's length, or a reserved
// Long/Double placeholder slot — the pool does not validate cross-references
// at construction time, so callers must handle a missing entry themselves.
func (p *ConstantPool) Get(i uint16) (ConstantEntry, bool) {
	if i == 0 || int(i) > len(p.entries) {
		return nil, false
	}
	e := p.entries[i-1]
	if _, reserved := e.(reservedSlot); reserved {
		return nil, false
	}
	return e, true
}

// Utf8 resolves a one-based index expected to name a Utf8Constant, returning
// its decoded text.
func (p *ConstantPool) Utf8(i uint16) (string, bool) {
	e, ok := p.Get(i)
	if !ok {
		return "", false
	}
	u, ok := e.(Utf8Constant)
	if !ok {
		return "", false
	}
	return u.Text, true
}

func parseConstantPool(r *reader, maxAlloc int) (*ConstantPool, error) {
	count, err := r.u16()
	if err != nil {
		return nil, err
	}

	cap := int(count)
	if maxAlloc > 0 && cap > maxAlloc {
		cap = maxAlloc
	}
	entries := make([]ConstantEntry, 0, cap)

	// The wire format's constant_pool_count is the slot count plus one:
	// there are count-1 addressable entries.
	for i := 1; i < int(count); i++ {
		entry, extra, err := parseConstantEntry(r, len(entries)+1)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
		if extra {
			// Long/Double occupy two one-based slots; the second is unusable.
			entries = append(entries, reservedSlot{})
			i++
		}
	}

	logger.Printf("parsed %d constant pool slots", len(entries))
	return &ConstantPool{entries: entries}, nil
}

// parseConstantEntry parses one tag-discriminated entry, returning whether
// it consumes an extra reserved slot (Long/Double).
func parseConstantEntry(r *reader, index int) (ConstantEntry, bool, error) {
	tagByte, err := r.u8()
	if err != nil {
		return nil, false, err
	}
	tag := ConstantTag(tagByte)

	switch tag {
	case TagClass:
		v, err := r.u16()
		return ClassConstant{NameIndex: v}, false, err
	case TagFieldRef:
		c, err := r.u16()
		if err != nil {
			return nil, false, err
		}
		nt, err := r.u16()
		return FieldRefConstant{ClassIndex: c, NameAndTypeIndex: nt}, false, err
	case TagMethodRef:
		c, err := r.u16()
		if err != nil {
			return nil, false, err
		}
		nt, err := r.u16()
		return MethodRefConstant{ClassIndex: c, NameAndTypeIndex: nt}, false, err
	case TagInterfaceMethodRef:
		c, err := r.u16()
		if err != nil {
			return nil, false, err
		}
		nt, err := r.u16()
		return InterfaceMethodRefConstant{ClassIndex: c, NameAndTypeIndex: nt}, false, err
	case TagString:
		v, err := r.u16()
		return StringConstant{Utf8Index: v}, false, err
	case TagInteger:
		v, err := r.u32()
		return IntegerConstant{Value: v}, false, err
	case TagFloat:
		v, err := r.u32()
		return FloatConstant{Value: v}, false, err
	case TagLong:
		v, err := r.u64()
		return LongConstant{Value: v}, true, err
	case TagDouble:
		v, err := r.u64()
		return DoubleConstant{Value: v}, true, err
	case TagNameAndType:
		n, err := r.u16()
		if err != nil {
			return nil, false, err
		}
		d, err := r.u16()
		return NameAndTypeConstant{NameIndex: n, DescriptorIndex: d}, false, err
	case TagUtf8:
		raw, err := length_data16(r)
		if err != nil {
			return nil, false, err
		}
		if !utf8.Valid(raw) {
			return nil, false, UtfDecodeError{Index: index}
		}
		// Copy out of the input slice: UTF8 text is owned, not borrowed
		// (§5 resource lifetime policy).
		text := string(raw)
		return Utf8Constant{Text: text}, false, nil
	case TagMethodHandle:
		kind, err := r.u8()
		if err != nil {
			return nil, false, err
		}
		idx, err := r.u16()
		return MethodHandleConstant{ReferenceKind: kind, ReferenceIndex: idx}, false, err
	case TagMethodType:
		v, err := r.u16()
		return MethodTypeConstant{DescriptorIndex: v}, false, err
	case TagInvokeDynamic:
		b, err := r.u16()
		if err != nil {
			return nil, false, err
		}
		nt, err := r.u16()
		return InvokeDynamicConstant{BootstrapMethodAttrIndex: b, NameAndTypeIndex: nt}, false, err
	default:
		return nil, false, UnknownConstantTagError{Tag: tag, Offset: index}
	}
}
