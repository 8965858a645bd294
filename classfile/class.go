package classfile

import (
	"errors"
	"fmt"
)

const classMagic uint32 = 0xCAFEBABE

// ErrBadMagic is returned when the input does not begin with the class file
// magic number CA FE BA BE.
var ErrBadMagic = errors.New("classfile: bad magic number")

// BadMagicError carries the magic value actually found, for callers that
// want more than the sentinel ErrBadMagic.
type BadMagicError struct {
	Got uint32
}

func (e BadMagicError) Error() string {
	return fmt.Sprintf("classfile: bad magic: got %#08x, want %#08x", e.Got, classMagic)
}

func (e BadMagicError) Unwrap() error { return ErrBadMagic }

// ClassFile is the fully parsed representation of one .class file.
type ClassFile struct {
	MinorVersion uint16
	MajorVersion uint16
	ConstantPool *ConstantPool
	AccessFlags  AccessFlags
	ThisClass    uint16
	SuperClass   uint16
	Interfaces   []uint16
	Fields       []FieldInfo
	Methods      []MethodInfo
	Attributes   []AttributeInfo
}

// Options tunes parsing behavior.
type Options struct {
	// MaxAllocBytes, if non-zero, caps the initial capacity reserved for the
	// constant pool, interfaces, fields, methods, and the class, field and
	// method attribute lists regardless of what the file's count field
	// claims, defending against adversarially large length prefixes driving
	// unbounded allocation before the read itself fails (§5). The tables
	// inside individual attributes (including a Code attribute's exception
	// table and nested attributes) are not capped.
	MaxAllocBytes int
}

// ClassName resolves the class's own binary name via ThisClass -> Class ->
// Utf8. It returns false if any link in that chain is missing.
func (c *ClassFile) ClassName() (string, bool) {
	return c.resolveClassName(c.ThisClass)
}

// SuperClassName resolves the superclass's binary name the same way.
// java/lang/Object has SuperClass == 0 and no superclass name.
func (c *ClassFile) SuperClassName() (string, bool) {
	if c.SuperClass == 0 {
		return "", false
	}
	return c.resolveClassName(c.SuperClass)
}

func (c *ClassFile) resolveClassName(index uint16) (string, bool) {
	e, ok := c.ConstantPool.Get(index)
	if !ok {
		return "", false
	}
	cls, ok := e.(ClassConstant)
	if !ok {
		return "", false
	}
	return c.ConstantPool.Utf8(cls.NameIndex)
}

// ParseClass parses a complete .class file from data. Parsing is atomic: on
// any error, no partial ClassFile is returned. A malformed individual
// method's bytecode does not fail ParseClass — that method's Code attribute
// still parses (its raw bytes are captured as-is); only a later
// lift.LiftCode call against it can fail.
func ParseClass(data []byte, opts Options) (*ClassFile, error) {
	r := newReader(data)

	magic, err := r.u32()
	if err != nil {
		return nil, err
	}
	if magic != classMagic {
		return nil, BadMagicError{Got: magic}
	}

	cf := &ClassFile{}
	if cf.MinorVersion, err = r.u16(); err != nil {
		return nil, err
	}
	if cf.MajorVersion, err = r.u16(); err != nil {
		return nil, err
	}

	cf.ConstantPool, err = parseConstantPool(r, opts.MaxAllocBytes)
	if err != nil {
		return nil, err
	}

	flags, err := r.u16()
	if err != nil {
		return nil, err
	}
	cf.AccessFlags = AccessFlags(flags)
	if err := checkAccessFlags(cf.AccessFlags, classFlagsMask, "class"); err != nil {
		return nil, err
	}

	if cf.ThisClass, err = r.u16(); err != nil {
		return nil, err
	}
	if cf.SuperClass, err = r.u16(); err != nil {
		return nil, err
	}

	cf.Interfaces, err = length_count16(r, func(r *reader) (uint16, error) { return r.u16() }, opts.MaxAllocBytes)
	if err != nil {
		return nil, err
	}

	cf.Fields, err = length_count16(r, func(r *reader) (FieldInfo, error) {
		return parseField(r, cf.ConstantPool, opts.MaxAllocBytes)
	}, opts.MaxAllocBytes)
	if err != nil {
		return nil, err
	}

	cf.Methods, err = length_count16(r, func(r *reader) (MethodInfo, error) {
		return parseMethod(r, cf.ConstantPool, opts.MaxAllocBytes)
	}, opts.MaxAllocBytes)
	if err != nil {
		return nil, err
	}

	cf.Attributes, err = parseAttributes(r, cf.ConstantPool, opts.MaxAllocBytes)
	if err != nil {
		return nil, err
	}

	logger.Printf("parsed class: %d fields, %d methods, %d attributes", len(cf.Fields), len(cf.Methods), len(cf.Attributes))
	return cf, nil
}
