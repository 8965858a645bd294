package classfile

// FieldInfo describes one field declared by a class.
type FieldInfo struct {
	AccessFlags     AccessFlags
	NameIndex       uint16
	DescriptorIndex uint16
	Attributes      []AttributeInfo
}

func parseField(r *reader, pool *ConstantPool, maxAlloc int) (FieldInfo, error) {
	var f FieldInfo
	flags, err := r.u16()
	if err != nil {
		return f, err
	}
	f.AccessFlags = AccessFlags(flags)
	if err := checkAccessFlags(f.AccessFlags, fieldFlagsMask, "field"); err != nil {
		return f, err
	}
	if f.NameIndex, err = r.u16(); err != nil {
		return f, err
	}
	if f.DescriptorIndex, err = r.u16(); err != nil {
		return f, err
	}
	f.Attributes, err = parseAttributes(r, pool, maxAlloc)
	return f, err
}
