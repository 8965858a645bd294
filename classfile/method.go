package classfile

// MethodInfo describes one method declared by a class.
type MethodInfo struct {
	AccessFlags     AccessFlags
	NameIndex       uint16
	DescriptorIndex uint16
	Attributes      []AttributeInfo
}

func parseMethod(r *reader, pool *ConstantPool, maxAlloc int) (MethodInfo, error) {
	var m MethodInfo
	flags, err := r.u16()
	if err != nil {
		return m, err
	}
	m.AccessFlags = AccessFlags(flags)
	if err := checkAccessFlags(m.AccessFlags, methodFlagsMask, "method"); err != nil {
		return m, err
	}
	if m.NameIndex, err = r.u16(); err != nil {
		return m, err
	}
	if m.DescriptorIndex, err = r.u16(); err != nil {
		return m, err
	}
	m.Attributes, err = parseAttributes(r, pool, maxAlloc)
	return m, err
}

// Code returns the method's Code attribute, if it has one. Methods declared
// abstract or native have no Code attribute.
func (m *MethodInfo) Code() (*CodeAttribute, bool) {
	for _, a := range m.Attributes {
		if c, ok := a.(CodeAttribute); ok {
			return &c, true
		}
	}
	return nil, false
}
