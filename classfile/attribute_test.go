package classfile_test

import (
	"testing"

	"github.com/go-interpreter/classlift/classfile"
)

// classWithMethod builds a minimal class with one method carrying a Code
// attribute whose body is exactly the given bytecode.
func classWithMethod(code []byte) []byte {
	var b buf
	b.u32(0xCAFEBABE)
	b.u16(0)
	b.u16(52)

	// pool: 1=Utf8("C") 2=Class(1) 3=Utf8("m") 4=Utf8("()V") 5=Utf8("Code")
	b.u16(6)
	b.utf8("C")
	b.class(1)
	b.utf8("m")
	b.utf8("()V")
	b.utf8("Code")

	b.u16(0x0021) // access_flags
	b.u16(2)      // this_class
	b.u16(0)      // super_class
	b.u16(0)      // interfaces_count
	b.u16(0)      // fields_count

	b.u16(1) // methods_count
	b.u16(0x0001) // method access_flags: public
	b.u16(3)      // name_index -> "m"
	b.u16(4)      // descriptor_index -> "()V"
	b.u16(1)      // attributes_count

	var codeAttr buf
	codeAttr.u16(1) // max_stack
	codeAttr.u16(1) // max_locals
	codeAttr.u32(uint32(len(code)))
	codeAttr.b = append(codeAttr.b, code...)
	codeAttr.u16(0) // exception_table_length
	codeAttr.u16(0) // attributes_count

	b.u16(5) // attribute_name_index -> "Code"
	b.u32(uint32(len(codeAttr.b)))
	b.b = append(b.b, codeAttr.b...)

	b.u16(0) // class attributes_count
	return b.b
}

func TestParseCodeAttribute(t *testing.T) {
	code := []byte{0xb1} // return
	cf, err := classfile.ParseClass(classWithMethod(code), classfile.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cf.Methods) != 1 {
		t.Fatalf("expected 1 method, got %d", len(cf.Methods))
	}
	ca, ok := cf.Methods[0].Code()
	if !ok {
		t.Fatal("expected method to have a Code attribute")
	}
	if ca.MaxStack != 1 || ca.MaxLocals != 1 {
		t.Fatalf("MaxStack=%d MaxLocals=%d, want 1, 1", ca.MaxStack, ca.MaxLocals)
	}
	if len(ca.Code) != 1 || ca.Code[0] != 0xb1 {
		t.Fatalf("Code = %v, want [0xb1]", ca.Code)
	}
}

func TestParseMethodNoCode(t *testing.T) {
	var b buf
	b.u32(0xCAFEBABE)
	b.u16(0)
	b.u16(52)
	b.u16(5) // constant_pool_count (4 entries + 1)
	b.utf8("C")
	b.class(1)
	b.utf8("m")
	b.utf8("()V")
	b.u16(0x0021)
	b.u16(2)
	b.u16(0)
	b.u16(0)
	b.u16(0)
	b.u16(1)
	b.u16(0x0401) // abstract, public
	b.u16(3)
	b.u16(4)
	b.u16(0) // no attributes: no Code
	b.u16(0)

	cf, err := classfile.ParseClass(b.b, classfile.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := cf.Methods[0].Code(); ok {
		t.Fatal("expected abstract method to have no Code attribute")
	}
}
