package classfile_test

import (
	"testing"

	"github.com/go-interpreter/classlift/classfile"
)

// buildPoolClass wraps a constant pool body (already in wire format, minus
// the count prefix) into a complete minimal class file so parseConstantPool
// can be exercised through the public ParseClass entry point.
func buildPoolClass(count uint16, poolBody []byte) []byte {
	var b buf
	b.u32(0xCAFEBABE)
	b.u16(0)
	b.u16(52)
	b.u16(count)
	b.b = append(b.b, poolBody...)
	b.u16(0x0021)
	b.u16(0) // this_class: unresolved on purpose, only the pool shape is under test
	b.u16(0)
	b.u16(0)
	b.u16(0)
	b.u16(0)
	b.u16(0)
	return b.b
}

func TestConstantPoolLongDoubleReservedSlot(t *testing.T) {
	var pool buf
	pool.u8(5) // TagLong
	pool.u32(0)
	pool.u32(1) // value = 1 (as two u32 halves, big-endian u64)
	pool.utf8("after")

	// count = 4: slot 1 = Long, slot 2 = reserved, slot 3 = Utf8.
	data := buildPoolClass(4, pool.b)
	cf, err := classfile.ParseClass(data, classfile.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cf.ConstantPool.Count() != 3 {
		t.Fatalf("Count() = %d, want 3", cf.ConstantPool.Count())
	}

	if _, ok := cf.ConstantPool.Get(1); !ok {
		t.Fatal("expected slot 1 (Long) to resolve")
	}
	if _, ok := cf.ConstantPool.Get(2); ok {
		t.Fatal("expected slot 2 (reserved) to NOT resolve")
	}
	text, ok := cf.ConstantPool.Utf8(3)
	if !ok || text != "after" {
		t.Fatalf("Utf8(3) = %q, %v, want \"after\", true", text, ok)
	}
}

func TestConstantPoolGetOutOfRange(t *testing.T) {
	data := minimalClass()
	cf, err := classfile.ParseClass(data, classfile.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := cf.ConstantPool.Get(0); ok {
		t.Fatal("Get(0) must always be (nil, false)")
	}
	if _, ok := cf.ConstantPool.Get(uint16(cf.ConstantPool.Count() + 1)); ok {
		t.Fatal("Get(Count()+1) must be (nil, false)")
	}
}
