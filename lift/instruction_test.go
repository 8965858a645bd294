package lift_test

import (
	"testing"

	"github.com/go-interpreter/classlift/lift"
	"github.com/go-interpreter/classlift/opcode"
)

func TestDecodeInstructionIndexedLoadCollapse(t *testing.T) {
	// iload_0, aload_1, istore_2, areturn
	code := []byte{opcode.Iload0, opcode.Aload1, opcode.Istore2, opcode.Areturn}

	in, err := lift.DecodeInstruction(code, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	load, ok := in.(lift.Load)
	if !ok {
		t.Fatalf("iload_0 decoded to %T, want lift.Load", in)
	}
	if load.Opcode() != opcode.Iload {
		t.Fatalf("canonical opcode = %#02x, want Iload", load.Opcode())
	}
	if load.Var != 0 {
		t.Fatalf("Var = %d, want 0", load.Var)
	}
	if load.Size() != 1 {
		t.Fatalf("Size() = %d, want 1", load.Size())
	}

	in, err = lift.DecodeInstruction(code, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	load, ok = in.(lift.Load)
	if !ok {
		t.Fatalf("aload_1 decoded to %T, want lift.Load", in)
	}
	if load.Opcode() != opcode.Aload || load.Var != 1 {
		t.Fatalf("aload_1 -> Load{Op=%#02x Var=%d}, want {Aload, 1}", load.Opcode(), load.Var)
	}

	in, err = lift.DecodeInstruction(code, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	store, ok := in.(lift.Store)
	if !ok {
		t.Fatalf("istore_2 decoded to %T, want lift.Store", in)
	}
	if store.Opcode() != opcode.Istore || store.Var != 2 {
		t.Fatalf("istore_2 -> Store{Op=%#02x Var=%d}, want {Istore, 2}", store.Opcode(), store.Var)
	}

	in, err = lift.DecodeInstruction(code, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := in.(lift.Return); !ok {
		t.Fatalf("areturn decoded to %T, want lift.Return", in)
	}
}

func TestDecodeInstructionExplicitIndexOperand(t *testing.T) {
	code := []byte{opcode.Iload, 7}
	in, err := lift.DecodeInstruction(code, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	load := in.(lift.Load)
	if load.Var != 7 || load.Size() != 2 {
		t.Fatalf("Load{Var=%d Size=%d}, want {7, 2}", load.Var, load.Size())
	}
}

func TestDecodeInstructionJumpOperands(t *testing.T) {
	code := []byte{opcode.Goto, 0, 10}
	in, err := lift.DecodeInstruction(code, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	j, ok := in.(lift.Jump)
	if !ok {
		t.Fatalf("goto decoded to %T, want lift.Jump", in)
	}
	off, ok := j.Target.Offset()
	if !ok || off != 10 {
		t.Fatalf("Offset() = %d, %v, want 10, true", off, ok)
	}
	if j.Size() != 3 {
		t.Fatalf("Size() = %d, want 3", j.Size())
	}
}

func TestDecodeInstructionGotoWFourByteOperand(t *testing.T) {
	code := []byte{opcode.GotoW, 0, 0, 1, 0}
	in, err := lift.DecodeInstruction(code, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	j := in.(lift.Jump)
	off, _ := j.Target.Offset()
	if off != 256 {
		t.Fatalf("Offset() = %d, want 256", off)
	}
	if j.Size() != 5 {
		t.Fatalf("Size() = %d, want 5", j.Size())
	}
}

func TestDecodeInstructionUnknownOpcode(t *testing.T) {
	code := []byte{0xfe}
	_, err := lift.DecodeInstruction(code, 0)
	if err == nil {
		t.Fatal("expected an error for an unassigned opcode byte")
	}
	var ue lift.UnknownOpcodeError
	if e, ok := err.(lift.UnknownOpcodeError); ok {
		ue = e
	} else {
		t.Fatalf("expected UnknownOpcodeError, got %T", err)
	}
	if ue.Op != 0xfe {
		t.Fatalf("Op = %#02x, want 0xfe", ue.Op)
	}
}

func TestDecodeInstructionUnsupportedOpcode(t *testing.T) {
	for _, op := range []byte{opcode.Tableswitch, opcode.Lookupswitch, opcode.Wide, opcode.Ret, opcode.Multianewarray} {
		code := []byte{op, 0, 0, 0, 0}
		_, err := lift.DecodeInstruction(code, 0)
		if _, ok := err.(lift.UnsupportedOpcodeError); !ok {
			t.Fatalf("opcode %#02x: expected UnsupportedOpcodeError, got %T (%v)", op, err, err)
		}
	}
}

func TestDecodeInstructionTruncated(t *testing.T) {
	code := []byte{opcode.Sipush, 0}
	_, err := lift.DecodeInstruction(code, 0)
	if _, ok := err.(lift.ErrTruncatedCode); !ok {
		t.Fatalf("expected ErrTruncatedCode, got %T (%v)", err, err)
	}
}

func TestDecodeInstructionInvokeinterfaceSkipsReservedBytes(t *testing.T) {
	code := []byte{opcode.Invokeinterface, 0, 5, 2, 0}
	in, err := lift.DecodeInstruction(code, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	call := in.(lift.InvokeMethod)
	if call.PoolPos != 5 {
		t.Fatalf("PoolPos = %d, want 5", call.PoolPos)
	}
	if call.Size() != 5 {
		t.Fatalf("Size() = %d, want 5", call.Size())
	}
}
