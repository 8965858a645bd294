package lift_test

import (
	"reflect"
	"testing"

	"github.com/go-interpreter/classlift/classfile"
	"github.com/go-interpreter/classlift/lift"
	"github.com/go-interpreter/classlift/opcode"
)

// ifElseCode builds:
//
//	0: iload_0
//	1: ifeq -> 8           (3 bytes)
//	4: iconst_1
//	5: goto -> 9           (3 bytes)
//	8: iconst_0
//	9: ireturn
func ifElseCode() []byte {
	code := make([]byte, 10)
	code[0] = opcode.Iload0
	code[1] = opcode.Ifeq
	code[2], code[3] = 0, 7 // offset 7 from byte 1 -> byte 8
	code[4] = opcode.Iconst1
	code[5] = opcode.Goto
	code[6], code[7] = 0, 4 // offset 4 from byte 5 -> byte 9
	code[8] = opcode.Iconst0
	code[9] = opcode.Ireturn
	return code
}

func TestLiftCodeConditionalCFG(t *testing.T) {
	c, err := lift.LiftCode(&classfile.CodeAttribute{Code: ifElseCode()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(c.Instructions) != 6 {
		t.Fatalf("len(Instructions) = %d, want 6", len(c.Instructions))
	}
	if len(c.Blocks) != 4 {
		t.Fatalf("len(Blocks) = %d, want 4, got %+v", len(c.Blocks), c.Blocks)
	}

	wantRanges := [][2]int{{0, 2}, {2, 4}, {4, 5}, {5, 6}}
	for i, b := range c.Blocks {
		if b.Start != wantRanges[i][0] || b.End != wantRanges[i][1] {
			t.Fatalf("block %d = [%d,%d), want [%d,%d)", i, b.Start, b.End, wantRanges[i][0], wantRanges[i][1])
		}
	}

	if c.Blocks[0].Exit.Kind != lift.ExitBranch || !reflect.DeepEqual(c.Blocks[0].Exit.Targets, []int{2, 1}) {
		t.Fatalf("block 0 exit = %+v, want Branch[2,1]", c.Blocks[0].Exit)
	}
	if c.Blocks[1].Exit.Kind != lift.ExitJump || !reflect.DeepEqual(c.Blocks[1].Exit.Targets, []int{3}) {
		t.Fatalf("block 1 exit = %+v, want Jump[3]", c.Blocks[1].Exit)
	}
	if c.Blocks[2].Exit.Kind != lift.ExitFallthrough || !reflect.DeepEqual(c.Blocks[2].Exit.Targets, []int{3}) {
		t.Fatalf("block 2 exit = %+v, want Fallthrough[3]", c.Blocks[2].Exit)
	}
	if c.Blocks[3].Exit.Kind != lift.ExitReturn {
		t.Fatalf("block 3 exit = %+v, want Return", c.Blocks[3].Exit)
	}

	// Every successor records this block as a predecessor, and vice versa.
	for bi, b := range c.Blocks {
		for _, succ := range b.Exit.Targets {
			found := false
			for _, p := range c.Blocks[succ].Preds {
				if p == bi {
					found = true
				}
			}
			if !found {
				t.Fatalf("block %d -> %d not reflected in block %d's Preds %v", bi, succ, succ, c.Blocks[succ].Preds)
			}
		}
	}
}

func TestLiftCodeJumpOutOfRange(t *testing.T) {
	code := []byte{opcode.Goto, 0x7F, 0xFF, opcode.Return}
	_, err := lift.LiftCode(&classfile.CodeAttribute{Code: code})
	if _, ok := err.(lift.JumpOutOfRangeError); !ok {
		t.Fatalf("expected JumpOutOfRangeError, got %T (%v)", err, err)
	}
}

func TestLiftCodeStraightLine(t *testing.T) {
	code := []byte{opcode.Iconst1, opcode.Iconst2, opcode.Iadd, opcode.Ireturn}
	c, err := lift.LiftCode(&classfile.CodeAttribute{Code: code})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.Blocks) != 1 {
		t.Fatalf("len(Blocks) = %d, want 1 for a method with no branches", len(c.Blocks))
	}
	if c.Blocks[0].Exit.Kind != lift.ExitReturn {
		t.Fatalf("exit = %+v, want Return", c.Blocks[0].Exit)
	}
}

func TestLiftMethodNoCode(t *testing.T) {
	m := &classfile.MethodInfo{AccessFlags: classfile.AccAbstract}
	_, hasCode, err := lift.LiftMethod(&classfile.ClassFile{}, m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hasCode {
		t.Fatal("expected hasCode = false for a method with no Code attribute")
	}
}
