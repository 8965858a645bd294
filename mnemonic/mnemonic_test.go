package mnemonic_test

import (
	"testing"

	"github.com/go-interpreter/classlift/mnemonic"
	"github.com/go-interpreter/classlift/opcode"
)

func TestNameKnownOpcodes(t *testing.T) {
	tests := []struct {
		op   opcode.Op
		want string
	}{
		{opcode.Nop, "nop"},
		{opcode.Iadd, "iadd"},
		{opcode.Iload0, "iload_0"},
		{opcode.Aload3, "aload_3"},
		{opcode.Invokedynamic, "invokedynamic"},
		{opcode.GotoW, "goto_w"},
	}
	for _, tt := range tests {
		if got := mnemonic.Name(tt.op); got != tt.want {
			t.Errorf("Name(%#02x) = %q, want %q", tt.op, got, tt.want)
		}
	}
}

func TestNameUnknownOpcode(t *testing.T) {
	got := mnemonic.Name(0xfe)
	want := "unknown_0xfe"
	if got != want {
		t.Errorf("Name(0xfe) = %q, want %q", got, want)
	}
}
