package lift_test

import (
	"testing"

	"github.com/go-interpreter/classlift/lift"
)

func TestJumpTargetOffsetBeforeResolve(t *testing.T) {
	jt := lift.NewJumpTarget(-5)
	off, ok := jt.Offset()
	if !ok || off != -5 {
		t.Fatalf("Offset() = %d, %v, want -5, true", off, ok)
	}
	if _, ok := jt.Index(); ok {
		t.Fatal("Index() reported resolved before Resolve was called")
	}
}

func TestJumpTargetResolve(t *testing.T) {
	jt := lift.NewJumpTarget(12)
	jt.Resolve(3)
	idx, ok := jt.Index()
	if !ok || idx != 3 {
		t.Fatalf("Index() = %d, %v, want 3, true", idx, ok)
	}
	if _, ok := jt.Offset(); ok {
		t.Fatal("Offset() reported unresolved after Resolve was called")
	}
}
