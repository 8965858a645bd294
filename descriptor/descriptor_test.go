package descriptor_test

import (
	"testing"

	"github.com/go-interpreter/classlift/descriptor"
)

func TestParseField(t *testing.T) {
	tests := []struct {
		in   string
		kind descriptor.Kind
	}{
		{"I", descriptor.KindInt},
		{"Z", descriptor.KindBoolean},
		{"J", descriptor.KindLong},
		{"D", descriptor.KindDouble},
		{"[I", descriptor.KindArray},
		{"[[Ljava/lang/String;", descriptor.KindArray},
		{"Ljava/lang/String;", descriptor.KindClass},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := descriptor.ParseField(tt.in)
			if err != nil {
				t.Fatalf("ParseField(%q) error: %v", tt.in, err)
			}
			if got.Kind != tt.kind {
				t.Fatalf("ParseField(%q).Kind = %v, want %v", tt.in, got.Kind, tt.kind)
			}
		})
	}
}

func TestParseFieldArrayString(t *testing.T) {
	got, err := descriptor.ParseField("[I")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "int[]" {
		t.Fatalf("String() = %q, want \"int[]\"", got.String())
	}
}

func TestParseFieldInvalid(t *testing.T) {
	_, err := descriptor.ParseField("Q")
	if err == nil {
		t.Fatal("expected an error for an unrecognized type tag")
	}
	var ed descriptor.ErrInvalidDescriptor
	if e, ok := err.(descriptor.ErrInvalidDescriptor); ok {
		ed = e
	} else {
		t.Fatalf("expected ErrInvalidDescriptor, got %T", err)
	}
	if ed.Descriptor != "Q" {
		t.Fatalf("Descriptor = %q, want \"Q\"", ed.Descriptor)
	}
}

func TestParseMethod(t *testing.T) {
	mt, err := descriptor.ParseMethod("(ILjava/lang/String;[D)Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mt.Params) != 3 {
		t.Fatalf("len(Params) = %d, want 3", len(mt.Params))
	}
	if mt.Params[0].Kind != descriptor.KindInt {
		t.Fatalf("Params[0].Kind = %v, want KindInt", mt.Params[0].Kind)
	}
	if mt.Params[1].Kind != descriptor.KindClass || mt.Params[1].BinaryName != "java/lang/String" {
		t.Fatalf("Params[1] = %+v, want class java/lang/String", mt.Params[1])
	}
	if mt.Params[2].Kind != descriptor.KindArray || mt.Params[2].Component.Kind != descriptor.KindDouble {
		t.Fatalf("Params[2] = %+v, want array of double", mt.Params[2])
	}
	if mt.ReturnType.Kind != descriptor.KindBoolean {
		t.Fatalf("ReturnType = %+v, want boolean", mt.ReturnType)
	}
}

func TestParseMethodVoidNoArgs(t *testing.T) {
	mt, err := descriptor.ParseMethod("()V")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mt.Params) != 0 {
		t.Fatalf("len(Params) = %d, want 0", len(mt.Params))
	}
	if mt.ReturnType.Kind != descriptor.KindVoid {
		t.Fatalf("ReturnType = %+v, want void", mt.ReturnType)
	}
}

func TestParseMethodMissingParen(t *testing.T) {
	_, err := descriptor.ParseMethod("IV")
	if err == nil {
		t.Fatal("expected an error for a method descriptor missing its leading '('")
	}
}
