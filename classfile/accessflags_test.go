package classfile_test

import (
	"testing"

	"github.com/go-interpreter/classlift/classfile"
)

func TestParseClassUnknownAccessFlag(t *testing.T) {
	data := minimalClass()
	// access_flags field starts right after the two-entry pool; patch the
	// low byte to set a bit outside classFlagsMask (0x0040 is AccVolatile,
	// never valid at class level).
	for i := range data {
		if i+1 < len(data) && data[i] == 0x00 && data[i+1] == 0x21 {
			data[i+1] = 0x61
			break
		}
	}
	_, err := classfile.ParseClass(data, classfile.Options{})
	if err == nil {
		t.Fatal("expected an UnknownAccessFlagsError")
	}
	var ue classfile.UnknownAccessFlagsError
	if uerr, ok := err.(classfile.UnknownAccessFlagsError); ok {
		ue = uerr
	} else {
		t.Fatalf("expected UnknownAccessFlagsError, got %T: %v", err, err)
	}
	if ue.Context != "class" {
		t.Fatalf("Context = %q, want \"class\"", ue.Context)
	}
}
