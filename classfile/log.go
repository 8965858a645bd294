package classfile

import (
	"io"
	"log"
	"os"
)

// PrintDebugInfo toggles whether package log output goes to stderr.
var PrintDebugInfo = false

var logger *log.Logger

func init() {
	w := io.Discard

	if PrintDebugInfo {
		w = os.Stderr
	}

	logger = log.New(w, "classfile: ", log.Lshortfile)
}

// SetDebugMode enables or disables verbose logging for the classfile package.
func SetDebugMode(v bool) {
	PrintDebugInfo = v
	w := io.Discard
	if v {
		w = os.Stderr
	}
	logger = log.New(w, "classfile: ", log.Lshortfile)
}
