package internal

import (
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	stderr io.Writer = os.Stderr
	exit             = os.Exit
)

// Fatal will Echo the message and exit with code 1.
func Fatal(msg string, args ...any) {
	Echo(msg, args...)
	exit(1)
}

// Check will call Fatal with the message and error if err is not nil.
func Check(err error, msg string, args ...any) {
	if err == nil {
		return
	}
	Fatal("%s: %v", fmt.Sprintf(msg, args...), err)
}

// Echo will emit the given message to stderr without any logging formatting.
func Echo(msg string, args ...any) {
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	_, _ = fmt.Fprintf(stderr, msg, args...)
}
