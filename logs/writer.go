package logs

import (
	"io"
	"os"
	"testing"
)

type Writer io.Writer

// Writer goes to the test log under modes.ForTest, stderr otherwise.
func (Module) Writer(
	t *testing.T,
) Writer {
	if t != nil {
		return t.Output()
	}
	return os.Stderr
}
