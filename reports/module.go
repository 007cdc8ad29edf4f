package reports

import (
	"os"

	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
}

func (Module) Output() Output {
	return NewOutput(os.Stdout)
}
