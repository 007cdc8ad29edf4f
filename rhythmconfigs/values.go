package rhythmconfigs

import (
	"runtime"

	"github.com/reusee/nibblers/cmds"
	"github.com/reusee/nibblers/configs"
	"github.com/reusee/nibblers/vars"
)

const (
	DefaultIterations = 32
	DefaultRepeat     = 10
)

type Iterations int

var iterationsFlag = cmds.Var[int]("-iterations", "loop iterations to simulate")

func (Module) Iterations(
	loader configs.Loader,
) Iterations {
	return Iterations(vars.FirstNonZero(
		vars.DerefOrZero(iterationsFlag),
		configs.First[int](loader, "iterations"),
		DefaultIterations,
	))
}

// Repeat is how many times a loop body is repeated before matching.
type Repeat int

var repeatFlag = cmds.Var[int]("-repeat", "loop body repetitions before matching")

func (Module) Repeat(
	loader configs.Loader,
) Repeat {
	return Repeat(vars.FirstNonZero(
		vars.DerefOrZero(repeatFlag),
		configs.First[int](loader, "repeat"),
		DefaultRepeat,
	))
}

type StrictOrder bool

var strictOrderFlag = cmds.Switch("-strict-order", "match the target exactly once per loop body")

func (Module) StrictOrder(
	loader configs.Loader,
) StrictOrder {
	return StrictOrder(vars.DerefOrZero(strictOrderFlag) || configs.First[bool](loader, "strict_order"))
}

type StrictLength bool

var strictLengthFlag = cmds.Switch("-strict-length", "require the target length to be a multiple of the loop length")

func (Module) StrictLength(
	loader configs.Loader,
) StrictLength {
	return StrictLength(vars.DerefOrZero(strictLengthFlag) || configs.First[bool](loader, "strict_length"))
}

type Restriction string

var restrictionFlag = cmds.Var[string]("-restrict", "sequences allowed to match: any, aux, carry-a, carries, skip-carry-b")

func (Module) Restriction(
	loader configs.Loader,
) Restriction {
	return Restriction(vars.FirstNonZero(
		vars.DerefOrZero(restrictionFlag),
		configs.First[string](loader, "restriction"),
		"any",
	))
}

type AuxMode string

var auxModeFlag = cmds.Var[string]("-aux", "aux transform: raw, trigger, every-other")

func (Module) AuxMode(
	loader configs.Loader,
) AuxMode {
	return AuxMode(vars.FirstNonZero(
		vars.DerefOrZero(auxModeFlag),
		configs.First[string](loader, "aux_mode"),
		"raw",
	))
}

type Workers int

var workersFlag = cmds.Var[int]("-workers", "concurrent sweep workers")

func (Module) Workers(
	loader configs.Loader,
) Workers {
	return Workers(vars.FirstNonZero(
		vars.DerefOrZero(workersFlag),
		configs.First[int](loader, "workers"),
		runtime.GOMAXPROCS(0),
	))
}

// Targets are pattern or set names; -target flags replace the lists from
// config files.
type Targets []string

var targetsFlag = cmds.Collect[string]("-target", "pattern, set, or bit string to match")

func (Module) Targets(
	loader configs.Loader,
) Targets {
	if len(*targetsFlag) > 0 {
		return *targetsFlag
	}
	if targets := configs.Concat[string](loader, "targets"); len(targets) > 0 {
		return targets
	}
	return Targets{"son"}
}

type MatchThreshold int

var matchThresholdFlag = cmds.Var[int]("-threshold", "targets a combination must match to seed a cluster")

func (Module) MatchThreshold(
	loader configs.Loader,
) MatchThreshold {
	return MatchThreshold(vars.FirstNonZero(
		vars.DerefOrZero(matchThresholdFlag),
		configs.First[int](loader, "clustering.match_threshold"),
		1,
	))
}

type StrictSetMatch bool

var strictSetMatchFlag = cmds.Switch("-strict-set", "cluster only on a variable every target differs by")

func (Module) StrictSetMatch(
	loader configs.Loader,
) StrictSetMatch {
	return StrictSetMatch(vars.DerefOrZero(strictSetMatchFlag) || configs.First[bool](loader, "clustering.strict_set_match"))
}
