package batch

// Stage selects which edits a run applies
type Stage int

const (
	// StageDeclarations inserts the shared import and removes the inline definition
	StageDeclarations Stage = 1 << iota
	// StageCalls normalizes call-site arguments
	StageCalls
	AllStages = StageDeclarations | StageCalls
)

// Has returns true if s includes stage
func (s Stage) Has(stage Stage) bool {
	return s&stage != 0
}

// Title returns the banner printed at the start of a run
func (s Stage) Title(config *Config) string {
	switch s {
	case StageDeclarations:
		return "Replacing inline " + config.Call.Name + " functions with shared utilities"
	case StageCalls:
		return "Updating " + config.Call.Name + " calls with canonical arguments"
	default:
		return "Migrating " + config.Call.Name + " to shared utilities"
	}
}

// State represents a file's position in the rewrite lifecycle
type State int

const (
	Pending State = iota
	Loaded
	Written
	Skipped
	Failed
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Loaded:
		return "loaded"
	case Written:
		return "written"
	case Skipped:
		return "skipped"
	case Failed:
		return "failed"
	}
	return "unknown"
}
