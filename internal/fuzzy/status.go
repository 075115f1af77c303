package fuzzy

// Status is the parsing status of a rule.
type Status int

const (
	// StatusIdle means the rule was not parsed yet.
	StatusIdle Status = iota
	// StatusDone means the rule was parsed successfully.
	StatusDone
	// StatusErroneous means parsing the rule failed.
	StatusErroneous
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "IDLE"
	case StatusDone:
		return "DONE"
	case StatusErroneous:
		return "ERRONEOUS"
	default:
		return "UNKNOWN"
	}
}
