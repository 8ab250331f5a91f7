package types

// Stage is a state of the submission state machine.
type Stage int

const (
	StageBuilt Stage = iota
	StageAutofilled
	StageSigned
	StageSubmitted
	StageConfirmed
	StageErrored
)

var stageNames = map[Stage]string{
	StageBuilt:      "built",
	StageAutofilled: "autofilled",
	StageSigned:     "signed",
	StageSubmitted:  "submitted",
	StageConfirmed:  "confirmed",
	StageErrored:    "errored",
}

// String returns the lower case name of the stage.
func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}

	return "unknown"
}
