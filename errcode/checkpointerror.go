package errcode

import "fmt"

type CheckpointErr int

const (
	ErrCheckpointVersion CheckpointErr = CheckpointErrorBase + iota
	ErrCheckpointDuplicate
	ErrCheckpointHash
	ErrCheckpointHeight

	ErrorNotExistsInCheckpointMap
)

var checkpointErrString = map[CheckpointErr]string{
	ErrCheckpointVersion:   "unsupported checkpoint table version",
	ErrCheckpointDuplicate: "duplicate checkpoint height",
	ErrCheckpointHash:      "malformed checkpoint hash",
	ErrCheckpointHeight:    "negative checkpoint height",
}

func (ce CheckpointErr) String() string {
	if s, ok := checkpointErrString[ce]; ok {
		return s
	}
	return fmt.Sprintf("Unknown code (%d)", ce)
}
