package errcode

import "fmt"

type ChainErr int

const (
	ErrorBlockHeaderNoValid ChainErr = ChainErrorBase + iota
	ErrorBlockHeaderNoParent
	ErrorBlockAlreadyExists
	ErrorPowCheckErr
	ErrorBadDiffBits
	ErrorCheckpointMismatch
	ErrorCheckpointTimestamp
	ErrorMinWork

	ErrorNotExistsInChainMap
)

var ChainErrString = map[ChainErr]string{
	ErrorBlockHeaderNoValid:  "The block header is not valid",
	ErrorBlockHeaderNoParent: "Can not find this block header's father",
	ErrorBlockAlreadyExists:  "block already exists",
	ErrorPowCheckErr:         "ErrorPowCheckErr",
	ErrorBadDiffBits:         "incorrect proof of work",
	ErrorCheckpointMismatch:  "checkpoint mismatch",
	ErrorCheckpointTimestamp: "block with timestamp before last checkpoint",
	ErrorMinWork:             "block with too little proof-of-work",
}

func (chainerr ChainErr) String() string {
	if s, ok := ChainErrString[chainerr]; ok {
		return s
	}
	return fmt.Sprintf("Unknown code (%d)", chainerr)
}
