package errcode

import "fmt"

// RejectCode represents a numeric value by which a remote peer indicates
// why a message was rejected.
type RejectCode uint8

// These constants define the various supported reject codes.
const (
	RejectMalformed  RejectCode = 0x01
	RejectInvalid    RejectCode = 0x10
	RejectObsolete   RejectCode = 0x11
	RejectDuplicate  RejectCode = 0x12
	RejectCheckpoint RejectCode = 0x43
)

// Map of reject codes back strings for pretty printing.
var rejectCodeStrings = map[RejectCode]string{
	RejectMalformed:  "REJECT_MALFORMED",
	RejectInvalid:    "REJECT_INVALID",
	RejectObsolete:   "REJECT_OBSOLETE",
	RejectDuplicate:  "REJECT_DUPLICATE",
	RejectCheckpoint: "REJECT_CHECKPOINT",
}

// String returns the RejectCode in human-readable form.
func (code RejectCode) String() string {
	if s, ok := rejectCodeStrings[code]; ok {
		return s
	}

	return fmt.Sprintf("Unknown RejectCode (%d)", uint8(code))
}
