package errcode

import "fmt"

type PowErr int

const (
	ErrCompactOverflow PowErr = PowErrorBase + iota
	ErrCompactNegative
	ErrBadSchedule
	ErrUnknownAlgo

	ErrorNotExistsInPowMap
)

var powErrString = map[PowErr]string{
	ErrCompactOverflow: "compact target exponent overflows 256 bits",
	ErrCompactNegative: "compact target is negative",
	ErrBadSchedule:     "difficulty activation table is not ascending from height 0",
	ErrUnknownAlgo:     "unknown difficulty algorithm",
}

func (pe PowErr) String() string {
	if s, ok := powErrString[pe]; ok {
		return s
	}
	return fmt.Sprintf("Unknown code (%d)", pe)
}
