package errcode

import "fmt"

type ConfErr int

const (
	ErrConfNetwork ConfErr = ConfErrorBase + iota
	ErrConfLogLevel
	ErrConfUnknownNetwork
)

var confErrString = map[ConfErr]string{
	ErrConfNetwork:        "testnet and regtest are mutually exclusive",
	ErrConfLogLevel:       "unknown log level",
	ErrConfUnknownNetwork: "unknown network name",
}

func (ce ConfErr) String() string {
	if s, ok := confErrString[ce]; ok {
		return s
	}
	return fmt.Sprintf("Unknown code (%d)", ce)
}
