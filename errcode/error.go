package errcode

import (
	"fmt"

	"github.com/pkg/errors"
)

const (
	ChainErrorBase = (iota + 1) * 1000
	PowErrorBase
	CheckpointErrorBase
	ConfErrorBase
)

type ProjectError struct {
	Module string
	Code   int
	Desc   string

	reject    RejectCode
	hasReject bool
}

func (e ProjectError) Error() string {
	return fmt.Sprintf("module: %s, global errcode: %v,  desc: %s", e.Module, e.Code, e.Desc)
}

func getCodeAndName(errCode fmt.Stringer) (int, string) {
	code := 0
	name := ""

	switch t := errCode.(type) {
	case ChainErr:
		code = int(t)
		name = "chain"
	case PowErr:
		code = int(t)
		name = "pow"
	case CheckpointErr:
		code = int(t)
		name = "checkpoint"
	case ConfErr:
		code = int(t)
		name = "conf"
	case RejectCode:
		code = int(t)
		name = "reject"
	default:
	}

	return code, name
}

// IsErrorCode reports whether err, or the error it wraps, carries errCode.
func IsErrorCode(err error, errCode fmt.Stringer) bool {
	e, ok := errors.Cause(err).(ProjectError)
	icode, name := getCodeAndName(errCode)
	return ok && icode == e.Code && name == e.Module
}

func New(errCode fmt.Stringer) error {
	code, name := getCodeAndName(errCode)

	return ProjectError{
		Module: name,
		Code:   code,
		Desc:   errCode.String(),
	}
}

// NewWithReject builds a ProjectError that also tells the caller which
// reject code to send to the peer that relayed the offending block.
func NewWithReject(errCode fmt.Stringer, reject RejectCode) error {
	err := New(errCode).(ProjectError)
	err.reject = reject
	err.hasReject = true
	return err
}

func HasRejectCode(err error) (RejectCode, bool) {
	e, ok := errors.Cause(err).(ProjectError)
	if !ok {
		return 0, false
	}
	if e.hasReject {
		return e.reject, true
	}
	if e.Module == "reject" {
		return RejectCode(e.Code), true
	}
	return 0, false
}
