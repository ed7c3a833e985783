package taxdump

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/kgraft/pkg/errcode"
)

var errTooFewFields = errors.New("too few fields")

func ParseNodeError(line string, err error) error {
	msg := "Cannot parse nodes line <em>%s</em>"
	vars := []any{line}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ParseNodeError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot parse node %q: %w",
			fn.Name(), line, err),
	}
}

func ParseNameError(line string, err error) error {
	msg := "Cannot parse names line <em>%s</em>"
	vars := []any{line}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ParseNameError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot parse name %q: %w",
			fn.Name(), line, err),
	}
}
