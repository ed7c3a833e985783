package graft

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/kgraft/pkg/ent/rank"
	"github.com/gnames/kgraft/pkg/errcode"
)

func MissingRequiredArgumentError(missing, given string) error {
	msg := "Option <em>%s</em> is required when <em>%s</em> is given"
	vars := []any{missing, given}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.MissingRequiredArgumentError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: %s requires %s",
			fn.Name(), given, missing),
	}
}

func InvalidParentRankError(r string) error {
	msg := "New parent rank <em>%s</em> is not usable, " +
		"choose one of: %s"
	usable := rank.Hierarchy[:len(rank.Hierarchy)-1]
	vars := []any{r, strings.Join(usable, ", ")}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.InvalidParentRankError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: invalid parent rank '%s'",
			fn.Name(), r),
	}
}

func InvalidLabelError(label string) error {
	msg := "New parent name <em>%q</em> cannot contain tabs, " +
		"line breaks or '|'"
	vars := []any{label}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.InvalidLabelError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: invalid label %q",
			fn.Name(), label),
	}
}

func RootNotFoundError(id int) error {
	msg := "Root taxon ID <em>%d</em> is not found in nodes"
	vars := []any{id}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.RootNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: root %d not found",
			fn.Name(), id),
	}
}

func InvalidSequenceIDError(id string) error {
	msg := "Sequence ID <em>%q</em> is empty or has whitespace or '|'"
	vars := []any{id}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.InvalidSequenceIDError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: invalid sequence ID %q",
			fn.Name(), id),
	}
}

func DuplicateSequenceIDError(id string) error {
	msg := "Sequence ID <em>%s</em> occurs more than once"
	vars := []any{id}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DuplicateSequenceIDError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: duplicate sequence ID %q",
			fn.Name(), id),
	}
}
