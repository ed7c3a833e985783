package rank

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/kgraft/pkg/errcode"
)

func RankExhaustedError(r string) error {
	msg := "Rank <em>%s</em> is too low, no ranks are available beneath it"
	vars := []any{r}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.RankExhaustedError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: no rank below '%s'",
			fn.Name(), r),
	}
}

func UnknownRankError(r string) error {
	msg := "Rank <em>%s</em> is not one of: %s"
	vars := []any{r, strings.Join(Hierarchy, ", ")}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.UnknownRankError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: unknown rank '%s'",
			fn.Name(), r),
	}
}
