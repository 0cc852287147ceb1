package constgroup

import (
	"reflect"

	"github.com/shopspring/decimal"
)

// memberValueEqual is the equality relation behind Contains.
//
// decimal.Decimal values compare with Equal because reflect.DeepEqual
// distinguishes equal decimals carrying different exponents (1.5 vs 1.50).
// Func values are not comparable in Go, so callable members compare by type
// plus code pointer identity, which holds exactly for values handed out by
// Get. The type check matters: closures produced by reflect.MakeFunc share a
// trampoline code pointer, so bound callables from unrelated groups would
// otherwise alias. Everything else compares with reflect.DeepEqual.
func memberValueEqual(member, candidate any) bool {
	if memberDec, ok := member.(decimal.Decimal); ok {
		candidateDec, ok := candidate.(decimal.Decimal)

		return ok && memberDec.Equal(candidateDec)
	}

	memberVal := reflect.ValueOf(member)
	candidateVal := reflect.ValueOf(candidate)

	if isFunc(memberVal) || isFunc(candidateVal) {
		return isFunc(memberVal) && isFunc(candidateVal) &&
			memberVal.Type() == candidateVal.Type() &&
			memberVal.Pointer() == candidateVal.Pointer()
	}

	return reflect.DeepEqual(member, candidate)
}

func isFunc(val reflect.Value) bool {
	return val.IsValid() && val.Kind() == reflect.Func
}
