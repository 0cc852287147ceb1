package constgroup

import (
	"fmt"
	"reflect"
	"regexp"
)

// memberKind tags how a member's value participates in invocation dispatch.
type memberKind uint8

const (
	kindConst memberKind = iota
	kindFunc
	kindGroupFunc
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// groupParamType is the required first parameter type of a GroupFunc value.
var groupParamType = reflect.TypeOf((*Group)(nil))

// Member is a single named constant declared into a group. Members are built
// with Const, Func, or GroupFunc and carry no behavior of their own until a
// group is sealed around them.
type Member struct {
	name  string
	value any
	kind  memberKind
}

// Const declares a plain-value member. The value may be of any type,
// including a func value that should behave as an opaque constant rather
// than a callable member.
func Const(name string, value any) Member {
	return Member{name: name, value: value, kind: kindConst}
}

// Func declares a free callable member. The func is stored and exposed
// exactly as given: invoking it never receives the group implicitly.
// Static callables are declared the same way.
func Func(name string, fn any) Member {
	return Member{name: name, value: fn, kind: kindFunc}
}

// GroupFunc declares a group-bound callable member. fn must take *Group as
// its first parameter; when the group is sealed the member is exposed with
// the group pre-applied, so invoking it implicitly receives the owning group.
func GroupFunc(name string, fn any) Member {
	return Member{name: name, value: fn, kind: kindGroupFunc}
}

// Name returns the member's declared name.
func (member Member) Name() string {
	return member.name
}

// validate checks the member's name and, for callable members, its func shape.
func (member Member) validate() error {
	if !identifierPattern.MatchString(member.name) {
		return fmt.Errorf("%w: %q", ErrInvalidMemberName, member.name)
	}

	if member.kind == kindConst {
		return nil
	}

	fnVal := reflect.ValueOf(member.value)
	if !fnVal.IsValid() || fnVal.Kind() != reflect.Func || fnVal.IsNil() {
		return fmt.Errorf("%w: member %q holds %T", ErrNotAFunc, member.name, member.value)
	}

	if member.kind == kindGroupFunc {
		fnType := fnVal.Type()
		if fnType.NumIn() == 0 || fnType.In(0) != groupParamType {
			return fmt.Errorf("%w: member %q has type %s", ErrBadBoundFunc, member.name, fnType)
		}
	}

	return nil
}

// expose returns the value Group.Get hands out for this member: the declared
// value for consts and free funcs, or a closure with grp pre-applied for
// group-bound funcs. Called once per member at seal time.
func (member Member) expose(grp *Group) any {
	if member.kind != kindGroupFunc {
		return member.value
	}

	fnVal := reflect.ValueOf(member.value)
	fnType := fnVal.Type()

	in := make([]reflect.Type, 0, fnType.NumIn()-1)
	for i := 1; i < fnType.NumIn(); i++ {
		in = append(in, fnType.In(i))
	}

	out := make([]reflect.Type, 0, fnType.NumOut())
	for i := 0; i < fnType.NumOut(); i++ {
		out = append(out, fnType.Out(i))
	}

	boundType := reflect.FuncOf(in, out, fnType.IsVariadic())
	bound := reflect.MakeFunc(boundType, func(args []reflect.Value) []reflect.Value {
		full := make([]reflect.Value, 0, len(args)+1)
		full = append(full, reflect.ValueOf(grp))
		full = append(full, args...)

		// MakeFunc packs the variadic tail into a slice, so CallSlice is
		// required to forward it unexpanded.
		if fnType.IsVariadic() {
			return fnVal.CallSlice(full)
		}

		return fnVal.Call(full)
	})

	return bound.Interface()
}
