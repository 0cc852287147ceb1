package constgroup

import (
	"fmt"
	"iter"
	"reflect"
)

// Group is a sealed, immutable, ordered set of named constants. Usable
// groups come only from Declare or Builder.Seal; a Group obtained any other
// way (the zero value in particular) fails every operation with
// ErrUndeclaredGroup. Groups exist purely as namespace values: there is no
// instance lifecycle and no write path after sealing, so a Group may be read
// concurrently without synchronization.
type Group struct {
	name    string
	members []Member
	exposed []any
	index   map[string]int
	sealed  bool
}

// guard rejects groups that were not produced by this package.
func (grp *Group) guard() error {
	if grp == nil || !grp.sealed {
		return ErrUndeclaredGroup
	}

	return nil
}

// Name returns the group's declared name.
func (grp *Group) Name() string {
	if grp == nil {
		return ""
	}

	return grp.name
}

// Len returns the number of declared members.
func (grp *Group) Len() int {
	if grp.guard() != nil {
		return 0
	}

	return len(grp.members)
}

// Get returns the value of the named member. Group-bound callables are
// returned with the group pre-applied; every other value is returned
// exactly as declared. Returns ErrUndefinedMember if the name was never
// declared.
func (grp *Group) Get(name string) (any, error) {
	if err := grp.guard(); err != nil {
		return nil, err
	}

	pos, exists := grp.index[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s.%s", ErrUndefinedMember, grp.name, name)
	}

	return grp.exposed[pos], nil
}

// MustGet is Get but panics on error. Intended for call sites that reference
// members by names known to be declared.
func (grp *Group) MustGet(name string) any {
	value, err := grp.Get(name)
	if err != nil {
		panic(err)
	}

	return value
}

// Lookup returns the value of the named member and whether it exists.
func (grp *Group) Lookup(name string) (any, bool) {
	value, err := grp.Get(name)

	return value, err == nil
}

// Contains reports whether value equals at least one member's value.
// Equality follows memberValueEqual: decimal.Decimal members compare with
// Equal, callable members compare by identity, and everything else by
// reflect.DeepEqual. Contains never fails; it is false on an undeclared group.
func (grp *Group) Contains(value any) bool {
	if grp.guard() != nil {
		return false
	}

	for _, exposed := range grp.exposed {
		if memberValueEqual(exposed, value) {
			return true
		}
	}

	return false
}

// Values returns a lazy, restartable iterator over member values in
// declaration order. Each ranging pass yields the identical sequence.
// Duplicate values across distinct names each contribute their value.
func (grp *Group) Values() iter.Seq[any] {
	return func(yield func(any) bool) {
		if grp.guard() != nil {
			return
		}

		for _, exposed := range grp.exposed {
			if !yield(exposed) {
				return
			}
		}
	}
}

// All returns a lazy, restartable iterator over (name, value) pairs in
// declaration order.
func (grp *Group) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if grp.guard() != nil {
			return
		}

		for pos, member := range grp.members {
			if !yield(member.name, grp.exposed[pos]) {
				return
			}
		}
	}
}

// Names returns the member names in declaration order. The returned slice
// is a copy; mutating it does not affect the group.
func (grp *Group) Names() []string {
	if grp.guard() != nil {
		return nil
	}

	names := make([]string, len(grp.members))
	for pos, member := range grp.members {
		names[pos] = member.name
	}

	return names
}

// Call invokes the named callable member with args and returns its results.
// Dispatch branches on the member's declaration: a Func member is invoked
// exactly as declared, a GroupFunc member receives the group as its implicit
// first argument, and a Const member fails with ErrNotCallable. Argument
// count or type mismatches fail with ErrBadArguments.
func (grp *Group) Call(name string, args ...any) ([]any, error) {
	if err := grp.guard(); err != nil {
		return nil, err
	}

	pos, exists := grp.index[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s.%s", ErrUndefinedMember, grp.name, name)
	}

	member := grp.members[pos]
	if member.kind == kindConst {
		return nil, fmt.Errorf("%w: %s.%s", ErrNotCallable, grp.name, name)
	}

	return grp.invoke(name, reflect.ValueOf(member.value), member.kind == kindGroupFunc, args)
}

func (grp *Group) invoke(name string, fnVal reflect.Value, bound bool, args []any) ([]any, error) {
	fnType := fnVal.Type()

	in := make([]reflect.Value, 0, len(args)+1)
	if bound {
		in = append(in, reflect.ValueOf(grp))
	}

	declared := fnType.NumIn() - len(in)
	if fnType.IsVariadic() {
		if len(args) < declared-1 {
			return nil, fmt.Errorf("%w: %s.%s wants at least %d args, got %d",
				ErrBadArguments, grp.name, name, declared-1, len(args))
		}
	} else if len(args) != declared {
		return nil, fmt.Errorf("%w: %s.%s wants %d args, got %d",
			ErrBadArguments, grp.name, name, declared, len(args))
	}

	for _, arg := range args {
		argVal, err := conformArg(fnType, len(in), arg)
		if err != nil {
			return nil, fmt.Errorf("%w: %s.%s: %v", ErrBadArguments, grp.name, name, err)
		}

		in = append(in, argVal)
	}

	results := fnVal.Call(in)

	out := make([]any, len(results))
	for i, result := range results {
		out[i] = result.Interface()
	}

	return out, nil
}

// conformArg converts arg into a reflect.Value assignable to the parameter
// at position pos, resolving variadic tail parameters to their element type.
func conformArg(fnType reflect.Type, pos int, arg any) (reflect.Value, error) {
	paramType := fnType.In(min(pos, fnType.NumIn()-1))
	if fnType.IsVariadic() && pos >= fnType.NumIn()-1 {
		paramType = fnType.In(fnType.NumIn() - 1).Elem()
	}

	if arg == nil {
		switch paramType.Kind() {
		case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
			reflect.Pointer, reflect.Slice:
			return reflect.Zero(paramType), nil
		default:
			return reflect.Value{}, fmt.Errorf("nil is not assignable to %s", paramType)
		}
	}

	argVal := reflect.ValueOf(arg)
	if !argVal.Type().AssignableTo(paramType) {
		return reflect.Value{}, fmt.Errorf("%s is not assignable to %s", argVal.Type(), paramType)
	}

	return argVal, nil
}
