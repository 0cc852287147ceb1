package constgroup

import "errors"

var (
	// ErrSealed is returned when a Builder is mutated after Seal.
	ErrSealed = errors.New("constants group is sealed")
	// ErrUndeclaredGroup is returned when operating on a Group that was not
	// produced by Declare or Builder.Seal, such as the zero value.
	ErrUndeclaredGroup = errors.New("constants group was not declared")
	// ErrUndefinedMember is returned when looking up a name that was never declared.
	ErrUndefinedMember = errors.New("undefined constants group member")
	// ErrDuplicateMember is returned when two members are declared with the same name.
	ErrDuplicateMember = errors.New("duplicate constants group member")
	// ErrInvalidGroupName is returned when a group name is empty or not identifier-shaped.
	ErrInvalidGroupName = errors.New("invalid constants group name")
	// ErrInvalidMemberName is returned when a member name is empty or not identifier-shaped.
	ErrInvalidMemberName = errors.New("invalid constants group member name")
	// ErrNotAFunc is returned when a Func or GroupFunc member holds a value
	// that is not a non-nil func.
	ErrNotAFunc = errors.New("member value is not a func")
	// ErrBadBoundFunc is returned when a GroupFunc member's first parameter
	// is not *Group.
	ErrBadBoundFunc = errors.New("group-bound func must take *Group as its first parameter")
	// ErrNotCallable is returned by Call when the member holds a plain value.
	ErrNotCallable = errors.New("constants group member is not callable")
	// ErrBadArguments is returned by Call when the supplied arguments do not
	// match the member func's signature.
	ErrBadArguments = errors.New("bad arguments for constants group member call")
)
