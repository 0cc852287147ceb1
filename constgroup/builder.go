package constgroup

import (
	"fmt"
	"slices"
)

// Builder accumulates member declarations and seals them into a Group.
// A Builder is single-use: after Seal succeeds, every further mutation
// fails with ErrSealed. Builders are not safe for concurrent use.
type Builder struct {
	name    string
	members []Member
	index   map[string]int
	sealed  bool
}

// NewBuilder returns a Builder for a group with the given name.
// The name is validated at Seal time.
func NewBuilder(name string) *Builder {
	return &Builder{
		name:  name,
		index: make(map[string]int),
	}
}

// Define appends a member declaration. The member is validated immediately
// so mistakes surface at the declaration site rather than at Seal.
// Returns ErrSealed if the builder has already been sealed and
// ErrDuplicateMember if the name is already declared.
func (builder *Builder) Define(member Member) error {
	if builder.sealed {
		return fmt.Errorf("%w: cannot define %q", ErrSealed, member.name)
	}

	if err := member.validate(); err != nil {
		return err
	}

	if _, exists := builder.index[member.name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateMember, member.name)
	}

	builder.index[member.name] = len(builder.members)
	builder.members = append(builder.members, member)

	return nil
}

// Remove drops a previously declared member before the builder is sealed.
// Returns ErrSealed after Seal and ErrUndefinedMember if the name was
// never declared.
func (builder *Builder) Remove(name string) error {
	if builder.sealed {
		return fmt.Errorf("%w: cannot remove %q", ErrSealed, name)
	}

	pos, exists := builder.index[name]
	if !exists {
		return fmt.Errorf("%w: %q", ErrUndefinedMember, name)
	}

	builder.members = slices.Delete(builder.members, pos, pos+1)
	delete(builder.index, name)

	for memberName, memberPos := range builder.index {
		if memberPos > pos {
			builder.index[memberName] = memberPos - 1
		}
	}

	return nil
}

// Seal freezes the declared members into an immutable Group. The transition
// is one-way and atomic: on success the builder refuses all further
// mutation, and the returned Group exposes no write path at all.
// A second Seal fails with ErrSealed.
func (builder *Builder) Seal() (*Group, error) {
	if builder.sealed {
		return nil, fmt.Errorf("%w: %q already sealed", ErrSealed, builder.name)
	}

	if !identifierPattern.MatchString(builder.name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidGroupName, builder.name)
	}

	grp := &Group{
		name:    builder.name,
		members: slices.Clone(builder.members),
		index:   make(map[string]int, len(builder.members)),
		sealed:  true,
	}

	grp.exposed = make([]any, len(grp.members))
	for pos, member := range grp.members {
		grp.index[member.name] = pos
		grp.exposed[pos] = member.expose(grp)
	}

	builder.sealed = true

	return grp, nil
}

// Declare builds and seals a group in one call, in declaration order.
//
// Example:
//
//	Status, err := constgroup.Declare("Status",
//	    constgroup.Const("Active", "active"),
//	    constgroup.Const("Inactive", "inactive"),
//	)
func Declare(name string, members ...Member) (*Group, error) {
	builder := NewBuilder(name)

	for _, member := range members {
		if err := builder.Define(member); err != nil {
			return nil, err
		}
	}

	return builder.Seal()
}

// MustDeclare is Declare for package-variable declarations of well-known
// groups; it panics on any declaration error.
func MustDeclare(name string, members ...Member) *Group {
	grp, err := Declare(name, members...)
	if err != nil {
		panic(err)
	}

	return grp
}
