// Package constgroup provides immutable, ordered groups of named constants.
//
// A Group is a closed enumeration namespace: its members are declared exactly
// once, can be looked up by name, tested for membership by value, and iterated
// in declaration order. Once sealed, a group can never gain, lose, or change a
// member.
//
// Declare a group in one shot:
//
//	Status, err := constgroup.Declare("Status",
//	    constgroup.Const("Active", "active"),
//	    constgroup.Const("Inactive", "inactive"),
//	)
//
// Or incrementally with a Builder when members come from multiple call sites:
//
//	builder := constgroup.NewBuilder("Status")
//	_ = builder.Define(constgroup.Const("Active", "active"))
//	Status, err := builder.Seal()
//
// Members may also be callables. A Func member is stored and invoked exactly
// as declared; a GroupFunc member declares *Group as its first parameter and
// is exposed with the group pre-applied, so callers invoke it without passing
// the group themselves.
//
// Sealed groups are immutable and safe for unsynchronized concurrent reads.
package constgroup
