// Package jsondoc provides an in-memory JSON document model: a single
// dynamically-typed Value tree with a recursive-descent parser, a matching
// exact-size serializer, ordered containers, dot-path accessors, and
// structural algorithms (deep copy, equality, schema validation).
//
// Unlike encoding/json, jsondoc does not map JSON onto Go structs. A parsed
// document is a tree of Value nodes that can be inspected and mutated
// directly, then serialized back to text:
//
//	doc, err := jsondoc.Parse(`{"user":{"name":"John"}}`)
//	name := doc.AsObject().DotGetString("user.name")
//	doc.AsObject().DotSet("user.age", jsondoc.NewNumber(30))
//	out, err := doc.Serialize()
//
// # Document model
//
// A Value holds exactly one variant: Null, Boolean, Number (float64),
// String, Array, or Object. The Error type is the absent-value sentinel
// returned by failed lookups; it is never produced by a successful parse.
// A Value's variant never changes after construction; mutation always
// installs a new Value in place of the old one.
//
// Objects preserve insertion order under Set, including overwrites of
// existing keys. Remove fills the vacated slot with the former last entry,
// so ordering is not preserved across removals. Arrays behave the same way.
//
// # Ownership
//
// Every Value belongs to at most one container. Appending or setting a
// Value that is already held by a container fails with ErrValueOwned;
// insert a DeepCopy to share content between documents. Trees are
// therefore always cycle-free, which keeps DeepCopy, Equals and Validate
// well-defined. Concurrent mutation of a single document is not supported;
// distinct documents need no coordination.
//
// # Comments
//
// ParseWithComments and ParseFileWithComments accept JSON annotated with
// /* block */ and // line comments, which are stripped before parsing.
// Comment tokens inside string literals are left untouched.
//
// # Limits
//
// Parsing is bounded by a fixed nesting-depth cap, and containers carry
// hard capacity caps, so memory use is bounded by input size on
// adversarial input. Exceeding a limit fails the operation and leaves
// existing state unchanged.
package jsondoc
