// Package api defines the capability contracts shared by all cds
// collections: the length-type constraint, spare-memory policies,
// allocator abstraction and the common error taxonomy.
//
// Capabilities are resolved at compile time through type parameters;
// no collection pays runtime dispatch cost for them.
package api
