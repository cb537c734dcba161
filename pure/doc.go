// Package pure provides bounded memo storage for pure computations.
//
// A Trie maps argument paths to results and keeps at most two generations of
// entries, so memory stays bounded no matter how many distinct argument lists
// flow through it. A Table layers argument keying on top of a Trie.
//
// WARNING: Only memoize functions that are referentially transparent. A
// function depending on time, I/O or mutable captured state will keep
// returning its first answer.
package pure
