// Package list provides the two small linked containers the rest of transitnet
// is built on: an append-ordered singly linked List and a FIFO Queue.
//
// List stores elements in insertion order and identifies them through a
// natural key supplied at construction time. Stops, routes and schedules
// expose their integer id through the Keyed interface; plain values use
// themselves as the key (NewOf); anything else passes an explicit accessor
// (New). Every lookup, removal and update compares keys through that accessor,
// never through the dynamic type of the stored value.
//
// Failure semantics:
//
//   - Out-of-range positional access returns the zero value and ok=false.
//   - Removing or finding a missing key reports false; nothing panics.
//
// Complexity:
//
//   - Append, Find, Remove, Update, At: O(n) (walks the chain).
//   - Len, Clear, Queue operations: O(1).
//
// Lists stay small in this domain (a few hundred stops at most), so the linear
// walks are accepted. Neither container is safe for concurrent mutation.
package list
