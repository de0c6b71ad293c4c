/*
Package grc implements shared ownership of a heap-allocated value with a
split reference count: a plain per-goroutine counter for clones that never
leave their goroutine, and an atomic counter tracking how many goroutines
participate in the sharing.

Most shared values are cloned and dropped without ever crossing a goroutine
boundary. Splitting the count lets those clones avoid atomic
read-modify-write traffic entirely; only goroutine handoffs, weak
observers, and the final teardown touch the atomic counters.

Three handle types share a value:

  - Local is the everyday strong handle. It is confined to the goroutine
    that created it, and clones by bumping a plain integer.
  - Sendable is the courier. Mint one from a Local, move it to another
    goroutine, and convert it back into a Local there. It is the only way
    sharing crosses a goroutine boundary.
  - Weak observes the value without keeping it alive, and may upgrade back
    to a Local while any strong handle survives anywhere.

Handles are released explicitly with Drop, exactly once each. The drop
function given at construction runs once, on whichever goroutine releases
the last strong participation. The value's address is stable: pointers
returned by Get remain valid until the last strong handle releases.

Mutation through a shared handle is deliberately not offered. TryGetMut
grants a mutable pointer only while the handle is provably the sole way to
reach the value; anything beyond that is the caller's own synchronization.

Go cannot reject a Local that strays off its goroutine at compile time, so
each Local records its owning goroutine and every operation can verify the
caller. The checks default to on under the race detector and are toggled
with SetAffinityChecks.
*/
package grc
