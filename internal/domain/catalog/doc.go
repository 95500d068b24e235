// Package catalog builds the static index of installed scenery groups.
//
// The index is built once per session. Group members are only discoverable
// on a loaded group, so every group is peeked through the activation tracker
// and its members canonicalized. Peeking never changes whether a group is
// loaded, so building the index leaves activation state untouched.
//
// Components:
//   - Index: one-shot group index in host enumeration order
//   - Row: display row with loaded status
//   - Match: case-insensitive substring or glob filter over a group
//
// Example Usage:
//
//	idx := catalog.NewIndex(h, tracker, canonicalizer)
//	for _, g := range idx.Build() {
//	    fmt.Println(g.Name, len(g.Items))
//	}
package catalog
