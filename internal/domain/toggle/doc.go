// Package toggle decides what a click on a scenery group loads or unloads.
//
// A group is Complete when it and every member item are active. Toggling an
// Incomplete group loads whatever is missing; toggling a Complete group
// unloads the members the surface no longer references, and unloads the
// group itself only when every member could go. An already active group whose
// missing members all get refused again is treated as Complete, so a group
// stuck at a capacity limit can still be unloaded.
//
// Example Usage:
//
//	ctrl := toggle.NewController(index, tracker, resolver).WithViewerCloser(ui)
//	outcome, err := ctrl.Toggle("rct2.scenery_group.scgtrees")
package toggle
