// Package session wires the loader engine together for one game session.
//
// A Session owns every piece of engine state: the activation tracker, the
// aliasing table, the group index, and the surface resolver. Nothing is kept
// in package globals, so two sessions over two hosts never share state.
//
// Lifecycle:
//  1. New synchronises activation state from the host
//  2. The first Build (or any lookup) indexes every installed group
//  3. Toggle runs one user action to completion
//
// Example Usage:
//
//	s, err := session.New(h, surface, session.Options{Logger: logger})
//	rows := s.Rows("park")
//	outcome, err := s.Toggle(rows[0].Identifier)
package session
