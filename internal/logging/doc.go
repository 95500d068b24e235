// Package logging provides structured logging using uber/zap.
//
// Two modes are supported:
//   - Production: JSON output for machine parsing
//   - Development: Colored console output for human readability
//
// Engine components take a *Logger through a WithLogger builder and fall
// back to NewNop, so library callers that do not care about logs pay nothing.
//
// Field helpers keep log keys consistent across components:
//
//	logger.Info("Group toggled", logging.ID(groupID), logging.Count("freed", n))
package logging
