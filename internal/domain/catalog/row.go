package catalog

import (
	"strings"

	"github.com/GriffinCanCode/sceneryloader/internal/shared/types"
	"github.com/bmatcuk/doublestar/v4"
)

// Status is the loaded state shown for a group
type Status string

const (
	StatusLoaded    Status = "Loaded"
	StatusPartial   Status = "Partially Loaded"
	StatusNotLoaded Status = "Not Loaded"
)

// Row is one display row of the group list
type Row struct {
	Name       string `json:"name"`
	Identifier string `json:"identifier"`
	Authors    string `json:"authors"`
	Status     Status `json:"status"`
}

// StatusOf derives a group's status from the active set. A loaded group
// whose members are unknown is never reported as fully loaded.
func StatusOf(g types.Group, isActive func(id string) bool) Status {
	if !isActive(g.Identifier) {
		return StatusNotLoaded
	}
	if g.Unread {
		return StatusPartial
	}
	for _, item := range g.Items {
		if !isActive(item) {
			return StatusPartial
		}
	}
	return StatusLoaded
}

// NewRow renders a group for display
func NewRow(g types.Group, isActive func(id string) bool) Row {
	return Row{
		Name:       g.Name,
		Identifier: g.Identifier,
		Authors:    g.Authors,
		Status:     StatusOf(g, isActive),
	}
}

// Match reports whether query selects g. Plain queries are case-insensitive
// substring matches on name, identifier and authors; queries containing glob
// metacharacters must match one of those fields as a whole. An empty query
// matches everything.
func Match(g types.Group, query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}

	fields := []string{g.Name, g.Identifier, g.Authors}
	glob := strings.ContainsAny(query, "*?[{")

	for _, field := range fields {
		field = strings.ToLower(field)
		if glob {
			if ok, err := doublestar.Match(query, field); err == nil && ok {
				return true
			}
			continue
		}
		if strings.Contains(field, query) {
			return true
		}
	}
	return false
}
