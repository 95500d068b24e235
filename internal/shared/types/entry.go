package types

import "strings"

// Entry is a catalog entry as reported by the host
type Entry struct {
	Identifier string   `json:"identifier" yaml:"identifier" toml:"identifier"`
	Kind       Kind     `json:"kind" yaml:"kind" toml:"kind"`
	Name       string   `json:"name" yaml:"name" toml:"name"`
	Authors    []string `json:"authors" yaml:"authors" toml:"authors"`
	Aliases    []string `json:"aliases,omitempty" yaml:"aliases" toml:"aliases"`

	// Items is only populated on loaded scenery groups
	Items []string `json:"items,omitempty" yaml:"items" toml:"items"`
}

// Group is an indexed scenery group
type Group struct {
	Identifier string   `json:"identifier"`
	Name       string   `json:"name"`
	Authors    string   `json:"authors"`
	Items      []string `json:"items"` // canonical, duplicates kept

	// Unread is set while the host has refused to load the group, so its
	// members are not yet known
	Unread bool `json:"unread,omitempty"`
}

// AuthorPlaceholder is rendered when a group lists no authors
const AuthorPlaceholder = "unknown"

// JoinAuthors renders an author list for display
func JoinAuthors(authors []string, placeholder string) string {
	names := make([]string, 0, len(authors))
	for _, a := range authors {
		if a = strings.TrimSpace(a); a != "" {
			names = append(names, a)
		}
	}
	if len(names) == 0 {
		return placeholder
	}
	return strings.Join(names, ", ")
}

// ActivationStats contains activation tracker statistics
type ActivationStats struct {
	TotalActive int          `json:"total_active"`
	ByKind      map[Kind]int `json:"by_kind"`
	Refusals    int          `json:"refusals"`
}
