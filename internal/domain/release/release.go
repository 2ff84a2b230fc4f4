// Package release holds the persisted release metadata model.
package release

// Entry records one published release. Entries are created once per
// successful publish and never mutated or deleted afterward.
type Entry struct {
	Version string
	Date    string // ISO-8601 with timezone offset
	Tag     string
}

// Metadata is the persisted release document: the current version plus the
// append-only release history in chronological order.
type Metadata struct {
	CurrentVersion string
	Releases       []Entry
}

// HasVersion reports whether version already appears in the release history.
func (m *Metadata) HasVersion(version string) bool {
	for _, r := range m.Releases {
		if r.Version == version {
			return true
		}
	}
	return false
}

// Append adds one release entry and advances the current version. Existing
// entries keep their order; CurrentVersion always tracks the newest entry.
func (m *Metadata) Append(e Entry) {
	m.CurrentVersion = e.Version
	m.Releases = append(m.Releases, e)
}
