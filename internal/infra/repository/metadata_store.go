// Package repository implements persistence for release metadata and the
// properties files that mirror the project version.
package repository

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"

	"github.com/relpub/relpub/internal/domain/release"
	infrafs "github.com/relpub/relpub/internal/infra/fs"
)

// metaDoc mirrors the on-disk TOML layout of the release metadata file.
type metaDoc struct {
	CurrentVersion string      `toml:"currentVersion"`
	Releases       []metaEntry `toml:"releases"`
}

type metaEntry struct {
	Version string `toml:"version"`
	Date    string `toml:"date"`
	Tag     string `toml:"tag"`
}

// MetadataStore reads and writes the release metadata document. Writes
// always regenerate the whole file from the in-memory model; unknown fields
// in an existing file are dropped on the next write.
type MetadataStore struct {
	fsys afero.Fs
}

func NewMetadataStore(fsys afero.Fs) *MetadataStore {
	return &MetadataStore{fsys: fsys}
}

// Load reads the metadata document at path. A missing, unreadable or
// malformed file yields empty metadata; that is the ordinary bootstrap case
// for a first release.
func (s *MetadataStore) Load(path string) release.Metadata {
	data, err := afero.ReadFile(s.fsys, path)
	if err != nil {
		return release.Metadata{}
	}
	var doc metaDoc
	if err := toml.Unmarshal(data, &doc); err != nil {
		return release.Metadata{}
	}
	meta := release.Metadata{CurrentVersion: doc.CurrentVersion}
	for _, r := range doc.Releases {
		meta.Releases = append(meta.Releases, release.Entry{
			Version: r.Version,
			Date:    r.Date,
			Tag:     r.Tag,
		})
	}
	return meta
}

// CurrentVersion returns the recorded current version. The second return is
// false when no version is recorded or the file cannot be read.
func (s *MetadataStore) CurrentVersion(path string) (string, bool) {
	meta := s.Load(path)
	if meta.CurrentVersion == "" {
		return "", false
	}
	return meta.CurrentVersion, true
}

// RecordRelease appends one release entry and rewrites the document. The
// duplicate check runs in dry-run mode too, so a colliding version surfaces
// before any repository mutation, but nothing is persisted.
func (s *MetadataStore) RecordRelease(path, version, tag, date string, dryRun bool) error {
	meta := s.Load(path)
	if meta.HasVersion(version) {
		return &release.DuplicateVersionError{Version: version, Path: path}
	}
	meta.Append(release.Entry{Version: version, Date: date, Tag: tag})
	if dryRun {
		return nil
	}
	return infrafs.WriteFileAtomic(s.fsys, path, encodeMetadata(meta), 0o644)
}

// Save rewrites the document from meta verbatim.
func (s *MetadataStore) Save(path string, meta release.Metadata) error {
	return infrafs.WriteFileAtomic(s.fsys, path, encodeMetadata(meta), 0o644)
}

var tomlEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// encodeMetadata emits the fixed document layout: a currentVersion scalar
// followed by one [[releases]] block per entry, quoted strings with
// backslash and double-quote escaped, trailing newline.
func encodeMetadata(meta release.Metadata) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "currentVersion = \"%s\"\n", tomlEscaper.Replace(meta.CurrentVersion))
	for _, r := range meta.Releases {
		b.WriteString("\n[[releases]]\n")
		fmt.Fprintf(&b, "version = \"%s\"\n", tomlEscaper.Replace(r.Version))
		fmt.Fprintf(&b, "date = \"%s\"\n", tomlEscaper.Replace(r.Date))
		fmt.Fprintf(&b, "tag = \"%s\"\n", tomlEscaper.Replace(r.Tag))
	}
	return []byte(b.String())
}
