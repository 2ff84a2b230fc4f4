package repository

import (
	"regexp"
	"strings"

	"github.com/spf13/afero"

	infrafs "github.com/relpub/relpub/internal/infra/fs"
)

// VersionPropertyKey is the key mirrored into sonar properties files.
const VersionPropertyKey = "sonar.projectVersion"

// UpdateProperty sets key=value in a properties file. Existing assignment
// lines for the key are rewritten in place (all of them); otherwise the line
// is appended, preceded by a newline when the file is non-empty and does not
// already end in one. A missing file is created.
func UpdateProperty(fsys afero.Fs, path, key, value string, dryRun bool) error {
	content := ""
	if data, err := afero.ReadFile(fsys, path); err == nil {
		content = string(data)
	}

	line := key + "=" + value
	re := regexp.MustCompile(`(?m)^\s*` + regexp.QuoteMeta(key) + `\s*=.*$`)

	var updated string
	if re.MatchString(content) {
		updated = re.ReplaceAllString(content, line)
	} else {
		updated = content
		if content != "" && !strings.HasSuffix(content, "\n") {
			updated += "\n"
		}
		updated += line + "\n"
	}

	if dryRun {
		return nil
	}
	return infrafs.WriteFileAtomic(fsys, path, []byte(updated), 0o644)
}
