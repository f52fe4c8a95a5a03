package version

import (
	"regexp"

	"github.com/spf13/afero"
)

// manifestVersion matches the first line-anchored `version = "..."` with
// either quote style. A key inside a nested table matches too.
var manifestVersion = regexp.MustCompile(`(?m)^version\s*=\s*['"]([^'"]+)['"]`)

// ReadManifest returns the version declared in the manifest at path. The
// bool is false if the file is missing, is a directory, can't be read, or
// has no version line.
func ReadManifest(fs afero.Fs, path string) (string, bool) {
	var info, err = fs.Stat(path)
	if err != nil || info.IsDir() {
		return "", false
	}

	var data []byte
	data, err = afero.ReadFile(fs, path)
	if err != nil {
		return "", false
	}
	return ParseManifest(data)
}

// ParseManifest returns the first version line's value in data
func ParseManifest(data []byte) (string, bool) {
	var m = manifestVersion.FindSubmatch(data)
	if m == nil {
		return "", false
	}
	return string(m[1]), true
}
