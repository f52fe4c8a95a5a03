// Package version is just for holding high-level versioning information for
// the NekoBot framework as a whole.
//
// The version is resolved once per process: build metadata first, then the
// project's pyproject.toml when running from a source checkout, then
// [Fallback]. Resolution never fails.
package version

import (
	"log/slog"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/spf13/afero"
)

const (
	// DistributionName is the name queried in the build metadata registry.
	// It must match the module path in go.mod.
	DistributionName = "nekobot"

	// ManifestName is the project manifest read from a source checkout
	ManifestName = "pyproject.toml"

	// Fallback is returned when no other source yields a version
	Fallback = "0.0.0"
)

var resolve = sync.OnceValue(func() string {
	return NewResolver(slog.Default()).Resolve()
})

// Get returns the framework version string. It is always non-empty, since
// an empty registry version counts as not found, and never changes within a
// process.
func Get() string {
	return resolve()
}

// Version is the resolved version string, identical to [Get].
var Version = Get()

// Resolver walks the version sources in priority order
type Resolver struct {
	// Name is looked up in Registry
	Name     string
	Registry Registry
	Fs       afero.Fs
	// Root is the project root holding the manifest. An empty Root skips
	// the manifest lookup.
	Root   string
	Logger *slog.Logger
}

// NewResolver returns a Resolver reading real build info and the real
// filesystem, rooted at this source tree.
func NewResolver(logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		Name:     DistributionName,
		Registry: BuildInfo(nil),
		Fs:       afero.NewOsFs(),
		Root:     sourceRoot(),
		Logger:   logger.With("log.source", "version.Resolver"),
	}
}

// Resolve returns the first version found, or [Fallback]
func (r *Resolver) Resolve() string {
	var lookups = []func() (string, bool){r.fromRegistry, r.fromManifest}
	for _, lookup := range lookups {
		if v, ok := lookup(); ok {
			return v
		}
	}
	return Fallback
}

func (r *Resolver) fromRegistry() (string, bool) {
	if r.Registry == nil {
		return "", false
	}
	var v, ok = r.Registry.Lookup(r.Name)
	if !ok || v == "" {
		r.logger().Debug("Distribution not found in build metadata", "name", r.Name)
		return "", false
	}
	r.logger().Debug("Version found in build metadata", "name", r.Name, "version", v)
	return v, true
}

// fromManifest always succeeds once the manifest path is known: a missing or
// unparseable manifest means Fallback, same as the end of the chain.
func (r *Resolver) fromManifest() (string, bool) {
	if r.Root == "" || r.Fs == nil {
		r.logger().Debug("No project root, skipping manifest")
		return "", false
	}

	var path = filepath.Join(r.Root, ManifestName)
	var v, ok = ReadManifest(r.Fs, path)
	if !ok {
		r.logger().Debug("No version in manifest", "path", path)
		return Fallback, true
	}
	r.logger().Debug("Version found in manifest", "path", path, "version", v)
	return v, true
}

func (r *Resolver) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.Default()
	}
	return r.Logger
}

// sourceRoot is two levels above this package's directory. Binaries built
// with -trimpath carry a relative file name, so there is no root to find.
func sourceRoot() string {
	var _, file, _, ok = runtime.Caller(0)
	if !ok || !filepath.IsAbs(file) {
		return ""
	}
	var dir = filepath.Dir(file)
	if resolved, err := filepath.EvalSymlinks(dir); err == nil {
		dir = resolved
	}
	return filepath.Dir(filepath.Dir(dir))
}
