package version

import (
	"runtime/debug"
)

// develVersion is what the go command records for the main module when
// building from a source checkout
const develVersion = "(devel)"

// stamp is set at link time, e.g.
//
//	go build -ldflags "-X nekobot/internal/version.stamp=v1.2.3" ./cmd/nekobot
var stamp string

// Registry looks up the installed version of a distribution by name. The
// bool is false when the distribution is not installed.
type Registry interface {
	Lookup(name string) (string, bool)
}

// RegistryFunc adapts a plain function to a [Registry]
type RegistryFunc func(name string) (string, bool)

// Lookup calls f
func (f RegistryFunc) Lookup(name string) (string, bool) {
	return f(name)
}

// BuildInfo returns a [Registry] backed by the binary's embedded build
// information. A link-time stamp takes precedence. read defaults to
// [debug.ReadBuildInfo].
func BuildInfo(read func() (*debug.BuildInfo, bool)) Registry {
	if read == nil {
		read = debug.ReadBuildInfo
	}
	return RegistryFunc(func(name string) (string, bool) {
		if stamp != "" {
			return stamp, true
		}
		var info, ok = read()
		if !ok || info == nil {
			return "", false
		}
		return moduleVersion(info, name)
	})
}

func moduleVersion(info *debug.BuildInfo, name string) (string, bool) {
	if info.Main.Path == name {
		return usable(info.Main.Version)
	}
	for _, dep := range info.Deps {
		if dep == nil || dep.Path != name {
			continue
		}
		if dep.Replace != nil && dep.Replace.Version != "" {
			return usable(dep.Replace.Version)
		}
		return usable(dep.Version)
	}
	return "", false
}

func usable(v string) (string, bool) {
	if v == "" || v == develVersion {
		return "", false
	}
	return v, true
}
