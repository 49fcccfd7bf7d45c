// Package version exposes build metadata injected at link time.
package version

// Set via -ldflags at build time, e.g.
// -ldflags "-X github.com/majicmall/entrypoint/internal/version.Version=1.2.0"
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

type Info struct {
	Version   string
	GitCommit string
	BuildDate string
}

func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
	}
}
