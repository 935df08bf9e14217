// Package build describes the running dumbvim binary.
package build

import "fmt"

// Name is the program name shown in version output and logs.
const Name = "dumbvim"

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// String returns "dumbvim <version> (<commit>)".
func (i Info) String() string {
	return fmt.Sprintf("%s %s (%s)", Name, i.Version, i.Commit)
}

// Contributors returns the people credited in `dumbvim about`.
func Contributors() []string {
	return []string{"The dumbvim contributors"}
}

// RepoURL returns the GitHub repository URL.
func RepoURL() string {
	return "https://github.com/bnema/dumbvim"
}
