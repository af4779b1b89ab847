package versions

import (
	"regexp"

	semver "github.com/Masterminds/semver/v3"
	"github.com/rwx-research/archaicfs/cmd/archaicfs/config"
	"github.com/rwx-research/archaicfs/internal/errors"
)

var (
	currentVersion   *semver.Version
	developmentBuild bool

	nonMetadata = regexp.MustCompile(`[^0-9A-Za-z-]+`)
)

func init() {
	version, err := semver.NewVersion(config.Version)
	if err != nil {
		// Assume this is a development build and it is newer than any release.
		version = semver.MustParse("9999.0.0+" + nonMetadata.ReplaceAllString(config.Version, "-"))
		developmentBuild = true
	}

	currentVersion = version
}

func GetCliCurrentVersion() *semver.Version {
	return currentVersion
}

func IsDevelopmentBuild() bool {
	return developmentBuild
}

// Satisfies reports whether the running CLI meets a script's version
// requirement, e.g. ">= 0.2, < 1".
func Satisfies(requirement string) (bool, error) {
	constraint, err := semver.NewConstraint(requirement)
	if err != nil {
		return false, errors.Wrapf(err, "invalid version requirement %q", requirement)
	}

	return constraint.Check(currentVersion), nil
}
