package parser

import "github.com/Masterminds/semver/v3"

// IsSupportedVersion reports whether v is an OpenAPI 3.x version string
// ("3.0", "3.0.3", "3.1.0", ...).
func IsSupportedVersion(v string) bool {
	parsed, err := semver.NewVersion(v)
	if err != nil {
		return false
	}
	return parsed.Major() == 3
}
