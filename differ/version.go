package differ

import (
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/fresha/openapi-diff/internal/severity"
	"github.com/fresha/openapi-diff/oaserrors"
)

// calculateNewVersion bumps one segment of the target's info.version by the
// highest severity recorded. Lower segments are kept as they are.
func (d *Differ) calculateNewVersion() error {
	current := d.target.InfoVersion()
	d.outdatedVersion = len(d.items) > 0
	if !d.outdatedVersion {
		d.newVersion = current
		return nil
	}

	levels := make([]Severity, 0, len(d.items))
	for _, item := range d.items {
		levels = append(levels, item.severity)
	}
	highest, _ := severity.Max(levels...)

	next, err := BumpVersion(current, highest)
	if err != nil {
		return err
	}
	d.newVersion = next
	return nil
}

// BumpVersion increments the segment of version named by sev. A leading "v"
// and any prerelease or build metadata are preserved; a short version such as
// "1.2" is read as "1.2.0".
func BumpVersion(version string, sev Severity) (string, error) {
	v, err := semver.NewVersion(version)
	if err != nil {
		return "", &oaserrors.VersionError{Version: version, Cause: err}
	}

	major, minor, patch := v.Major(), v.Minor(), v.Patch()
	switch sev {
	case SeverityMajor:
		major++
	case SeverityMinor:
		minor++
	default:
		patch++
	}

	next := semver.New(major, minor, patch, v.Prerelease(), v.Metadata()).String()
	if strings.HasPrefix(version, "v") || strings.HasPrefix(version, "V") {
		next = version[:1] + next
	}
	return next, nil
}
