package plugin

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// IsCompatible checks whether a plugin's protocol version can talk to this
// host: the major version must match and the version must not be older than
// MinCompatibleVersion. Newer minor and patch versions are accepted.
func IsCompatible(pluginVersion string) (bool, error) {
	v, err := semver.NewVersion(pluginVersion)
	if err != nil {
		return false, fmt.Errorf("failed to parse plugin version: %w", err)
	}
	current := semver.MustParse(ProtocolVersion)
	minimum := semver.MustParse(MinCompatibleVersion)

	if v.Major() != current.Major() {
		return false, fmt.Errorf("incompatible major version: plugin is %s, tonal requires %d.x.x", v, current.Major())
	}
	if v.LessThan(minimum) {
		return false, fmt.Errorf("plugin version %s is too old, minimum required is %s", v, MinCompatibleVersion)
	}
	return true, nil
}
