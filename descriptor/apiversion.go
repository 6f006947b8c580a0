package descriptor

import "strings"

// DefaultGroup is the API group implied by a bare apiVersion value.
const DefaultGroup = "core"

// ParseAPIVersion splits the value of an apiVersion marker into its group
// and version.  A bare value like "v1" belongs to the default group;
// "apps/v1" names both.
func ParseAPIVersion(apiVersion string) (group, version string) {
	parts := strings.SplitN(apiVersion, "/", 2)
	if len(parts) == 1 {
		return DefaultGroup, parts[0]
	}
	return parts[0], parts[1]
}
