package patches

import "regexp"

const UnknownVersion = "unknown"

var versionRegexp = regexp.MustCompile(`Version:\s*(\d+(?:\.\d+)*)`)

// Version extracts the display version embedded in a bundle.
func Version(text string) string {
	if m := versionRegexp.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return UnknownVersion
}
