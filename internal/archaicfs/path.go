package archaicfs

import "strings"

const (
	Separator = "/"
	current   = "."
	parent    = ".."
)

// Resolve turns name into a normalized absolute segment list. Names starting
// with the separator start at the root, anything else starts at cwd. Empty
// and "." segments are dropped and ".." pops one segment, clamping at the
// root. No lookups happen here.
func Resolve(name string, cwd []string) []string {
	var resolved []string
	if !strings.HasPrefix(name, Separator) {
		resolved = append(resolved, cwd...)
	}

	for _, segment := range strings.Split(name, Separator) {
		switch segment {
		case "", current:
			continue
		case parent:
			if len(resolved) > 0 {
				resolved = resolved[:len(resolved)-1]
			}
		default:
			resolved = append(resolved, segment)
		}
	}

	return resolved
}

// Join renders segments as a path string. The root is the empty string.
func Join(segments []string) string {
	if len(segments) == 0 {
		return ""
	}
	return Separator + strings.Join(segments, Separator)
}

// Normalize resolves name against the root and renders it back.
func Normalize(name string) string {
	return Join(Resolve(name, nil))
}
