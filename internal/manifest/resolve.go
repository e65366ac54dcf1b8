// Package manifest extracts the release version from a project manifest.
//
// Resolution is line-oriented and ordered: the project identifier marker
// (<artifactId>) must appear before a <version> declaration is considered
// authoritative. This guards against picking up an unrelated version that
// appears earlier in the document, such as a parent or dependency version.
package manifest

import (
	"fmt"
	"regexp"
	"strings"
)

// versionLookahead bounds how many lines after the identifier marker are
// scanned for the version declaration.
const versionLookahead = 10

var (
	artifactRE = regexp.MustCompile(`<artifactId>\s*([^<]*?)\s*</artifactId>`)
	versionRE  = regexp.MustCompile(`<version>\s*([^<]*?)\s*</version>`)
)

// VersionNotFoundError is returned when the manifest lacks the
// identifier/version marker pair needed to resolve a release version.
type VersionNotFoundError struct {
	// Marker names the declaration that was missing ("artifactId" or "version").
	Marker string
	// ArtifactID is the requested project identifier, if one was given.
	ArtifactID string
}

func (e *VersionNotFoundError) Error() string {
	if e.ArtifactID != "" {
		return fmt.Sprintf("no <%s> declaration found for artifact %q", e.Marker, e.ArtifactID)
	}
	return fmt.Sprintf("no <%s> declaration found in manifest", e.Marker)
}

// Resolve extracts the release version from the manifest text using the
// first <artifactId> declaration as the anchor.
// Returns a *VersionNotFoundError if either marker is absent or the
// extracted value is empty.
func Resolve(manifestText string) (string, error) {
	return ResolveArtifact(manifestText, "")
}

// ResolveArtifact extracts the release version anchored to a specific
// artifact identifier. When artifactID is empty the first <artifactId>
// declaration anchors the search. The <version> declaration must appear
// within the lookahead window following the anchor line.
func ResolveArtifact(manifestText, artifactID string) (string, error) {
	lines := strings.Split(manifestText, "\n")

	for i, line := range lines {
		loc := artifactRE.FindStringSubmatchIndex(line)
		if loc == nil {
			continue
		}
		if artifactID != "" && line[loc[2]:loc[3]] != artifactID {
			continue
		}
		// The anchor line itself may carry the version after the identifier.
		return versionInWindow(lines, i, line[loc[1]:], artifactID)
	}

	return "", &VersionNotFoundError{Marker: "artifactId", ArtifactID: artifactID}
}

// versionInWindow scans the remainder of the anchor line and the lookahead
// window below it for the first <version> declaration, returning its inner value.
func versionInWindow(lines []string, anchor int, anchorRest, artifactID string) (string, error) {
	window := []string{anchorRest}
	end := anchor + versionLookahead
	if end > len(lines)-1 {
		end = len(lines) - 1
	}
	window = append(window, lines[anchor+1:end+1]...)

	for _, line := range window {
		m := versionRE.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if m[1] == "" {
			return "", &VersionNotFoundError{Marker: "version", ArtifactID: artifactID}
		}
		return m[1], nil
	}

	return "", &VersionNotFoundError{Marker: "version", ArtifactID: artifactID}
}
