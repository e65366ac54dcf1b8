package config

// GetDefaultConfigTemplate returns a fully commented config template
// that helps users understand all available options.
func GetDefaultConfigTemplate() string {
	return `# Relnotes Configuration

manifest: pom.xml          # Project manifest holding the release version
artifact_id: ""            # Anchor version resolution to this artifact (empty = first)
tag_prefix: v              # Prefix stripped from tags for semver comparison
fetch: false               # Refresh tags from remotes before computing the range
fetch_timeout: 60          # Tag fetch timeout in seconds (0-600)
pretty: false              # Colored terminal output instead of plain markdown
`
}

// GetDefaults returns the default configuration values.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"manifest":    "pom.xml",
		"artifact_id": "",
		"tag_prefix":  "v",
		"fetch":       false,
		// fetch_timeout: bounded so a dead remote never hangs a release.
		"fetch_timeout": 60,
		"pretty":        false,
	}
}
