package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/heymumford/ftoc-sub003/internal/changelog"
	"github.com/heymumford/ftoc-sub003/internal/config"
	"github.com/heymumford/ftoc-sub003/internal/errors"
	"github.com/heymumford/ftoc-sub003/internal/gitlog"
	"github.com/heymumford/ftoc-sub003/internal/manifest"
)

// dateLayout is the ISO 8601 date used in the version header.
const dateLayout = "2006-01-02"

var (
	generateManifestFlag  string
	generateArtifactFlag  string
	generateSinceFlag     string
	generateUntilFlag     string
	generateTagPrefixFlag string
	generateFetchFlag     bool
	generatePrettyFlag    bool
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate the changelog section for the next release",
	Long: `Generate a Keep a Changelog section for the commits since the previous
release tag. The release version comes from the project manifest; commits are
grouped by their conventional-commit type token.

The section is written to standard output. Nothing is written when version
resolution fails.

Examples:
  relnotes generate                       # Since the highest semver tag
  relnotes generate --since v1.1.0        # Explicit range start
  relnotes generate --manifest app/pom.xml --artifact-id app
  relnotes generate --fetch               # Refresh tags from remotes first
  relnotes generate --pretty              # Colored terminal output`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&generateManifestFlag, "manifest", "", "Path to the project manifest (default pom.xml)")
	generateCmd.Flags().StringVar(&generateArtifactFlag, "artifact-id", "", "Anchor version resolution to this artifact")
	generateCmd.Flags().StringVar(&generateSinceFlag, "since", "", "Start of the commit range, exclusive (default: previous release tag)")
	generateCmd.Flags().StringVar(&generateUntilFlag, "until", "", "End of the commit range (default HEAD)")
	generateCmd.Flags().StringVar(&generateTagPrefixFlag, "tag-prefix", "", "Tag prefix for semver comparison (default v)")
	generateCmd.Flags().BoolVar(&generateFetchFlag, "fetch", false, "Fetch tags from remotes before computing the range")
	generateCmd.Flags().BoolVar(&generatePrettyFlag, "pretty", false, "Colored terminal output instead of plain markdown")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// Version resolution is fatal: no changelog without a version header.
	version, err := resolveVersion(cfg)
	if err != nil {
		return err
	}

	repo, err := gitlog.Open(repoFlag)
	if err != nil {
		return errors.Wrap(err, errors.Repository,
			"Run relnotes inside a git repository, or pass --repo")
	}

	if cfg.Fetch {
		fetchTags(repo, cfg)
	}

	since := generateSinceFlag
	if since == "" {
		since, err = repo.PreviousTag(cfg.TagPrefix)
		if err != nil {
			return errors.WrapWithMessage(err, errors.Repository, "locating previous release tag")
		}
	}

	subjects, err := repo.Subjects(since, generateUntilFlag)
	if err != nil {
		return errors.WrapWithMessage(err, errors.Repository, "collecting commit subjects")
	}

	sections := changelog.Classify(subjects, changelog.DefaultRules())
	date := time.Now().Format(dateLayout)

	if cfg.Pretty {
		return changelog.FormatTerminal(version, date, sections, cmd.OutOrStdout(), changelog.FormatOptions{})
	}
	return changelog.Render(version, date, sections, cmd.OutOrStdout())
}

// loadConfig loads the layered configuration and applies any flags the user
// set on this command over it.
func loadConfig(cmd *cobra.Command) (*config.Configuration, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, errors.Wrap(err, errors.Configuration,
			"Check .relnotes/config.yml for syntax or value errors",
			"Run with defaults by removing the config file")
	}

	flags := cmd.Flags()
	if flags.Changed("manifest") {
		cfg.Manifest, _ = flags.GetString("manifest")
	}
	if flags.Changed("artifact-id") {
		cfg.ArtifactID, _ = flags.GetString("artifact-id")
	}
	if flags.Changed("tag-prefix") {
		cfg.TagPrefix, _ = flags.GetString("tag-prefix")
	}
	if flags.Changed("fetch") {
		cfg.Fetch, _ = flags.GetBool("fetch")
	}
	if flags.Changed("pretty") {
		cfg.Pretty, _ = flags.GetBool("pretty")
	}

	return cfg, nil
}

// resolveVersion reads the manifest and extracts the release version.
func resolveVersion(cfg *config.Configuration) (string, error) {
	data, err := os.ReadFile(cfg.Manifest)
	if err != nil {
		return "", errors.WrapWithMessage(err, errors.Manifest, "reading manifest",
			fmt.Sprintf("Check that %s exists, or pass --manifest", cfg.Manifest))
	}

	version, err := manifest.ResolveArtifact(string(data), cfg.ArtifactID)
	if err != nil {
		return "", errors.WrapWithMessage(err, errors.Manifest,
			fmt.Sprintf("resolving version from %s", cfg.Manifest),
			"Check the manifest declares <artifactId> followed by <version>",
			"Pass --artifact-id to anchor resolution to the right block")
	}

	return version, nil
}

// fetchTags refreshes remote tags with a bounded timeout, showing a spinner
// on interactive terminals. Fetch failures are warnings, never fatal.
func fetchTags(repo *gitlog.Repo, cfg *config.Configuration) {
	timeout := time.Duration(cfg.FetchTimeout) * time.Second
	if timeout == 0 {
		timeout = gitlog.DefaultFetchTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if isatty.IsTerminal(os.Stderr.Fd()) {
		s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
		s.Suffix = " Fetching tags..."
		s.Start()
		defer s.Stop()
	}

	if err := repo.FetchTags(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: tag fetch failed: %v\n", err)
	}
}
