package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/yuttie/paperman/internal/version"
	"github.com/yuttie/paperman/pkg/config"
	"github.com/yuttie/paperman/pkg/filesystem"
	"github.com/yuttie/paperman/pkg/logging"
	"github.com/yuttie/paperman/pkg/paths"
	"github.com/yuttie/paperman/pkg/repo"
	"github.com/yuttie/paperman/pkg/style"
	"github.com/yuttie/paperman/pkg/ui"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		format    string
	)

	rootCmd := &cobra.Command{
		Use:   "paperman",
		Short: "Consolidate scattered files into one repository directory",
		Long: `paperman moves the files you care about into a single repository
directory and leaves a relative symlink at each original location, so
programs keep finding them while the real copies live in one place you
can version and back up.`,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&format, "format", "auto", "Output format: auto, term, text, or json")

	// Add all commands
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newGuideCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// loadConfig reads the configuration file from its default location
func loadConfig() (*config.Config, error) {
	return config.Load(paths.ConfigFilePath())
}

// outputFormat resolves the --format flag against the command's output
// stream. Auto on a non-file output (tests, pipes wrapped in buffers)
// resolves to plain text.
func outputFormat(cmd *cobra.Command) (ui.Format, error) {
	raw, _ := cmd.Root().PersistentFlags().GetString("format")
	format, err := ui.ParseFormat(raw)
	if err != nil {
		return format, err
	}
	if format == ui.FormatAuto {
		if file, ok := cmd.OutOrStdout().(*os.File); ok {
			return ui.DetectFormat(file), nil
		}
		return ui.FormatText, nil
	}
	return format, nil
}

// newRenderer builds a renderer for the resolved format writing to out
func newRenderer(out io.Writer, format ui.Format) *style.Renderer {
	return style.NewRenderer(out, format == ui.FormatTerminal)
}

func newAddCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "add <file>...",
		Short: "Move files into the repository and symlink them back",
		Long: `Add moves each given file into the repository directory and creates a
relative symlink at its original location pointing back at the moved
file. Directories and symlinks are skipped with a diagnostic; running
add twice on the same file is therefore harmless.

The repository directory is taken from repo_dir in the configuration
file and created on first use.`,
		Example: `  # Move ~/.vimrc into the repository and symlink it back
  paperman add ~/.vimrc

  # Add several files at once
  paperman add ~/.vimrc ~/.gitconfig ~/.zshrc

  # Replace a repository entry that already has the same name
  paperman add --force ~/.vimrc`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}

			log.Info().
				Str("repo_dir", cfg.RepoDir).
				Int("paths", len(args)).
				Bool("force", force).
				Msg("Adding files to repository")

			result, err := repo.Add(repo.AddOptions{
				RepoDir: cfg.RepoDir,
				Paths:   args,
				Force:   force,
			})
			if err != nil {
				return err
			}

			if format == ui.FormatJSON {
				return newRenderer(cmd.OutOrStdout(), format).RenderJSON(result)
			}

			// Skip diagnostics go to stderr so stdout stays pipeable
			if len(result.Skipped) > 0 {
				if err := newRenderer(cmd.ErrOrStderr(), format).RenderSkipped(result.Skipped); err != nil {
					return err
				}
			}

			return newRenderer(cmd.OutOrStdout(), format).RenderAdd(result)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Replace repository entries that already have the same name")

	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the files tracked in the repository",
		Long: `List shows every entry of the repository directory along with its type.
A repository that does not exist yet lists as empty.`,
		Example: `  # List repository contents
  paperman list`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}

			result, err := repo.List(repo.ListOptions{
				RepoDir: cfg.RepoDir,
			})
			if err != nil {
				return err
			}

			if format == ui.FormatJSON {
				return newRenderer(cmd.OutOrStdout(), format).RenderJSON(result)
			}
			return newRenderer(cmd.OutOrStdout(), format).RenderList(result)
		},
	}
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <path>...",
		Short: "Show how paths relate to the repository",
		Long: `Status reports, for each given path, whether it is a symlink into the
repository (linked), a symlink elsewhere (foreign link), a regular file
not yet added (unmanaged), a directory, or missing entirely. Nothing is
modified.`,
		Example: `  # Check whether dotfiles are managed
  paperman status ~/.vimrc ~/.gitconfig`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}

			result, err := repo.Status(repo.StatusOptions{
				RepoDir: cfg.RepoDir,
				Paths:   args,
			})
			if err != nil {
				return err
			}

			if format == ui.FormatJSON {
				return newRenderer(cmd.OutOrStdout(), format).RenderJSON(result)
			}
			return newRenderer(cmd.OutOrStdout(), format).RenderStatus(result)
		},
	}
}

func newConfigCmd() *cobra.Command {
	var initConfig bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the resolved configuration",
		Long: `Config prints the configuration file location and the repository
directory, both as written and after tilde expansion.

With --init, a starter configuration file is written instead. An
existing file is never overwritten.`,
		Example: `  # Show the active configuration
  paperman config

  # Write a starter configuration file
  paperman config --init`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := paths.ConfigFilePath()

			if initConfig {
				if err := config.WriteDefault(filesystem.NewOS(), path); err != nil {
					return err
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, path)
				return err
			}

			cfg, err := config.Load(path)
			if err != nil {
				return err
			}

			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}

			if format == ui.FormatJSON {
				return newRenderer(cmd.OutOrStdout(), format).RenderJSON(map[string]string{
					"configFile": path,
					"repoDir":    cfg.RawRepoDir,
					"resolved":   cfg.RepoDir,
				})
			}
			return newRenderer(cmd.OutOrStdout(), format).RenderConfig(path, cfg.RawRepoDir, cfg.RepoDir)
		},
	}

	cmd.Flags().BoolVar(&initConfig, "init", false, "Write a starter configuration file and exit")

	return cmd
}

func newGuideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guide",
		Short: "Show the user guide",
		Long:  `Guide renders the built-in user guide, styled when writing to a terminal.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if format != ui.FormatTerminal {
				_, err := fmt.Fprint(out, MsgGuide)
				return err
			}

			renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
			if err != nil {
				// Fall back to the raw markdown
				_, werr := fmt.Fprint(out, MsgGuide)
				return werr
			}

			rendered, err := renderer.Render(MsgGuide)
			if err != nil {
				_, werr := fmt.Fprint(out, MsgGuide)
				return werr
			}

			_, err = fmt.Fprint(out, rendered)
			return err
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including commit hash and build date`,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "paperman version %s\n", version.Version)
			fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			fmt.Fprintf(out, "  built:  %s\n", version.Date)
		},
	}
}
