package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"ilweld/internal/version"
	"ilweld/pkg/cobrax/topics"
	"ilweld/pkg/config"
	"ilweld/pkg/errors"
	"ilweld/pkg/filesystem"
	"ilweld/pkg/locator"
	"ilweld/pkg/logging"
	"ilweld/pkg/mergetool"
	"ilweld/pkg/paths"
	"ilweld/pkg/ui"
	"ilweld/pkg/weld"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:     "ilweld",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
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
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)

	// Disable automatic help command (we'll use our custom one from topics)
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	// Add all commands
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newMergeCmd())
	rootCmd.AddCommand(newPlanCmd())
	rootCmd.AddCommand(newLocateCmd())
	rootCmd.AddCommand(newGenConfigCmd())

	// Initialize topic-based help system
	// Try to find help topics relative to the executable location
	exe, err := os.Executable()
	if err == nil {
		// Look for help topics in various locations
		possiblePaths := []string{
			filepath.Join(filepath.Dir(exe), "..", "..", "docs", "help"), // Development
			filepath.Join(filepath.Dir(exe), "docs", "help"),             // Installed
			"docs/help", // Current directory
		}

		for _, helpPath := range possiblePaths {
			if _, err := os.Stat(helpPath); err == nil {
				opts := topics.Options{
					// Always use Glamour renderer for markdown files
					Renderer: topics.NewGlamourRenderer(),
				}
				if err := topics.InitializeWithOptions(rootCmd, helpPath, opts); err == nil {
					break
				}
			}
		}
	}

	return rootCmd
}

// newRenderer builds the output renderer from the command's --format
// flag, writing to the command's stdout so tests can capture it.
func newRenderer(cmd *cobra.Command) (ui.Renderer, error) {
	name, _ := cmd.Flags().GetString("format")
	format, err := ui.ParseFormat(name)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(format, cmd.OutOrStdout())
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Long:  MsgVersionLong,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, MsgVersionFormat, version.Version)
			if version.Commit != "" {
				fmt.Fprintf(out, MsgCommitFormat, version.Commit)
			}
			if version.Date != "" {
				fmt.Fprintf(out, MsgBuiltFormat, version.Date)
			}
		},
	}
}

func newMergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "merge <primary> [assemblies...]",
		Short:   MsgMergeShort,
		Long:    MsgMergeLong,
		Example: MsgMergeExample,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := newRenderer(cmd)
			if err != nil {
				return err
			}

			settings, err := config.LoadFromDir("")
			if err != nil {
				return fmt.Errorf(MsgErrLoadConfig, err)
			}

			mergeOpts := weld.MergeOptionsFrom(settings)
			applyMergeFlags(cmd, &mergeOpts)

			flags := cmd.Flags()
			packagesRoot, _ := flags.GetString("packages-root")
			orderFile, _ := flags.GetString("order-file")
			noRecord, _ := flags.GetBool("no-record")
			toolFlavor, _ := flags.GetString("tool")
			toolPath, _ := flags.GetString("tool-path")
			searchDirs, _ := flags.GetStringArray("lib")
			timeout, _ := flags.GetDuration("timeout")
			dryRun, _ := flags.GetBool("dry-run")

			log.Info().
				Int("inputs", len(args)).
				Bool("dryRun", dryRun).
				Msg("Merging assemblies")

			result, err := weld.Run(cmd.Context(), weld.RunOptions{
				Inputs:       args,
				PackagesRoot: packagesRoot,
				OrderFile:    orderFile,
				NoRecord:     noRecord,
				Merge:        mergeOpts,
				ToolFlavor:   toolFlavor,
				ToolPath:     toolPath,
				SearchDirs:   searchDirs,
				Timeout:      timeout,
				DryRun:       dryRun,
				Settings:     settings,
			})
			if err != nil {
				return err
			}

			if err := renderer.RenderResult(result); err != nil {
				return err
			}

			if !result.Success() {
				// hand the tool's exit code straight back to the build
				os.Exit(result.ExitCode)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringP("out", "o", "", MsgFlagOut)
	flags.String("target", "", MsgFlagTarget)
	flags.String("keyfile", "", MsgFlagKeyFile)
	flags.Bool("delaysign", false, MsgFlagDelaySign)
	flags.String("internalize", "", MsgFlagInternalize)
	flags.Lookup("internalize").NoOptDefVal = "true"
	flags.Bool("union", false, MsgFlagUnion)
	flags.Bool("copyattrs", false, MsgFlagCopyAttrs)
	flags.Bool("allow-dup", false, MsgFlagAllowDup)
	flags.Bool("ndebug", false, MsgFlagNDebug)
	flags.Bool("xmldocs", false, MsgFlagXMLDocs)
	flags.Bool("closed", false, MsgFlagClosed)
	flags.Bool("wildcards", false, MsgFlagWildcards)
	flags.String("platform", "", MsgFlagPlatform)
	flags.String("ver", "", MsgFlagVer)
	flags.String("log", "", MsgFlagToolLog)
	flags.String("packages-root", "", MsgFlagPackagesRoot)
	flags.String("order-file", "", MsgFlagOrderFile)
	flags.Bool("no-record", false, MsgFlagNoRecord)
	flags.String("tool", "", MsgFlagTool)
	flags.String("tool-path", "", MsgFlagToolPath)
	flags.StringArray("lib", nil, MsgFlagLib)
	flags.Duration("timeout", 0, MsgFlagTimeout)
	flags.Bool("dry-run", false, MsgFlagDryRun)
	flags.StringP("format", "f", "auto", MsgFlagFormat)

	return cmd
}

// applyMergeFlags overlays every tool switch the user set explicitly
// onto the settings-seeded options. Untouched flags leave the configured
// defaults alone.
func applyMergeFlags(cmd *cobra.Command, opts *mergetool.Options) {
	flags := cmd.Flags()

	if flags.Changed("out") {
		opts.Out, _ = flags.GetString("out")
	}
	if flags.Changed("target") {
		s, _ := flags.GetString("target")
		opts.Target = mergetool.TargetKind(s)
	}
	if flags.Changed("keyfile") {
		opts.KeyFile, _ = flags.GetString("keyfile")
	}
	if flags.Changed("delaysign") {
		opts.DelaySign, _ = flags.GetBool("delaysign")
	}
	if flags.Changed("internalize") {
		// bare --internalize carries the NoOptDefVal sentinel; any other
		// value names the exclude file
		v, _ := flags.GetString("internalize")
		opts.Internalize = true
		if v != "true" {
			opts.InternalizeExclude = v
		}
	}
	if flags.Changed("union") {
		opts.Union, _ = flags.GetBool("union")
	}
	if flags.Changed("copyattrs") {
		opts.CopyAttributes, _ = flags.GetBool("copyattrs")
	}
	if flags.Changed("allow-dup") {
		opts.AllowDup, _ = flags.GetBool("allow-dup")
	}
	if flags.Changed("ndebug") {
		ndebug, _ := flags.GetBool("ndebug")
		opts.DebugInfo = !ndebug
	}
	if flags.Changed("xmldocs") {
		opts.XMLDocs, _ = flags.GetBool("xmldocs")
	}
	if flags.Changed("closed") {
		opts.Closed, _ = flags.GetBool("closed")
	}
	if flags.Changed("wildcards") {
		opts.Wildcards, _ = flags.GetBool("wildcards")
	}
	if flags.Changed("platform") {
		opts.Platform, _ = flags.GetString("platform")
	}
	if flags.Changed("ver") {
		opts.Version, _ = flags.GetString("ver")
	}
	if flags.Changed("log") {
		opts.LogFile, _ = flags.GetString("log")
	}
}

func newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "plan <primary> [assemblies...]",
		Short:   MsgPlanShort,
		Long:    MsgPlanLong,
		Example: MsgPlanExample,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := newRenderer(cmd)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			packagesRoot, _ := flags.GetString("packages-root")
			orderFile, _ := flags.GetString("order-file")
			noRecord, _ := flags.GetBool("no-record")

			result, err := weld.Plan(weld.PlanOptions{
				Inputs:       args,
				PackagesRoot: packagesRoot,
				OrderFile:    orderFile,
				NoRecord:     noRecord,
			})
			if err != nil {
				return err
			}

			return renderer.RenderResult(result)
		},
	}

	flags := cmd.Flags()
	flags.String("packages-root", "", MsgFlagPackagesRoot)
	flags.String("order-file", "", MsgFlagOrderFile)
	flags.Bool("no-record", false, MsgFlagNoRecord)
	flags.StringP("format", "f", "auto", MsgFlagFormat)

	return cmd
}

func newLocateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locate",
		Short: MsgLocateShort,
		Long:  MsgLocateLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := newRenderer(cmd)
			if err != nil {
				return err
			}

			settings, err := config.LoadFromDir("")
			if err != nil {
				return fmt.Errorf(MsgErrLoadConfig, err)
			}

			p, err := paths.New("")
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			flavor, _ := flags.GetString("tool")
			if flavor == "" {
				flavor = settings.Tool.Name
			}
			toolPath, _ := flags.GetString("tool-path")
			if toolPath == "" {
				toolPath = settings.Tool.Path
			}
			packagesRoot, _ := flags.GetString("packages-root")
			if packagesRoot == "" {
				packagesRoot = settings.Packages.Root
			}

			toolNames := settings.Tool.Names
			if flags.Changed("tool") || len(toolNames) == 0 {
				toolNames = mergetool.ExecutableNames(flavor)
			}

			outcome, err := locator.New().Run(locator.Request{
				WorkDir:      p.WorkDir(),
				PackagesRoot: packagesRoot,
				ExplicitPath: toolPath,
				ToolNames:    toolNames,
				FS:           filesystem.NewOS(),
			})
			if err != nil {
				return err
			}

			if err := renderer.RenderResult(outcome); err != nil {
				return err
			}

			if !outcome.Found {
				return errors.Newf(errors.ErrToolNotFound,
					"no merge tool found (tried %s)", strings.Join(toolNames, ", "))
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.String("tool", "", MsgFlagTool)
	flags.String("tool-path", "", MsgFlagToolPath)
	flags.String("packages-root", "", MsgFlagPackagesRoot)
	flags.StringP("format", "f", "auto", MsgFlagFormat)

	return cmd
}

func newGenConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Example: MsgGenConfigExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			dir, _ := flags.GetString("dir")
			withOrder, _ := flags.GetBool("order")
			force, _ := flags.GetBool("force")
			effective, _ := flags.GetBool("effective")

			if effective {
				settings, err := config.LoadFromDir("")
				if err != nil {
					return fmt.Errorf(MsgErrLoadConfig, err)
				}
				content, err := config.EffectiveConfigContent(settings)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), content)
				return nil
			}

			configPath := filepath.Join(dir, paths.ConfigFileName)
			if err := writeStarterFile(configPath, config.GenerateConfigContent(), force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgFileWritten, configPath)

			if withOrder {
				orderPath := filepath.Join(dir, paths.OrderFileName)
				if err := writeStarterFile(orderPath, config.GenerateOrderFileContent(), force); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), MsgFileWritten, orderPath)
			}

			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringP("dir", "d", ".", MsgFlagGenDir)
	flags.Bool("order", false, MsgFlagGenOrder)
	flags.Bool("force", false, MsgFlagGenForce)
	flags.Bool("effective", false, MsgFlagGenEffective)

	return cmd
}

// writeStarterFile writes a starter file, refusing to clobber an
// existing one unless forced.
func writeStarterFile(path, content string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.Newf(errors.ErrFileAccess,
				"%s already exists (use --force to overwrite)", path)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to write %s", path)
	}
	return nil
}
