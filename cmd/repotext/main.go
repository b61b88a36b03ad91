package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/quantmind-br/repotext/internal/app"
	"github.com/quantmind-br/repotext/internal/config"
	"github.com/quantmind-br/repotext/internal/domain"
	"github.com/quantmind-br/repotext/internal/git"
	"github.com/quantmind-br/repotext/internal/utils"
	"github.com/quantmind-br/repotext/pkg/version"
)

const defaultDoctorLocator = "https://github.com/git-fixtures/basic"

var (
	cfgFile    string
	verbose    bool
	noProgress bool
	log        *utils.Logger

	// Dependencies for testing
	stdinIsTerminal = func() bool {
		fd := os.Stdin.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
	promptLocator = promptLocatorForm
	listRemote    = git.ListRemote
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error:"), err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "repotext [locator]",
	Short: "Extract comments and prose from a git repository into one text file",
	Long: `repotext shallow-clones a repository and concatenates its documentation
(.md, .txt) and the comment lines of its source files (.py, .js, .cpp, .c,
.java) into a single text file named owner_name.txt by default.

Comment detection is a line prefix heuristic: a line counts when, after
leading whitespace, it starts with "#", "//" or "/*".`,
	Version:       version.Short(),
	Args:          cobra.MaximumNArgs(1),
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.repotext/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.Flags().StringP("output", "o", "", "Output file name (default owner_name.txt)")
	rootCmd.Flags().String("output-dir", ".", "Directory the output file is written to")
	rootCmd.Flags().Bool("sort", false, "Sort file paths before extraction")
	rootCmd.Flags().Bool("dry-run", false, "Extract without writing the output file")
	rootCmd.Flags().Duration("timeout", config.DefaultFetchTimeout, "Clone timeout (0 waits indefinitely)")
	rootCmd.Flags().BoolVar(&noProgress, "no-progress", false, "Disable the progress bar")

	_ = viper.BindPFlag("output.name", rootCmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("output.directory", rootCmd.Flags().Lookup("output-dir"))
	_ = viper.BindPFlag("output.dry_run", rootCmd.Flags().Lookup("dry-run"))
	_ = viper.BindPFlag("extract.sort", rootCmd.Flags().Lookup("sort"))
	_ = viper.BindPFlag("fetch.timeout", rootCmd.Flags().Lookup("timeout"))

	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

func newLogger(cfg *config.Config) *utils.Logger {
	level, format := config.DefaultLogLevel, config.DefaultLogFormat
	if cfg != nil {
		level, format = cfg.Logging.Level, cfg.Logging.Format
	}
	return utils.NewLogger(utils.LoggerOptions{
		Level:   level,
		Format:  format,
		Verbose: verbose,
	})
}

func run(cmd *cobra.Command, args []string) error {
	log = newLogger(nil)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log = newLogger(cfg)

	var locator string
	switch {
	case len(args) == 1:
		locator = args[0]
	case stdinIsTerminal():
		locator, err = promptLocator()
		if err != nil {
			return err
		}
	default:
		return cmd.Help()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	go func() {
		select {
		case <-sigCh:
			log.Info().Msg("Shutting down gracefully...")
			cancel()
		case <-ctx.Done():
		}
	}()

	opts := app.AggregatorOptions{
		Config: cfg,
		Logger: log.WithComponent("aggregator"),
		Status: cmd.OutOrStdout(),
	}
	if cfg.Extract.Progress && !noProgress {
		opts.Progress = cmd.ErrOrStderr()
	}
	if verbose {
		opts.CloneProgress = cmd.ErrOrStderr()
	}

	aggregator, err := app.NewAggregator(opts)
	if err != nil {
		return fmt.Errorf("failed to create aggregator: %w", err)
	}

	result, err := aggregator.Run(ctx, domain.RunOptions{
		Locator:    locator,
		OutputName: cfg.Output.Name,
		DryRun:     cfg.Output.DryRun,
		Sort:       cfg.Extract.Sort,
	})
	if err != nil {
		if domain.IsFetchError(err) {
			log.Error().Err(err).Str("locator", locator).Msg("Clone failed")
		}
		return err
	}

	green := color.New(color.FgGreen)
	green.Fprintf(cmd.OutOrStdout(), "Formatted text file created: %s (%d fragments from %d files)\n",
		result.OutputPath, result.Fragments, result.FilesWalked)
	return nil
}

// promptLocatorForm asks for the repository locator interactively
func promptLocatorForm() (string, error) {
	var locator string
	err := huh.NewInput().
		Title("Repository URL").
		Description("Repository to extract, e.g. https://github.com/owner/name").
		Placeholder("https://github.com/owner/name").
		Value(&locator).
		Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return errors.New("a repository URL is required")
			}
			return nil
		}).
		Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(locator), nil
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the effective configuration (defaults, config file, REPOTEXT_*
environment and flags merged) as YAML. With --init the defaults are written
to ~/.repotext/config.yaml instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if initFlag, _ := cmd.Flags().GetBool("init"); initFlag {
			force, _ := cmd.Flags().GetBool("force")
			path, err := writeDefaultConfig(force)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s\n", path)
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return encodeConfig(cmd.OutOrStdout(), cfg)
	},
}

func init() {
	configCmd.Flags().Bool("init", false, "Write the default configuration file")
	configCmd.Flags().Bool("force", false, "Overwrite an existing configuration file with --init")
}

func encodeConfig(w io.Writer, cfg *config.Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}

// writeDefaultConfig writes the default configuration to the user config
// file. An existing file is kept unless force is set.
func writeDefaultConfig(force bool) (string, error) {
	path := config.ConfigFilePath()
	if _, err := os.Stat(path); err == nil && !force {
		return "", fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
	}

	if err := config.EnsureConfigDir(); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	var buf bytes.Buffer
	if err := encodeConfig(&buf, config.Default()); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("failed to write config: %w", err)
	}
	return path, nil
}

var doctorCmd = &cobra.Command{
	Use:   "doctor [locator]",
	Short: "Check the environment and remote reachability",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		ok := color.New(color.FgGreen).SprintFunc()
		warn := color.New(color.FgYellow).SprintFunc()
		fail := color.New(color.FgRed).SprintFunc()

		fmt.Fprintln(out, "Checking environment...")
		allPassed := true

		fmt.Fprint(out, "  Config file: ")
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(out, "%s (%v)\n", warn("WARN"), err)
			cfg = config.Default()
		} else {
			fmt.Fprintln(out, ok("OK"))
		}

		fmt.Fprint(out, "  Temp directory: ")
		if checkWritable(os.TempDir()) {
			fmt.Fprintf(out, "%s (%s)\n", ok("OK"), os.TempDir())
		} else {
			fmt.Fprintln(out, fail("FAILED"))
			allPassed = false
		}

		fmt.Fprint(out, "  Output directory: ")
		outDir := utils.ExpandPath(cfg.Output.Directory)
		if checkWritable(outDir) {
			fmt.Fprintf(out, "%s (%s)\n", ok("OK"), outDir)
		} else {
			fmt.Fprintln(out, fail("FAILED"))
			allPassed = false
		}

		locator := defaultDoctorLocator
		if len(args) == 1 {
			locator = args[0]
		}
		fmt.Fprintf(out, "  Remote %s: ", locator)
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if refs, err := listRemote(ctx, locator); err == nil {
			fmt.Fprintf(out, "%s (%d refs)\n", ok("OK"), refs)
		} else {
			fmt.Fprintf(out, "%s (%v)\n", fail("FAILED"), err)
			allPassed = false
		}

		fmt.Fprintln(out)
		if allPassed {
			fmt.Fprintln(out, "All checks passed!")
		} else {
			fmt.Fprintln(out, "Some checks failed. Please resolve the issues above.")
		}
		return nil
	},
}

// checkWritable checks if a file can be created in dir
func checkWritable(dir string) bool {
	f, err := os.CreateTemp(dir, ".repotext_test_write_*")
	if err != nil {
		return false
	}
	name := f.Name()
	f.Close()
	os.Remove(filepath.Clean(name))
	return true
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.Full())
	},
}
