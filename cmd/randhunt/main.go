package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"regexp"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hupe1980/randhunt"
	"github.com/hupe1980/randhunt/handler"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "randhunt [config]",
	Short: "Research random symbol strings against a pattern",
	Long: `randhunt generates fixed-shape random symbol strings, tests each
against a regular expression, and reports which strings matched and how
often. An optional config file (json, yaml, or toml, detected by
extension) provides defaults; flags override it.`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the randhunt version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version)
	},
}

func init() {
	flags := rootCmd.Flags()
	flags.Uint64P("tries", "i", 0, "number of tries")
	flags.IntP("times", "t", 0, "alphabet repetitions per generated string")
	flags.StringP("regex", "r", "", "regex to detect hits, over the internal alphabet (WKCN)")
	flags.IntP("workers", "w", 0, "number of workers, 0 means number of logical CPUs")
	flags.DurationP("interval", "d", 500*time.Millisecond, "progress refresh interval")
	flags.Bool("sequential", false, "run on the calling goroutine without extra workers")
	flags.String("progress", "none", "progress display format (none|text|msgpack|msgpack-base64)")
	flags.String("log-level", "warn", "log level (debug|info|warn|error)")

	for _, name := range []string{
		"tries", "times", "regex", "workers",
		"interval", "sequential", "progress", "log-level",
	} {
		cobra.CheckErr(viper.BindPFlag(name, flags.Lookup(name)))
	}

	rootCmd.AddCommand(versionCmd)
}

func run(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		viper.SetConfigFile(args[0])
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %q: %w", args[0], err)
		}
	}

	expr := viper.GetString("regex")
	if expr == "" {
		return fmt.Errorf("regex is required (flag --regex or config key \"regex\")")
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return fmt.Errorf("compile regex %q: %w", expr, err)
	}

	level, err := parseLevel(viper.GetString("log-level"))
	if err != nil {
		return err
	}

	tries := viper.GetUint64("tries")
	if tries == 0 {
		return fmt.Errorf("tries is required (flag --tries or config key \"tries\")")
	}
	times := viper.GetInt("times")
	if times == 0 {
		return fmt.Errorf("times is required (flag --times or config key \"times\")")
	}

	b := randhunt.Research().
		Tries(tries).
		Times(times).
		Pattern(re).
		Workers(viper.GetInt("workers")).
		ProgressInterval(viper.GetDuration("interval")).
		Logger(randhunt.NewTextLogger(level))

	switch format := viper.GetString("progress"); format {
	case "none", "":
	case "text":
		b = b.ProgressHandler(handler.NewText(tries, os.Stderr).Handle)
	case "msgpack":
		b = b.ProgressHandler(handler.NewMsgpack(tries, os.Stdout).Handle)
	case "msgpack-base64":
		b = b.ProgressHandler(handler.NewMsgpackBase64(tries, os.Stdout).Handle)
	default:
		return fmt.Errorf("%q: unknown progress format", format)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var result *randhunt.Result
	if viper.GetBool("sequential") {
		result, err = b.RunSequential(ctx)
	} else {
		result, err = b.RunParallel(ctx)
	}
	if err != nil {
		return err
	}

	if result.Tries < tries {
		fmt.Fprintf(os.Stderr, "cancelled after %d of %d tries\n", result.Tries, tries)
	}

	fmt.Print(summary(result))

	return nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("%q: unknown log level", s)
	}
	return level, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
