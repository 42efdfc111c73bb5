package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/skyetel/config"
	"github.com/s0up4200/skyetel/skyetel"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *skyetel.Client

	// Command flags
	filterExpr string
	preset     string
	pageLimit  int
	pageOffset int
	query      string
	sortFields []string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "skyetel",
	Short: "A CLI for the Skyetel telephony API",
	Long: `skyetel is a CLI for the Skyetel telephony platform. It covers the
account balance and billing statements, the phone number inventory and
availability search, SIP endpoints, call recordings and transcriptions,
tenants, and traffic statistics.`,
	PersistentPreRunE: initializeApp,
}

// SetVersion records the build version on the root command.
func SetVersion(version, buildTime string) {
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	// Add subcommands
	rootCmd.AddCommand(balanceCmd)
	rootCmd.AddCommand(statementCmd)
	rootCmd.AddCommand(numbersCmd)
	rootCmd.AddCommand(recordingsCmd)
	rootCmd.AddCommand(transcriptionsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(endpointsCmd)
	rootCmd.AddCommand(tenantsCmd)
}

// initializeApp loads the configuration and creates the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	opts := []skyetel.Option{
		skyetel.WithRateLimit(cfg.RateLimit.Calls, cfg.RateLimit.Window),
	}
	if cfg.Skyetel.BaseURL != "" {
		opts = append(opts, skyetel.WithBaseURL(cfg.Skyetel.BaseURL))
	}
	if cfg.Skyetel.Timeout > 0 {
		opts = append(opts, skyetel.WithTimeout(cfg.Skyetel.Timeout))
	}

	client, err = skyetel.NewClient(cfg.Skyetel.SID, cfg.Skyetel.Secret, logger, opts...)
	if err != nil {
		return fmt.Errorf("failed to create Skyetel client: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format, color only on a real terminal
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// listOptions maps the shared paging flags onto the library's options.
func listOptions() skyetel.ListOptions {
	return skyetel.ListOptions{
		Limit:  pageLimit,
		Offset: pageOffset,
		Query:  query,
		Sort:   sortFields,
	}
}

func addListFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&pageLimit, "limit", 0, "items per page (default 10)")
	cmd.Flags().IntVar(&pageOffset, "offset", 0, "page offset")
	cmd.Flags().StringVarP(&query, "query", "q", "", "wildcard search across string fields")
	cmd.Flags().StringSliceVar(&sortFields, "sort", nil, "sort fields, prefix with - to reverse")
}

// getFilterExpression determines the filter expression to use
func getFilterExpression() (string, error) {
	// Priority: command line filter > named preset from config
	if filterExpr != "" {
		return filterExpr, nil
	}

	if preset != "" {
		if expression, ok := cfg.Filter[preset]; ok {
			return expression, nil
		}
		return "", fmt.Errorf("preset '%s' not found in config", preset)
	}

	return "", nil
}
