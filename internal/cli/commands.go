// =============================================================================
// internal/cli/commands.go - CLI command definitions
// =============================================================================
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bryanCE/dnsgrid/internal/config"
	"github.com/bryanCE/dnsgrid/internal/dns"
	"github.com/bryanCE/dnsgrid/internal/grid"
	"github.com/bryanCE/dnsgrid/internal/output"
	"github.com/bryanCE/dnsgrid/pkg/nameservers"
)

// NewCompareCommand creates the compare subcommand.
func NewCompareCommand() *cobra.Command {
	var (
		serversFlag  string
		providerFlag string
		typeFlag     string
		actionFlag   string
		workersFlag  int
		retriesFlag  int
		timeoutFlag  time.Duration
		qpsFlag      int
		fileFlag     string
		formatFlag   string
		noColorFlag  bool
		configFlag   string
		verboseFlag  bool
	)

	cmd := &cobra.Command{
		Use:   "compare [names...]",
		Short: "Query names against multiple DNS servers and compare answers",
		Long: `Query a set of DNS names against a set of DNS servers concurrently and
render the results as a color-annotated comparison table. Cells are
highlighted by majority/minority agreement, by difference from the first
server, or by fastest response time, depending on the action.

Names are taken from the arguments, from --file, or from standard input.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(verboseFlag)

			cfg, err := loadConfig(configFlag)
			if err != nil {
				return err
			}
			applyFlagOverrides(cmd, cfg, workersFlag, retriesFlag, timeoutFlag, qpsFlag,
				typeFlag, actionFlag, formatFlag, noColorFlag)

			action, err := grid.ParseAction(cfg.Action)
			if err != nil {
				return err
			}
			recordType, err := dns.ParseRecordType(cfg.RecordType)
			if err != nil {
				return err
			}
			format, err := output.ParseFormat(cfg.Format)
			if err != nil {
				return err
			}

			servers, err := resolveServers(serversFlag, providerFlag, cfg.Servers)
			if err != nil {
				return err
			}
			names, err := ReadNames(args, fileFlag)
			if err != nil {
				return err
			}

			resolver := dns.NewResolverWithOptions(dns.QueryOptions{
				Timeout:      cfg.Timeout.Std(),
				Retries:      cfg.Retries,
				UseRecursion: true,
			})
			dispatcher := grid.NewDispatcher(resolver, grid.DispatcherOptions{
				Workers: cfg.Workers,
				QPS:     cfg.QPS,
				Logger:  slog.Default(),
			})

			slog.Debug("dispatching queries",
				"names", len(names), "servers", len(servers),
				"type", recordType, "workers", cfg.Workers)

			matrix, err := dispatcher.Run(cmd.Context(), names, servers, string(recordType))
			if err != nil {
				return err
			}

			report, err := grid.NewReport(matrix, action, cfg.Colorize)
			if err != nil {
				return err
			}

			formatter := output.NewFormatter(format, cfg.Colorize)
			return formatter.FormatReport(report, os.Stdout)
		},
	}

	// Add flags
	cmd.Flags().StringVarP(&serversFlag, "servers", "s", "", "Servers to query (comma-separated host[:port])")
	cmd.Flags().StringVarP(&providerFlag, "providers", "p", "", "DNS providers to query (comma-separated: google,cloudflare,quad9,opendns)")
	cmd.Flags().StringVarP(&typeFlag, "type", "t", "A", "Record type to query")
	cmd.Flags().StringVarP(&actionFlag, "action", "a", string(grid.ActionShowAddresses), "What to show per cell (show-addresses, compare-addresses, show-timings)")
	cmd.Flags().IntVar(&workersFlag, "workers", grid.DefaultWorkers, "Maximum queries in flight")
	cmd.Flags().IntVar(&retriesFlag, "retries", 2, "Attempts per query")
	cmd.Flags().DurationVar(&timeoutFlag, "timeout", 5*time.Second, "Per-attempt query timeout")
	cmd.Flags().IntVar(&qpsFlag, "qps", 0, "Query rate limit (0 for unlimited)")
	cmd.Flags().StringVar(&fileFlag, "file", "", "File with names to query, one per line")
	cmd.Flags().StringVarP(&formatFlag, "format", "f", "table", "Output format (table, json, csv)")
	cmd.Flags().BoolVar(&noColorFlag, "no-color", false, "Disable colorization and the X failure marker")
	cmd.Flags().StringVar(&configFlag, "config", "", "YAML config file with run defaults")
	cmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging")

	return cmd
}

// NewServersCommand creates the servers subcommand, which lists the
// built-in public resolver catalog.
func NewServersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "servers",
		Short: "List the built-in public DNS server catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			table := output.NewTable([]string{"Provider", "Name", "Address"})
			for provider := range nameservers.CommonNameservers {
				for _, server := range nameservers.GetProviderNameservers(provider) {
					table.AddRow([]string{server.Provider, server.Name, server.Address()})
				}
			}
			return table.Render(os.Stdout)
		},
	}
}

// loadConfig loads the config file when given, built-in defaults otherwise.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// applyFlagOverrides copies explicitly-set flags over the loaded config.
// Flags beat the config file, which beats the built-in defaults.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config,
	workers, retries int, timeout time.Duration, qps int,
	recordType, action, format string, noColor bool) {
	if cmd.Flags().Changed("workers") {
		cfg.Workers = workers
	}
	if cmd.Flags().Changed("retries") {
		cfg.Retries = retries
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout = config.Duration(timeout)
	}
	if cmd.Flags().Changed("qps") {
		cfg.QPS = qps
	}
	if cmd.Flags().Changed("type") {
		cfg.RecordType = recordType
	}
	if cmd.Flags().Changed("action") {
		cfg.Action = action
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = format
	}
	if noColor {
		cfg.Colorize = false
	}
}

// resolveServers picks the server list: the --servers flag wins, then
// --providers, then the config file, then the default catalog.
func resolveServers(serversFlag, providerFlag string, configured []string) ([]string, error) {
	if serversFlag != "" {
		var servers []string
		for _, server := range strings.Split(serversFlag, ",") {
			server = strings.TrimSpace(server)
			if server != "" {
				servers = append(servers, server)
			}
		}
		if len(servers) == 0 {
			return nil, fmt.Errorf("no servers given in --servers")
		}
		return servers, nil
	}

	if providerFlag != "" {
		var servers []string
		for _, provider := range strings.Split(providerFlag, ",") {
			provider = strings.TrimSpace(provider)
			addresses := nameservers.GetProviderAddresses(provider)
			if addresses == nil {
				return nil, fmt.Errorf("unknown provider %q", provider)
			}
			servers = append(servers, addresses...)
		}
		return servers, nil
	}

	if len(configured) > 0 {
		return configured, nil
	}

	return nameservers.GetDefaultAddresses(), nil
}

// setupLogging installs the process-wide slog handler.
func setupLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
