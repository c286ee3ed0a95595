// Command pharmlit searches PubMed for research papers whose authors
// are affiliated with pharmaceutical or biotech companies.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/henrybloomingdale/pharmlit-cli/internal/ncbi"
	"github.com/henrybloomingdale/pharmlit-cli/internal/output"
	"github.com/henrybloomingdale/pharmlit-cli/internal/pubmed"
	"github.com/henrybloomingdale/pharmlit-cli/internal/report"
)

var (
	flagFile        string
	flagDebug       bool
	flagNoPrefilter bool
	flagJSON        bool
	flagHuman       bool
	flagLimit       int
	flagAPIKey      string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pharmlit <query>",
	Short: "Find PubMed papers with pharma/biotech company affiliations",
	Long: `pharmlit searches PubMed for research papers from pharmaceutical and
biotech companies. The query is expanded with author-affiliation clauses
so academic-only papers are filtered out at search time.

Examples:
  pharmlit "cancer therapy"
  pharmlit "diabetes treatment" --file results.csv
  pharmlit "immunotherapy" --debug
  pharmlit "cancer therapy" --no-prefilter`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Flags().StringVarP(&flagFile, "file", "f", "", "Save results to CSV file")
	rootCmd.Flags().BoolVarP(&flagDebug, "debug", "d", false, "Enable debug logging")
	rootCmd.Flags().BoolVar(&flagNoPrefilter, "no-prefilter", false, "Disable affiliation pre-filtering at search level (slower but more comprehensive)")
	rootCmd.Flags().BoolVar(&flagJSON, "json", false, "Output as structured JSON")
	rootCmd.Flags().BoolVar(&flagHuman, "human", false, "Rich terminal table output with color")
	rootCmd.Flags().IntVar(&flagLimit, "limit", 200, "Maximum number of results")
	rootCmd.Flags().StringVar(&flagAPIKey, "api-key", "", "NCBI API key (or set PHARMLIT_API_KEY)")
}

// initConfig loads an optional pharmlit.yaml and PHARMLIT_* environment
// variables for api_key, email, and tool.
func initConfig() {
	viper.SetConfigName("pharmlit")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "pharmlit"))
	}

	viper.SetEnvPrefix("PHARMLIT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		slog.Debug("using config file", "path", viper.ConfigFileUsed())
	}
}

func setupLogging(debug bool) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

func newClient() *pubmed.Client {
	var opts []ncbi.Option

	apiKey := flagAPIKey
	if apiKey == "" {
		apiKey = viper.GetString("api_key")
	}
	if apiKey != "" {
		opts = append(opts, ncbi.WithAPIKey(apiKey))
	}
	if email := viper.GetString("email"); email != "" {
		opts = append(opts, ncbi.WithEmail(email))
	}
	if tool := viper.GetString("tool"); tool != "" {
		opts = append(opts, ncbi.WithTool(tool))
	}

	return pubmed.NewClientWithBase(ncbi.NewClient(opts...))
}

func run(cmd *cobra.Command, args []string) error {
	setupLogging(flagDebug)

	query := strings.Join(args, " ")
	filterMsg := "with pre-filtering"
	if flagNoPrefilter {
		filterMsg = "without pre-filtering"
	}
	fmt.Fprintf(os.Stderr, "Searching PubMed for: %q (%s)...\n", query, filterMsg)

	client := newClient()
	result, err := client.FindPapers(cmd.Context(), query, pubmed.FindOptions{
		Limit:     flagLimit,
		Prefilter: !flagNoPrefilter,
	})
	if err != nil {
		return fmt.Errorf("accessing PubMed: %w", err)
	}

	records := report.Build(result.Papers)
	return output.Write(os.Stdout, records, result.Total, output.Config{
		JSON:    flagJSON,
		Human:   flagHuman,
		CSVFile: flagFile,
	})
}
