package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/chinmay1088/cryptopay/account"
	"github.com/chinmay1088/cryptopay/api"
	"github.com/chinmay1088/cryptopay/config"
	"github.com/chinmay1088/cryptopay/logger"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// environment bundles what an API command needs
type environment struct {
	cfg      *config.Config
	manager  *account.Manager
	network  string
	client   *api.Client
	log      zerolog.Logger
	registry *prometheus.Registry
}

type tokenSource interface {
	Network() string
	Token() (string, error)
}

func newEnvironment(cmd *cobra.Command) (*environment, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	manager, err := account.NewManager()
	if err != nil {
		return nil, err
	}

	env := &environment{
		cfg:     cfg,
		manager: manager,
		network: resolveNetwork(cfg, manager),
		log:     newLogger(cmd, cfg),
	}

	token, err := resolveToken(cfg, manager, env.network)
	if err != nil {
		return nil, err
	}

	baseURL := resolveBaseURL(cfg, env.network)
	opts := []api.Option{
		api.WithBaseURL(baseURL),
		api.WithTimeout(cfg.Timeout),
		api.WithLogger(env.log),
	}

	cache, err := newRedisAssetCache(cfg, baseURL)
	if err != nil {
		return nil, err
	}
	if cache != nil {
		opts = append(opts, api.WithAssetCache(cache))
	}

	if cfg.Metrics {
		env.registry = prometheus.NewRegistry()
		opts = append(opts, api.WithMetrics(env.registry))
	}

	env.client, err = api.NewClient(token, opts...)
	if err != nil {
		return nil, err
	}
	return env, nil
}

// finish prints request counters when metrics are enabled
func (e *environment) finish(out io.Writer) {
	if e.registry == nil {
		return
	}
	families, err := e.registry.Gather()
	if err != nil {
		e.log.Warn().Err(err).Msg("gather metrics")
		return
	}
	writeRequestCounts(out, families)
}

func (e *environment) isTestnet() bool {
	return e.network == account.NetworkTestnet
}

func newLogger(cmd *cobra.Command, cfg *config.Config) zerolog.Logger {
	level := logger.ParseLevel(cfg.LogLevel)
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = zerolog.DebugLevel
	}
	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		level = zerolog.ErrorLevel
	}
	return logger.New(logger.Options{Level: level, Format: cfg.LogFormat})
}

func resolveNetwork(cfg *config.Config, manager tokenSource) string {
	if cfg.Network != "" {
		return cfg.Network
	}
	return manager.Network()
}

func resolveBaseURL(cfg *config.Config, network string) string {
	if cfg.BaseURL != "" {
		return cfg.BaseURL
	}
	return api.BaseURLForNetwork(network)
}

// resolveToken prefers the environment over the stored vault. A stored token
// only serves the network it was saved for.
func resolveToken(cfg *config.Config, manager tokenSource, network string) (string, error) {
	if cfg.APIToken != "" {
		return cfg.APIToken, nil
	}
	if manager.Network() != network {
		return "", fmt.Errorf("no stored API token for %s. Set %s_API_TOKEN or run 'cryptopay network %s'", network, config.EnvPrefix, network)
	}
	return manager.Token()
}

// newRedisAssetCache returns nil when no redis URL is configured. The entry is
// scoped by base URL so a custom gateway never shares the mainnet list.
func newRedisAssetCache(cfg *config.Config, baseURL string) (*api.RedisAssetCache, error) {
	if cfg.RedisURL == "" {
		return nil, nil
	}
	return api.NewRedisAssetCacheFromURL(cfg.RedisURL, baseURL, api.AssetCacheTTL)
}

func writeRequestCounts(out io.Writer, families []*dto.MetricFamily) {
	var lines []string
	for _, family := range families {
		if family.GetName() != "cryptopay_requests_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			labels := make([]string, 0, len(metric.GetLabel()))
			for _, label := range metric.GetLabel() {
				labels = append(labels, label.GetName()+"="+label.GetValue())
			}
			lines = append(lines, fmt.Sprintf("   %s %.0f", strings.Join(labels, " "), metric.GetCounter().GetValue()))
		}
	}
	if len(lines) == 0 {
		return
	}
	sort.Strings(lines)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "📈 API requests:")
	for _, line := range lines {
		fmt.Fprintln(out, line)
	}
}
