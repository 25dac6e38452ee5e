package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/zlobste/ip6pool/internal/config"
	"github.com/zlobste/ip6pool/internal/logging"
	"github.com/zlobste/ip6pool/internal/service"
	"github.com/zlobste/ip6pool/ipv4"
	"github.com/zlobste/ip6pool/ipv6"
)

type outputFormat string

const (
	outHuman outputFormat = "human"
	outJSON  outputFormat = "json"
	outYAML  outputFormat = "yaml"
)

// Version is set at build time.
var Version = "edge"

// app carries per-invocation state from the root command to subcommands.
type app struct {
	entropy io.Reader

	configPath string
	logFile    string
	verbosity  int
	output     string

	cfg    config.Config
	logger logr.Logger
	sync   func() error
	svc    service.Service
}

// Execute runs the root command tree.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// NewRootCmd builds the ip6pool command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(nil)
}

// newRootCmd builds the tree with an explicit entropy source; nil means
// crypto/rand.
func newRootCmd(entropy io.Reader) *cobra.Command {
	a := &app{entropy: entropy, logger: logr.Discard(), sync: func() error { return nil }}

	cmd := &cobra.Command{
		Use:               "ip6pool",
		Short:             "IPv6/IPv4 address pool generator",
		Long:              "ip6pool generates random IPv6 addresses inside a prefix, random IPv4 addresses and modified EUI-64 addresses, and saves them as text, JSON, CSV or YAML.",
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { _ = a.sync() },
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to a YAML config file")
	flags.StringVar(&a.logFile, "log-file", "", "log file path, '-' for stderr (default ~/"+logging.DefaultFile+")")
	flags.IntVarP(&a.verbosity, "verbosity", "v", 0, "verbosity level (0=info, 1=debug, -1=errors only)")
	flags.StringVarP(&a.output, "output", "o", string(outHuman), "output format: human|json|yaml")

	cmd.AddCommand(a.generateCmd())
	cmd.AddCommand(a.eui64Cmd())
	cmd.AddCommand(a.infoCmd())
	cmd.AddCommand(a.menuCmd())

	return cmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-file") {
		cfg.LogFile = a.logFile
	}
	if flags.Changed("verbosity") {
		cfg.Verbosity = a.verbosity
	}
	if flags.Changed("output") {
		cfg.Output = a.output
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	logger, sync, err := logging.New(logging.Options{File: cfg.LogFile, Verbosity: cfg.Verbosity})
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	a.logger, a.sync = logger, sync
	a.logger.V(1).Info("Starting", "version", Version, "command", cmd.Name(), "config", a.configPath)

	svc := service.New(ipv6.NewGenerator(a.entropy), ipv4.NewGenerator(a.entropy))
	a.svc = service.NewLogging(logger, svc)

	return nil
}

// invalid records a validation failure caught before reaching the service
// and returns it unchanged.
func invalid(logger logr.Logger, err error, keysAndValues ...any) error {
	logger.Error(err, "Invalid input", keysAndValues...)
	return err
}

func (a *app) render(w io.Writer, v any) error {
	switch outputFormat(a.cfg.Output) {
	case outHuman:
		renderHuman(w, v)
	case outJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(v)
	default:
		return errors.New("unknown output format")
	}
	return nil
}

func renderHuman(w io.Writer, v any) {
	switch t := v.(type) {
	case []string:
		for _, s := range t {
			fmt.Fprintln(w, s)
		}
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			fmt.Fprintf(w, "%s: %v\n", k, t[k])
		}
	default:
		fmt.Fprintln(w, v)
	}
}
