package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/Taishi66/kdash/internal/backend"
	"github.com/Taishi66/kdash/internal/config"
	"github.com/Taishi66/kdash/internal/domain"
	"github.com/Taishi66/kdash/internal/i18n"
	"github.com/Taishi66/kdash/internal/tui"
)

var version = "dev"

type options struct {
	server     string
	namespace  string
	configPath string
	lang       string
	logFile    string
	verbosity  int
}

func main() {
	if err := newRootCommand(os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand(out io.Writer) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "kdash",
		Short:         "Terminal dashboard for a Kubernetes dashboard API",
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.server, "server", "", "dashboard API base URL (default from config, then "+config.DefaultServer+")")
	flags.StringVarP(&opts.namespace, "namespace", "n", "", "namespace to open, empty for all namespaces")
	flags.StringVar(&opts.configPath, "config", config.DefaultPath(), "path to the config file")
	flags.StringVar(&opts.lang, "lang", "", "UI language, e.g. en or fr (default from config, then $LANG)")
	flags.StringVar(&opts.logFile, "log-file", "", "write logs to this file; logs are discarded when empty")
	flags.IntVarP(&opts.verbosity, "verbosity", "v", 0, "log verbosity")

	cmd.AddCommand(newVersionCommand(out))
	return cmd
}

func newVersionCommand(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the kdash version",
		Args:  cobra.NoArgs,
		Run: func(*cobra.Command, []string) {
			fmt.Fprintf(out, "kdash %s\n", version)
		},
	}
}

func run(cmd *cobra.Command, opts *options) error {
	logOut := io.Discard
	if opts.logFile != "" {
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return errors.Wrap(err, "opening log file")
		}
		defer f.Close()
		logOut = f
	}
	if err := initKlog(logOut, opts.verbosity); err != nil {
		return err
	}
	defer klog.Flush()

	cfg, err := config.LoadConfigFrom(opts.configPath)
	if err != nil {
		return errors.Wrapf(err, "loading config %s", opts.configPath)
	}
	applyOverrides(cfg, cmd, opts)

	tag := i18n.Init(cfg.Language)
	klog.V(1).Infof("kdash %s: server %s, namespace %q, language %s", version, cfg.Server, cfg.Namespace, tag)

	factory := func() (domain.Gateway, error) {
		return backend.NewClient(cfg.Server)
	}

	var m tui.Model
	client, err := backend.NewClient(cfg.Server)
	if err != nil {
		// Client creation failed -- launch TUI in error mode
		klog.Errorf("creating client: %v", err)
		m = tui.NewModelWithError(err, factory, cfg)
	} else {
		m = tui.NewModel(client, factory, cfg)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "running dashboard")
	}
	return nil
}

// applyOverrides lets flags set on the command line win over the config file.
func applyOverrides(cfg *config.AppConfig, cmd *cobra.Command, opts *options) {
	flags := cmd.Flags()
	if flags.Changed("server") {
		cfg.Server = opts.server
	}
	if flags.Changed("namespace") {
		cfg.Namespace = opts.namespace
	}
	if flags.Changed("lang") {
		cfg.Language = opts.lang
	}
	if cfg.Language == "" {
		cfg.Language = os.Getenv("LANG")
	}
}
