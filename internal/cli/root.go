// Package cli implements the propedit command line.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"propedit/internal/config"
	"propedit/internal/logging"
)

// Version is the release version printed by the version command.
const Version = "0.3.0"

// app carries the state shared by all commands once the root command has
// loaded the configuration.
type app struct {
	cfgFile string
	cfg     *config.Config
	log     *logging.Logger
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	root, _ := newRootCmd()
	return root
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{}
	root := &cobra.Command{
		Use:   "propedit",
		Short: "Terminal property editor for celestial body documents",
		Long: `propedit edits TOML or JSON documents through a form generated from
the fields of the document type. Fields holding text that does not parse
keep the text until it does; the stored value never changes underneath it.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgFile, "config", "c", "", "config file (default is "+config.Dir()+"/config.toml)")
	pf.String("log-level", "", "log level: DEBUG, INFO, WARN or ERROR")
	pf.String("log-file", "", "write JSON logs to this file")
	pf.Bool("no-color", false, "disable colors")

	root.AddCommand(
		newEditCmd(a),
		newShowCmd(a),
		newInitCmd(a),
		newVersionCmd(),
	)
	return root, a
}

func (a *app) setup(cmd *cobra.Command) error {
	v, err := config.New(a.cfgFile)
	if err != nil {
		return err
	}
	pf := cmd.Flags()
	for key, flag := range map[string]string{
		"log.level":   "log-level",
		"log.file":    "log-file",
		"ui.no_color": "no-color",
	} {
		if f := pf.Lookup(flag); f != nil && f.Changed {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("bind flag %s: %w", flag, err)
			}
		}
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if cfg.Log.File == "" {
		a.log = logging.NopLogger()
		return nil
	}
	l, err := logging.NewLogger(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}
	a.log = l.With("pid", os.Getpid())
	return nil
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	root, a := newRootCmd()
	if err := a.run(root); err != nil {
		return 1
	}
	return 0
}

// run executes root and closes the log file whether or not the command
// failed.
func (a *app) run(root *cobra.Command) error {
	err := root.Execute()
	if a.log == nil {
		return err
	}
	if err != nil {
		a.log.Error("command failed", "err", err)
	}
	if cerr := a.log.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}
