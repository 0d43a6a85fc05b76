package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"l1gct/debug"
)

// app carries the per-invocation configuration shared by all subcommands.
type app struct {
	v *viper.Viper
}

// newRootCmd builds a fresh command tree. Each call gets its own viper
// instance so tests never share state.
func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:           "gctdump",
		Short:         "Decode and encode GCT jet candidate words",
		Long:          "gctdump renders Level-1 GCT jet words (rank, eta, phi, category, capture provenance) for debugging unpackers and emulators.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initConfig(cmd)
		},
	}

	root.PersistentFlags().String("config", "", "config file (default .gctdump.yaml)")
	root.PersistentFlags().String("format", formatText, "output format: text or json")
	_ = a.v.BindPFlag("format", root.PersistentFlags().Lookup("format"))

	root.AddCommand(a.decodeCmd(), a.encodeCmd(), a.blockCmd())
	return root
}

// initConfig resolves config file and GCTDUMP_* environment overrides.
// A missing default config file is fine; one that exists must parse, and an
// explicit --config must load.
func (a *app) initConfig(cmd *cobra.Command) error {
	a.v.SetEnvPrefix("GCTDUMP")
	a.v.AutomaticEnv()

	if cfgFile, _ := cmd.Flags().GetString("config"); cfgFile != "" {
		a.v.SetConfigFile(cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", cfgFile, err)
		}
		debug.DropMessage("CONFIG", a.v.ConfigFileUsed())
		return nil
	}

	a.v.SetConfigName(".gctdump")
	a.v.SetConfigType("yaml")
	a.v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		a.v.AddConfigPath(home)
	}
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
		return nil
	}
	debug.DropMessage("CONFIG", a.v.ConfigFileUsed())
	return nil
}

// format returns the resolved output format (flag > env > config > default).
func (a *app) format() string {
	return a.v.GetString("format")
}
