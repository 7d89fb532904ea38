package main

import (
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

// app carries the configuration shared by every sub command.
type app struct {
	v      *viper.Viper
	logger *log.Logger
}

// normalizeFlagName accepts --no_color for --no-color.
func normalizeFlagName(f *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: log.New()}

	rootCmd := &cobra.Command{
		Use:   "bstree",
		Short: "build binary search trees of integers and report on them",

		// SilenceUsage is an option to silence usage when an error occurs.
		SilenceUsage: true,
		// main logs the returned error.
		SilenceErrors: true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Once the flags are defined, we can bind config keys with flags.
			if err := a.v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			a.logger.SetOutput(cmd.ErrOrStderr())
			a.logger.SetFormatter(&prefixed.TextFormatter{DisableColors: a.v.GetBool("no-color")})
			if a.v.GetBool("debug") {
				a.logger.SetLevel(log.DebugLevel)
			}
			return nil
		},
	}

	rootCmd.SetGlobalNormalizationFunc(normalizeFlagName)
	rootCmd.PersistentFlags().Bool("debug", false, "log every insertion")
	rootCmd.PersistentFlags().Bool("no-color", false, "plain tables and log lines")

	// BSTREE_DEBUG, BSTREE_NO_COLOR, ...
	a.v.SetEnvPrefix("bstree")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	rootCmd.AddCommand(a.demoCmd(), a.runCmd(), a.scenarioCmd(), a.printCmd())
	return rootCmd
}
