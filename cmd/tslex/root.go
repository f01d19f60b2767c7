package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tslex-project/tslex/internal/config"
)

// rootFlags holds the config-file and override flags shared by every
// subcommand, matching the teacher CLI's "flags override file config"
// convention from internal/program/tsconfig.go's merge semantics, now
// expressed as cobra persistent flags instead of stdlib flag.
type rootFlags struct {
	configPath string
	target     string
	jsx        string
	verbose    bool
}

func newRootCommand() *cobra.Command {
	var flags rootFlags

	root := &cobra.Command{
		Use:   "tslex",
		Short: "Tokenize TypeScript, JavaScript, and JSX source files",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flags.verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}

	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to a tsconfig.json or .tslexrc.yaml")
	root.PersistentFlags().StringVar(&flags.target, "target", "", "language version override, e.g. ES2022 (overrides --config)")
	root.PersistentFlags().StringVar(&flags.jsx, "jsx", "", "JSX variant override, e.g. react or none (overrides --config)")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newTokenizeCommand(&flags))
	root.AddCommand(newVersionCommand())
	return root
}

// resolveConfig loads flags.configPath (if set) and overlays the --target /
// --jsx flag overrides, matching config.Config.Merge's child-overrides-parent
// semantics (SPEC_FULL.md §B.3).
func resolveConfig(flags *rootFlags) (config.Config, error) {
	cfg := config.Default()
	if flags.configPath != "" {
		loaded, err := config.Load(flags.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	override := config.Config{Target: flags.target, JSX: flags.jsx}
	return cfg.Merge(override), nil
}
