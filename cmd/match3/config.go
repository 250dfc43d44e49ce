package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-match3/internal/config"
)

var flagEffective bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the variant configuration",
	Long: `Print the built-in variant configuration as YAML. Save it to
~/.match3/configs/match3.yaml or ./configs/match3.yaml to customize variants,
or pass it with --config.

With --effective, prints the configuration that would be loaded now.

Examples:
  match3 config > ~/.match3/configs/match3.yaml
  match3 config --effective --config ./my-match3.yaml`,
	Run: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagEffective, "effective", false, "Print the loaded configuration instead of the defaults")
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagEffective {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := config.LoadMatch3(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(out)
}
