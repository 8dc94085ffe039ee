package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/nekkaida/gsh"
)

func main() {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:     gsh.Name,
		Short:   "an interactive command shell",
		Long:    "gsh is an interactive command shell with line editing,\ntab completion and output redirection.",
		Version: gsh.Version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := gsh.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if verbose {
				cfg.Verbose = true
			}
			return gsh.New(gsh.WithConfig(cfg)).Run()
		},
	}
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug diagnostics")
	root.Flags().StringVarP(&configPath, "config", "c", "", "config file (default ~/.gshrc.yaml)")
	root.Flags().BoolP("version", "V", false, "print version and exit")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
