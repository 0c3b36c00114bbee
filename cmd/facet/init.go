package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/facet-ui/facet/internal/config"
	"github.com/facet-ui/facet/internal/errors"
)

func initCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default facet.json in the current directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing facet.json")

	return cmd
}

func runInit(force bool) error {
	path := config.ConfigFileName
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.Newf(errors.CategoryCLI,
				"%s already exists, use --force to overwrite", path)
		}
	}

	cfg := config.New()
	if wd, err := os.Getwd(); err == nil {
		cfg.Name = filepath.Base(wd)
	}
	if err := cfg.SaveTo(path); err != nil {
		return err
	}
	success("wrote %s", path)
	return nil
}
