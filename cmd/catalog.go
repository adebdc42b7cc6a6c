package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhiramvad/portfolio/internal/catalog"
	"github.com/abhiramvad/portfolio/internal/theme"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect content catalogs",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List built-in catalogs",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, name := range catalog.Names() {
			cat, err := catalog.Builtin(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%-10s %-5s %d projects, %d roles, %d skill groups\n",
				name, theme.ModeName(cat.DefaultDark), len(cat.Projects), len(cat.Experience), len(cat.Skills))
		}
		return nil
	},
}

var catalogShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Print a catalog as YAML",
	Long: `Prints a catalog as YAML. With no name, shows the catalog selected by the
config. The output is a valid catalog_file to start editing from.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			cat *catalog.Catalog
			err error
		)
		if len(args) == 1 {
			cat, err = catalog.Builtin(args[0])
		} else {
			cfg, cfgErr := loadConfig()
			if cfgErr != nil {
				return cfgErr
			}
			cat, err = loadCatalog(cfg)
		}
		if err != nil {
			return err
		}

		data, err := catalog.Marshal(cat)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	catalogCmd.AddCommand(catalogListCmd, catalogShowCmd)
	rootCmd.AddCommand(catalogCmd)
}
