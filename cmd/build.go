package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abhiramvad/portfolio/internal/config"
	"github.com/abhiramvad/portfolio/internal/site"
)

var (
	buildOutput string
	buildWatch  bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Write the portfolio as static pages",
	Long: `Renders index.html in the catalog's default theme, light.html and
dark.html, and copies the assets directory next to them. The static pages
run fade-in in the browser and switch theme by linking between variants.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if buildOutput != "" {
			cfg.OutputDir = buildOutput
		}

		if err := runBuild(cfg); err != nil {
			return err
		}
		if !buildWatch {
			return nil
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		paths := []string{cfg.AssetsDir}
		if cfg.CatalogFile != "" {
			paths = append(paths, cfg.CatalogFile)
		}
		log.Printf("Watching %v for changes. Press Ctrl+C to stop.", paths)
		return site.Watch(ctx, paths, site.DefaultDebounce, func() {
			log.Println("Rebuilding site due to changes...")
			if err := runBuild(cfg); err != nil {
				log.Printf("Error during rebuild: %v", err)
			}
		})
	},
}

// runBuild reloads the catalog so watched edits are picked up.
func runBuild(cfg *config.Config) error {
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	return site.Build(site.Options{
		Catalog:   cat,
		AssetsDir: cfg.AssetsDir,
		OutputDir: cfg.OutputDir,
	})
}

func init() {
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "output directory (overrides config)")
	buildCmd.Flags().BoolVarP(&buildWatch, "watch", "w", false, "rebuild when the catalog file or assets change")
	rootCmd.AddCommand(buildCmd)
}
