// Package site writes the portfolio as static files.
package site

import (
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/abhiramvad/portfolio/internal/catalog"
	"github.com/abhiramvad/portfolio/internal/page"
	"github.com/abhiramvad/portfolio/internal/theme"
)

// Output file names. index.html uses the catalog's default theme.
const (
	IndexFile = "index.html"
	LightFile = "light.html"
	DarkFile  = "dark.html"
)

// Options controls a build.
type Options struct {
	Catalog   *catalog.Catalog
	AssetsDir string
	OutputDir string
}

// VariantFile returns the file holding the page in the given theme.
func VariantFile(dark bool) string {
	if dark {
		return DarkFile
	}
	return LightFile
}

// Build renders every theme variant into OutputDir and copies AssetsDir
// next to them. A missing assets directory is not an error.
func Build(opts Options) error {
	if opts.Catalog == nil {
		return fmt.Errorf("build: no catalog")
	}
	if opts.AssetsDir != "" {
		inside, err := within(opts.OutputDir, opts.AssetsDir)
		if err != nil {
			return err
		}
		if inside {
			return fmt.Errorf("build: output directory %s must not be inside assets directory %s", opts.OutputDir, opts.AssetsDir)
		}
	}
	if err := os.MkdirAll(opts.OutputDir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", opts.OutputDir, err)
	}

	variants := []struct {
		name string
		dark bool
	}{
		{IndexFile, opts.Catalog.DefaultDark},
		{LightFile, false},
		{DarkFile, true},
	}
	for _, v := range variants {
		if err := writePage(filepath.Join(opts.OutputDir, v.name), opts.Catalog, v.dark); err != nil {
			return err
		}
	}

	if opts.AssetsDir != "" {
		if _, err := os.Stat(opts.AssetsDir); os.IsNotExist(err) {
			log.Printf("site: assets directory %s not found, skipping", opts.AssetsDir)
		} else if err := copyDirContents(opts.AssetsDir, opts.OutputDir); err != nil {
			return fmt.Errorf("failed to copy assets: %w", err)
		}
	}

	log.Printf("site: built %s into %s", opts.Catalog.Name, opts.OutputDir)
	return nil
}

// within reports whether path is dir or lies under it.
func within(path, dir string) (bool, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false, fmt.Errorf("resolving %s: %w", path, err)
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return false, fmt.Errorf("resolving %s: %w", dir, err)
	}
	rel, err := filepath.Rel(absDir, absPath)
	if err != nil {
		return false, nil
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)), nil
}

func writePage(path string, cat *catalog.Catalog, dark bool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	p := page.New(cat, page.WithDark(dark), page.WithToggleLink(func(current bool) string {
		return VariantFile(!current)
	}))
	if err := p.Render(f); err != nil {
		return fmt.Errorf("failed to render %s (%s): %w", path, theme.ModeName(dark), err)
	}
	return f.Close()
}

// copyDirContents recursively copies contents from src to dst.
func copyDirContents(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		relPath, err := filepath.Rel(src, path)
		if err != nil {
			return fmt.Errorf("failed to get relative path for %s: %w", path, err)
		}
		dstPath := filepath.Join(dst, relPath)

		if d.IsDir() {
			if err := os.MkdirAll(dstPath, os.ModePerm); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", dstPath, err)
			}
			return nil
		}
		return copyFile(path, dstPath)
	})
}

func copyFile(srcFile, dstFile string) error {
	srcF, err := os.Open(srcFile)
	if err != nil {
		return fmt.Errorf("failed to open source file %s: %w", srcFile, err)
	}
	defer srcF.Close()

	dstF, err := os.Create(dstFile)
	if err != nil {
		return fmt.Errorf("failed to create destination file %s: %w", dstFile, err)
	}
	defer dstF.Close()

	if _, err := io.Copy(dstF, srcF); err != nil {
		return fmt.Errorf("failed to copy data from %s to %s: %w", srcFile, dstFile, err)
	}
	return dstF.Close()
}
