package site

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/net/html"

	"github.com/abhiramvad/portfolio/internal/catalog"
	"github.com/abhiramvad/portfolio/internal/view"
)

func builtin(t *testing.T, name string) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Builtin(name)
	if err != nil {
		t.Fatal(err)
	}
	return cat
}

func readPage(t *testing.T, path string) *html.Node {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening %s: %v", path, err)
	}
	defer f.Close()
	doc, err := html.Parse(f)
	if err != nil {
		t.Fatalf("parsing %s: %v", path, err)
	}
	return doc
}

func attrOf(doc *html.Node, id, key string) string {
	var found string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			var isID bool
			var val string
			for _, a := range n.Attr {
				if a.Key == "id" && a.Val == id {
					isID = true
				}
				if a.Key == key {
					val = a.Val
				}
			}
			if isID {
				found = val
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return found
}

func TestBuild(t *testing.T) {
	tests := []struct {
		catalog   string
		indexMode string
	}{
		{"main", "dark"},
		{"github-io", "light"},
	}
	for _, tt := range tests {
		t.Run(tt.catalog, func(t *testing.T) {
			out := t.TempDir()
			if err := Build(Options{Catalog: builtin(t, tt.catalog), OutputDir: out}); err != nil {
				t.Fatalf("Build: %v", err)
			}

			pages := []struct {
				file, mode, toggle string
			}{
				{IndexFile, tt.indexMode, VariantFile(tt.indexMode == "light")},
				{LightFile, "light", DarkFile},
				{DarkFile, "dark", LightFile},
			}
			for _, p := range pages {
				doc := readPage(t, filepath.Join(out, p.file))
				if got := attrOf(doc, "app", "data-theme"); got != p.mode {
					t.Errorf("%s: data-theme = %q, want %q", p.file, got, p.mode)
				}
				if got := attrOf(doc, "app", "data-live"); got != "false" {
					t.Errorf("%s: data-live = %q, want false", p.file, got)
				}
				if got := attrOf(doc, "theme-toggle", "data-href"); got != p.toggle {
					t.Errorf("%s: toggle href = %q, want %q", p.file, got, p.toggle)
				}
				for _, id := range view.SectionIDs() {
					if strings.Contains(attrOf(doc, id, "class"), view.FadeInClass) {
						t.Errorf("%s: section %s starts faded in", p.file, id)
					}
				}
			}
		})
	}
}

func TestBuildCopiesAssets(t *testing.T) {
	assets := t.TempDir()
	if err := os.MkdirAll(filepath.Join(assets, "src", "assets"), 0755); err != nil {
		t.Fatal(err)
	}
	files := map[string]string{
		"dp.jpeg":                 "photo",
		"src/assets/resume.pdf":   "resume",
		"src/assets/nested/x.txt": "x",
	}
	for name, body := range files {
		path := filepath.Join(assets, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(body), 0644); err != nil {
			t.Fatal(err)
		}
	}

	out := filepath.Join(t.TempDir(), "public")
	if err := Build(Options{Catalog: builtin(t, "main"), AssetsDir: assets, OutputDir: out}); err != nil {
		t.Fatalf("Build: %v", err)
	}
	for name, body := range files {
		got, err := os.ReadFile(filepath.Join(out, filepath.FromSlash(name)))
		if err != nil {
			t.Errorf("asset %s not copied: %v", name, err)
			continue
		}
		if string(got) != body {
			t.Errorf("asset %s = %q, want %q", name, got, body)
		}
	}
}

func TestBuildMissingAssets(t *testing.T) {
	out := t.TempDir()
	opts := Options{
		Catalog:   builtin(t, "main"),
		AssetsDir: filepath.Join(out, "does-not-exist"),
		OutputDir: out,
	}
	if err := Build(opts); err != nil {
		t.Fatalf("missing assets should not fail the build: %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, IndexFile)); err != nil {
		t.Errorf("index not written: %v", err)
	}
}

func TestBuildRejectsOutputInsideAssets(t *testing.T) {
	assets := t.TempDir()
	photo := filepath.Join(assets, "dp.jpeg")
	if err := os.WriteFile(photo, []byte("jpegdata"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		output string
	}{
		{"same directory", assets},
		{"same directory, unclean", assets + string(filepath.Separator) + "."},
		{"nested", filepath.Join(assets, "public")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Build(Options{Catalog: builtin(t, "main"), AssetsDir: assets, OutputDir: tt.output})
			if err == nil {
				t.Fatal("expected an error when output is inside assets")
			}
			got, err := os.ReadFile(photo)
			if err != nil || string(got) != "jpegdata" {
				t.Errorf("asset modified: %q, %v", got, err)
			}
			if _, err := os.Stat(filepath.Join(tt.output, IndexFile)); err == nil {
				t.Error("pages written despite the rejected layout")
			}
		})
	}
}

func TestBuildAllowsSiblingOutput(t *testing.T) {
	root := t.TempDir()
	assets := filepath.Join(root, "assets")
	if err := os.Mkdir(assets, 0755); err != nil {
		t.Fatal(err)
	}
	// A name sharing the assets prefix is not inside it.
	out := filepath.Join(root, "assets-public")
	if err := Build(Options{Catalog: builtin(t, "main"), AssetsDir: assets, OutputDir: out}); err != nil {
		t.Fatalf("Build: %v", err)
	}
}

func TestBuildRequiresCatalog(t *testing.T) {
	if err := Build(Options{OutputDir: t.TempDir()}); err == nil {
		t.Error("expected error without a catalog")
	}
}

func TestWatchRebuildsOnChange(t *testing.T) {
	dir := t.TempDir()
	catFile := filepath.Join(dir, "catalog.yml")
	if err := os.WriteFile(catFile, []byte("name: a\n"), 0644); err != nil {
		t.Fatal(err)
	}
	other := filepath.Join(dir, "unrelated.txt")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rebuilt := make(chan struct{}, 16)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, []string{catFile}, 20*time.Millisecond, func() {
			rebuilt <- struct{}{}
		})
	}()

	// Changes to siblings of a watched file are ignored.
	deadline := time.After(300 * time.Millisecond)
loop:
	for {
		os.WriteFile(other, []byte(time.Now().String()), 0644)
		select {
		case <-rebuilt:
			t.Fatal("rebuilt for an unwatched file")
		case <-deadline:
			break loop
		case <-time.After(50 * time.Millisecond):
		}
	}

	// The watcher starts asynchronously, so keep touching the file until a
	// rebuild lands.
	timeout := time.After(5 * time.Second)
	for {
		if err := os.WriteFile(catFile, []byte("name: b\n"), 0644); err != nil {
			t.Fatal(err)
		}
		select {
		case <-rebuilt:
			cancel()
			if err := <-done; err != nil {
				t.Errorf("Watch returned %v", err)
			}
			return
		case <-timeout:
			t.Fatal("no rebuild after changing a watched file")
		case <-time.After(100 * time.Millisecond):
		}
	}
}

func TestWatchDirectory(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rebuilt := make(chan struct{}, 16)
	go Watch(ctx, []string{dir, filepath.Join(dir, "missing")}, 20*time.Millisecond, func() {
		rebuilt <- struct{}{}
	})

	timeout := time.After(5 * time.Second)
	for i := 0; ; i++ {
		os.WriteFile(filepath.Join(dir, "dp.jpeg"), []byte{byte(i)}, 0644)
		select {
		case <-rebuilt:
			return
		case <-timeout:
			t.Fatal("no rebuild after changing a file in a watched directory")
		case <-time.After(100 * time.Millisecond):
		}
	}
}
