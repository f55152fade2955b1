// Package site exports the portfolio as static files that any web host
// can serve.
package site

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/kdarade/portfolio/internal/contact"
	"github.com/kdarade/portfolio/internal/content"
	"github.com/kdarade/portfolio/internal/progress"
	"github.com/kdarade/portfolio/internal/ui"
)

// assetDir is where the stylesheet and script land inside OutputDir.
const assetDir = "assets"

// Generator writes index.html and its assets to OutputDir. The exported
// form posts straight to RelayEndpoint since no server sits in between.
type Generator struct {
	Profile       *content.Profile
	OutputDir     string
	RelayEndpoint string
	Logger        *zap.Logger
	Progress      progress.Reporter
}

// NewGenerator creates a Generator for profile.
func NewGenerator(profile *content.Profile, outputDir, relayEndpoint string) *Generator {
	return &Generator{
		Profile:       profile,
		OutputDir:     outputDir,
		RelayEndpoint: relayEndpoint,
		Logger:        zap.NewNop(),
		Progress:      progress.Nop{},
	}
}

// Generate builds the static site. Returns the number of files written.
func (g *Generator) Generate() (int, error) {
	if g.Profile == nil {
		return 0, fmt.Errorf("no profile to export")
	}
	if g.RelayEndpoint == "" {
		return 0, fmt.Errorf("relay endpoint is required for a static export")
	}
	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return 0, err
	}

	page := ui.Page{
		Profile:   g.Profile,
		Form:      contact.Snapshot{Status: contact.StatusIdle},
		Target:    ui.FormEndpoints{Action: g.RelayEndpoint, Endpoint: g.RelayEndpoint},
		AssetBase: assetDir,
	}

	var buf bytes.Buffer
	if err := ui.Render(&buf, page); err != nil {
		return 0, fmt.Errorf("rendering page: %w", err)
	}

	// Collect embedded assets.
	files := map[string][]byte{"index.html": buf.Bytes()}
	order := []string{"index.html"}
	err := fs.WalkDir(ui.Assets(), ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(ui.Assets(), path)
		if err != nil {
			return err
		}
		rel := assetDir + "/" + path
		files[rel] = data
		order = append(order, rel)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("reading assets: %w", err)
	}

	reporter := g.Progress
	if reporter == nil {
		reporter = progress.Nop{}
	}
	var total int64
	for _, data := range files {
		total += int64(len(data))
	}
	reporter.Start(len(order), total)
	defer reporter.Finish()

	for i, rel := range order {
		if err := g.write(filepath.FromSlash(rel), files[rel]); err != nil {
			return i, err
		}
		reporter.Update(i+1, rel, int64(len(files[rel])))
	}
	return len(order), nil
}

func (g *Generator) write(rel string, data []byte) error {
	dst := filepath.Join(g.OutputDir, rel)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", rel, err)
	}
	g.logger().Debug("wrote file", zap.String("path", dst), zap.Int("bytes", len(data)))
	return nil
}

func (g *Generator) logger() *zap.Logger {
	if g.Logger == nil {
		return zap.NewNop()
	}
	return g.Logger
}
