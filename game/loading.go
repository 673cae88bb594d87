package game

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/pthm-cable/lanterns/assets"
)

// pollAssets uploads newly decoded artworks and ends the load phase once
// every configured artwork has resolved.
func (g *Game) pollAssets() {
	if g.scene.Loaded() {
		return
	}
	for _, res := range g.loader.Poll() {
		g.accept(res)
	}
	if g.loader.Done() {
		g.finishLoading()
	}
}

// loadAll blocks until every artwork has resolved. Used in headless mode.
func (g *Game) loadAll() error {
	ctx, cancel := context.WithTimeout(context.Background(), headlessLoadTimeout)
	defer cancel()

	results, err := g.loader.Wait(ctx)
	for _, res := range results {
		g.accept(res)
	}
	if err != nil {
		return fmt.Errorf("loading artworks: %w", err)
	}
	g.finishLoading()
	return nil
}

func (g *Game) accept(res assets.Result) {
	if res.Err != nil {
		slog.Warn("artwork load failed", "index", res.Index, "title", res.Artwork.Title, "error", res.Err)
		return
	}
	if g.lanterns != nil {
		g.lanterns.Upload(&res.Artwork, res.Image)
	}
	slog.Debug("artwork loaded", "index", res.Index, "title", res.Artwork.Title,
		"width", res.Artwork.Width, "height", res.Artwork.Height)
	g.loaded = append(g.loaded, res)
}

// finishLoading adds the artworks in configured order so a seed reproduces
// the same spawns regardless of decode order.
func (g *Game) finishLoading() {
	slices.SortFunc(g.loaded, func(a, b assets.Result) int { return a.Index - b.Index })
	for i := range g.loaded {
		art := g.loaded[i].Artwork
		g.scene.AddArtwork(&art)
	}
	if len(g.loaded) == 0 {
		slog.Warn("no artworks loaded, scene stays empty", "configured", g.loader.Total())
	}
	g.loaded = nil
	g.scene.FinishLoading()
}
