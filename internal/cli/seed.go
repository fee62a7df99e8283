package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/tonal/internal/config"
	"github.com/jmylchreest/tonal/internal/hct"
	imgloader "github.com/jmylchreest/tonal/internal/image"
	"github.com/jmylchreest/tonal/internal/quantize"
	"github.com/jmylchreest/tonal/internal/score"
)

// imageSeeds quantises the image at path and returns its ranked seed
// colours. A directory yields a random image from it; a URL is downloaded
// into the image cache first.
func imageSeeds(ctx context.Context, path string, mode quantize.SeedMode, kmeansSeed *int64, opts score.Options, logger hclog.Logger) ([]uint32, string, error) {
	if imgloader.IsRemote(path) {
		cached, err := imgloader.DownloadAndCache(ctx, path, imgloader.CacheOptions{})
		if err != nil {
			return nil, "", err
		}
		logger.Debug("using cached image", "url", path, "path", cached)
		path = cached
	}
	resolved, err := imgloader.ResolveImagePath(path)
	if err != nil {
		return nil, "", err
	}
	img, err := imgloader.NewFileLoader().Load(resolved)
	if err != nil {
		return nil, "", err
	}

	seed, err := quantize.Seed(mode, img, resolved, kmeansSeed)
	if err != nil {
		return nil, "", err
	}
	qcfg := quantize.DefaultConfig()
	qcfg.Seed = seed

	res, err := quantize.QuantizeImage(img, qcfg)
	if err != nil {
		return nil, "", fmt.Errorf("failed to quantise %s: %w", resolved, err)
	}
	ranked := score.Rank(res, opts)
	logger.Debug("ranked image colours", "image", resolved, "clusters", len(res.Populations), "seed_mode", mode, "kmeans_seed", seed, "best", hct.HexFromArgb(ranked[0]))
	return ranked, resolved, nil
}

// resolveSource picks the theme's source colour: a positional argument
// (hex colour, image path or URL), then the configured image, then the
// configured seed.
func resolveSource(ctx context.Context, args []string, cfg *config.Config, kmeansSeed *int64, logger hclog.Logger) (uint32, error) {
	fromImage := func(path string) (uint32, error) {
		ranked, resolved, err := imageSeeds(ctx, path, cfg.SeedMode, kmeansSeed, score.DefaultOptions(), logger)
		if err != nil {
			return 0, err
		}
		logger.Info("extracted source colour", "image", resolved, "source", hct.HexFromArgb(ranked[0]))
		return ranked[0], nil
	}

	if len(args) > 0 {
		argb, err := hct.ArgbFromHex(args[0])
		if err == nil {
			return argb, nil
		}
		if imgloader.IsRemote(args[0]) {
			return fromImage(args[0])
		}
		if _, statErr := os.Stat(args[0]); statErr == nil {
			return fromImage(args[0])
		}
		return 0, fmt.Errorf("%q is neither a hex colour nor an image: %w", args[0], err)
	}
	if cfg.Image != "" {
		return fromImage(cfg.Image)
	}
	if cfg.Seed != "" {
		return cfg.SeedArgb()
	}
	return 0, fmt.Errorf("no source colour: pass a hex colour or image, use --image, or set seed in the config file")
}
