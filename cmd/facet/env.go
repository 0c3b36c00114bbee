package main

import (
	"log/slog"

	"github.com/facet-ui/facet/internal/config"
	"github.com/facet-ui/facet/internal/errors"
	"github.com/facet-ui/facet/pkg/assets"
	"github.com/facet-ui/facet/pkg/dom"
	"github.com/facet-ui/facet/pkg/element"
	"github.com/facet-ui/facet/pkg/theme"
)

// buildEnv assembles the element environment and theme manager from the
// project configuration. The caller owns the manager and must Close it.
func buildEnv(cfg *config.Config) (*element.Env, *theme.Manager, error) {
	doc := dom.NewDocument()

	resolver, err := buildResolver(cfg)
	if err != nil {
		return nil, nil, err
	}
	env := element.NewEnv(doc,
		element.WithLogger(slog.Default()),
		element.WithResolver(resolver),
	)

	mgr, err := buildThemeManager(cfg, doc)
	if err != nil {
		return nil, nil, err
	}
	return env, mgr, nil
}

func buildResolver(cfg *config.Config) (assets.Resolver, error) {
	if cfg.Assets.Manifest == "" {
		return assets.NewPassthroughResolver(cfg.Assets.Prefix), nil
	}
	manifest, err := assets.Load(cfg.Assets.Manifest)
	if err != nil {
		return nil, errors.Newf(errors.CategoryConfig,
			"loading asset manifest %s: %v", cfg.Assets.Manifest, err)
	}
	return assets.NewResolver(manifest, cfg.Assets.Prefix), nil
}

// buildThemeManager wires the persisted preference store, the configured
// default scheme and the optional startup palette. The CLI has no system
// scheme to observe, so a static source stands in for the media query.
func buildThemeManager(cfg *config.Config, doc *dom.Document) (*theme.Manager, error) {
	var store theme.Store
	if cfg.Theme.StorageFile != "" {
		fs, err := theme.NewFileStore(cfg.Theme.StorageFile)
		if err != nil {
			return nil, errors.Newf(errors.CategoryTheme,
				"opening theme storage %s: %v", cfg.Theme.StorageFile, err)
		}
		store = fs
	} else {
		store = theme.NewMemoryStore()
	}

	mgr := theme.NewManager(doc, store, theme.NewStaticSource(theme.SchemeLight))
	if _, ok := store.Get(theme.DefaultStorageKey); !ok {
		mgr.Set(theme.Scheme(cfg.Theme.Scheme))
	}

	if cfg.Theme.Palettes != "" {
		palettes, err := theme.LoadPalettes(cfg.Theme.Palettes)
		if err != nil {
			mgr.Close()
			return nil, errors.FromError(err, "F201")
		}
		if cfg.Theme.Palette != "" {
			applied := false
			for _, p := range palettes {
				if p.Name == cfg.Theme.Palette {
					p.Apply(doc)
					applied = true
					break
				}
			}
			if !applied {
				mgr.Close()
				return nil, errors.New("F202").
					WithDetail(`No palette named "` + cfg.Theme.Palette + `" in ` + cfg.Theme.Palettes + ".")
			}
		}
	}
	return mgr, nil
}
