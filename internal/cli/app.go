package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/conversor/internal/domain"
	"github.com/aalvaropc/conversor/internal/infra/configfinder"
	"github.com/aalvaropc/conversor/internal/infra/convclient"
	"github.com/aalvaropc/conversor/internal/infra/logger"
	"github.com/aalvaropc/conversor/internal/ports"
	"github.com/aalvaropc/conversor/internal/usecase"
)

// globalFlags are shared by every command that talks to the service.
type globalFlags struct {
	origin string
	config string
	debug  bool
}

type appCtx struct {
	root string
	cfg  domain.Config

	client *convclient.Client
	submit *usecase.SubmitConversion
	health *usecase.CheckService

	cleanup func() error
}

func (a *appCtx) close() {
	if a != nil && a.cleanup != nil {
		_ = a.cleanup()
	}
}

func loadApp(flags *globalFlags) (*appCtx, error) {
	cfg, root, err := resolveConfig(flags.config)
	if err != nil {
		return nil, err
	}

	if o := strings.TrimSpace(flags.origin); o != "" {
		cfg.Service.Origin = o
	}

	cleanup, _ := logger.Setup(logger.Config{
		Root:  root,
		Debug: flags.debug,
	})

	log := logger.L()
	client, err := convclient.New(cfg.Service.Origin, convclient.WithLogger(log))
	if err != nil {
		if cleanup != nil {
			_ = cleanup()
		}
		return nil, err
	}

	log.Info("app.loaded", "root", root, "origin", client.Origin(), "latest_only", cfg.UI.LatestOnly)

	return &appCtx{
		root:    root,
		cfg:     cfg,
		client:  client,
		submit:  usecase.NewSubmitConversion(client, usecase.WithLogger(log)),
		health:  usecase.NewCheckService(client),
		cleanup: cleanup,
	}, nil
}

// resolveConfig returns the config plus the directory logs are written under.
// Without an explicit path a missing conversor.yaml just means defaults.
func resolveConfig(configFlag string) (domain.Config, string, error) {
	if p := strings.TrimSpace(configFlag); p != "" {
		abs, err := filepath.Abs(p)
		if err != nil {
			return domain.Config{}, "", fmt.Errorf("invalid config path: %w", err)
		}
		cfg, err := configfinder.LoadFile(abs)
		if err != nil {
			return domain.Config{}, "", err
		}
		return cfg, filepath.Dir(abs), nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return domain.Config{}, "", fmt.Errorf("get working directory: %w", err)
	}

	var locator ports.ConfigLocator = configfinder.NewFinder()
	root, err := locator.FindRoot(wd)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return domain.DefaultConfig(), wd, nil
		}
		return domain.Config{}, "", err
	}

	cfg, err := configfinder.LoadConfig(root)
	if err != nil {
		return domain.Config{}, "", err
	}
	return cfg, root, nil
}
