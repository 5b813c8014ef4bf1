package configfinder

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/conversor/internal/domain"
	"github.com/aalvaropc/conversor/internal/infra/httpclient"
)

// LoadConfig loads conversor.yaml from root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	return LoadFile(filepath.Join(root, FileName))
}

// LoadFile loads a config file at an explicit path and applies defaults.
func LoadFile(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "configfinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "configfinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	if o := strings.TrimSpace(y.Conversor.Service.Origin); o != "" {
		if _, err := httpclient.ParseOrigin(o); err != nil {
			return cfg, invalidField(path, "conversor.service.origin", err)
		}
		cfg.Service.Origin = o
	}
	if c := strings.TrimSpace(y.Conversor.UI.DefaultCategory); c != "" {
		cat, err := domain.ParseCategory(c)
		if err != nil {
			return cfg, invalidField(path, "conversor.ui.default_category", err)
		}
		cfg.UI.DefaultCategory = cat
	}
	if y.Conversor.UI.LatestOnly != nil {
		cfg.UI.LatestOnly = *y.Conversor.UI.LatestOnly
	}

	return cfg, nil
}

func invalidField(path, field string, err error) error {
	return &domain.OpError{
		Op:   "configfinder.loadconfig",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %v: %w", field, err, domain.ErrInvalidConfig),
	}
}

type yamlConfig struct {
	Conversor struct {
		Service struct {
			Origin string `yaml:"origin"`
		} `yaml:"service"`

		UI struct {
			DefaultCategory string `yaml:"default_category"`
			LatestOnly      *bool  `yaml:"latest_only"`
		} `yaml:"ui"`
	} `yaml:"conversor"`
}
