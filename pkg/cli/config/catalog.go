package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/tp-labs/pulsedash/pkg/domain/model"
	"gopkg.in/yaml.v3"
)

// LoadCatalogFromFile loads a generator catalog from a YAML file
func LoadCatalogFromFile(path string) (*model.Catalog, error) {
	if path == "" {
		return nil, goerr.New("catalog file path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "catalog file not found",
				goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read catalog file",
			goerr.V("path", path))
	}

	catalog := model.DefaultCatalog()
	if err := yaml.Unmarshal(data, catalog); err != nil {
		return nil, goerr.Wrap(err, "failed to parse catalog YAML",
			goerr.V("path", path))
	}

	if err := catalog.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid catalog file",
			goerr.V("path", path))
	}

	return catalog, nil
}
