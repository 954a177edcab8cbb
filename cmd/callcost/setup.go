package main

import (
	"fmt"

	"github.com/quibble-ai/callcost/pkg/config"
	"github.com/quibble-ai/callcost/pkg/estimator"
	"github.com/quibble-ai/callcost/pkg/logging"
	"go.uber.org/zap"
)

// deps is what every command needs once its config is loaded.
type deps struct {
	cfg    *config.Config
	est    *estimator.Estimator
	logger *zap.Logger
}

// setup loads the config at configPath (or the defaults) and builds the
// logger and estimator. adjustLog lets a command redirect logging away from
// a stream it owns.
func setup(configPath string, adjustLog func(*config.LogConfig)) (*deps, error) {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if adjustLog != nil {
		adjustLog(&cfg.Log)
	}
	logger, err := logging.Setup(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}

	est, err := cfg.Estimator()
	if err != nil {
		return nil, fmt.Errorf("init estimator: %w", err)
	}
	return &deps{cfg: cfg, est: est, logger: logger}, nil
}
