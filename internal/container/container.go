// Package container provides dependency injection for the swift-mx
// application. It creates the logger, the conversion service and the batch
// processor from one configuration so commands never build them directly.
package container

import (
	"fmt"

	"fjacquet/swift-mx/internal/batch"
	"fjacquet/swift-mx/internal/config"
	"fjacquet/swift-mx/internal/logging"
	"fjacquet/swift-mx/pkg/converter"
)

// Container holds all application dependencies. It is immutable after
// creation; fields are reached through getters.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	converter *converter.Service
}

// NewContainer creates and wires all application dependencies.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	return NewContainerWithLogger(cfg, logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format))
}

// NewContainerWithLogger wires the dependencies around an existing logger.
// Tests pass a MockLogger here.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	service := converter.NewService(logger,
		converter.WithAdvisoryLogging(cfg.Conversion.SurfaceAdvisories))

	logger.Debug("Container initialized",
		logging.Field{Key: logging.FieldWorkers, Value: cfg.Batch.Workers},
		logging.Field{Key: "surface_advisories", Value: cfg.Conversion.SurfaceAdvisories})

	return &Container{
		logger:    logger,
		config:    cfg,
		converter: service,
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetConverter returns the conversion service.
func (c *Container) GetConverter() *converter.Service {
	return c.converter
}

// NewBatchProcessor returns a batch processor using the configured pool size
// and extensions. A positive workers value overrides the configuration, and a
// non-blank typeHint is passed to every MT to MX conversion.
func (c *Container) NewBatchProcessor(workers int, typeHint string) *batch.Processor {
	if workers <= 0 {
		workers = c.config.Batch.Workers
	}
	return batch.NewProcessor(c.converter, c.logger, batch.Options{
		Workers:     workers,
		MtExtension: c.config.Batch.MtExtension,
		MxExtension: c.config.Batch.MxExtension,
		TypeHint:    c.DefaultMtType(typeHint),
	})
}

// DefaultMtType returns hint, or the configured default MT type when hint is
// blank.
func (c *Container) DefaultMtType(hint string) string {
	if hint != "" {
		return hint
	}
	return c.config.Conversion.DefaultMtType
}
