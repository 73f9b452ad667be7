package knn

import (
	"github.com/AeronFaust/CISC-7700X-HW-2/internal/database"
	"github.com/AeronFaust/CISC-7700X-HW-2/internal/predict"
	"github.com/AeronFaust/CISC-7700X-HW-2/internal/predictor"
	"github.com/AeronFaust/CISC-7700X-HW-2/internal/record"
	"github.com/AeronFaust/CISC-7700X-HW-2/internal/setup"
)

var (
	_ setup.RecordConfigProvider    = (*Config)(nil)
	_ setup.PredictorConfigProvider = (*Config)(nil)
	_ setup.DatabaseConfigProvider  = (*Config)(nil)
)

type Config struct {
	SrvAddr     string           `envconfig:"KNN_ADDR" default:":8787" toml:"addr"`
	GRPCAddr    string           `envconfig:"KNN_GRPC_ADDR" toml:"grpc_addr"`
	MetricsAddr string           `envconfig:"KNN_METRICS_ADDR" default:":9090" toml:"metrics_addr"`
	MaxConns    int              `envconfig:"KNN_MAX_CONNS" default:"256" toml:"max_conns"`
	Record      record.Config    `toml:"record"`
	Predictor   predictor.Config `toml:"predictor"`
	Predict     predict.Config   `toml:"predict"`
	Database    database.Config  `toml:"database"`
}

func (c *Config) RecordConfig() *record.Config {
	return &c.Record
}

func (c *Config) PredictConfig() *predictor.Config {
	return &c.Predictor
}

func (c *Config) DatabaseConfig() *database.Config {
	return &c.Database
}
