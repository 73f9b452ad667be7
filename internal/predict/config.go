package predict

import "time"

type Config struct {
	RequestTimeout time.Duration `envconfig:"KNN_PREDICT_REQUEST_TIMEOUT" default:"30s" toml:"-"`
	MaxBodyBytes   int64         `envconfig:"KNN_PREDICT_MAX_BODY_BYTES" default:"65536" toml:"max_body_bytes"`
}
