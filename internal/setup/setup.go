package setup

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/AeronFaust/CISC-7700X-HW-2/internal/database"
	"github.com/AeronFaust/CISC-7700X-HW-2/internal/logging"
	"github.com/AeronFaust/CISC-7700X-HW-2/internal/metrics"
	"github.com/AeronFaust/CISC-7700X-HW-2/internal/predictor"
	"github.com/AeronFaust/CISC-7700X-HW-2/internal/predictor/knn"
	"github.com/AeronFaust/CISC-7700X-HW-2/internal/record"
	"github.com/AeronFaust/CISC-7700X-HW-2/internal/srvenv"
	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
)

// ConfigFileEnv names an optional TOML file whose values override the
// environment.
const ConfigFileEnv = "KNN_CONFIG_FILE"

type RecordConfigProvider interface {
	RecordConfig() *record.Config
}

type PredictorConfigProvider interface {
	PredictConfig() *predictor.Config
}

type DatabaseConfigProvider interface {
	DatabaseConfig() *database.Config
}

// Setup fills config from the environment and the optional config file, then
// loads the training data and prepares the classifier and journal.
//
// A training file that cannot be opened or that stops on a malformed line is
// logged and does not fail Setup; the store keeps whatever was loaded.
func Setup(ctx context.Context, config interface{}) (*srvenv.SrvEnv, error) {
	logger := logging.FromContext(ctx)
	var serverEnvOpts []srvenv.Option
	if err := envconfig.Process("", config); err != nil {
		return nil, fmt.Errorf("error loading environment variables: %w", err)
	}
	if path := os.Getenv(ConfigFileEnv); path != "" {
		logger.Infof("Reading config file %s", path)
		if _, err := toml.DecodeFile(path, config); err != nil {
			return nil, fmt.Errorf("error loading config file %s: %w", path, err)
		}
	}

	var db *database.DB
	if dbConfigProvider, ok := config.(DatabaseConfigProvider); ok && dbConfigProvider.DatabaseConfig().Enabled() {
		logger.Info("Configuring journal db")
		dbFromEnv, err := database.NewFromEnv(ctx, dbConfigProvider.DatabaseConfig())
		if err != nil {
			return nil, fmt.Errorf("unable to connect to database: %w", err)
		}
		db = dbFromEnv
		serverEnvOpts = append(serverEnvOpts, srvenv.WithDatabase(db))
	}

	if recordConfigProvider, ok := config.(RecordConfigProvider); ok {
		logger.Info("Loading training data")
		store, report, err := LoadStore(ctx, recordConfigProvider.RecordConfig())
		if err != nil {
			closeDB(ctx, db)
			return nil, fmt.Errorf("unable to load training data: %w", err)
		}
		serverEnvOpts = append(serverEnvOpts, srvenv.WithStore(store, report))
	}

	if predictConfigProvider, ok := config.(PredictorConfigProvider); ok {
		logger.Info("Configuring classifier")
		provideFn, err := ProvideClassifierFor(predictConfigProvider.PredictConfig())
		if err != nil {
			closeDB(ctx, db)
			return nil, fmt.Errorf("unable create classifier provide function: %w", err)
		}
		serverEnvOpts = append(serverEnvOpts, srvenv.WithClassifier(provideFn))
	}

	return srvenv.New(serverEnvOpts...), nil
}

// LoadStore loads cfg.TrainingFile into a new store. Only an invalid
// delimiter is returned as an error; open and format failures are reported
// through the log and the returned report.
func LoadStore(ctx context.Context, cfg *record.Config) (*record.Store, *record.Report, error) {
	logger := logging.FromContext(ctx)
	if len(cfg.Delimiter) != 1 {
		return nil, nil, fmt.Errorf("delimiter must be a single character, got %q", cfg.Delimiter)
	}

	store := record.NewStore()
	report, err := record.LoadFile(ctx, store, cfg.TrainingFile, record.WithDelimiter(cfg.Delimiter[0]))
	var structErr *record.StructuralError
	switch {
	case err == nil:
	case errors.Is(err, record.ErrOpen):
		logger.Warnf("continuing without training data: %v", err)
	case errors.As(err, &structErr):
		logger.Warnf("continuing with %d observations loaded before line %d", store.Len(), structErr.Line)
	default:
		logger.Warnf("continuing after read failure: %v", err)
	}
	metrics.RecordLoad(ctx, report.Loaded, len(report.Skipped), store.Len())
	logger.Infof("training data ready, observations: %d", store.Len())
	return store, report, nil
}

func ProvideClassifierFor(cfg *predictor.Config) (predictor.ProvideFn, error) {
	if _, err := knn.VoteFuncFor(cfg.VoteMode); err != nil {
		return nil, err
	}
	return func(src predictor.Source) (predictor.Classifier, error) {
		c, err := knn.New(src, knn.WithVoteMode(cfg.VoteMode))
		if err != nil {
			return nil, fmt.Errorf("unable create knn instance: %w", err)
		}
		return c, nil
	}, nil
}

func closeDB(ctx context.Context, db *database.DB) {
	if db == nil {
		return
	}
	if err := db.Close(ctx); err != nil {
		logging.FromContext(ctx).Errorf("closing db: %v", err)
	}
}
