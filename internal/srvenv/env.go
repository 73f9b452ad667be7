package srvenv

import (
	"context"

	"github.com/AeronFaust/CISC-7700X-HW-2/internal/database"
	"github.com/AeronFaust/CISC-7700X-HW-2/internal/journal"
	"github.com/AeronFaust/CISC-7700X-HW-2/internal/predictor"
	"github.com/AeronFaust/CISC-7700X-HW-2/internal/record"
)

type Option func(*SrvEnv) *SrvEnv

func New(opts ...Option) *SrvEnv {
	env := &SrvEnv{}
	for _, f := range opts {
		env = f(env)
	}

	return env
}

type SrvEnv struct {
	database   *database.DB
	store      *record.Store
	loadReport *record.Report
	classifier predictor.ProvideFn
}

func (s *SrvEnv) Store() *record.Store {
	return s.store
}

func (s *SrvEnv) LoadReport() *record.Report {
	return s.loadReport
}

func (s *SrvEnv) ProvideClassifier() predictor.ProvideFn {
	return s.classifier
}

func (s *SrvEnv) Database() *database.DB {
	return s.database
}

// Journal returns nil when no journal database is configured.
func (s *SrvEnv) Journal() *journal.Journal {
	if s.database == nil {
		return nil
	}
	return journal.New(s.database)
}

func WithStore(store *record.Store, report *record.Report) Option {
	return func(s *SrvEnv) *SrvEnv {
		s.store = store
		s.loadReport = report
		return s
	}
}

func WithClassifier(fn predictor.ProvideFn) Option {
	return func(s *SrvEnv) *SrvEnv {
		s.classifier = fn
		return s
	}
}

func WithDatabase(db *database.DB) Option {
	return func(s *SrvEnv) *SrvEnv {
		s.database = db
		return s
	}
}

func (s *SrvEnv) Close(ctx context.Context) error {
	if s == nil {
		return nil
	}

	if s.database != nil {
		return s.database.Close(ctx)
	}
	return nil
}
