package predictor

type VoteMode string

const (
	// VoteModeLabel tallies votes per distinct label.
	VoteModeLabel VoteMode = "LABEL"
	// VoteModeFirstMatch credits each vote to the first stored observation
	// carrying the neighbor's label.
	VoteModeFirstMatch VoteMode = "FIRST_MATCH"
)

type Config struct {
	K        int      `envconfig:"KNN_K" default:"1" toml:"k"`
	VoteMode VoteMode `envconfig:"KNN_VOTE_MODE" default:"LABEL" toml:"vote_mode"`
}

func (c Config) PredictorVoteMode() VoteMode {
	return c.VoteMode
}
