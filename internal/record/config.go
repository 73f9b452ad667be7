package record

type Config struct {
	TrainingFile string `envconfig:"KNN_TRAINING_FILE" default:"iris.csv" toml:"training_file"`
	Delimiter    string `envconfig:"KNN_DELIMITER" default:"," toml:"delimiter"`
}
