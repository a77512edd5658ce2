package internal

import "team-lab/balancer"

type Config struct {
	BadgerFilepath      string `env:"BADGER_FILEPATH,default=./data/team-lab"`
	LogLevel            string `env:"LOG_LEVEL,default=INFO"`
	ExactCandidateLimit int64  `env:"EXACT_CANDIDATE_LIMIT,default=200000"`
	SmallInputSize      int    `env:"SMALL_INPUT_SIZE,default=10"`
	SmallTrials         int    `env:"SMALL_TRIALS,default=1000"`
	LargeTrials         int    `env:"LARGE_TRIALS,default=100"`
	PartitionWorkers    int    `env:"PARTITION_WORKERS,default=1"`
	// Seed makes draws reproducible; unset means a fresh random seed per run.
	Seed    *int64 `env:"SEED"`
	Colours bool   `env:"COLOURS,default=true"`
}

func (c Config) Balancer() balancer.Config {
	return balancer.Config{
		ExactCandidateLimit: c.ExactCandidateLimit,
		SmallInputSize:      c.SmallInputSize,
		SmallTrials:         c.SmallTrials,
		LargeTrials:         c.LargeTrials,
		Workers:             c.PartitionWorkers,
	}
}
