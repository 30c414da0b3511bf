package config

import (
	"log"

	"mini-foerderportal/internal/fixtures"
)

// LoadFixtures returns the dataset the store is seeded from: the file at
// FixturesPath when set, otherwise the built-in fixtures.
func LoadFixtures(cfg *Config) (fixtures.Dataset, error) {
	if cfg.FixturesPath == "" {
		log.Println("🌱 Using built-in fixtures")
		return fixtures.Default(), nil
	}

	dataset, err := fixtures.Load(cfg.FixturesPath)
	if err != nil {
		return fixtures.Dataset{}, err
	}

	log.Printf("🌱 Loaded fixtures from %s (%d users, %d programs, %d applications)",
		cfg.FixturesPath,
		len(dataset.Users),
		len(dataset.Programs),
		len(dataset.Applications),
	)
	return dataset, nil
}
