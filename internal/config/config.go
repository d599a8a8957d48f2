// Package config provides configuration for the hold'em server
package config

import (
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"holdem-server/internal/util"
	"holdem-server/pkg/game"
)

// Config provides configuration for the hold'em server
type Config struct {
	loaded bool
	Addr   string `yaml:"addr" envconfig:"addr"`
	Log    struct {
		Level             string `yaml:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	}
	Game struct {
		SmallBlind int `yaml:"smallBlind" envconfig:"small_blind"`
		BigBlind   int `yaml:"bigBlind" envconfig:"big_blind"`
		MaxPlayers int `yaml:"maxPlayers" envconfig:"max_players"`
		// TimeToAct is how long a player has to act, in seconds. Zero disables the timer.
		TimeToAct int `yaml:"timeToAct" envconfig:"time_to_act"`
	}
}

// DefaultConfig returns the configuration used when no file or environment
// overrides are present.
func DefaultConfig() Config {
	c := Config{}
	c.Addr = ":5000"
	c.Game.SmallBlind = 25
	c.Game.BigBlind = 50
	c.Game.MaxPlayers = 9
	c.Game.TimeToAct = 30

	return c
}

// GameParameters returns the table rules described by the configuration
func (c Config) GameParameters() game.GameParameters {
	return game.GameParameters{
		SmallBlind: c.Game.SmallBlind,
		BigBlind:   c.Game.BigBlind,
		MaxPlayers: c.Game.MaxPlayers,
		TimeToAct:  time.Duration(c.Game.TimeToAct) * time.Second,
	}
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration. A missing config file is not an error;
// the defaults and environment are used instead.
func Load() error {
	config = DefaultConfig()

	configFile := util.Getenv("HOLDEM_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("holdem", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
