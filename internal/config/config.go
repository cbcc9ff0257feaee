// Package config loads game configuration from an optional HCL file.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete game configuration
type Config struct {
	Game GameSettings `hcl:"game,block"`
}

// GameSettings contains session-level configuration
type GameSettings struct {
	PlayerName string `hcl:"player_name,optional"`
	Difficulty string `hcl:"difficulty,optional"`
	SavePath   string `hcl:"save_path,optional"`
	LogFile    string `hcl:"log_file,optional"`
	Seed       int64  `hcl:"seed,optional"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		Game: GameSettings{
			PlayerName: "Player",
			Difficulty: "medium",
			SavePath:   "rps-stats.json",
			LogFile:    "rps-debug.log",
		},
	}
}

// Load reads configuration from an HCL file, filling in defaults for
// missing values. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	defaults := Default()
	if config.Game.PlayerName == "" {
		config.Game.PlayerName = defaults.Game.PlayerName
	}
	if config.Game.Difficulty == "" {
		config.Game.Difficulty = defaults.Game.Difficulty
	}
	if config.Game.SavePath == "" {
		config.Game.SavePath = defaults.Game.SavePath
	}
	if config.Game.LogFile == "" {
		config.Game.LogFile = defaults.Game.LogFile
	}

	return &config, nil
}
