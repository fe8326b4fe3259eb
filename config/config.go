package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Rules struct {
		MatchTarget      int
		AllPassCloses    bool
		IdleAfterSeconds int
	}
	Log struct {
		Level string
	}
}

var C Config

func Load() {
	viper.SetConfigFile("config/config.yaml")
	viper.SetDefault("rules.matchTarget", 31)
	viper.SetDefault("rules.allPassCloses", true)
	viper.SetDefault("rules.idleAfterSeconds", 60)
	viper.SetDefault("log.level", "info")
	if err := viper.ReadInConfig(); err != nil {
		log.Printf("No config file, using defaults: %v", err)
	}
	if err := viper.Unmarshal(&C); err != nil {
		log.Fatalf("Failed to parse config: %v", err)
	}
}
