// Package config provides configuration loading and validation for chainkit
// commands.
//
// It uses Viper to load configuration from YAML files and environment
// variables, with .env file support via godotenv. Commands embed
// ServiceConfig in their own config structs and load them with LoadConfig:
//
//	type DemoConfig struct {
//	    config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
//	    RNG rng.Params `yaml:"rng" mapstructure:"rng"`
//	}
//
//	var cfg DemoConfig
//	err := config.LoadConfig("chaindemo", &cfg)
package config
