// Package config loads application configuration from environment
// variables into typed structs.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: the
// default .env file in the working directory is loaded once per process
// (a missing file is fine), then env.Parse populates the struct from field
// tags.
//
// # Usage
//
//	type RedisConfig struct {
//	    ConnectionURL  string        `env:"REDIS_URL,required"`
//	    ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"5s"`
//	}
//
//	var cfg RedisConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// MustLoad panics on failure, for configuration the process cannot start
// without.
package config
