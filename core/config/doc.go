// Package config loads typed configuration from the environment. Structs
// declare their variables with env tags, Load fills them via caarlos0/env,
// and a .env file is folded into the environment once on first use so local
// development does not need exported variables.
//
// Each package owning configuration declares its own struct and the
// composition root loads them at startup:
//
//	type Config struct {
//		BindIP   string `env:"WEB_BIND_IP" envDefault:"127.0.0.1"`
//		BindPort int    `env:"WEB_BIND_PORT" envDefault:"8080"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// Load caches by struct type: loading the same type twice returns the first
// snapshot, which keeps configuration a process-lifetime value rather than
// an ambient lookup that could change between requests.
package config
