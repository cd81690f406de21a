package config

import "time"

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	DatabaseURL string `env:"DATABASE_URL" envDefault:"sea_catering.db"`

	JWT   JWT   `envPrefix:"JWT_"`
	Admin Admin `envPrefix:"ADMIN_"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}

type JWT struct {
	Secret string        `env:"SECRET,required"`
	TTL    time.Duration `env:"TTL" envDefault:"12h"`
}

// Admin is the seed account created at startup when no user with this
// email exists yet.
type Admin struct {
	Email    string `env:"EMAIL" envDefault:"admin@seacatering.id"`
	Password string `env:"PASSWORD,required"`
	Name     string `env:"NAME" envDefault:"SEA Catering Admin"`
}
