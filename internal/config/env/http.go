package env

import (
	"dice_backend/internal/config"
	"net"
	"time"
)

type httpEnv struct {
	Host         string        `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port         string        `env:"HTTP_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"60s"`
	SecureCookie bool          `env:"HTTP_SECURE_COOKIE" envDefault:"false"`
}

type httpConfig struct {
	address      string
	readTimeout  time.Duration
	writeTimeout time.Duration
	secureCookie bool
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	var e httpEnv
	if err := config.ParseEnv(&e); err != nil {
		return nil, err
	}

	return &httpConfig{
		address:      net.JoinHostPort(e.Host, e.Port),
		readTimeout:  e.ReadTimeout,
		writeTimeout: e.WriteTimeout,
		secureCookie: e.SecureCookie,
	}, nil
}

func (c *httpConfig) Address() string {
	return c.address
}

func (c *httpConfig) ReadTimeout() time.Duration {
	return c.readTimeout
}

func (c *httpConfig) WriteTimeout() time.Duration {
	return c.writeTimeout
}

func (c *httpConfig) SecureCookies() bool {
	return c.secureCookie
}
