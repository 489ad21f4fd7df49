package http

import (
	"fmt"
	"time"
)

/**
 * @file: http.go
 * @description: http server config
 */

type Http struct {
	Host            string
	Port            int
	AccessLog       bool
	ExposeMetrics   bool
	PProf           bool // mounts /debug/pprof
	BodyLimit       int  // MB
	ReadTimeout     int  // seconds
	WriteTimeout    int  // seconds
	IdleTimeout     int  // seconds
	ShutdownTimeout int  // seconds
	RequestTimeout  int  // seconds, bound on every service call
	TLS             TLS
	Auth            Auth
}

type TLS struct {
	CertFile string
	KeyFile  string
}

// Auth configures verification of bearer tokens issued by the external identity provider.
type Auth struct {
	JWTSecret string
	Audience  string
	Issuer    string
}

func (h *Http) SetDefaults() {
	if h.Host == "" {
		h.Host = "0.0.0.0"
	}
	if h.Port == 0 {
		h.Port = 8080
	}
	if h.BodyLimit <= 0 {
		h.BodyLimit = 4
	}
	if h.ReadTimeout <= 0 {
		h.ReadTimeout = 30
	}
	if h.WriteTimeout <= 0 {
		h.WriteTimeout = 30
	}
	if h.IdleTimeout <= 0 {
		h.IdleTimeout = 60
	}
	if h.ShutdownTimeout <= 0 {
		h.ShutdownTimeout = 30
	}
	if h.RequestTimeout <= 0 {
		h.RequestTimeout = 15
	}
	if h.Auth.Audience == "" {
		h.Auth.Audience = "authenticated"
	}
}

func (h *Http) Address() string {
	return fmt.Sprintf("%s:%d", h.Host, h.Port)
}

func (h *Http) RequestTimeoutDuration() time.Duration {
	return time.Duration(h.RequestTimeout) * time.Second
}
