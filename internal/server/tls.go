package server

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net/http"
	"os"

	"hirescreen/internal/config"
)

// configureTLS applies the configured TLS mode to the HTTP server.
// Mode "disabled" leaves the server on plain HTTP.
func (s *Server) configureTLS(httpServer *http.Server) error {
	switch s.TLSConfig.Mode {
	case "", "disabled":
		return nil
	case "server":
		tlsConfig, err := buildTLSConfig(s.TLSConfig)
		if err != nil {
			return err
		}
		httpServer.TLSConfig = tlsConfig
		s.Logger.Info("TLS enabled", "mode", "server", "min_version", s.TLSConfig.MinVersion)
		return nil
	case "mutual":
		tlsConfig, err := buildTLSConfig(s.TLSConfig)
		if err != nil {
			return err
		}
		if err := addClientCertVerification(tlsConfig, s.TLSConfig); err != nil {
			return err
		}
		httpServer.TLSConfig = tlsConfig
		s.Logger.Info("TLS enabled", "mode", "mutual",
			"min_version", s.TLSConfig.MinVersion,
			"client_auth_policy", s.TLSConfig.ClientAuthPolicy)
		return nil
	default:
		return fmt.Errorf("unknown TLS mode: %s", s.TLSConfig.Mode)
	}
}

// buildTLSConfig loads the server key pair and applies the minimum version
func buildTLSConfig(cfg config.TLSConfig) (*tls.Config, error) {
	if cfg.CertFile == "" || cfg.KeyFile == "" {
		return nil, fmt.Errorf("TLS mode %q requires certFile and keyFile", cfg.Mode)
	}

	cert, err := tls.LoadX509KeyPair(cfg.CertFile, cfg.KeyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load server certificate: %w", err)
	}

	minVersion, err := tlsMinVersion(cfg.MinVersion)
	if err != nil {
		return nil, err
	}

	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   minVersion,
	}, nil
}

// addClientCertVerification configures client certificate verification for mutual TLS
func addClientCertVerification(tlsConfig *tls.Config, cfg config.TLSConfig) error {
	if cfg.CAFile == "" {
		return fmt.Errorf("mutual TLS requires caFile for client certificate verification")
	}

	caPEM, err := os.ReadFile(cfg.CAFile)
	if err != nil {
		return fmt.Errorf("failed to read CA file: %w", err)
	}

	caPool := x509.NewCertPool()
	if !caPool.AppendCertsFromPEM(caPEM) {
		return fmt.Errorf("failed to parse CA certificates from %s", cfg.CAFile)
	}

	tlsConfig.ClientCAs = caPool
	tlsConfig.ClientAuth = clientAuthType(cfg.ClientAuthPolicy)
	return nil
}

// tlsMinVersion maps the configured version string to a tls constant
func tlsMinVersion(version string) (uint16, error) {
	switch version {
	case "", "1.2":
		return tls.VersionTLS12, nil
	case "1.3":
		return tls.VersionTLS13, nil
	default:
		return 0, fmt.Errorf("unsupported TLS minimum version: %s", version)
	}
}

// clientAuthType maps the configured policy to a tls.ClientAuthType
func clientAuthType(policy string) tls.ClientAuthType {
	switch policy {
	case "request":
		return tls.RequestClientCert
	case "verify":
		return tls.VerifyClientCertIfGiven
	default:
		// "require" is the default and the safest policy
		return tls.RequireAndVerifyClientCert
	}
}
