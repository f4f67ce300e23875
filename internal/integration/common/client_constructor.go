package common

import (
	"github.com/theoyjy/IntelliMap/internal/config"
	pkgHTTP "github.com/theoyjy/IntelliMap/pkg/http"
	"go.uber.org/zap"
)

// NewBaseConnector builds an HTTP connector for the model API from config.
// The token travels in the x-goog-api-key header, not in the query string.
func NewBaseConnector(cfg config.HTTPClientConfig, logger *zap.Logger) *pkgHTTP.Connector {
	connCfg := &pkgHTTP.ConnectorConfig{
		Logger:  logger,
		BaseURL: cfg.Url,
	}

	return pkgHTTP.NewConnector(
		connCfg,
		pkgHTTP.WithRequestTimeout(cfg.RequestTimeout),
		pkgHTTP.WithConnClientTimeout(cfg.ConnTimeout),
		pkgHTTP.WithClientKeepAlive(cfg.KeepAlive),
		pkgHTTP.WithIdleConnTimeout(cfg.IdleConnTimeout),
		pkgHTTP.WithResponseHeaderTimeout(cfg.ResponseHeaderTimeout),
		pkgHTTP.WithRequestLogging(),
		pkgHTTP.WithAPIKey(cfg.Token),
	)
}
