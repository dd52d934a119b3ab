package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/nutri-track/internal/config"
	"github.com/MKhiriev/nutri-track/internal/logger"
)

type appInfoService struct {
	version string
	logger  *logger.Logger
}

// NewAppInfoService serves the version from APP_VERSION. A blank version is
// a configuration error since /api/version would have nothing to report.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{version: version, logger: logger}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	logger.FromContext(ctx).Debug().Str("version", s.version).Msg("version requested")
	return s.version
}
