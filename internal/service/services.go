package service

import (
	"github.com/MKhiriev/cms-tools/internal/adapter"
	"github.com/MKhiriev/cms-tools/internal/logger"
)

type Services struct {
	ConfigFetcher ConfigFetcher
}

func NewServices(source adapter.ConfigSource, logger *logger.Logger) *Services {
	return &Services{
		ConfigFetcher: NewConfigFetcher(source, logger),
	}
}
