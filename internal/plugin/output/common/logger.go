package common

import "github.com/hashicorp/go-hclog"

// Logger wraps an exporter's logger so callers never need a nil check.
// Named sub-loggers carry the exporter name on every line.
func Logger(logger hclog.Logger, exporter string) hclog.Logger {
	if logger == nil {
		return hclog.NewNullLogger()
	}
	return logger.Named(exporter)
}
