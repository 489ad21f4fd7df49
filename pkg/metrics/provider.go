package metrics

import (
	"github.com/go-arcade/ats/pkg/log"
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewMetricsServer,
	ProvideRecorder,
)

func NewMetricsServer(config MetricsConfig) *Server {
	return NewServer(config)
}

// ProvideRecorder registers the pipeline counters on the server registry.
func ProvideRecorder(server *Server) *Recorder {
	r := NewRecorder()
	for _, c := range r.Collectors() {
		if err := server.RegisterCollector(c); err != nil {
			log.Warnw("failed to register collector", "error", err)
		}
	}
	return r
}
