package storage

import (
	"github.com/go-arcade/ats/pkg/log"
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(ProvidePresigner)

// ProvidePresigner returns a nil Presigner when no bucket is configured, which
// disables resume uploads without failing startup.
func ProvidePresigner(conf *Storage) (Presigner, error) {
	if conf.Bucket == "" {
		log.Warnw("storage bucket not configured, resume uploads disabled")
		return nil, nil
	}
	return NewPresigner(conf)
}

func NewPresigner(conf *Storage) (Presigner, error) {
	conf.SetDefaults()
	if err := conf.Validate(); err != nil {
		return nil, err
	}

	var (
		p   Presigner
		err error
	)
	switch conf.Provider {
	case ProviderMinio:
		p, err = newMinio(conf)
	default:
		p, err = newS3(conf)
	}
	if err != nil {
		return nil, err
	}
	log.Infow("upload storage initialized", "provider", conf.Provider, "bucket", conf.Bucket)
	return p, nil
}
