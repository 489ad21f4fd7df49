package database

import "github.com/google/wire"

var ProviderSet = wire.NewSet(
	NewManager,
	ProvideIDatabase,
)

func ProvideIDatabase(manager Manager) IDatabase {
	return manager
}
