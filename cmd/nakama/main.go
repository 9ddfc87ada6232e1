// Nakama loads this module as a Go runtime plugin; the exported InitModule
// is the entry point it looks up. Everything else lives behind the jolly
// internal packages.
package main

import (
	"context"
	"database/sql"

	"jolly/internal/ports/nakama"

	"github.com/heroiclabs/nakama-common/runtime"
)

// InitModule hands initialization to the nakama adapter package, which
// registers the Jolly match handler, RPCs and auth hooks.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	return nakama.InitModule(ctx, logger, db, nk, initializer)
}

// main is never called: Nakama loads this package as a plugin and invokes
// InitModule directly. It exists so `go build ./...` can compile the package.
func main() {}
