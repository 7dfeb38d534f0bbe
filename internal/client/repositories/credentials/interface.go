// Package credentials persists the username -> credential mapping.
//
// The store is read and written as a whole: Load returns the full mapping and
// Save rewrites the backing file entirely. There is no per-record update.
package credentials

import (
	"context"

	"github.com/dmitrijs2005/termvault/internal/client/models"
)

// Repository is the credential store contract.
//
// Load returns an empty store when nothing has been saved yet. Errors wrap
// common.ErrIO or common.ErrSerialization.
type Repository interface {
	Load(ctx context.Context) (models.CredentialStore, error)
	Save(ctx context.Context, store models.CredentialStore) error

	// WithLock runs fn while holding exclusive access to the backing file so a
	// load/modify/save cycle is not interleaved with another writer.
	WithLock(ctx context.Context, fn func(ctx context.Context) error) error
}
