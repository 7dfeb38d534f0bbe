package credentials

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/dmitrijs2005/termvault/internal/client/models"
	"github.com/dmitrijs2005/termvault/internal/common"
	"github.com/dmitrijs2005/termvault/internal/filex"
)

const filePerm os.FileMode = 0o600

// TOMLRepository keeps the store in a TOML file with one table per user:
//
//	[alice]
//	password_hash = "$2a$10$..."
type TOMLRepository struct {
	path string
}

func NewTOMLRepository(path string) *TOMLRepository {
	return &TOMLRepository{path: path}
}

// Path returns the backing file location.
func (r *TOMLRepository) Path() string {
	return r.path
}

func (r *TOMLRepository) lockPath() string {
	return r.path + ".lock"
}

func (r *TOMLRepository) Load(ctx context.Context) (models.CredentialStore, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.NewCredentialStore(), nil
		}
		return nil, fmt.Errorf("%w: read %s: %v", common.ErrIO, r.path, err)
	}

	return decode(data)
}

func (r *TOMLRepository) Save(ctx context.Context, store models.CredentialStore) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := encode(store)
	if err != nil {
		return err
	}

	if err := filex.WriteFileAtomic(r.path, data, filePerm); err != nil {
		return fmt.Errorf("%w: write %s: %v", common.ErrIO, r.path, err)
	}
	return nil
}

func (r *TOMLRepository) WithLock(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	lock, err := filex.AcquireLock(r.lockPath())
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrIO, err)
	}
	defer func() {
		if rerr := lock.Release(); rerr != nil && err == nil {
			err = fmt.Errorf("%w: release lock: %v", common.ErrIO, rerr)
		}
	}()

	return fn(ctx)
}

func decode(data []byte) (models.CredentialStore, error) {
	store := models.NewCredentialStore()
	if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&store); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrSerialization, err)
	}
	if _, ok := store[""]; ok {
		return nil, fmt.Errorf("%w: empty username key", common.ErrSerialization)
	}
	return store, nil
}

func encode(store models.CredentialStore) ([]byte, error) {
	if _, ok := store[""]; ok {
		return nil, fmt.Errorf("%w: empty username key", common.ErrSerialization)
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(store); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrSerialization, err)
	}
	return buf.Bytes(), nil
}
