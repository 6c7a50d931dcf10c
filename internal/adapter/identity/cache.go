package identity

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/AzureAD/microsoft-authentication-library-for-go/apps/cache"
)

const (
	cacheFileMode = 0600
	cacheDirMode  = 0700
)

// FileCache persists the MSAL token cache as a JSON file so that silent
// sign-in keeps working across runs. A missing file is an empty cache.
type FileCache struct {
	path string
	mu   sync.Mutex
}

var _ cache.ExportReplace = (*FileCache)(nil)

func NewFileCache(path string) *FileCache {
	return &FileCache{path: path}
}

func (c *FileCache) Path() string {
	return c.path
}

// Replace loads the persisted cache into MSAL before it reads tokens
func (c *FileCache) Replace(ctx context.Context, u cache.Unmarshaler, _ cache.ReplaceHints) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("unable to read token cache %s: %w", c.path, err)
	}
	if len(data) == 0 {
		return nil
	}

	if err := u.Unmarshal(data); err != nil {
		return fmt.Errorf("unable to decode token cache %s: %w", c.path, err)
	}
	return nil
}

// Export writes the cache after MSAL changes it. The write goes to a temp
// file first so a crash never leaves a truncated cache behind.
func (c *FileCache) Export(ctx context.Context, m cache.Marshaler, _ cache.ExportHints) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := m.Marshal()
	if err != nil {
		return fmt.Errorf("unable to encode token cache: %w", err)
	}

	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, cacheDirMode); err != nil {
		return fmt.Errorf("unable to create token cache directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".msal-cache-*")
	if err != nil {
		return fmt.Errorf("unable to create token cache: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		// no-op once the rename succeeded
		_ = os.Remove(tmpName)
	}()

	if err := tmp.Chmod(cacheFileMode); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("unable to restrict token cache permissions: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("unable to write token cache: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("unable to write token cache: %w", err)
	}

	if err := os.Rename(tmpName, c.path); err != nil {
		return fmt.Errorf("unable to replace token cache %s: %w", c.path, err)
	}
	return nil
}
