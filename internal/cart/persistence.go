package cart

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// StorageKeyPrefix is the fixed key under which cart state is persisted.
const StorageKeyPrefix = "print-shop-cart"

// Persistence is the durable side-effecting adapter behind the store.
// Load returns nil bytes when nothing has been persisted yet.
type Persistence interface {
	Load() ([]byte, error)
	Save(data []byte) error
	Clear() error
}

// MemoryPersistence keeps the blob in memory. Used in tests and as the
// default when no cart directory is configured.
type MemoryPersistence struct {
	mu   sync.Mutex
	data []byte
}

func NewMemoryPersistence() *MemoryPersistence {
	return &MemoryPersistence{}
}

func (m *MemoryPersistence) Load() ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		return nil, nil
	}
	out := make([]byte, len(m.data))
	copy(out, m.data)
	return out, nil
}

func (m *MemoryPersistence) Save(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make([]byte, len(data))
	copy(m.data, data)
	return nil
}

func (m *MemoryPersistence) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = nil
	return nil
}

// FilePersistence stores the blob as a JSON file under a fixed key,
// one file per session.
type FilePersistence struct {
	path string
}

func NewFilePersistence(dir, sessionID string) *FilePersistence {
	return &FilePersistence{
		path: filepath.Join(dir, StorageKeyPrefix+"-"+safeSessionKey(sessionID)+".json"),
	}
}

// safeSessionKey maps a client-supplied session ID to a filename-safe key.
// Plain token IDs (UUIDs included) are kept readable on disk; anything with
// path separators or other unexpected characters is hashed so it cannot
// escape the cart directory.
func safeSessionKey(sessionID string) string {
	if sessionID == "" {
		return hashSessionID(sessionID)
	}
	for _, r := range sessionID {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return hashSessionID(sessionID)
		}
	}
	return sessionID
}

func hashSessionID(sessionID string) string {
	sum := sha256.Sum256([]byte(sessionID))
	return hex.EncodeToString(sum[:])
}

func (f *FilePersistence) Load() ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (f *FilePersistence) Save(data []byte) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(f.path, data, 0o644)
}

func (f *FilePersistence) Clear() error {
	err := os.Remove(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
