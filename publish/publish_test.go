package publish_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/fwojciec/wikidaily"
	"github.com/fwojciec/wikidaily/mock"
	"github.com/fwojciec/wikidaily/publish"
	"github.com/stretchr/testify/assert"
)

// memStore records saved files in memory on top of mock.Store.
type memStore struct {
	mu    sync.Mutex
	data  map[string]string
	order []string
	fail  map[string]error
}

func newMemStore() *memStore {
	return &memStore{data: map[string]string{}, fail: map[string]error{}}
}

func (m *memStore) mock() *mock.Store {
	return &mock.Store{
		SaveFn: func(_ context.Context, name string, data []byte) error {
			m.mu.Lock()
			defer m.mu.Unlock()
			if err := m.fail[name]; err != nil {
				return err
			}
			if _, ok := m.data[name]; !ok {
				m.order = append(m.order, name)
			}
			m.data[name] = string(data)
			return nil
		},
		FilesFn: func() []wikidaily.OutputFile {
			m.mu.Lock()
			defer m.mu.Unlock()
			files := make([]wikidaily.OutputFile, 0, len(m.order))
			for _, name := range m.order {
				files = append(files, wikidaily.OutputFile{Name: name, Size: len(m.data[name]), Checksum: "0"})
			}
			return files
		},
	}
}

func (m *memStore) get(name string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.data[name]
	return s, ok
}

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, nil))
}

func TestNames(t *testing.T) {
	t.Parallel()

	outcomes := []publish.Outcome{
		{Name: "en.json"},
		{Name: "de.json", WriteErr: errors.New("disk full")},
		{Name: "ja.json", Err: errors.New("unavailable")},
	}

	assert.Equal(t, []string{"en.json", "ja.json"}, publish.Names(outcomes))
	assert.Equal(t, 1, publish.Failed(outcomes))
}

func TestNames_Empty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{}, publish.Names(nil))
	assert.Equal(t, 0, publish.Failed(nil))
}
