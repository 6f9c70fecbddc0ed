// Package dataset loads the users and stocks collections the dashboard works on.
// Both collections are read once at start-up; nothing is ever written back.
package dataset

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/nfrund/portview/internal/domain"
	"github.com/spf13/afero"
)

// Data is a pair of loaded collections.
type Data struct {
	Users  []domain.User
	Stocks []domain.Stock
}

// Clone returns a deep copy of the users collection alongside the shared,
// read-only stocks collection.
func (d Data) Clone() Data {
	users := make([]domain.User, len(d.Users))
	for i, u := range d.Users {
		users[i] = u.Clone()
	}
	return Data{Users: users, Stocks: d.Stocks}
}

// Loader reads dataset files from a file system.
type Loader struct {
	fs afero.Fs
}

// NewLoader creates a Loader over the given file system.
func NewLoader(fs afero.Fs) *Loader {
	return &Loader{fs: fs}
}

// NewSampleLoader creates a Loader over the embedded sample dataset.
func NewSampleLoader() *Loader {
	return NewLoader(afero.FromIOFS{FS: Sample})
}

// LoadUsers reads and checks the users collection.
func (l *Loader) LoadUsers(path string) ([]domain.User, error) {
	var users []domain.User
	if err := l.decode(path, &users); err != nil {
		return nil, err
	}

	seen := make(map[domain.UserID]struct{}, len(users))
	for i := range users {
		if err := users[i].Validate(); err != nil {
			return nil, fmt.Errorf("%s: entry %d: %w", path, i, err)
		}
		if _, dup := seen[users[i].ID]; dup {
			return nil, fmt.Errorf("%s: %w: %q", path, domain.ErrDuplicateUser, users[i].ID)
		}
		seen[users[i].ID] = struct{}{}
	}
	return users, nil
}

// LoadStocks reads and checks the stocks collection.
func (l *Loader) LoadStocks(path string) ([]domain.Stock, error) {
	var stocks []domain.Stock
	if err := l.decode(path, &stocks); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(stocks))
	for i := range stocks {
		if err := stocks[i].Validate(); err != nil {
			return nil, fmt.Errorf("%s: entry %d: %w", path, i, err)
		}
		if _, dup := seen[stocks[i].Symbol]; dup {
			return nil, fmt.Errorf("%s: %w: %q", path, domain.ErrDuplicateStock, stocks[i].Symbol)
		}
		seen[stocks[i].Symbol] = struct{}{}
	}
	return stocks, nil
}

func (l *Loader) decode(path string, v any) error {
	f, err := l.fs.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open dataset file: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return fmt.Errorf("failed to read dataset file %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode dataset file %s: %w", path, err)
	}
	return nil
}
