// Package catalog holds the site's static content: programs, the weekly
// schedule, the organisational structure, headline statistics and the FAQ.
//
// The defaults are embedded. When a catalog file is configured it replaces the
// defaults and is reloaded whenever it changes on disk.
package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/nfrund/zawiya/internal/domain"
)

//go:embed default.yaml
var defaultYAML []byte

// Data is the decoded catalog document.
type Data struct {
	Programs        []domain.Program      `yaml:"programs"`
	Schedule        []domain.ClassSession `yaml:"schedule"`
	Structure       domain.Structure      `yaml:"structure"`
	Statistics      domain.Statistics     `yaml:"statistics"`
	FAQ             []domain.FAQ          `yaml:"faq"`
	States          []string              `yaml:"states"`
	ContactSubjects []string              `yaml:"contact_subjects"`
}

// Catalog is the live catalog. It is safe for concurrent use.
type Catalog struct {
	mu   sync.RWMutex
	data Data
	fs   afero.Fs
	path string
}

// Parse decodes a catalog document.
func Parse(raw []byte) (Data, error) {
	var d Data
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return Data{}, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(d.Programs) == 0 {
		return Data{}, fmt.Errorf("catalog has no programs")
	}
	return d, nil
}

// Default returns the embedded catalog.
func Default() *Catalog {
	d, err := Parse(defaultYAML)
	if err != nil {
		panic(err)
	}
	return &Catalog{data: d}
}

// Load reads the catalog at path on fs. An empty path returns the defaults.
func Load(fs afero.Fs, path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	c := &Catalog{fs: fs, path: path}
	if err := c.Reload(); err != nil {
		return nil, err
	}
	return c, nil
}

// Reload re-reads the catalog file. On error the current data is kept.
func (c *Catalog) Reload() error {
	if c.path == "" {
		return nil
	}
	raw, err := afero.ReadFile(c.fs, c.path)
	if err != nil {
		return fmt.Errorf("failed to read catalog %s: %w", c.path, err)
	}
	d, err := Parse(raw)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.data = d
	c.mu.Unlock()
	return nil
}

// Watch reloads the catalog whenever its file is written, until ctx is done.
// The directory is watched so editors that replace the file are handled.
func (c *Catalog) Watch(ctx context.Context) error {
	if c.path == "" {
		return nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create catalog watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(c.path)); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", c.path, err)
	}

	go func() {
		defer watcher.Close()
		target := filepath.Clean(c.path)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target || !ev.Has(fsnotify.Write|fsnotify.Create) {
					continue
				}
				if err := c.Reload(); err != nil {
					slog.Warn("Catalog reload failed, keeping previous version", "path", c.path, "error", err)
					continue
				}
				slog.Info("Catalog reloaded", "path", c.path)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Error("Catalog watcher error", "error", err)
			}
		}
	}()
	return nil
}

// Programs returns every program.
func (c *Catalog) Programs() []domain.Program {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.data.Programs)
}

// Program looks up a program by id.
func (c *Catalog) Program(id string) (domain.Program, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range c.data.Programs {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Program{}, false
}

// ProgramLabel returns the display name of a program.
func (c *Catalog) ProgramLabel(id string) (string, bool) {
	p, ok := c.Program(id)
	return p.Name, ok
}

// Schedule returns every class session.
func (c *Catalog) Schedule() []domain.ClassSession {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.data.Schedule)
}

// UpdateMeetLink changes the meeting link of a class.
func (c *Catalog) UpdateMeetLink(id int, link string) (domain.ClassSession, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.data.Schedule {
		if c.data.Schedule[i].ID == id {
			c.data.Schedule[i].MeetLink = link
			return c.data.Schedule[i], nil
		}
	}
	return domain.ClassSession{}, fmt.Errorf("class %d: %w", id, domain.ErrNotFound)
}

func (c *Catalog) Structure() domain.Structure {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.data.Structure
}

func (c *Catalog) Statistics() domain.Statistics {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.data.Statistics
}

func (c *Catalog) FAQ() []domain.FAQ {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.data.FAQ)
}

// States lists the options of the registration state select.
func (c *Catalog) States() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.data.States)
}

// ContactSubjects lists the options of the contact subject select.
func (c *Catalog) ContactSubjects() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.data.ContactSubjects)
}
