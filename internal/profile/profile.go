// Package profile persists the single local player record.
package profile

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"runtime"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// ErrMalformed is returned when the save file exists but is not a JSON object.
var ErrMalformed = errors.New("malformed profile")

const (
	dirName  = "CatchTheStars"
	fileName = "user_data.json"
)

// Profile is the persisted record.
type Profile struct {
	Username  string
	Highscore int
}

// Default returns a fresh profile with a generated name.
func Default(rng *rand.Rand) Profile {
	return Profile{Username: fmt.Sprintf("Player%d", 1000+rng.Intn(9000))}
}

// Beat raises the highscore to score if it is higher and reports
// whether it changed.
func (p *Profile) Beat(score int) bool {
	if score <= p.Highscore {
		return false
	}
	p.Highscore = score
	return true
}

// Store loads and saves a profile.
type Store interface {
	Load() (Profile, error)
	Save(Profile) error
}

// DefaultPath returns the per-user save path: %APPDATA%\CatchTheStars on
// Windows, ~/.CatchTheStars elsewhere.
func DefaultPath() (string, error) {
	if runtime.GOOS == "windows" {
		dir := os.Getenv("APPDATA")
		if dir == "" {
			var err error
			if dir, err = os.UserConfigDir(); err != nil {
				return "", fmt.Errorf("resolve config dir: %w", err)
			}
		}
		return filepath.Join(dir, dirName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, "."+dirName, fileName), nil
}

// FileStore keeps the profile in a single JSON file. Keys other than
// username and highscore are left untouched on save.
type FileStore struct {
	path string
	rng  *rand.Rand
}

// NewFileStore returns a store at path. rng seeds default usernames.
func NewFileStore(path string, rng *rand.Rand) *FileStore {
	return &FileStore{path: path, rng: rng}
}

// Path returns the file location.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the profile. A missing file is created with defaults;
// missing keys fall back to defaults individually.
func (s *FileStore) Load() (Profile, error) {
	def := Default(s.rng)

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := s.Save(def); err != nil {
			return def, err
		}
		return def, nil
	}
	if err != nil {
		return Profile{}, fmt.Errorf("read profile: %w", err)
	}

	if !gjson.ValidBytes(data) || !gjson.ParseBytes(data).IsObject() {
		return Profile{}, fmt.Errorf("%w: %s", ErrMalformed, s.path)
	}

	p := def
	if v := gjson.GetBytes(data, "username"); v.Type == gjson.String {
		p.Username = v.String()
	}
	if v := gjson.GetBytes(data, "highscore"); v.Type == gjson.Number && v.Int() > 0 {
		p.Highscore = int(v.Int())
	}
	return p, nil
}

// Save overwrites the record atomically.
func (s *FileStore) Save(p Profile) error {
	base := []byte("{}")
	if old, err := os.ReadFile(s.path); err == nil && gjson.ValidBytes(old) && gjson.ParseBytes(old).IsObject() {
		base = old
	}

	out, err := sjson.SetBytes(base, "username", p.Username)
	if err != nil {
		return fmt.Errorf("encode username: %w", err)
	}
	out, err = sjson.SetBytes(out, "highscore", p.Highscore)
	if err != nil {
		return fmt.Errorf("encode highscore: %w", err)
	}
	return writeAtomic(s.path, out)
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create profile dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".user_data-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp profile: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write profile: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("sync profile: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close profile: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace profile: %w", err)
	}
	return nil
}
