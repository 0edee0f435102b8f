package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

type winnersFile struct {
	Winners []string `toml:"winners"`
}

// LoadWinners reads the ordered winners list. A missing file means no
// winners have been announced yet.
func LoadWinners(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read winners: %w", err)
	}

	return ParseWinners(data)
}

func ParseWinners(data []byte) ([]string, error) {
	var f winnersFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("config: parse winners: %w", err)
	}

	seen := make(map[string]struct{}, len(f.Winners))
	res := make([]string, 0, len(f.Winners))
	for i, name := range f.Winners {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("config: winner %d is blank", i+1)
		}
		if _, ok := seen[name]; ok {
			return nil, fmt.Errorf("config: winner %q listed twice", name)
		}
		seen[name] = struct{}{}
		res = append(res, name)
	}
	return res, nil
}
