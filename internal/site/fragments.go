package site

import (
	"os"
	"sort"
	"time"

	"git.home.luguber.info/inful/kasdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/kasdocs/internal/sections"
)

// FragmentInfo describes one regular file in the partials directory.
type FragmentInfo struct {
	Name    string
	ID      string // empty when Name is not a .html fragment
	ModTime time.Time
	Size    int64
}

// LoadFragment returns the raw content of the partial for id.
func (s *Site) LoadFragment(id string) (string, error) {
	path, err := s.FragmentPath(id)
	if err != nil {
		return "", err
	}
	data, err := s.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// SaveFragment overwrites the partial for id.
func (s *Site) SaveFragment(id, content string) error {
	path, err := s.FragmentPath(id)
	if err != nil {
		return err
	}
	return s.WriteFile(path, []byte(content))
}

// ListFragments returns the regular files of the partials directory sorted by name.
func (s *Site) ListFragments() ([]FragmentInfo, error) {
	entries, err := os.ReadDir(s.PartialsPath())
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "list partials").
			WithContext("path", s.PartialsPath()).
			Build()
	}

	infos := make([]FragmentInfo, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			// removed between ReadDir and Info
			continue
		}
		id, _ := sections.IDFromFileName(entry.Name())
		infos = append(infos, FragmentInfo{
			Name:    entry.Name(),
			ID:      id,
			ModTime: info.ModTime(),
			Size:    info.Size(),
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos, nil
}

// CountFragments returns the number of .html fragments in the partials directory.
func (s *Site) CountFragments() (int, error) {
	infos, err := s.ListFragments()
	if err != nil {
		return 0, err
	}
	n := 0
	for _, info := range infos {
		if info.ID != "" {
			n++
		}
	}
	return n, nil
}
