package site

import (
	"strconv"
	"strings"
)

// NextBuildNumber is the counter transition: one past a readable previous
// value, or 1 when there is none.
func NextBuildNumber(prev int, found bool) int {
	if !found {
		return 1
	}
	return prev + 1
}

// ReadBuildNumber returns the persisted counter. found is false when the
// counter file is absent or does not hold an integer.
func (s *Site) ReadBuildNumber() (n int, found bool) {
	data, err := s.ReadFile(s.BuildNumberPath())
	if err != nil {
		return 0, false
	}
	n, err = strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, false
	}
	return n, true
}

// WriteBuildNumber persists n without a trailing newline.
func (s *Site) WriteBuildNumber(n int) error {
	return s.WriteFile(s.BuildNumberPath(), []byte(strconv.Itoa(n)))
}

// IncrementBuildNumber advances the persisted counter by one and returns the new value.
func (s *Site) IncrementBuildNumber() (int, error) {
	n := NextBuildNumber(s.ReadBuildNumber())
	if err := s.WriteBuildNumber(n); err != nil {
		return n, err
	}
	return n, nil
}
