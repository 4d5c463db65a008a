package hdkey

import (
	"fmt"
	"strconv"
	"strings"
)

// Path is a sequence of non-hardened child indices below some KeyNode.
type Path []uint32

// String renders the path as "M/i/j/...".
func (p Path) String() string {
	var sb strings.Builder
	sb.WriteString("M")
	for _, index := range p {
		sb.WriteByte('/')
		sb.WriteString(strconv.FormatUint(uint64(index), 10))
	}
	return sb.String()
}

// ParsePath parses a path such as "M/0/1/2". The leading "M" or "m" is
// optional and "M" alone is the empty path. Hardened markers (', h, H) and
// indices at or above 2^31 fail with ErrUnsupportedHardenedIndex.
func ParsePath(s string) (Path, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "", "m", "M":
		return Path{}, nil
	}

	parts := strings.Split(s, "/")
	if parts[0] == "m" || parts[0] == "M" {
		parts = parts[1:]
	}

	path := make(Path, 0, len(parts))
	for _, part := range parts {
		index, err := parseIndex(part)
		if err != nil {
			return nil, err
		}
		path = append(path, index)
	}
	return path, nil
}

func parseIndex(s string) (uint32, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty component", ErrInvalidPath)
	}
	if strings.ContainsAny(s[len(s)-1:], "'hH") {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedHardenedIndex, s)
	}
	if len(s) > 1 && s[0] == '0' {
		return 0, fmt.Errorf("%w: leading zero in %q", ErrInvalidPath, s)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("%w: %q is not a decimal index", ErrInvalidPath, s)
		}
	}

	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q out of range", ErrInvalidPath, s)
	}
	if uint32(n) >= HardenedKeyStart {
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedHardenedIndex, n)
	}
	return uint32(n), nil
}
