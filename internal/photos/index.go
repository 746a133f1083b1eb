package photos

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

var (
	idPrefixPattern = regexp.MustCompile(`^[0-9A-Za-z]+`)

	imageExts = map[string]struct{}{
		".jpg":  {},
		".jpeg": {},
		".png":  {},
	}
)

// Index maps an uppercased student ID to the photo filename it was
// extracted from. Original filename casing is preserved in the value.
type Index map[string]string

// BuildIndex scans dir for image files whose names start with a student ID.
// Filenames are sorted before insertion so that when two files share an ID
// prefix the lexicographically last one wins, keeping repeat runs stable.
func BuildIndex(dir string) (Index, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if _, ok := imageExts[ext]; !ok {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	idx := Index{}
	for _, name := range names {
		prefix := idPrefixPattern.FindString(name)
		if prefix == "" {
			continue
		}
		idx[strings.ToUpper(prefix)] = name
	}
	return idx, nil
}

// Lookup returns the photo filename for a normalized ID, or "" on a miss.
func (i Index) Lookup(id string) string {
	return i[id]
}
