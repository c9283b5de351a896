package browser

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/JonathanEhlinger/superflush/internal/config"
)

// Deletion is one path Clear would remove, with its current size.
type Deletion struct {
	Browser string
	Path    string
	Size    int64
}

// Preview performs the same walk as Clear without mutating anything,
// reporting what would be deleted and how much space it holds. Drives
// the --dry-run flag.
func (e *Eraser) Preview() []Deletion {
	var out []Deletion

	for _, p := range e.Profiles {
		if _, err := os.Stat(p.Path); err != nil {
			continue
		}

		for _, name := range config.ArtifactNames() {
			target := filepath.Join(p.Path, name)
			info, err := os.Stat(target)
			if err != nil {
				continue
			}
			out = append(out, Deletion{
				Browser: p.Name,
				Path:    target,
				Size:    entrySize(target, info),
			})
		}

		if p.SweepProfiles {
			entries, err := os.ReadDir(p.Path)
			if err != nil {
				continue
			}
			for _, entry := range entries {
				target := filepath.Join(p.Path, entry.Name())
				info, err := entry.Info()
				if err != nil {
					continue
				}
				out = append(out, Deletion{
					Browser: p.Name,
					Path:    target,
					Size:    entrySize(target, info),
				})
			}
		}
	}

	return out
}

// entrySize returns the file size, or the recursive total for a
// directory. Unreadable entries count as zero rather than failing the
// preview.
func entrySize(path string, info fs.FileInfo) int64 {
	if !info.IsDir() {
		return info.Size()
	}

	var total int64
	_ = filepath.WalkDir(path, func(_ string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if fi, err := d.Info(); err == nil {
			total += fi.Size()
		}
		return nil
	})
	return total
}
