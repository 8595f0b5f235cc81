package live

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// Directories skipped when scanning for recently modified files.
var skipDirs = map[string]bool{
	".git": true, "node_modules": true, "__pycache__": true,
	".next": true, "build": true, "dist": true, ".dart_tool": true,
	".gradle": true, ".venv": true, "venv": true, ".tox": true,
	".mypy_cache": true, ".pytest_cache": true,
}

var skipExtensions = map[string]bool{".pyc": true, ".pyo": true, ".DS_Store": true}

// LastModified finds the most recently modified file under codePath
// and reports it as "2d ago  (filename.ext)", or the placeholder when
// the path is empty, missing, or holds nothing of interest.
func LastModified(codePath string) string {
	if codePath == "" {
		return Placeholder
	}
	if info, err := os.Stat(codePath); err != nil || !info.IsDir() {
		return Placeholder
	}

	var newestTime time.Time
	var newestName string
	_ = filepath.WalkDir(codePath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fs.SkipDir
		}
		if d.IsDir() {
			if skipDirs[d.Name()] {
				return fs.SkipDir
			}
			return nil
		}
		if skipExtensions[filepath.Ext(d.Name())] {
			return nil
		}
		info, infoErr := d.Info()
		if infoErr != nil {
			return nil
		}
		if info.ModTime().After(newestTime) {
			newestTime = info.ModTime()
			newestName = d.Name()
		}
		return nil
	})

	if newestName == "" {
		return Placeholder
	}
	return fmt.Sprintf("%s  (%s)", relativeTime(time.Since(newestTime)), newestName)
}
