/**************************************************************************************************
** Package scanner enumerates candidate image files under a root directory. Scan order is
** deterministic (lexical), which downstream planning relies on for stable tie-breaking and
** collision suffixes.
**************************************************************************************************/
package scanner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/entolab/ami-camera-utils/pkg/utils"
)

/**************************************************************************************************
** FindImageFiles returns the image files under root. With recursive set the whole tree is
** walked; otherwise only direct children are considered. A nonexistent or non-directory root
** is a configuration error and aborts before anything is touched.
**
** @param root - Directory to scan
** @param recursive - Whether to descend into subdirectories
** @return []string - Paths of image files in lexical order
** @return error - Configuration or traversal error
**************************************************************************************************/
func FindImageFiles(root string, recursive bool) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("invalid root directory %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root %s is not a directory", root)
	}

	if !recursive {
		entries, err := os.ReadDir(root)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", root, err)
		}
		var files []string
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			path := filepath.Join(root, entry.Name())
			if utils.IsImageFile(path) {
				files = append(files, path)
			}
		}
		return files, nil
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if utils.IsImageFile(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}
	return files, nil
}
