package media

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Category names a media directory under the store root. Each content
// kind keeps its files in its own directory.
type Category string

const (
	CategoryTeam         Category = "Team"
	CategoryTestimonials Category = "Testimonials"
	CategoryServices     Category = "Services"
)

var categories = []Category{CategoryTeam, CategoryTestimonials, CategoryServices}

// MediaStore manages the on-disk media directories that back the
// image paths stored in database rows. It never touches database
// rows; callers keep the two consistent (copy file before inserting
// the row, delete the row before deleting the file).
type MediaStore struct {
	root string
}

func NewMediaStore(root string) *MediaStore {
	return &MediaStore{root: root}
}

func (m *MediaStore) Root() string {
	return m.root
}

func (m *MediaStore) Dir(category Category) string {
	return filepath.Join(m.root, string(category))
}

// EnsureDirsExist creates any missing category directory. Safe to
// call repeatedly; never deletes anything.
func (m *MediaStore) EnsureDirsExist() error {
	for _, category := range categories {
		if err := os.MkdirAll(m.Dir(category), 0o755); err != nil {
			return fmt.Errorf("failed to create media directory %s: %w", category, err)
		}
	}
	return nil
}

// SaveContentItem copies a source file (typically a temporary
// picker-supplied file) into the category directory under fileName
// and returns the final path. An existing file of the same name is
// deleted first, the copy is last-write-wins.
func (m *MediaStore) SaveContentItem(sourcePath string, category Category, fileName string) (string, error) {
	if err := m.EnsureDirsExist(); err != nil {
		return "", err
	}

	destPath := filepath.Join(m.Dir(category), fileName)
	if _, err := os.Stat(destPath); err == nil {
		if err := os.Remove(destPath); err != nil {
			return "", fmt.Errorf("failed to replace %s: %w", destPath, err)
		}
	}

	if err := copyFile(sourcePath, destPath); err != nil {
		return "", err
	}
	return destPath, nil
}

// ListContentItems returns the paths of the regular files in a
// category directory.
func (m *MediaStore) ListContentItems(category Category) ([]string, error) {
	if err := m.EnsureDirsExist(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(m.Dir(category))
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			paths = append(paths, filepath.Join(m.Dir(category), entry.Name()))
		}
	}
	return paths, nil
}

// DeleteContentItem removes the file at path if it exists. Deleting
// an absent file is a no-op, not an error.
func (m *MediaStore) DeleteContentItem(path string) error {
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// SaveToRoot copies a file directly into the store root keeping the
// source base name. Legacy helper predating the categorized
// directories, still used by the gallery flow.
func (m *MediaStore) SaveToRoot(sourcePath string) (string, error) {
	if err := os.MkdirAll(m.root, 0o755); err != nil {
		return "", err
	}

	destPath := filepath.Join(m.root, filepath.Base(sourcePath))
	if err := copyFile(sourcePath, destPath); err != nil {
		return "", err
	}
	return destPath, nil
}

// NewFileName returns a unique file name such as "team_<uuid>.jpg".
func NewFileName(prefix, ext string) string {
	return fmt.Sprintf("%s_%s%s", prefix, uuid.NewString(), ext)
}

func copyFile(sourcePath, destPath string) error {
	source, err := os.Open(sourcePath)
	if err != nil {
		return fmt.Errorf("failed to open source file: %w", err)
	}
	defer func() {
		_ = source.Close()
	}()

	dest, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", destPath, err)
	}

	if _, err := io.Copy(dest, source); err != nil {
		_ = dest.Close()
		// Do not leave a partially written destination behind.
		_ = os.Remove(destPath)
		return fmt.Errorf("failed to copy to %s: %w", destPath, err)
	}
	if err := dest.Close(); err != nil {
		_ = os.Remove(destPath)
		return err
	}
	return nil
}
