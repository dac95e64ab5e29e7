package resources

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PublicPrefix is the URL path uploaded files are served under
const PublicPrefix = "/uploads/"

// Store writes uploaded files to a local directory
type Store struct {
	dir string
	now func() time.Time
}

// NewStore creates a store rooted at dir
func NewStore(dir string) *Store {
	return &Store{dir: dir, now: time.Now}
}

// Dir returns the directory files are written to
func (s *Store) Dir() string {
	return s.dir
}

// StoredName builds "<unix-millis>-<8 hex chars>-<basename>" for an upload
func (s *Store) StoredName(original string) string {
	base := filepath.Base(strings.ReplaceAll(original, "\\", "/"))
	base = strings.Join(strings.Fields(base), "-")
	if base == "" || base == "." || base == "/" {
		base = "file"
	}
	return fmt.Sprintf("%d-%s-%s", s.now().UnixMilli(), uuid.NewString()[:8], base)
}

// Save writes the multipart file and returns its public path
func (s *Store) Save(c *gin.Context, file *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}
	name := s.StoredName(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(s.dir, name)); err != nil {
		return "", err
	}
	return PublicPrefix + name, nil
}

// Remove deletes a file previously returned by Save
func (s *Store) Remove(publicPath string) error {
	name := strings.TrimPrefix(publicPath, PublicPrefix)
	if name == publicPath || name == "" || strings.ContainsAny(name, "/\\") {
		return fmt.Errorf("not a stored upload: %q", publicPath)
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
