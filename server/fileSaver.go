package server

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

var ErrFileTooLarge = errors.New("Uploaded file exceeds the maximum allowed size")

// saveUploadedFiles stores every file sent under the given multipart
// field and returns the relative paths recorded on the campaign. The
// caller treats these paths as opaque.
func (s *Server) saveUploadedFiles(c *gin.Context, field string) ([]string, error) {
	if !strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		return nil, nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, err
	}

	var out []string
	for _, fh := range form.File[field] {
		if s.Cfg.MaxUploadSize > 0 && fh.Size > s.Cfg.MaxUploadSize {
			return nil, ErrFileTooLarge
		}

		name := uploadName(fh.Filename)
		if err := c.SaveUploadedFile(fh, filepath.Join(s.Cfg.UploadsDir, name)); err != nil {
			return nil, err
		}
		out = append(out, s.Cfg.UploadURLPath+name)
	}
	return out, nil
}

var uploadSeq uint64

// uploadName keeps the original basename recognizable but guarantees
// uniqueness with a millisecond stamp plus a process-wide sequence, so
// same-named files in one request cannot overwrite each other.
func uploadName(orig string) string {
	ext := filepath.Ext(orig)
	base := strings.TrimSuffix(filepath.Base(orig), ext)

	var clean []rune
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			clean = append(clean, r)
		default:
			clean = append(clean, '_')
		}
	}
	if len(clean) == 0 {
		clean = []rune("file")
	}

	return fmt.Sprintf("%s_%d_%d%s", string(clean), time.Now().UnixMilli(), atomic.AddUint64(&uploadSeq, 1), ext)
}
