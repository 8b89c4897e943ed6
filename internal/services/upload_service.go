package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// SaveUpload stores an uploaded file under dir as pack_<millis><ext> and
// returns the /uploads/... reference the owning record stores. The name is
// bumped past collisions so simultaneous uploads never overwrite each other.
// Nothing ever deletes these files; replaced images stay on disk.
func SaveUpload(file *multipart.FileHeader, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	ext := filepath.Ext(file.Filename)
	stamp := time.Now().UnixMilli()
	name := fmt.Sprintf("pack_%d%s", stamp, ext)
	for {
		if _, err := os.Stat(filepath.Join(dir, name)); os.IsNotExist(err) {
			break
		}
		stamp++
		name = fmt.Sprintf("pack_%d%s", stamp, ext)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("store upload: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}

	zap.L().Info("upload stored", zap.String("file", name), zap.Int64("size", file.Size))
	return "/uploads/" + name, nil
}
