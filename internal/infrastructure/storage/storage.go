package storage

import (
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/oklog/ulid/v2"
	"github.com/reusemart/consignment-service/config"
	"github.com/reusemart/consignment-service/pkg/errs"
	"github.com/rs/zerolog/log"
)

// LocalStorage keeps uploaded barang images on disk under Dir and serves
// them under BaseURL.
type LocalStorage struct {
	dir     string
	baseURL string
}

func CreateLocalStorage(config config.UploadConfig) (*LocalStorage, error) {
	if err := os.MkdirAll(config.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload dir: %w", err)
	}

	return &LocalStorage{dir: config.Dir, baseURL: strings.TrimRight(config.BaseURL, "/")}, nil
}

// SaveImage stores fh under a ULID file name and returns its public URL.
// Files whose content is not an image are rejected with errs.ErrNotAnImage.
func (s *LocalStorage) SaveImage(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		log.Error().Err(err).Str("component", "SaveImage").Msg("")
		return "", err
	}
	defer src.Close()

	head := make([]byte, 512)
	n, err := io.ReadFull(src, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		log.Error().Err(err).Str("component", "SaveImage").Msg("")
		return "", err
	}
	head = head[:n]

	contentType := http.DetectContentType(head)
	if !strings.HasPrefix(contentType, "image/") {
		return "", errs.ErrNotAnImage
	}

	name := ulid.Make().String() + extension(fh.Filename, contentType)

	dst, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		log.Error().Err(err).Str("component", "SaveImage").Msg("")
		return "", err
	}
	defer dst.Close()

	if _, err := dst.Write(head); err != nil {
		log.Error().Err(err).Str("component", "SaveImage").Msg("")
		return "", err
	}
	if _, err := io.Copy(dst, src); err != nil {
		log.Error().Err(err).Str("component", "SaveImage").Msg("")
		return "", err
	}

	return s.baseURL + "/" + name, nil
}

// Remove deletes a file previously returned by SaveImage. URLs outside
// BaseURL are ignored.
func (s *LocalStorage) Remove(url string) error {
	prefix := s.baseURL + "/"
	if !strings.HasPrefix(url, prefix) {
		return nil
	}

	name := path.Base(url)
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		log.Error().Err(err).Str("component", "Remove").Msg("")
		return err
	}

	return nil
}

func extension(filename string, contentType string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp":
		return ext
	}

	if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
		return exts[0]
	}
	return ""
}
