// file: internals/helpers/convert_image.go
package helper

import (
	"bytes"
	"fmt"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"schoolku_backend/internals/configs"
)

const avatarMaxEdge = 512

// SaveAvatarWebp converts an uploaded image to webp (bounded to 512px on the
// longest edge) and writes it under the upload dir. Returns the public path
// served by the static route, e.g. "/uploads/avatars/20250101-<uuid>.webp".
func SaveAvatarWebp(folder string, fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("open image: %w", err)
	}
	defer src.Close()

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}
	img = imaging.Fit(img, avatarMaxEdge, avatarMaxEdge, imaging.Lanczos)

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Quality: 80}); err != nil {
		return "", fmt.Errorf("encode webp: %w", err)
	}

	name := GenerateUniqueFilename(fileHeader.Filename) + ".webp"
	dir := filepath.Join(configs.UploadDir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir upload dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}

	return "/uploads/" + folder + "/" + name, nil
}

// RemoveUpload deletes a previously stored upload by its public path.
// Best effort: a missing file is not an error.
func RemoveUpload(publicPath string) error {
	rel, ok := trimUploadsPrefix(publicPath)
	if !ok {
		return fmt.Errorf("not an upload path: %s", publicPath)
	}
	err := os.Remove(filepath.Join(configs.UploadDir, filepath.FromSlash(rel)))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func trimUploadsPrefix(p string) (string, bool) {
	const prefix = "/uploads/"
	if len(p) <= len(prefix) || p[:len(prefix)] != prefix {
		return "", false
	}
	return p[len(prefix):], true
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func sanitizeFilename(filename string) string {
	return unsafeFilenameChars.ReplaceAllString(filename, "_")
}

func GenerateUniqueFilename(originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	base := sanitizeFilename(originalFilename)
	if ext := filepath.Ext(base); ext != "" {
		base = base[:len(base)-len(ext)]
	}
	return fmt.Sprintf("%s-%s-%s", timestamp, uuid.New().String(), base)
}
