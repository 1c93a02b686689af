package media

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"kitabdunyasi/utils"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	_ "golang.org/x/image/webp" // webp decoder for image.Decode
)

const (
	CoverDir   = "static/bookpic"
	ThumbDir   = "static/bookpic/thumb"
	thumbWidth = 400
	maxUpload  = 10 << 20
)

// SaveCover stores an uploaded book cover and a 400px-wide thumbnail.
// It returns the stored file names for the original and the thumb.
func SaveCover(file multipart.File, header *multipart.FileHeader) (string, string, error) {
	defer file.Close()

	if header.Size > maxUpload {
		return "", "", fmt.Errorf("file too large: %d bytes", header.Size)
	}
	if !utils.SupportedImageTypes[header.Header.Get("Content-Type")] {
		return "", "", fmt.Errorf("unsupported image type: %s", header.Filename)
	}

	buf, err := io.ReadAll(io.LimitReader(file, maxUpload))
	if err != nil {
		return "", "", fmt.Errorf("read upload: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(buf))
	if err != nil {
		return "", "", fmt.Errorf("decode image %q: %w", header.Filename, err)
	}

	name := uuid.New().String() + strings.ToLower(filepath.Ext(header.Filename))
	if err := utils.EnsureDir(CoverDir); err != nil {
		return "", "", err
	}
	if err := os.WriteFile(filepath.Join(CoverDir, name), buf, 0o644); err != nil {
		return "", "", fmt.Errorf("save cover: %w", err)
	}

	thumbName := strings.TrimSuffix(name, filepath.Ext(name)) + ".jpg"
	if err := saveThumb(img, thumbName); err != nil {
		return "", "", err
	}
	return name, thumbName, nil
}

func saveThumb(img image.Image, name string) error {
	resized := imaging.Resize(img, thumbWidth, 0, imaging.Lanczos)
	if err := utils.EnsureDir(ThumbDir); err != nil {
		return err
	}
	out, err := os.Create(filepath.Join(ThumbDir, name))
	if err != nil {
		return fmt.Errorf("create thumbnail: %w", err)
	}
	defer out.Close()
	if err := jpeg.Encode(out, resized, &jpeg.Options{Quality: 85}); err != nil {
		return fmt.Errorf("encode thumbnail: %w", err)
	}
	return nil
}

// DeleteCover removes a stored cover and its thumbnail, ignoring files
// that are already gone.
func DeleteCover(name string) {
	if name == "" || strings.Contains(name, "/") {
		return
	}
	os.Remove(filepath.Join(CoverDir, name))
	thumb := strings.TrimSuffix(name, filepath.Ext(name)) + ".jpg"
	os.Remove(filepath.Join(ThumbDir, thumb))
}
