package store

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "image/gif"
	_ "image/png"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/image/draw"
)

const (
	thumbSubdir   = "thumbs"
	thumbMaxWidth = 480
	jpegQuality   = 80
)

// KnownDirs are the upload subdirectories the media panel manages.
var KnownDirs = []string{"recipes", "about", "gallery"}

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
}

// Uploads stores uploaded images under a root directory, one subdirectory
// per usage (recipes, about, gallery).
type Uploads struct {
	root    string
	maxSize int64
}

func NewUploads(root string, maxSize int64) *Uploads {
	return &Uploads{root: root, maxSize: maxSize}
}

// Dir returns the absolute path of an upload subdirectory.
func (u *Uploads) Dir(subdir string) string {
	return filepath.Join(u.root, filepath.Base(subdir))
}

// URL returns the public path a stored file is served under.
func (u *Uploads) URL(subdir, filename string) string {
	return "/img/" + filepath.Base(subdir) + "/" + filepath.Base(filename)
}

// SaveImage validates an uploaded file by sniffing its content (the client
// extension is never trusted), writes it under <root>/<subdir> with a
// timestamp-random filename, and generates a thumbnail best-effort.
// Returns the stored filename.
func (u *Uploads) SaveImage(subdir, originalName string, r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, u.maxSize+1))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > u.maxSize {
		return "", fmt.Errorf("upload exceeds limit of %d bytes", u.maxSize)
	}

	mtype := mimetype.Detect(data)
	ext, ok := allowedImageTypes[mtype.String()]
	if !ok {
		return "", fmt.Errorf("unsupported image type %s (allowed: jpeg, png, gif)", mtype.String())
	}

	dir := u.Dir(subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload directory: %w", err)
	}

	filename := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), randomHex(4), ext)
	if err := os.WriteFile(filepath.Join(dir, filename), data, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}

	// Thumbnail failure never fails the upload.
	u.writeThumbnail(dir, filename, data)

	return filename, nil
}

// Remove deletes a stored file and its thumbnail. The filename and subdir
// are reduced to their base names so a crafted path cannot escape the root.
func (u *Uploads) Remove(subdir, filename string) error {
	filename = filepath.Base(filename)
	target := filepath.Join(u.Dir(subdir), filename)
	if err := os.Remove(target); err != nil {
		return fmt.Errorf("remove %s: %w", filename, err)
	}
	os.Remove(filepath.Join(u.Dir(subdir), thumbSubdir, thumbName(filename)))
	return nil
}

// Exists reports whether a stored file is present on disk.
func (u *Uploads) Exists(subdir, filename string) bool {
	_, err := os.Stat(filepath.Join(u.Dir(subdir), filepath.Base(filename)))
	return err == nil
}

// Count scans the known subdirectories and counts image files.
func (u *Uploads) Count() int {
	total := 0
	for _, sub := range KnownDirs {
		entries, err := os.ReadDir(u.Dir(sub))
		if err != nil {
			continue
		}
		for _, e := range entries {
			if !e.IsDir() && isImageName(e.Name()) {
				total++
			}
		}
	}
	return total
}

func isImageName(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg", ".png", ".gif":
		return true
	}
	return false
}

func thumbName(filename string) string {
	ext := filepath.Ext(filename)
	return strings.TrimSuffix(filename, ext) + ".jpg"
}

// writeThumbnail decodes the image, downscales it to thumbMaxWidth if wider,
// and writes a JPEG copy under <dir>/thumbs. Errors are swallowed.
func (u *Uploads) writeThumbnail(dir, filename string, data []byte) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > thumbMaxWidth {
		newH := h * thumbMaxWidth / w
		dst := image.NewRGBA(image.Rect(0, 0, thumbMaxWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	thumbDir := filepath.Join(dir, thumbSubdir)
	if err := os.MkdirAll(thumbDir, 0o755); err != nil {
		return
	}
	out, err := os.Create(filepath.Join(thumbDir, thumbName(filename)))
	if err != nil {
		return
	}
	defer out.Close()
	jpeg.Encode(out, img, &jpeg.Options{Quality: jpegQuality})
}

func randomHex(n int) string {
	b := make([]byte, n)
	rand.Read(b)
	return hex.EncodeToString(b)
}
