package storage

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	_ "golang.org/x/image/webp" // webp decode support for imaging
)

// Buckets for uploaded files. Each maps to a directory under the uploads
// root and a segment of the public URL.
const (
	BucketProducts      = "products"
	BucketCategories    = "categories"
	BucketPaymentProofs = "payment-proofs"
	BucketHero          = "hero"
)

const (
	maxImageSize = 2 << 20 // product and category images
	maxLargeSize = 5 << 20 // hero images and payment proofs
	maxDimension = 1600
	jpegQuality  = 80
)

var allowedTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

var ErrUnsupportedType = errors.New("unsupported image type: use JPEG, PNG or WebP")

// Store saves uploaded images under a local uploads root and maps them to
// public URLs served by the router's static file handler.
type Store struct {
	Dir       string
	PublicURL string
}

func New(dir, publicURL string) *Store {
	return &Store{Dir: dir, PublicURL: strings.TrimSuffix(publicURL, "/")}
}

// SizeLimit returns the byte ceiling for a bucket.
func SizeLimit(bucket string) int64 {
	if bucket == BucketHero || bucket == BucketPaymentProofs {
		return maxLargeSize
	}
	return maxImageSize
}

// Validate checks the declared content type and the size ceiling before any
// bytes are read.
func Validate(fh *multipart.FileHeader, bucket string) error {
	if fh.Size > SizeLimit(bucket) {
		return fmt.Errorf("file too large: limit is %dMB", SizeLimit(bucket)>>20)
	}
	ct := fh.Header.Get("Content-Type")
	if _, ok := allowedTypes[ct]; !ok {
		return ErrUnsupportedType
	}
	return nil
}

// Filename builds a collision-resistant name for an upload. The caller's
// filename is never reused.
func Filename(fh *multipart.FileHeader, bucket string) string {
	ext := allowedTypes[fh.Header.Get("Content-Type")]
	if ext == "" {
		ext = strings.ToLower(filepath.Ext(fh.Filename))
	}
	if bucket != BucketPaymentProofs {
		// recompressed images are always re-encoded as JPEG
		ext = ".jpg"
	}
	return uuid.NewString() + ext
}

// Save validates and stores an upload, returning its public URL.
// Product, category and hero images are resized to fit maxDimension and
// re-encoded; payment proofs are written byte-for-byte to preserve the
// evidence exactly as submitted.
func (s *Store) Save(fh *multipart.FileHeader, bucket string) (string, error) {
	if err := Validate(fh, bucket); err != nil {
		return "", err
	}

	dir := filepath.Join(s.Dir, bucket)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create upload folder: %w", err)
	}

	name := Filename(fh, bucket)
	dest := filepath.Join(dir, name)

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if bucket == BucketPaymentProofs {
		out, err := os.Create(dest)
		if err != nil {
			return "", err
		}
		defer out.Close()
		if _, err := out.ReadFrom(src); err != nil {
			return "", err
		}
	} else {
		img, err := imaging.Decode(src, imaging.AutoOrientation(true))
		if err != nil {
			return "", fmt.Errorf("failed to decode image: %w", err)
		}
		if img.Bounds().Dx() > maxDimension || img.Bounds().Dy() > maxDimension {
			img = imaging.Fit(img, maxDimension, maxDimension, imaging.Lanczos)
		}
		out, err := os.Create(dest)
		if err != nil {
			return "", err
		}
		defer out.Close()
		if err := imaging.Encode(out, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
			return "", fmt.Errorf("failed to encode image: %w", err)
		}
	}

	return fmt.Sprintf("%s/%s/%s", s.PublicURL, bucket, name), nil
}

// Delete removes the file behind a public URL. Best effort: a missing file
// is not an error.
func (s *Store) Delete(publicURL string) {
	if publicURL == "" {
		return
	}
	rel := strings.TrimPrefix(publicURL, s.PublicURL+"/")
	if rel == publicURL {
		return // not one of ours
	}
	_ = os.Remove(filepath.Join(s.Dir, filepath.FromSlash(rel)))
}
