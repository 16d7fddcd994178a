package security

import (
	"bytes"
	"errors"
	"net/http"
	"path/filepath"
	"strings"
)

var (
	ErrPhotoExtension = errors.New("photo must be a .jpg, .jpeg, .png or .webp file")
	ErrPhotoSpoofed   = errors.New("photo content does not match its extension")
	ErrPhotoMIME      = errors.New("photo type not allowed")
)

// Magic byte prefixes per accepted photo extension
var photoSignatures = map[string][][]byte{
	".jpg":  {{0xFF, 0xD8, 0xFF}},
	".jpeg": {{0xFF, 0xD8, 0xFF}},
	".png":  {{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}},
	".webp": {{0x52, 0x49, 0x46, 0x46}}, // RIFF header
}

// Strict MIME types. application/octet-stream is never accepted.
var photoMIMETypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// ValidatePhoto checks an uploaded profile photo in three layers:
// extension whitelist, magic bytes matching the extension, and the
// sniffed MIME type.
func ValidatePhoto(filename string, data []byte) error {
	ext := strings.ToLower(filepath.Ext(filename))
	signatures, ok := photoSignatures[ext]
	if !ok {
		return ErrPhotoExtension
	}

	if !hasSignature(data, signatures) {
		return ErrPhotoSpoofed
	}

	// WebP needs the format tag after the RIFF size
	if ext == ".webp" && (len(data) < 12 || !bytes.Equal(data[8:12], []byte("WEBP"))) {
		return ErrPhotoSpoofed
	}

	if !photoMIMETypes[http.DetectContentType(data)] {
		return ErrPhotoMIME
	}
	return nil
}

func hasSignature(data []byte, signatures [][]byte) bool {
	for _, sig := range signatures {
		if bytes.HasPrefix(data, sig) {
			return true
		}
	}
	return false
}
