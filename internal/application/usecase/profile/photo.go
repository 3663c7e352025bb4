package profile

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"
)

// AllowedPhotoExtensions are the formats accepted for the profile photo.
var AllowedPhotoExtensions = []string{"jpg", "jpeg", "png", "gif", "webp"}

var dataURLPrefix = regexp.MustCompile(`^data:image/[a-zA-Z0-9.+-]+;base64,`)

// StripDataURLPrefix removes a leading "data:image/<type>;base64," header.
func StripDataURLPrefix(data string) string {
	return dataURLPrefix.ReplaceAllString(data, "")
}

// PhotoExtension returns the lower-cased text after the last dot of fileName,
// or an error if it is not one of AllowedPhotoExtensions.
func PhotoExtension(fileName string) (string, error) {
	idx := strings.LastIndex(fileName, ".")
	if idx < 0 || idx == len(fileName)-1 {
		return "", fmt.Errorf("unsupported image format: file name %q has no extension", fileName)
	}
	ext := strings.ToLower(fileName[idx+1:])
	for _, allowed := range AllowedPhotoExtensions {
		if ext == allowed {
			return ext, nil
		}
	}
	return "", fmt.Errorf("unsupported image format %q, allowed: %s", ext, strings.Join(AllowedPhotoExtensions, ", "))
}

// PhotoContentType maps an allowed extension to its MIME type.
func PhotoContentType(ext string) string {
	if ext == "jpg" {
		return "image/jpeg"
	}
	return "image/" + ext
}

// decodePhoto decodes standard base64 (padded or not) and enforces maxBytes
// on the decoded length.
func decodePhoto(data string, maxBytes int64) ([]byte, error) {
	data = strings.NewReplacer("\n", "", "\r", "", " ", "").Replace(data)
	if data == "" {
		return nil, fmt.Errorf("photo data is empty")
	}
	// Padding can make DecodedLen overshoot by at most two bytes.
	if int64(base64.StdEncoding.DecodedLen(len(data))) > maxBytes+2 {
		return nil, tooLarge(maxBytes)
	}

	decoded, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		decoded, err = base64.RawStdEncoding.DecodeString(data)
		if err != nil {
			return nil, fmt.Errorf("photo data is not valid base64")
		}
	}
	if int64(len(decoded)) > maxBytes {
		return nil, tooLarge(maxBytes)
	}
	return decoded, nil
}

func tooLarge(maxBytes int64) error {
	return fmt.Errorf("photo exceeds the maximum size of %d MB", maxBytes/(1024*1024))
}
