package constants

import (
	"fmt"
	"strings"
)

// AllowedExtensions holds the default allowed file extensions for
// product photo ingestion.
var AllowedExtensions = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"webp": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsAllowedExt reports whether a (possibly dotted) extension is ingestible.
func IsAllowedExt(ext string) bool {
	_, ok := AllowedExtensions[NormalizeExt(ext)]
	return ok
}

// SafeFilename validates an untrusted upload filename before it is used
// as a storage key. Path separators and traversal sequences are
// rejected; the name is returned trimmed.
func SafeFilename(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("empty filename")
	}
	if strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("filename %q contains a path separator", name)
	}
	if strings.Contains(name, "..") {
		return "", fmt.Errorf("filename %q contains a traversal sequence", name)
	}
	if name == "." {
		return "", fmt.Errorf("invalid filename %q", name)
	}
	return name, nil
}
