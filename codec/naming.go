package codec

import (
	"path/filepath"
	"strings"
)

// CompressedName returns the default output path for compressing path: the
// codec extension appended after any extension the name already has, so
// "report.txt" becomes "report.txt.zst".
func CompressedName(path string) string {
	return path + Extension
}

// DecompressedName returns the default output path for decompressing path:
// the codec extension stripped from the name. A name that does not carry
// the extension gets ".out" appended instead, so the default is always
// distinct from the input.
func DecompressedName(path string) string {
	ext := filepath.Ext(path)
	if strings.EqualFold(ext, Extension) {
		return strings.TrimSuffix(path, ext)
	}
	return path + ".out"
}
