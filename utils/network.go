package utils

import (
	"path/filepath"
	"strings"
)

// Common network mount prefixes on different platforms
var networkMountPrefixes = []string{
	"/mnt/",     // Linux NFS/SMB mounts
	"/media/",   // Linux removable/network media
	"/Volumes/", // macOS network volumes
}

// Network filesystem indicators that may appear anywhere in a path
var networkPathIndicators = []string{
	"nfs", "cifs", "smb", "webdav", "ftp", "sftp",
}

// IsNetworkDrive detects if a file path is on a network-mounted drive
func IsNetworkDrive(filePath string) bool {
	// Check Windows UNC paths first, before converting to absolute path
	if strings.HasPrefix(filePath, "//") || strings.HasPrefix(filePath, "\\\\") {
		return true
	}

	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return false
	}

	for _, prefix := range networkMountPrefixes {
		if strings.HasPrefix(absPath, prefix) {
			return true
		}
	}

	lowerPath := strings.ToLower(absPath)
	for _, indicator := range networkPathIndicators {
		if strings.Contains(lowerPath, indicator) {
			return true
		}
	}

	return false
}

// NetworkDriveWarning returns a warning when any of the paths looks like it
// is on a network drive, empty otherwise. Large transfers over a network
// mount are much slower than local disk.
func NetworkDriveWarning(paths ...string) string {
	for _, path := range paths {
		if IsNetworkDrive(path) {
			return "network drive detected, transfers may be slow"
		}
	}
	return ""
}
