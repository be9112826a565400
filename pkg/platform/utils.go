// pkg/platform/utils.go
package platform

import (
	"os"
)

// fileExists reports whether path exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// contains checks if a slice contains a value
func contains(slice []Strategy, item Strategy) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
