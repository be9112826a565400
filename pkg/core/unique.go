// pkg/core/unique.go
package core

// Unique returns the distinct values of items in order of first occurrence
func Unique(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))

	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}

	return out
}
