package service

import "strings"

// ShouldActivate reports whether locationURL contains any allow-list entry.
func ShouldActivate(locationURL string, allowList []string) bool {
	for _, entry := range allowList {
		if entry != "" && strings.Contains(locationURL, entry) {
			return true
		}
	}
	return false
}
