package api

import (
	"fmt"
	"strings"
)

// PlatformRegion maps a platform routing value (the shard a player plays on)
// to the regional routing value used by the account and match endpoints.
func PlatformRegion(platform string) (string, error) {
	switch strings.ToUpper(platform) {
	case "NA1", "BR1", "LA1", "LA2":
		return "americas", nil
	case "EUW1", "EUN1", "TR1", "RU":
		return "europe", nil
	case "KR", "JP1":
		return "asia", nil
	case "PH2", "SG2", "TH2", "TW2", "VN2", "OC1":
		return "sea", nil
	default:
		return "", fmt.Errorf("unknown platform %q", platform)
	}
}

// ValidPlatform reports whether platform is a known routing value.
func ValidPlatform(platform string) bool {
	_, err := PlatformRegion(platform)
	return err == nil
}
