package api

import "testing"

func TestPlatformRegion(t *testing.T) {
	tests := []struct {
		platform string
		want     string
	}{
		{"NA1", "americas"},
		{"BR1", "americas"},
		{"LA1", "americas"},
		{"LA2", "americas"},
		{"EUW1", "europe"},
		{"EUN1", "europe"},
		{"TR1", "europe"},
		{"RU", "europe"},
		{"KR", "asia"},
		{"JP1", "asia"},
		{"OC1", "sea"},
		{"SG2", "sea"},
		{"VN2", "sea"},
		{"na1", "americas"}, // case-insensitive
	}
	for _, tt := range tests {
		got, err := PlatformRegion(tt.platform)
		if err != nil {
			t.Errorf("PlatformRegion(%s): %v", tt.platform, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PlatformRegion(%s) = %s, want %s", tt.platform, got, tt.want)
		}
	}
}

func TestPlatformRegionUnknown(t *testing.T) {
	if _, err := PlatformRegion("MARS1"); err == nil {
		t.Fatal("expected error for unknown platform")
	}
	if ValidPlatform("MARS1") {
		t.Fatal("ValidPlatform accepted an unknown platform")
	}
}

func TestRealmName(t *testing.T) {
	tests := []struct {
		platform string
		want     string
	}{
		{"NA1", "na"},
		{"EUW1", "euw"},
		{"EUN1", "eune"},
		{"OC1", "oce"},
		{"LA1", "lan"},
		{"LA2", "las"},
		{"KR", "kr"},
		{"JP1", "jp"},
	}
	for _, tt := range tests {
		if got := realmName(tt.platform); got != tt.want {
			t.Errorf("realmName(%s) = %s, want %s", tt.platform, got, tt.want)
		}
	}
}
