package monitor

import "testing"

func TestParseKeyLockSetting(t *testing.T) {
	for _, valid := range []string{"OFF", "MENU", "ALL"} {
		setting, err := ParseKeyLockSetting(valid)
		if err != nil {
			t.Fatalf("ParseKeyLockSetting(%q) returned error: %v", valid, err)
		}
		if string(setting) != valid {
			t.Fatalf("ParseKeyLockSetting(%q) = %q", valid, setting)
		}
	}

	for _, invalid := range []string{"", "off", "LOCK", "NONE"} {
		if _, err := ParseKeyLockSetting(invalid); err == nil {
			t.Fatalf("ParseKeyLockSetting(%q) returned nil error, want error", invalid)
		}
	}
}
