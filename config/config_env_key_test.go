package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"secretKey": map[string]any{
			"access": "",
		},
		"auth": map[string]any{
			"bcryptCost": 10,
			"tokenTTL":   "1h",
		},
		"storage": map[string]any{
			"bucketURL": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "AUTH_BCRYPTCOST", want: "auth.bcryptCost"},
		{envKey: "AUTH_TOKENTTL", want: "auth.tokenTTL"},
		{envKey: "STORAGE_BUCKETURL", want: "storage.bucketURL"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestHasTopLevelSection(t *testing.T) {
	existing := map[string]any{
		"secretKey": map[string]any{"access": ""},
	}

	if !hasTopLevelSection("SECRETKEY_ACCESS", existing) {
		t.Fatal("expected SECRETKEY_ACCESS to match the secretKey section")
	}
	if hasTopLevelSection("PATH", existing) {
		t.Fatal("expected PATH to be ignored")
	}
}
