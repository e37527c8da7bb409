package helper

import "testing"

func TestResolveClientIP(t *testing.T) {
	cases := []struct {
		name      string
		forwarded string
		fallback  string
		want      string
	}{
		{"forwarded single", "1.2.3.4", "9.9.9.9", "1.2.3.4"},
		{"forwarded chain takes first", "1.2.3.4, 5.6.7.8", "9.9.9.9", "1.2.3.4"},
		{"forwarded with spaces", "  1.2.3.4 ,5.6.7.8", "9.9.9.9", "1.2.3.4"},
		{"no header uses fallback", "", "9.9.9.9", "9.9.9.9"},
		{"nothing resolves to unknown", "", "", "unknown"},
		{"blank header uses fallback", "   ", "9.9.9.9", "9.9.9.9"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveClientIP(tc.forwarded, tc.fallback); got != tc.want {
				t.Fatalf("ResolveClientIP(%q, %q) = %q, want %q", tc.forwarded, tc.fallback, got, tc.want)
			}
		})
	}
}
