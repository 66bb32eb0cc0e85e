package version

import (
	"runtime/debug"
	"testing"
)

func TestApplyBuildInfo(t *testing.T) {
	stamped := &debug.BuildInfo{
		Main: debug.Module{Version: "v1.2.3"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.time", Value: "2025-06-01T10:00:00Z"},
			{Key: "vcs.modified", Value: "true"},
		},
	}

	tests := []struct {
		name string
		info Info
		bi   *debug.BuildInfo
		want Info
	}{
		{
			name: "fills unset fields",
			info: Info{Version: "dev", Commit: unknown, Date: unknown},
			bi:   stamped,
			want: Info{Version: "1.2.3", Commit: "0123456789abcdef", Date: "2025-06-01T10:00:00Z", Modified: true},
		},
		{
			name: "injected values win",
			info: Info{Version: "2.0.0", Commit: "feedface", Date: "2025-01-01"},
			bi:   stamped,
			want: Info{Version: "2.0.0", Commit: "feedface", Date: "2025-01-01", Modified: true},
		},
		{
			name: "devel build",
			info: Info{Version: "dev", Commit: unknown, Date: unknown},
			bi:   &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}},
			want: Info{Version: "dev", Commit: unknown, Date: unknown},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.info
			applyBuildInfo(&got, tt.bi)
			if got != tt.want {
				t.Errorf("applyBuildInfo() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestInfoString(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{
			name: "release",
			info: Info{Version: "1.2.3", Commit: "0123456789abcdef", Date: "2025-06-01", GoVersion: "go1.25.1", Platform: "linux/amd64"},
			want: "vibrant version 1.2.3 (commit: 01234567, built: 2025-06-01) go1.25.1 linux/amd64",
		},
		{
			name: "dirty without date",
			info: Info{Version: "dev", Commit: "abc", Date: unknown, Modified: true, GoVersion: "go1.25.1", Platform: "darwin/arm64"},
			want: "vibrant version dev (commit: abc-dirty) go1.25.1 darwin/arm64",
		},
		{
			name: "no vcs data",
			info: Info{Version: "dev", Commit: unknown, Date: unknown, GoVersion: "go1.25.1", Platform: "linux/arm64"},
			want: "vibrant version dev go1.25.1 linux/arm64",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
