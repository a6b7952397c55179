package version

import (
	"runtime"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnrichBuildInfo(t *testing.T) {
	orig := readBuildInfo
	t.Cleanup(func() { readBuildInfo = orig })

	tests := []struct {
		name      string
		input     Info
		buildInfo *debug.BuildInfo
		check     func(t *testing.T, got Info)
	}{
		{
			name:      "빌드 정보가 없으면 unknown",
			input:     Info{},
			buildInfo: nil,
			check: func(t *testing.T, got Info) {
				assert.Equal(t, unknown, got.Version)
				assert.Equal(t, unknown, got.Commit)
				assert.Equal(t, runtime.Version(), got.GoVersion)
				assert.Equal(t, runtime.GOOS, got.OS)
			},
		},
		{
			name:  "VCS 정보로 보강",
			input: Info{Commit: none},
			buildInfo: &debug.BuildInfo{
				Main: debug.Module{Version: "v1.4.0"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "f25b8bf0c1"},
					{Key: "vcs.time", Value: "2026-01-01T00:00:00Z"},
					{Key: "vcs.modified", Value: "true"},
				},
			},
			check: func(t *testing.T, got Info) {
				assert.Equal(t, "v1.4.0", got.Version)
				assert.Equal(t, "f25b8bf0c1", got.Commit)
				assert.Equal(t, "2026-01-01T00:00:00Z", got.BuildDate)
				assert.True(t, got.DirtyBuild)
			},
		},
		{
			name:  "주입된 값은 덮어쓰지 않음",
			input: Info{Version: "v2.0.0", Commit: "abc1234"},
			buildInfo: &debug.BuildInfo{
				Main:     debug.Module{Version: "(devel)"},
				Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "zzz"}},
			},
			check: func(t *testing.T, got Info) {
				assert.Equal(t, "v2.0.0", got.Version)
				assert.Equal(t, "abc1234", got.Commit)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			readBuildInfo = func() (*debug.BuildInfo, bool) {
				return tt.buildInfo, tt.buildInfo != nil
			}
			tt.check(t, enrichBuildInfo(tt.input))
		})
	}
}

func TestInfo_String(t *testing.T) {
	assert.Equal(t, unknown, Info{}.String())
	assert.Equal(t, "v1.0.0", Info{Version: "v1.0.0"}.String())

	s := Info{Version: "v1.0.0", Commit: "f25b8bf0c1d2", BuildNumber: "12", DirtyBuild: true, OS: "linux"}.String()
	assert.Equal(t, "v1.0.0+dirty (commit: f25b8bf, build: 12, os: linux)", s)
}

func TestSetGetAndUserAgent(t *testing.T) {
	orig := Get()
	t.Cleanup(func() { Set(orig) })

	Set(Info{Version: "v9.9.9"})

	assert.Equal(t, "v9.9.9", Version())
	assert.Equal(t, "crafter-tenant-server/v9.9.9", UserAgent("crafter-tenant-server"))
	assert.Equal(t, "v9.9.9", Get().ToMap()["version"])
}
