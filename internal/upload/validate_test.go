package upload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPolicy(t *testing.T) *Policy {
	t.Helper()
	return NewPolicy(Options{PublicDir: t.TempDir()})
}

func TestValidateScenarios(t *testing.T) {
	p := newTestPolicy(t)

	tests := []struct {
		name      string
		candidate *Candidate
		want      Result
	}{
		{
			name:      "png within limit",
			candidate: &Candidate{MIMEType: "image/png", Size: 1048576},
			want:      Result{Valid: true},
		},
		{
			name:      "pdf rejected",
			candidate: &Candidate{MIMEType: "application/pdf", Size: 100},
			want:      Result{Error: "Invalid file type. Allowed types: jpg, jpeg, png, webp", Reason: ReasonType},
		},
		{
			name:      "jpeg too large",
			candidate: &Candidate{MIMEType: "image/jpeg", Size: 6291456},
			want:      Result{Error: "File too large. Maximum size: 5MB", Reason: ReasonSize},
		},
		{
			name:      "nil candidate",
			candidate: nil,
			want:      Result{Error: "No file provided", Reason: ReasonMissing},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Validate(tt.candidate))
		})
	}
}

func TestValidateAcceptsEveryAllowedType(t *testing.T) {
	p := newTestPolicy(t)

	for _, mt := range p.AllowedMIMETypes() {
		for _, size := range []int64{0, 1, 512 * 1024, MaxFileSize} {
			res := p.Validate(&Candidate{MIMEType: mt, Size: size})
			assert.True(t, res.Valid, "%s at %d bytes", mt, size)
			assert.Empty(t, res.Error)
		}
	}
}

func TestValidateSizeBoundaryIsInclusive(t *testing.T) {
	p := newTestPolicy(t)

	assert.True(t, p.Validate(&Candidate{MIMEType: "image/webp", Size: 5 * 1024 * 1024}).Valid)

	res := p.Validate(&Candidate{MIMEType: "image/webp", Size: 5*1024*1024 + 1})
	assert.False(t, res.Valid)
	assert.Equal(t, ReasonSize, res.Reason)
}

func TestValidateTypeCheckedBeforeSize(t *testing.T) {
	p := newTestPolicy(t)

	for _, size := range []int64{0, 10, MaxFileSize * 4} {
		res := p.Validate(&Candidate{MIMEType: "image/gif", Size: size})
		require.False(t, res.Valid)
		assert.Equal(t, ReasonType, res.Reason)
		assert.Contains(t, res.Error, "jpg, jpeg, png, webp")
	}
}

func TestValidateNormalisesMIME(t *testing.T) {
	p := newTestPolicy(t)

	assert.True(t, p.Validate(&Candidate{MIMEType: "IMAGE/PNG", Size: 10}).Valid)
	assert.True(t, p.Validate(&Candidate{MIMEType: "image/jpeg; charset=binary", Size: 10}).Valid)
	assert.False(t, p.Validate(&Candidate{MIMEType: "", Size: 10}).Valid)
}

func TestMaxFileSizeMBRounding(t *testing.T) {
	p := newTestPolicy(t)
	assert.Equal(t, "5", p.MaxFileSizeMB())

	p.maxFileSize = 5 * 1024 * 1024 / 2
	assert.Equal(t, "2.5", p.MaxFileSizeMB())

	p.maxFileSize = 1300000
	assert.Equal(t, "1.2", p.MaxFileSizeMB())
	assert.Equal(t, "File too large. Maximum size: 1.2MB", p.SizeLimitMessage())
}

func TestExtensionFor(t *testing.T) {
	p := newTestPolicy(t)

	ext, ok := p.ExtensionFor("image/jpeg")
	require.True(t, ok)
	assert.Equal(t, "jpeg", ext)

	ext, ok = p.ExtensionFor("image/jpg")
	require.True(t, ok)
	assert.Equal(t, "jpg", ext)

	_, ok = p.ExtensionFor("image/svg+xml")
	assert.False(t, ok)
}

func TestAccessorsReturnCopies(t *testing.T) {
	p := newTestPolicy(t)

	exts := p.AllowedExtensions()
	exts[0] = "exe"
	assert.Equal(t, "jpg", p.AllowedExtensions()[0])

	dims := p.Dimensions()
	dims["cover"] = Dimensions{}
	assert.Equal(t, 1200, p.Dimensions()["cover"].Width)

	cats := Categories()
	cats[0] = "evil"
	assert.Equal(t, CategoryClassGroups, Categories()[0])
}

func TestParseCategory(t *testing.T) {
	c, ok := ParseCategory("banners")
	require.True(t, ok)
	assert.Equal(t, CategoryBanners, c)

	_, ok = ParseCategory("avatars")
	assert.False(t, ok)
}
