package upload

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestFullPathJoinsRoot(t *testing.T) {
	root := t.TempDir()
	p := NewPolicy(Options{PublicDir: root})

	got, err := p.FullPath("/images/class-groups/x.jpg")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "images", "class-groups", "x.jpg"), got)

	got, err = p.FullPath("images/class-groups/banners/b.png")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "images", "class-groups", "banners", "b.png"), got)
}

func TestFullPathRejectsTraversal(t *testing.T) {
	p := newTestPolicy(t)

	for _, rel := range []string{
		"../etc/passwd",
		"/images/../../etc/passwd",
		"/images/class-groups/..",
		`\images\..\secret`,
		"/images/x.jpg\x00.png",
	} {
		_, err := p.FullPath(rel)
		assert.ErrorIs(t, err, ErrUnsafePath, rel)
	}
}

func TestFullPathAllowsDotsInNames(t *testing.T) {
	p := newTestPolicy(t)

	got, err := p.FullPath("/images/class-groups/a..b.jpg")
	require.NoError(t, err)
	assert.Equal(t, "a..b.jpg", filepath.Base(got))
}

func TestImageURL(t *testing.T) {
	local := NewPolicy(Options{PublicDir: t.TempDir()})
	cdn := NewPolicy(Options{PublicDir: t.TempDir(), CDN: CDN{Enabled: true, BaseURL: "https://cdn.example.org"}})
	noBase := NewPolicy(Options{PublicDir: t.TempDir(), CDN: CDN{Enabled: true}})

	for _, p := range []string{"", "/images/class-groups/x.jpg", "relative.png", "?q=1"} {
		assert.Equal(t, p, local.ImageURL(p))
		assert.Equal(t, "https://cdn.example.org"+p, cdn.ImageURL(p))
		assert.Equal(t, p, noBase.ImageURL(p))
	}
}

func TestEnsureDirectoriesIdempotent(t *testing.T) {
	root := t.TempDir()
	p := NewPolicy(Options{PublicDir: root})

	core, logs := observer.New(zapcore.InfoLevel)
	log := zap.New(core).Sugar()

	created, err := p.EnsureDirectories(log)
	require.NoError(t, err)
	assert.Len(t, created, 4)
	assert.Equal(t, 4, logs.FilterMessage("created image directory").Len())

	for _, rel := range []string{
		"images/class-groups",
		"images/class-groups/placeholders",
		"images/class-groups/banners",
		"images/class-groups/thumbnails",
	} {
		info, err := os.Stat(filepath.Join(root, rel))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}

	created, err = p.EnsureDirectories(log)
	require.NoError(t, err)
	assert.Empty(t, created)
	assert.Equal(t, 4, logs.Len())
}

func TestEnsureDirectoriesConcurrent(t *testing.T) {
	p := newTestPolicy(t)

	core, logs := observer.New(zapcore.InfoLevel)
	log := zap.New(core).Sugar()

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		all []string
	)
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			created, err := p.EnsureDirectories(log)
			errs <- err
			mu.Lock()
			all = append(all, created...)
			mu.Unlock()
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	assert.Len(t, all, 4, "each directory is reported by one caller")
	assert.Equal(t, 4, logs.FilterMessage("created image directory").Len())
}

func TestEnsureDirectoriesPartialTree(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "images", "class-groups", "banners"), 0o755))

	p := NewPolicy(Options{PublicDir: root})
	created, err := p.EnsureDirectories(nil)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(root, "images", "class-groups", "placeholders"),
		filepath.Join(root, "images", "class-groups", "thumbnails"),
	}, created)
}

func TestEnsureDirectoriesProvisioningError(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "images"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "images", "class-groups"), []byte("not a dir"), 0o644))

	p := NewPolicy(Options{PublicDir: root})
	_, err := p.EnsureDirectories(nil)
	require.Error(t, err)

	var perr *ProvisioningError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, CategoryClassGroups, perr.Category)
	assert.Contains(t, perr.Error(), "class-groups")
}

func TestCheckPath(t *testing.T) {
	assert.NoError(t, CheckPath("/images/class-groups/banners/b.png"))
	assert.NoError(t, CheckPath("images/a..b.jpg"))
	assert.ErrorIs(t, CheckPath("/images/../x"), ErrUnsafePath)
	assert.ErrorIs(t, CheckPath(`images\..\x`), ErrUnsafePath)
	assert.ErrorIs(t, CheckPath("x\x00"), ErrUnsafePath)
}
