package scaffold

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solforge/cli/internal/config"
	errs "github.com/solforge/cli/internal/errors"
	"github.com/solforge/cli/internal/templates"
)

// faultFs injects a failure for any path containing failSubstr.
type faultFs struct {
	afero.Fs
	failSubstr string
	failErr    error
}

func (f *faultFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if strings.Contains(name, f.failSubstr) {
		return nil, f.failErr
	}
	return f.Fs.OpenFile(name, flag, perm)
}

func (f *faultFs) MkdirAll(path string, perm os.FileMode) error {
	if strings.Contains(path, f.failSubstr) {
		return f.failErr
	}
	return f.Fs.MkdirAll(path, perm)
}

// recordingInstaller records install invocations and returns a fixed error.
type recordingInstaller struct {
	dirs []string
	err  error
}

func (r *recordingInstaller) Install(_ context.Context, dir string) error {
	r.dirs = append(r.dirs, dir)
	return r.err
}

func vaultContext(t *testing.T, dir string) (templates.Context, templates.Descriptor) {
	t.Helper()
	desc := templates.Vault()
	resolved, err := templates.ResolveOptions(desc, nil)
	require.NoError(t, err)
	return templates.Context{
		ProjectName: "my-vault",
		Dir:         dir,
		Options:     resolved,
	}, desc
}

func TestGenerate_EndToEnd(t *testing.T) {
	fs := afero.NewMemMapFs()
	inst := &recordingInstaller{}
	g := New(NewWriterFs(fs), inst, nil, config.Default(), Options{})

	tctx, desc := vaultContext(t, "/work/my-vault")
	require.NoError(t, g.Generate(context.Background(), tctx, desc))

	// Fixed skeleton plus template files and both manifests.
	for _, p := range []string{
		"programs/my_vault/src/lib.rs",
		"programs/my_vault/Cargo.toml",
		"tests/my_vault.ts",
		"app/client.ts",
		"migrations/deploy.ts",
		"target/deploy",
		"Anchor.toml",
		"package.json",
		"README.md",
	} {
		exists, err := afero.Exists(fs, filepath.Join("/work/my-vault", p))
		require.NoError(t, err)
		assert.True(t, exists, p)
	}

	// Anchor.toml names the underscored program identifier.
	anchorToml, err := afero.ReadFile(fs, "/work/my-vault/Anchor.toml")
	require.NoError(t, err)
	assert.Contains(t, string(anchorToml), "my_vault")

	// package.json carries the generator's exact dependency maps.
	pkg, err := afero.ReadFile(fs, "/work/my-vault/package.json")
	require.NoError(t, err)
	for name := range desc.Generator.Dependencies(tctx) {
		assert.Contains(t, string(pkg), name)
	}

	assert.Equal(t, []string{"/work/my-vault"}, inst.dirs)
}

func TestGenerate_PathCollision(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := NewWriterFs(fs)
	require.NoError(t, w.WriteFile("/work/my-vault/existing.txt", "keep me"))

	inst := &recordingInstaller{}
	g := New(w, inst, nil, nil, Options{})
	tctx, desc := vaultContext(t, "/work/my-vault")

	err := g.Generate(context.Background(), tctx, desc)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrPathCollision)

	// Pre-flight failure must not delete the existing directory.
	assert.True(t, w.PathExists("/work/my-vault/existing.txt"))
	assert.Empty(t, inst.dirs)
}

func TestGenerate_RollbackOnSkeletonFailure(t *testing.T) {
	cause := errors.New("disk full")
	fs := &faultFs{Fs: afero.NewMemMapFs(), failSubstr: "migrations", failErr: cause}
	g := New(NewWriterFs(fs), &recordingInstaller{}, nil, nil, Options{})

	tctx, desc := vaultContext(t, "/work/my-vault")
	err := g.Generate(context.Background(), tctx, desc)

	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.False(t, NewWriterFs(fs).PathExists("/work/my-vault"))
}

func TestGenerate_RollbackOnFileWriteFailure(t *testing.T) {
	cause := errors.New("write denied")
	fs := &faultFs{Fs: afero.NewMemMapFs(), failSubstr: "lib.rs", failErr: cause}
	g := New(NewWriterFs(fs), &recordingInstaller{}, nil, nil, Options{})

	tctx, desc := vaultContext(t, "/work/my-vault")
	err := g.Generate(context.Background(), tctx, desc)

	require.Error(t, err)
	// The original error surfaces, not a rollback error.
	assert.ErrorIs(t, err, cause)
	var fsErr *FileSystemError
	assert.ErrorAs(t, err, &fsErr)

	assert.False(t, NewWriterFs(fs).PathExists("/work/my-vault"))
}

func TestGenerate_RollbackOnManifestFailure(t *testing.T) {
	cause := errors.New("no space")
	fs := &faultFs{Fs: afero.NewMemMapFs(), failSubstr: "package.json", failErr: cause}
	g := New(NewWriterFs(fs), &recordingInstaller{}, nil, nil, Options{})

	tctx, desc := vaultContext(t, "/work/my-vault")
	err := g.Generate(context.Background(), tctx, desc)

	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.False(t, NewWriterFs(fs).PathExists("/work/my-vault"))
}

func TestGenerate_RollbackOnInstallFailure(t *testing.T) {
	cause := errs.Wrap(errs.ErrInstall, "yarn exited with status 1")
	fs := afero.NewMemMapFs()
	inst := &recordingInstaller{err: cause}
	g := New(NewWriterFs(fs), inst, nil, nil, Options{})

	tctx, desc := vaultContext(t, "/work/my-vault")
	err := g.Generate(context.Background(), tctx, desc)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInstall)
	// Destination absent after rollback: a repeat invocation is safe.
	assert.False(t, NewWriterFs(fs).PathExists("/work/my-vault"))

	inst.err = nil
	require.NoError(t, g.Generate(context.Background(), tctx, desc))
}

func TestGenerate_SkipInstall(t *testing.T) {
	inst := &recordingInstaller{err: errors.New("must not be called")}
	g := New(NewWriterFs(afero.NewMemMapFs()), inst, nil, nil, Options{SkipInstall: true})

	tctx, desc := vaultContext(t, "/work/my-vault")
	require.NoError(t, g.Generate(context.Background(), tctx, desc))
	assert.Empty(t, inst.dirs)
}

func TestGenerate_SecondInvocationCollides(t *testing.T) {
	fs := afero.NewMemMapFs()
	g := New(NewWriterFs(fs), &recordingInstaller{}, nil, nil, Options{})

	tctx, desc := vaultContext(t, "/work/my-vault")
	require.NoError(t, g.Generate(context.Background(), tctx, desc))

	// Capture a file so we can prove the first run's output is untouched.
	before, err := afero.ReadFile(fs, "/work/my-vault/package.json")
	require.NoError(t, err)

	err = g.Generate(context.Background(), tctx, desc)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrPathCollision)

	after, err := afero.ReadFile(fs, "/work/my-vault/package.json")
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
