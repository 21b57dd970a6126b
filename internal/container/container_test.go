package container

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"catalog/sitegen/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainerRunWithFileSource(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.LoadFrom(dir)
	require.NoError(t, err)

	cfg.Site.DataFile = filepath.Join(dir, "products.csv")
	cfg.Site.StaticDir = filepath.Join(dir, "static")
	cfg.Site.TemplateDir = filepath.Join("..", "..", "src", "templates")
	cfg.Site.OutputDir = filepath.Join(dir, "output")

	csv := "id,name,category,price,specifications\n1,Hammer,Tools,12.5,weight: 2kg\n"
	require.NoError(t, os.WriteFile(cfg.Site.DataFile, []byte(csv), 0o600))

	app, err := New(context.Background(), cfg)
	require.NoError(t, err)
	defer app.Close()

	assert.Nil(t, app.Repository)
	assert.Nil(t, app.Queue)
	assert.Nil(t, app.StateManager)
	assert.Equal(t, cfg.Site.DataFile, app.Source.Name())

	report, err := app.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, report.Pages)

	assert.FileExists(t, filepath.Join(cfg.Site.OutputDir, "products", "1.html"))
	assert.FileExists(t, filepath.Join(cfg.Site.OutputDir, "categories", "tools.html"))
	assert.FileExists(t, filepath.Join(cfg.Site.OutputDir, "index.html"))
}

func TestContainerUsesSheetSource(t *testing.T) {
	cfg, err := config.LoadFrom(t.TempDir())
	require.NoError(t, err)
	cfg.Site.TemplateDir = filepath.Join("..", "..", "src", "templates")
	cfg.Sheets.Enabled = true
	cfg.Sheets.SheetID = "abc"

	app, err := New(context.Background(), cfg)
	require.NoError(t, err)
	defer app.Close()

	assert.Equal(t, "sheet abc/Products", app.Source.Name())
}

func TestContainerMissingTemplateDir(t *testing.T) {
	cfg, err := config.LoadFrom(t.TempDir())
	require.NoError(t, err)
	cfg.Site.TemplateDir = filepath.Join(t.TempDir(), "missing")

	_, err = New(context.Background(), cfg)
	require.Error(t, err)
}

// closedPort returns a local port nothing listens on.
func closedPort(t *testing.T) int {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())
	return port
}

func TestContainerUnreachableDatabase(t *testing.T) {
	cfg, err := config.LoadFrom(t.TempDir())
	require.NoError(t, err)
	cfg.Site.TemplateDir = filepath.Join("..", "..", "src", "templates")
	cfg.Database.Enabled = true
	cfg.Database.Host = "127.0.0.1"
	cfg.Database.Port = closedPort(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err = New(ctx, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to database")
}

func TestContainerUnreachableRedis(t *testing.T) {
	cfg, err := config.LoadFrom(t.TempDir())
	require.NoError(t, err)
	cfg.Site.TemplateDir = filepath.Join("..", "..", "src", "templates")
	cfg.Redis.Enabled = true
	cfg.Redis.Host = "127.0.0.1"
	cfg.Redis.Port = closedPort(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err = New(ctx, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to Redis")
}

func TestContainerCloseWithoutBackends(t *testing.T) {
	var c Container
	assert.NoError(t, c.Close())
}
