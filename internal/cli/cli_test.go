package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tilesmith/boggen/pkg/board"
)

func mustTestGrid(t *testing.T, cells string, w, h int) board.Grid {
	t.Helper()
	g, err := board.New(cells, w, h)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestCacheDirOverride(t *testing.T) {
	dir, err := cacheDir(&Config{CacheDir: "/tmp/custom"})
	if err != nil {
		t.Fatal(err)
	}
	if dir != "/tmp/custom" {
		t.Errorf("cacheDir = %q, want config override", dir)
	}
}

func TestCacheDirXDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")
	dir, err := cacheDir(&Config{})
	if err != nil {
		t.Fatal(err)
	}
	if dir != filepath.Join("/tmp/xdg-cache", appName) {
		t.Errorf("cacheDir = %q, want XDG path", dir)
	}
}

func TestDataDirXDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")
	dir, err := dataDir()
	if err != nil {
		t.Fatal(err)
	}
	if dir != filepath.Join("/tmp/xdg-data", appName) {
		t.Errorf("dataDir = %q, want XDG path", dir)
	}
}

func TestDefaultDictPath(t *testing.T) {
	if got, err := defaultDictPath(&Config{Dictionary: "/opt/words.dwg"}); err != nil || got != "/opt/words.dwg" {
		t.Errorf("defaultDictPath = (%q, %v), want config override", got, err)
	}

	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")
	got, err := defaultDictPath(&Config{})
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join("/tmp/xdg-data", appName, dictFileName) {
		t.Errorf("defaultDictPath = %q", got)
	}
}

func TestLoadConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)

	// Missing file yields an empty config.
	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig with no file: %v", err)
	}
	if cfg.Dictionary != "" || cfg.DiceSet != "" {
		t.Errorf("empty config expected, got %+v", cfg)
	}

	dir := filepath.Join(home, appName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := "dictionary = \"/opt/words.dwg\"\ndice_set = \"5-big-deluxe\"\nredis_addr = \"localhost:6379\"\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err = loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Dictionary != "/opt/words.dwg" || cfg.DiceSet != "5-big-deluxe" || cfg.RedisAddr != "localhost:6379" {
		t.Errorf("loadConfig = %+v", cfg)
	}
}

func TestLoadConfigRejectsMalformed(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)

	dir := filepath.Join(home, appName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("dictionary = [whoops"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := loadConfig(); err == nil {
		t.Error("loadConfig accepted malformed TOML")
	}
}

func TestReadWordList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	content := "# comment\ncat\n\nCATS\n  act  \n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	words, err := readWordList(path)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"cat", "CATS", "act"}
	if len(words) != len(want) {
		t.Fatalf("readWordList = %v, want %v", words, want)
	}
	for i := range want {
		if words[i] != want[i] {
			t.Errorf("words[%d] = %q, want %q", i, words[i], want[i])
		}
	}
}

func TestReadWordListMissing(t *testing.T) {
	if _, err := readWordList("/no/such/file"); err == nil {
		t.Error("readWordList accepted a missing file")
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{5 * time.Second, "0:05"},
		{65 * time.Second, "1:05"},
		{10 * time.Minute, "10:00"},
	}
	for _, tt := range tests {
		if got := formatClock(tt.d); got != tt.want {
			t.Errorf("formatClock(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestRenderBoardShape(t *testing.T) {
	g := mustTestGrid(t, "1ITX", 2, 2)
	out := renderBoard(g)
	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("renderBoard produced %d lines, want 4", len(lines))
	}
	if !strings.Contains(lines[1], "Qu") {
		t.Errorf("row %q missing compound face", lines[1])
	}
}
