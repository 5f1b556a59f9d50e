package config

import (
	"os"
	"path/filepath"
	"testing"
)

func lookupFrom(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestEnvironment_ProcessWinsOverFile(t *testing.T) {
	env := NewEnvironment(
		lookupFrom(map[string]string{EnvShell: "tui"}),
		map[string]string{EnvShell: "desktop", EnvFolder: "/from/file"},
	)

	if env.Get(EnvShell) != "tui" {
		t.Errorf("Expected process value, got %s", env.Get(EnvShell))
	}
	if env.Get(EnvFolder) != "/from/file" {
		t.Errorf("Expected file value, got %s", env.Get(EnvFolder))
	}
	if env.Get("UNSET") != "" {
		t.Errorf("Expected empty value for unset key")
	}
}

func TestEnvironment_Shell(t *testing.T) {
	tests := []struct {
		value    string
		expected string
	}{
		{"", ShellDesktop},
		{"desktop", ShellDesktop},
		{"tui", ShellTerminal},
		{" TUI ", ShellTerminal},
		{"terminal", ShellTerminal},
		{"qt", ShellDesktop},
	}

	for _, test := range tests {
		env := NewEnvironment(lookupFrom(map[string]string{EnvShell: test.value}), nil)
		if result := env.Shell(); result != test.expected {
			t.Errorf("Shell() with %q = %s, expected %s", test.value, result, test.expected)
		}
	}
}

func TestLoadEnvironment_ReadsFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "env")
	content := "# tracker settings\nVIDEO_TRACKER_TEST_ONLY_KEY=\"from file\"\n"
	if err := os.WriteFile(envFile, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	env, err := LoadEnvironment(envFile)
	if err != nil {
		t.Fatalf("LoadEnvironment failed: %v", err)
	}
	if env.Get("VIDEO_TRACKER_TEST_ONLY_KEY") != "from file" {
		t.Errorf("Expected value from file, got %q", env.Get("VIDEO_TRACKER_TEST_ONLY_KEY"))
	}
}

func TestLoadEnvironment_MissingFile(t *testing.T) {
	env, err := LoadEnvironment(filepath.Join(t.TempDir(), "missing"))
	if err != nil {
		t.Fatalf("Missing env file should not be an error, got %v", err)
	}
	if env == nil {
		t.Fatal("Expected environment")
	}
}

func TestResolveFolder(t *testing.T) {
	cwd := t.TempDir()
	videos := t.TempDir()
	withSpace := filepath.Join(t.TempDir(), "My Videos")
	if err := os.Mkdir(withSpace, 0o755); err != nil {
		t.Fatalf("Mkdir failed: %v", err)
	}

	tests := []struct {
		name     string
		args     []string
		env      map[string]string
		expected string
	}{
		{"default cwd", nil, nil, cwd},
		{"argument", []string{videos}, map[string]string{EnvFolder: "/elsewhere"}, videos},
		{"blank argument", []string{" "}, map[string]string{EnvFolder: videos}, videos},
		{"env folder", nil, map[string]string{EnvFolder: videos}, videos},
		{"caja uri", nil, map[string]string{EnvCajaURI: "file://" + videos}, videos},
		{"nautilus uri", nil, map[string]string{EnvNautilusURI: "file://" + videos}, videos},
		{"encoded uri", nil, map[string]string{EnvCajaURI: "file://" + filepath.ToSlash(filepath.Dir(withSpace)) + "/My%20Videos"}, withSpace},
		{"uri not a dir", nil, map[string]string{EnvCajaURI: "file:///definitely/not/here"}, cwd},
		{"non file uri", nil, map[string]string{EnvCajaURI: "smb://server/share"}, cwd},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			env := NewEnvironment(lookupFrom(test.env), nil)
			folder, err := ResolveFolder(test.args, env, cwd)
			if err != nil {
				t.Fatalf("ResolveFolder failed: %v", err)
			}
			if folder != test.expected {
				t.Errorf("ResolveFolder() = %s, expected %s", folder, test.expected)
			}
		})
	}
}
