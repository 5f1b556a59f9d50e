package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/ytget/video-tracker/internal/platform"
)

// Environment variable names
const (
	EnvFolder      = "VIDEO_TRACKER_DIR"
	EnvShell       = "VIDEO_TRACKER_UI"
	EnvCajaURI     = "CAJA_SCRIPT_CURRENT_URI"
	EnvNautilusURI = "NAUTILUS_SCRIPT_CURRENT_URI"
)

// Env file location under the user config directory
const (
	ConfigDirName = "video-tracker"
	EnvFileName   = "env"
)

// Shell names accepted in VIDEO_TRACKER_UI
const (
	ShellDesktop  = "desktop"
	ShellTerminal = "tui"
)

// Environment resolves configuration values. Process environment variables
// take precedence over values read from the env file.
type Environment struct {
	fileValues map[string]string
	lookup     func(string) (string, bool)
}

// NewEnvironment creates an environment from a lookup function and optional
// file values. A nil lookup means os.LookupEnv.
func NewEnvironment(lookup func(string) (string, bool), fileValues map[string]string) *Environment {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if fileValues == nil {
		fileValues = map[string]string{}
	}
	return &Environment{fileValues: fileValues, lookup: lookup}
}

// LoadEnvironment reads envFile with godotenv and layers the process
// environment on top. A missing file is not an error.
func LoadEnvironment(envFile string) (*Environment, error) {
	values := map[string]string{}
	if envFile != "" {
		read, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			values = read
			log.Printf("Loaded %d settings from %s", len(values), envFile)
		case errors.Is(err, os.ErrNotExist):
		default:
			return NewEnvironment(nil, nil), fmt.Errorf("read env file %s: %w", envFile, err)
		}
	}
	return NewEnvironment(nil, values), nil
}

// DefaultEnvFile returns <user config dir>/video-tracker/env, or "" when the
// config directory is unknown
func DefaultEnvFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, ConfigDirName, EnvFileName)
}

// Get returns the value for key, or ""
func (e *Environment) Get(key string) string {
	if v, ok := e.lookup(key); ok {
		return v
	}
	return e.fileValues[key]
}

// Shell returns the configured presentation shell, ShellDesktop by default
func (e *Environment) Shell() string {
	switch strings.ToLower(strings.TrimSpace(e.Get(EnvShell))) {
	case ShellTerminal, "terminal":
		return ShellTerminal
	default:
		return ShellDesktop
	}
}

// ResolveFolder picks the folder to track, in order: the first argument, the
// VIDEO_TRACKER_DIR variable, a file manager script URI pointing at an
// existing directory, and finally cwd. The result is absolute.
func ResolveFolder(args []string, env *Environment, cwd string) (string, error) {
	folder := cwd
	switch {
	case len(args) > 0 && strings.TrimSpace(args[0]) != "":
		folder = args[0]
	case env.Get(EnvFolder) != "":
		folder = env.Get(EnvFolder)
	default:
		if dir, ok := folderFromScriptURI(env); ok {
			folder = dir
		}
	}

	abs, err := filepath.Abs(folder)
	if err != nil {
		return "", fmt.Errorf("resolve folder %s: %w", folder, err)
	}
	return abs, nil
}

func folderFromScriptURI(env *Environment) (string, bool) {
	for _, key := range []string{EnvCajaURI, EnvNautilusURI} {
		path, ok := platform.PathFromFileURI(env.Get(key))
		if !ok {
			continue
		}
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			return path, true
		}
		log.Printf("%s does not point at a directory: %s", key, path)
	}
	return "", false
}
