package platform

import (
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
	CmdCommand      = "cmd"
	StartCommand    = "start"
)

// Command parameters
const (
	MacOSSelectFlag    = "-R"
	WindowsSelectParam = "/select,"
	WindowsCmdFlag     = "/c"
)

// FileURIScheme is the prefix used by file managers for local paths
const FileURIScheme = "file://"

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "caja", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// VideoExtensions is the allow-list of tracked extensions, lower case with dot
var VideoExtensions = []string{".mp4", ".mkv", ".avi", ".mov", ".webm", ".flv", ".wmv", ".m4v"}

// commandRunner starts external commands; tests replace it.
var commandRunner = func(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

// IsVideoFile reports whether name has an allow-listed extension, ignoring case
func IsVideoFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, allowed := range VideoExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// ScanFolder lists the video files directly inside dir, sorted by name.
// Subdirectories are not descended into and only regular files are returned.
func ScanFolder(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if !IsVideoFile(name) {
			continue
		}
		if !isRegularFile(filepath.Join(dir, name), entry) {
			continue
		}
		files = append(files, name)
	}

	sort.Strings(files)
	return files, nil
}

// isRegularFile follows symlinks so a linked video is listed like a plain one
func isRegularFile(path string, entry os.DirEntry) bool {
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// EnsureDirectory checks that dir exists and is a readable directory
func EnsureDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("cannot access folder %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", dir)
	}
	f, err := os.Open(dir)
	if err != nil {
		return fmt.Errorf("cannot open folder %s: %w", dir, err)
	}
	return f.Close()
}

// PathFromFileURI converts a file:// URI as passed by file managers (Caja,
// Nautilus) into a local path. Percent-encoded characters are decoded.
func PathFromFileURI(uri string) (string, bool) {
	if !strings.HasPrefix(uri, FileURIScheme) {
		return "", false
	}

	parsed, err := url.Parse(uri)
	if err != nil || parsed.Path == "" {
		// Fall back to the raw remainder for URIs with unescaped characters
		raw := strings.TrimPrefix(uri, FileURIScheme)
		if raw == "" {
			return "", false
		}
		return raw, true
	}
	return parsed.Path, true
}

// OpenFileWithDefaultApp opens the file with the default system application
func OpenFileWithDefaultApp(filePath string) error {
	if _, err := os.Stat(filePath); err != nil {
		return fmt.Errorf("file does not exist: %w", err)
	}

	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return commandRunner(OpenCommand, absPath)
	case OSWindows:
		return commandRunner(CmdCommand, WindowsCmdFlag, StartCommand, "", absPath)
	case OSLinux:
		return commandRunner(XDGOpenCommand, absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// OpenFolderInManager opens dir in the system file manager
func OpenFolderInManager(dir string) error {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return commandRunner(OpenCommand, absPath)
	case OSWindows:
		return commandRunner(ExplorerCommand, absPath)
	case OSLinux:
		return openFolderLinux(absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// RevealFile opens the file manager with the file highlighted where supported.
// Linux has no standard way to select a file, so the parent folder is opened.
func RevealFile(filePath string) error {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return commandRunner(OpenCommand, MacOSSelectFlag, absPath)
	case OSWindows:
		return commandRunner(ExplorerCommand, WindowsSelectParam+absPath)
	default:
		return OpenFolderInManager(filepath.Dir(absPath))
	}
}

func openFolderLinux(dir string) error {
	// Try xdg-open first (most common)
	if err := commandRunner(XDGOpenCommand, dir); err == nil {
		return nil
	}

	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return commandRunner(fm, dir)
		}
	}

	return fmt.Errorf("no suitable file manager found")
}
