package utils

import (
	"os"
	"path/filepath"
	"runtime"
	"slices"

	"github.com/charmbracelet/log"
)

// SystemWordLists are the usual locations of the system word list.
var SystemWordLists = []string{
	"/usr/share/dict/words",
	"/usr/dict/words",
}

// PathResolver finds the config dir and word list relative to the
// executable, the working directory and the platform defaults.
type PathResolver struct {
	executableDir string
	homeDir       string
	configDir     string
}

// NewPathResolver creates a new path resolver that determines the executable location
func NewPathResolver() (*PathResolver, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = os.TempDir()
	}

	pr := &PathResolver{
		executableDir: filepath.Dir(execPath),
		homeDir:       homeDir,
		configDir:     getConfigDir(homeDir),
	}
	log.Debugf("PathResolver initialized: execDir=%s, configDir=%s", pr.executableDir, pr.configDir)
	return pr, nil
}

// getConfigDir returns the appropriate config directory for the platform
func getConfigDir(homeDir string) string {
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, ".config", "wordhint")
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, "wordhint")
		}
		return filepath.Join(homeDir, ".config", "wordhint")
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "wordhint")
		}
		return filepath.Join(homeDir, "AppData", "Roaming", "wordhint")
	default:
		return filepath.Join(homeDir, ".wordhint")
	}
}

// GetDictPath resolves the word list file.
// It tries, in order:
// 1. the user path as given (absolute or relative to the working dir)
// 2. the user path relative to the executable directory
// 3. the other system word lists, when the user path is empty or is
//    itself one of them
//
// When nothing is readable the user path is returned unchanged so the
// loader reports the real error for it.
func (pr *PathResolver) GetDictPath(userPath string) string {
	candidates := dictCandidates(userPath, pr.executableDir)
	for _, path := range candidates {
		if err := IsReadableFile(path); err == nil {
			log.Debugf("Found word list: %s", path)
			return path
		}
		log.Debugf("Word list candidate not usable: %s", path)
	}
	return userPath
}

func dictCandidates(userPath, execDir string) []string {
	if userPath == "" || slices.Contains(SystemWordLists, userPath) {
		// a default location falls through to the other system lists
		candidates := []string{}
		if userPath != "" {
			candidates = append(candidates, userPath)
		}
		for _, path := range SystemWordLists {
			if path != userPath {
				candidates = append(candidates, path)
			}
		}
		return candidates
	}

	candidates := []string{userPath}
	if !filepath.IsAbs(userPath) {
		candidates = append(candidates, filepath.Join(execDir, userPath))
	}
	return candidates
}

// GetConfigPath returns the full path for a config file
// It ensures the config directory exists and handles read-only filesystem issues
func (pr *PathResolver) GetConfigPath(filename string) string {
	if isWritableDir(pr.configDir) {
		return filepath.Join(pr.configDir, filename)
	}

	fallbackDirs := []string{
		filepath.Join(pr.homeDir, ".wordhint"),
		filepath.Join(os.TempDir(), "wordhint"),
		pr.executableDir,
	}
	for _, dir := range fallbackDirs {
		if isWritableDir(dir) {
			path := filepath.Join(dir, filename)
			log.Warnf("Using fallback config location: %s", path)
			return path
		}
	}

	tempPath := filepath.Join(os.TempDir(), filename)
	log.Warnf("Using temporary config file: %s", tempPath)
	return tempPath
}
