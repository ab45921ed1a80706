package app

import (
	"os"
	"path/filepath"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"
)

// FileHelper provides file operation utilities for C# sources
type FileHelper struct {
	// RespectGitignore skips files matched by a .gitignore found at the
	// root of a walked directory
	RespectGitignore bool
}

// NewFileHelper creates a new FileHelper
func NewFileHelper() *FileHelper {
	return &FileHelper{RespectGitignore: true}
}

// CollectCSharpFiles collects C# files from paths
func (h *FileHelper) CollectCSharpFiles(paths []string, recursive bool, includePatterns, excludePatterns []string) ([]string, error) {
	var files []string

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			if h.isCSharpFile(path) && h.isIncluded(path, includePatterns) && !h.isExcluded(path, excludePatterns) {
				files = append(files, path)
			}
			continue
		}

		ignore := h.loadGitignore(path)

		if recursive {
			err = filepath.Walk(path, func(filePath string, info os.FileInfo, err error) error {
				if err != nil {
					return err
				}

				if info.IsDir() {
					dirName := filepath.Base(filePath)
					for _, pattern := range excludePatterns {
						if pattern == dirName {
							return filepath.SkipDir
						}
						if matched, _ := filepath.Match(pattern, dirName); matched {
							return filepath.SkipDir
						}
					}
					return nil
				}

				if !h.isCSharpFile(filePath) || !h.isIncluded(filePath, includePatterns) || h.isExcluded(filePath, excludePatterns) {
					return nil
				}
				if ignore != nil {
					if rel, err := filepath.Rel(path, filePath); err == nil && ignore.MatchesPath(rel) {
						return nil
					}
				}

				files = append(files, filePath)
				return nil
			})
		} else {
			entries, err := os.ReadDir(path)
			if err != nil {
				return nil, err
			}

			for _, entry := range entries {
				if entry.IsDir() {
					continue
				}
				filePath := filepath.Join(path, entry.Name())
				if !h.isCSharpFile(filePath) || !h.isIncluded(filePath, includePatterns) || h.isExcluded(filePath, excludePatterns) {
					continue
				}
				if ignore != nil && ignore.MatchesPath(entry.Name()) {
					continue
				}
				files = append(files, filePath)
			}
		}

		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

// IsValidCSharpFile checks if a file is a C# source file
func (h *FileHelper) IsValidCSharpFile(path string) bool {
	return h.isCSharpFile(path)
}

// FileExists checks if a file exists
func (h *FileHelper) FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return !info.IsDir(), nil
}

// ReadFile reads file content
func (h *FileHelper) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// loadGitignore compiles the .gitignore at the root of a walked directory,
// if present and enabled
func (h *FileHelper) loadGitignore(dir string) *gitignore.GitIgnore {
	if !h.RespectGitignore {
		return nil
	}
	ignore, err := gitignore.CompileIgnoreFile(filepath.Join(dir, ".gitignore"))
	if err != nil {
		return nil
	}
	return ignore
}

// isCSharpFile checks if a file is a C# source file based on extension
func (h *FileHelper) isCSharpFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".cs"
}

// isIncluded checks if a path matches at least one include pattern. An
// empty pattern list includes everything. Patterns are tried against the
// full path, and against the base name with the pattern's directory part
// stripped so that globs like "**/*.cs" match at any depth.
func (h *FileHelper) isIncluded(path string, includePatterns []string) bool {
	if len(includePatterns) == 0 {
		return true
	}
	base := filepath.Base(path)
	for _, pattern := range includePatterns {
		if matched, _ := filepath.Match(pattern, path); matched {
			return true
		}
		if matched, _ := filepath.Match(filepath.Base(pattern), base); matched {
			return true
		}
	}
	return false
}

// isExcluded checks if a path matches any exclude pattern
func (h *FileHelper) isExcluded(path string, excludePatterns []string) bool {
	for _, pattern := range excludePatterns {
		if matched, _ := filepath.Match(pattern, filepath.Base(path)); matched {
			return true
		}
		if strings.Contains(path, pattern) {
			return true
		}
	}
	return false
}

// ResolveFilePaths resolves file paths, returning existing files directly
// or collecting files from directories
func ResolveFilePaths(
	fileHelper *FileHelper,
	paths []string,
	recursive bool,
	includePatterns []string,
	excludePatterns []string,
) ([]string, error) {
	allFiles := true
	for _, path := range paths {
		exists, err := fileHelper.FileExists(path)
		if err != nil || !exists {
			allFiles = false
			break
		}
	}

	if allFiles {
		return paths, nil
	}

	return fileHelper.CollectCSharpFiles(paths, recursive, includePatterns, excludePatterns)
}
