package scanner

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultIgnorePatterns 是批量清理的默认忽略清单。
// 以 / 结尾的模式只匹配目录（整体剪枝），其余模式匹配文件。
var DefaultIgnorePatterns = []string{
	"*.log", "*.tmp", "*.bak", "*.swp", "*.pyc",
	"__pycache__/", "node_modules/", "vendor/",
	".git/", ".svn/", ".hg/",
	"dist/", "build/", "target/",
	"*.min.js", "*.min.css",
}

// matchIgnore 判断路径是否命中任一忽略模式。
// 每个模式同时尝试基名与相对路径（正斜杠形式），与 fnmatch 语义保持一致。
func matchIgnore(patterns []string, relativePath string, name string, isDir bool) bool {
	rel := filepath.ToSlash(relativePath)

	for _, pattern := range patterns {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}

		dirOnly := strings.HasSuffix(pattern, "/")
		if dirOnly != isDir {
			continue
		}
		if dirOnly {
			pattern = strings.TrimSuffix(pattern, "/")
		}

		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			return true
		}
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}

	return false
}
