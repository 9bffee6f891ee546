package filesystem

import (
	"os"
	"path/filepath"
	"strings"
)

// Directory names that are never descended into. Matches are case-sensitive.
var defaultExcludeDirs = []string{
	"node_modules", ".git", ".svn", ".hg", "vendor",
	"dist", "build", "out", "target", "coverage",
	"__pycache__", ".idea", ".vscode", ".cache", "tmp",
	".next", ".nuxt", "bower_components",
}

// Extensions (without dot) considered text/code and worth deduplicating.
var defaultExtensions = []string{
	"js", "jsx", "ts", "tsx", "mjs", "cjs", "json",
	"html", "htm", "css", "scss", "less", "vue", "svelte",
	"md", "txt", "rst",
	"py", "go", "java", "rb", "php", "sh", "pl", "rs",
	"c", "cpp", "h", "hpp", "cs",
	"yml", "yaml", "xml", "toml", "ini", "sql", "env",
}

// Name suffixes excluded for both files and directories.
var defaultSuffixes = []string{
	"~", ".bak", ".backup", ".old", ".log", ".tmp", ".cache",
}

// Basename substrings excluded for files only.
var defaultSubstrings = []string{
	".min.", "coverage", ".spec.", ".test.",
}

// Filter decides per directory entry whether to descend or include.
// It is a pure function of name and path; directories matching an
// exclusion are never descended into regardless of file-level rules.
type Filter struct {
	excludeDirs map[string]bool
	extensions  map[string]bool
	suffixes    []string
	substrings  []string
}

// NewFilter builds a filter from the built-in rules plus extra excluded
// directory names. A non-empty extensions slice replaces the built-in
// allow-list entirely.
func NewFilter(extraExclude, extensions []string) *Filter {
	f := &Filter{
		excludeDirs: make(map[string]bool),
		extensions:  make(map[string]bool),
		suffixes:    append([]string(nil), defaultSuffixes...),
		substrings:  append([]string(nil), defaultSubstrings...),
	}

	for _, dir := range defaultExcludeDirs {
		f.excludeDirs[dir] = true
	}
	for _, dir := range extraExclude {
		f.excludeDirs[dir] = true
	}

	exts := extensions
	if len(exts) == 0 {
		exts = defaultExtensions
	}
	for _, ext := range exts {
		f.extensions[strings.TrimPrefix(ext, ".")] = true
	}

	return f
}

// Merge adds rules loaded from a rules file on top of the built-ins.
func (f *Filter) Merge(rules *Rules) {
	if rules == nil {
		return
	}
	for _, dir := range rules.ExcludeDirs {
		f.excludeDirs[dir] = true
	}
	for _, ext := range rules.Extensions {
		f.extensions[strings.TrimPrefix(ext, ".")] = true
	}
	f.suffixes = append(f.suffixes, rules.Suffixes...)
	f.substrings = append(f.substrings, rules.Substrings...)
}

// SkipDir reports whether a directory should be pruned from the walk.
func (f *Filter) SkipDir(name, relPath string) bool {
	return f.skipCommon(name, relPath)
}

// SkipFile reports whether a file should be excluded from candidates.
func (f *Filter) SkipFile(name, relPath string) bool {
	if f.skipCommon(name, relPath) {
		return true
	}

	// Extension allow-list
	if !f.extensions[GetExtension(name)] {
		return true
	}

	// Minified, coverage and test artifacts
	for _, sub := range f.substrings {
		if strings.Contains(name, sub) {
			return true
		}
	}

	return false
}

// skipCommon applies the rules shared by files and directories.
func (f *Filter) skipCommon(name, relPath string) bool {
	if f.excludeDirs[name] {
		return true
	}

	// Hidden entries
	if strings.HasPrefix(name, ".") {
		return true
	}

	// Editor and backup leftovers
	for _, suffix := range f.suffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}

	// Path containing an excluded directory as a segment
	for _, part := range strings.Split(relPath, string(os.PathSeparator)) {
		if f.excludeDirs[part] {
			return true
		}
	}

	return false
}

// GetExtension returns the file extension without dot
func GetExtension(path string) string {
	ext := filepath.Ext(path)
	if len(ext) > 0 && ext[0] == '.' {
		return ext[1:]
	}
	return ext
}
