package filesystem

import (
	"testing"
)

func TestSkipDir(t *testing.T) {
	f := NewFilter(nil, nil)

	tests := []struct {
		name     string
		dirName  string
		relPath  string
		expected bool
	}{
		{"Dependency dir", "node_modules", "node_modules", true},
		{"VCS dir", ".git", ".git", true},
		{"Build output", "dist", "dist", true},
		{"IDE metadata", ".idea", ".idea", true},
		{"Hidden dir", ".config", ".config", true},
		{"Nested excluded segment", "lib", "node_modules/lib", true},
		{"Backup suffix", "src.bak", "src.bak", true},
		{"Tilde suffix", "drafts~", "drafts~", true},
		{"Regular source dir", "src", "src", false},
		{"Nested source dir", "handlers", "src/handlers", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.SkipDir(tt.dirName, tt.relPath); got != tt.expected {
				t.Errorf("SkipDir(%q, %q) = %v, want %v", tt.dirName, tt.relPath, got, tt.expected)
			}
		})
	}
}

func TestSkipFile(t *testing.T) {
	f := NewFilter(nil, nil)

	tests := []struct {
		name     string
		fileName string
		relPath  string
		expected bool
	}{
		{"Plain source file", "app.js", "src/app.js", false},
		{"Markdown file", "README.md", "README.md", false},
		{"Minified file", "dep.min.js", "src/dep.min.js", true},
		{"Minified file in dependency dir", "dep.min.js", "node_modules/dep.min.js", true},
		{"Plain file in dependency dir", "index.js", "node_modules/index.js", true},
		{"Spec file", "app.spec.ts", "src/app.spec.ts", true},
		{"Test file", "parser.test.js", "src/parser.test.js", true},
		{"Coverage artifact", "coverage-final.json", "coverage-final.json", true},
		{"Binary extension", "photo.jpg", "assets/photo.jpg", true},
		{"No extension", "Makefile", "Makefile", true},
		{"Hidden file", ".envrc", ".envrc", true},
		{"Editor backup", "main.go~", "main.go~", true},
		{"Log file", "server.log", "server.log", true},
		{"Old copy", "config.old", "config.old", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.SkipFile(tt.fileName, tt.relPath); got != tt.expected {
				t.Errorf("SkipFile(%q, %q) = %v, want %v", tt.fileName, tt.relPath, got, tt.expected)
			}
		})
	}
}

func TestFilterExtensionOverride(t *testing.T) {
	f := NewFilter(nil, []string{"pdf", ".docx"})

	if f.SkipFile("report.pdf", "report.pdf") {
		t.Error("expected pdf to be allowed with custom extension list")
	}
	if f.SkipFile("letter.docx", "letter.docx") {
		t.Error("expected docx to be allowed with custom extension list")
	}
	if !f.SkipFile("app.js", "app.js") {
		t.Error("expected js to be excluded when the allow-list is overridden")
	}
}

func TestFilterMerge(t *testing.T) {
	f := NewFilter(nil, nil)
	f.Merge(&Rules{
		ExcludeDirs: []string{"generated"},
		Extensions:  []string{"proto"},
		Substrings:  []string{".gen."},
	})

	if !f.SkipDir("generated", "generated") {
		t.Error("expected merged directory exclusion to apply")
	}
	if f.SkipFile("service.proto", "api/service.proto") {
		t.Error("expected merged extension to be allowed")
	}
	if !f.SkipFile("types.gen.go", "api/types.gen.go") {
		t.Error("expected merged substring exclusion to apply")
	}
}

func TestGetExtension(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"/path/to/file.js", "js"},
		{"/path/to/file.tar.gz", "gz"},
		{"/path/to/file", ""},
		{"file.go", "go"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := GetExtension(tt.path); got != tt.expected {
				t.Errorf("GetExtension(%q) = %v, want %v", tt.path, got, tt.expected)
			}
		})
	}
}
