package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// rulesCmd creates the rules command
func rulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Show the built-in filter rules",
		Long:  `Display the directory exclusions, name patterns, and extension allow-list applied during enumeration.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("EXCLUDED DIRECTORIES (pruned, never descended):")
			fmt.Println("  node_modules  .git  .svn  .hg  vendor  bower_components")
			fmt.Println("  dist  build  out  target  coverage  __pycache__")
			fmt.Println("  .idea  .vscode  .cache  tmp  .next  .nuxt")
			fmt.Println("")
			fmt.Println("EXCLUDED NAME PATTERNS (files and directories):")
			fmt.Println("  leading dot (hidden)")
			fmt.Println("  trailing ~")
			fmt.Println("  suffixes: .bak  .backup  .old  .log  .tmp  .cache")
			fmt.Println("")
			fmt.Println("EXCLUDED FILE PATTERNS:")
			fmt.Println("  basename containing: .min.  coverage  .spec.  .test.")
			fmt.Println("")
			fmt.Println("EXTENSION ALLOW-LIST (text/code files only):")
			fmt.Println("  js jsx ts tsx mjs cjs json html htm css scss less vue svelte")
			fmt.Println("  md txt rst py go java rb php sh pl rs c cpp h hpp cs")
			fmt.Println("  yml yaml xml toml ini sql")
			fmt.Println("")
			fmt.Println("CUSTOMIZATION:")
			fmt.Println("  --exclude adds directory names, --extensions replaces the allow-list.")
			fmt.Println("  --rules points at a YAML file with exclude_dirs, extensions,")
			fmt.Println("  suffixes, and substrings lists merged on top of the built-ins.")
			fmt.Println("")
			fmt.Println("EXAMPLES:")
			fmt.Println("  fileswiper scan ~/projects                       # defaults")
			fmt.Println("  fileswiper scan --max-depth=5 ~/projects         # deeper walk")
			fmt.Println("  fileswiper scan --review ~/projects              # review pairs")
			fmt.Println("  fileswiper scan --review --advisor ~/projects    # AI suggestions")
			fmt.Println("  fileswiper scan -r json -o dupes.json ~/projects # JSON report")
		},
	}
}
