//go:build mage

// Package main contains Mage build targets for mddoc developer tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir    = "bin"
	binName   = "mddoc"
	cmdPkg    = "./cmd/mddoc"
	sampleDir = "samples"
	outDir    = "out"

	officeImage   = "mddoc-office:latest"
	officeContext = "build/office"
)

// presets are converted by the Samples target.
var presets = []string{"basic", "improved", "toc", "manual"}

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	version, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil {
		version = "dev"
	}
	ldflags := "-X main.version=" + version
	if err := sh.RunV("go", "build", "-ldflags", ldflags, "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s (%s)\n", out, version)
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet over the module.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Samples converts every sample document with each preset into out/.
func Samples() error {
	mg.Deps(Build)

	inputs, err := filepath.Glob(filepath.Join(sampleDir, "*.md"))
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no samples found in %s", sampleDir)
	}

	bin := filepath.Join(binDir, binName)
	for _, in := range inputs {
		name := strings.TrimSuffix(filepath.Base(in), filepath.Ext(in))
		for _, p := range presets {
			for _, format := range []string{"docx", "pdf"} {
				out := filepath.Join(outDir, fmt.Sprintf("%s-%s.%s", name, p, format))
				if err := sh.Run(bin, "convert", in, "-o", out, "--preset", p, "--format", format); err != nil {
					return fmt.Errorf("converting %s with %s: %w", in, p, err)
				}
				fmt.Println("  ", out)
			}
		}
	}
	return nil
}

// OfficeImage builds the container image used by convert --office-pdf.
// Docker is used when present, podman otherwise.
func OfficeImage() error {
	runtime := "docker"
	if _, err := sh.Output("docker", "info"); err != nil {
		runtime = "podman"
	}
	return sh.RunV(runtime, "build", "-t", officeImage, officeContext)
}

// Clean removes build and sample outputs.
func Clean() error {
	for _, dir := range []string{binDir, outDir} {
		if err := sh.Rm(dir); err != nil {
			return err
		}
	}
	return nil
}

// Stats prints project metrics: Go production and test lines.
func Stats() error {
	prodLines, err := countGoLines(".", false)
	if err != nil {
		return err
	}
	testLines, err := countGoLines(".", true)
	if err != nil {
		return err
	}

	fmt.Printf("Lines of code (Go, production): %d\n", prodLines)
	fmt.Printf("Lines of code (Go, tests):      %d\n", testLines)
	return nil
}

// countGoLines counts non-blank lines in Go files under root, skipping
// directories that start with "." or "_". testOnly selects _test.go files;
// otherwise only non-test files are counted.
func countGoLines(root string, testOnly bool) (int, error) {
	total := 0
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if name := d.Name(); path != root && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" || strings.HasSuffix(path, "_test.go") != testOnly {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		for _, line := range strings.Split(string(data), "\n") {
			if strings.TrimSpace(line) != "" {
				total++
			}
		}
		return nil
	})
	return total, err
}
