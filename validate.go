package png2lvgl

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Refuse anything bigger; a decoded 8192x8192 RGBA image is already 256 MB.
const maxInputSize = 100 << 20

func validateInput(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("png2lvgl: cannot read input %q: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("png2lvgl: input %q is not a regular file", path)
	}
	if info.Size() > maxInputSize {
		return fmt.Errorf("png2lvgl: input %q is %d bytes, exceeds maximum %d", path, info.Size(), maxInputSize)
	}
	return nil
}

func validateOutput(path string, overwrite bool) error {
	if strings.TrimSpace(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))) == "" {
		return fmt.Errorf("png2lvgl: invalid output filename %q", path)
	}
	if _, err := os.Stat(path); err == nil && !overwrite {
		return fmt.Errorf("png2lvgl: output %q exists; enable overwrite to replace it", path)
	}
	if dir := filepath.Dir(path); dir != "." {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			return fmt.Errorf("png2lvgl: output directory %q does not exist", dir)
		}
	}
	return nil
}

// outputPath swaps the input extension for .c, next to the input.
func outputPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".c"
}

// variableName derives the C identifier from the output file stem the way
// LVGL's own converter does, squashing dashes to underscores.
func variableName(path string) string {
	name := strings.ReplaceAll(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)), "-", "_")
	if name == "" {
		return "image"
	}
	return name
}
