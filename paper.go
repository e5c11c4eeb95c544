package gridpaper

import (
	"fmt"
	"sort"
	"strings"
)

// PaperSize is a named page size in points (1/72 inch).
type PaperSize struct {
	Name   string
	Width  float64
	Height float64
}

var (
	// Letter is US Letter, 8.5" x 11".
	Letter = PaperSize{Name: "Letter", Width: 612, Height: 792}
	// A4 is ISO A4, 210mm x 297mm.
	A4 = PaperSize{Name: "A4", Width: 595.28, Height: 841.89}
)

var builtinPaperSizes = map[string]PaperSize{
	"letter": Letter,
	"a4":     A4,
}

// AvailablePaperSizes returns the names of the supported paper sizes.
func AvailablePaperSizes() []string {
	names := make([]string, 0, len(builtinPaperSizes))
	for _, size := range builtinPaperSizes {
		names = append(names, size.Name)
	}
	sort.Strings(names)
	return names
}

// PaperSizeByName looks up a paper size case-insensitively. An empty name
// returns the default size.
func PaperSizeByName(name string) (PaperSize, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		return DefaultPaperSize(), nil
	}
	size, ok := builtinPaperSizes[normalized]
	if !ok {
		return PaperSize{}, fmt.Errorf("%w: unknown paper size %q (supported: %s)",
			ErrConfig, name, strings.Join(AvailablePaperSizes(), ", "))
	}
	return size, nil
}

// DefaultPaperSize returns Letter.
func DefaultPaperSize() PaperSize {
	return Letter
}
