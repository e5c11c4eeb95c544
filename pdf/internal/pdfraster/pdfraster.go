// Package pdfraster rasterizes rendered PDFs with poppler's pdftoppm so
// tests can inspect the pixels of a page.
package pdfraster

import (
	"fmt"
	"image"
	_ "image/png" // register PNG decoder
	"os"
	"os/exec"
	"strconv"
)

// Available reports whether pdftoppm is on PATH.
func Available() bool {
	_, err := exec.LookPath("pdftoppm")
	return err == nil
}

// PDFToPPMCommand returns the pdftoppm command that renders the first page
// of pdfPath to prefix.png at dpi.
func PDFToPPMCommand(nicePath, pdfPath, prefix string, dpi int) *exec.Cmd {
	args := []string{"-png", "-singlefile", "-r", strconv.Itoa(dpi), pdfPath, prefix}
	if nicePath != "" {
		return exec.Command(nicePath, append([]string{"-n", "10", "pdftoppm"}, args...)...)
	}
	return exec.Command("pdftoppm", args...)
}

// FirstPage renders the first page of pdfPath at dpi and decodes it.
func FirstPage(pdfPath, prefix string, dpi int) (image.Image, error) {
	nicePath, _ := exec.LookPath("nice")
	cmd := PDFToPPMCommand(nicePath, pdfPath, prefix, dpi)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("pdftoppm failed: %v\n%s", err, string(out))
	}
	return loadPNG(prefix + ".png")
}

// Luma returns the 8-bit luminance of the pixel at (x, y).
func Luma(img image.Image, x, y int) int {
	r, g, b, _ := img.At(x, y).RGBA()
	return int((299*r + 587*g + 114*b) / 1000 >> 8)
}

// Red returns the 8-bit red channel of the pixel at (x, y).
func Red(img image.Image, x, y int) int {
	r, _, _, _ := img.At(x, y).RGBA()
	return int(r >> 8)
}

func loadPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}
