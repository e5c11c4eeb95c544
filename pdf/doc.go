// Package pdf renders grid paper to a single-page PDF.
//
// The renderer computes the grid with package gridpaper, draws it with
// gofpdf and writes the document to an io.Writer or a file. Line colours are
// fixed; line widths, spacing, margins and layout switches come from
// Config.
//
// Example:
//
//	cfg := pdf.DefaultConfig()
//	cfg.PaperSize = "A4"
//	cfg.Spacing = 5 * 72 / 25.4 // 5mm
//
//	if err := pdf.WriteFile("grid.pdf", cfg, nil); err != nil {
//		log.Fatal(err)
//	}
//
// Errors wrap gridpaper.ErrConfig for invalid settings and gridpaper.ErrIO
// when the output cannot be written. WriteFile never creates the file when
// the settings are invalid.
package pdf
