package export

import (
	"errors"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"

	"miner-radar.klederson.com/internal/report"
	"miner-radar.klederson.com/internal/signal"
	"miner-radar.klederson.com/internal/spectrum"
)

// Writer saves a text report and a spectrum image for a batch into a
// directory.
type Writer struct {
	dir           string
	width, height int
	logger        *slog.Logger
}

// New returns a Writer for dir. Images are width x height pixels.
func New(dir string, width, height int, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Writer{dir: dir, width: width, height: height, logger: logger}
}

// Export writes report-<batch>.txt and spectrum-<batch>.png and returns
// their paths.
func (w *Writer) Export(r report.Report, batch signal.Batch) ([]string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating export directory: %w", err)
	}

	textPath := filepath.Join(w.dir, fmt.Sprintf("report-%s.txt", batch.ID))
	if err := w.writeText(textPath, r); err != nil {
		return nil, err
	}

	imagePath := filepath.Join(w.dir, fmt.Sprintf("spectrum-%s.png", batch.ID))
	if err := w.writeImage(imagePath, batch); err != nil {
		return []string{textPath}, err
	}

	w.logger.Info("report exported",
		slog.Group("files",
			slog.String("report", textPath),
			slog.String("spectrum", imagePath),
		),
		slog.String("batch", batch.ID.String()))

	return []string{textPath, imagePath}, nil
}

func (w *Writer) writeText(path string, r report.Report) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	defer func() {
		err = errors.Join(err, out.Close())
	}()

	return r.WriteText(out)
}

func (w *Writer) writeImage(path string, batch signal.Batch) (err error) {
	renderer, err := spectrum.NewImageRenderer(w.width, w.height)
	if err != nil {
		return fmt.Errorf("creating spectrum renderer: %w", err)
	}
	defer renderer.Close()

	img, err := renderer.Draw(batch.Signals, batch.BaseFrequency)
	if err != nil {
		return fmt.Errorf("rendering spectrum: %w", err)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating spectrum file: %w", err)
	}
	defer func() {
		err = errors.Join(err, out.Close())
	}()

	if err := png.Encode(out, img); err != nil {
		return fmt.Errorf("encoding spectrum: %w", err)
	}
	return nil
}
