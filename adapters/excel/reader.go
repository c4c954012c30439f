package excel

import (
	"encoding/csv"
	"io"
	"log"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"

	"skillboard/internal/errors"
)

// SheetMatrix is one workbook tab converted to a plain cell matrix.
type SheetMatrix struct {
	Name   string
	Matrix [][]string
}

// TemplateReader converts uploaded .xlsx and .csv files into raw string
// matrices. It does no structure inference - the matrix goes to the
// structure engine as-is, ragged rows included.
type TemplateReader struct {
	filename string
	fileType string // "xlsx" or "csv"
}

// NewTemplateReader creates a reader for the given filename; the extension
// selects the decoder.
func NewTemplateReader(filename string) *TemplateReader {
	fileType := ""
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		fileType = "xlsx"
	case ".csv":
		fileType = "csv"
	}
	return &TemplateReader{filename: filename, fileType: fileType}
}

// Supported reports whether the filename's extension has a decoder.
func (r *TemplateReader) Supported() bool {
	return r.fileType != ""
}

// ReadMatrix reads the first sheet of the upload as a cell matrix.
func (r *TemplateReader) ReadMatrix(src io.Reader) ([][]string, error) {
	sheets, err := r.ReadWorkbook(src)
	if err != nil {
		return nil, err
	}
	if len(sheets) == 0 {
		return nil, errors.InvalidInput("workbook has no sheets")
	}
	return sheets[0].Matrix, nil
}

// ReadWorkbook reads every sheet of the upload, in workbook order. CSV files
// yield a single synthetic sheet named after the file.
func (r *TemplateReader) ReadWorkbook(src io.Reader) ([]SheetMatrix, error) {
	switch r.fileType {
	case "csv":
		return r.readCSV(src)
	case "xlsx":
		return r.readExcel(src)
	default:
		return nil, errors.UnsupportedMedia(filepath.Ext(r.filename))
	}
}

func (r *TemplateReader) readCSV(src io.Reader) ([]SheetMatrix, error) {
	reader := csv.NewReader(src)
	// Skill templates are frequently ragged; accept variable-width records.
	reader.FieldsPerRecord = -1

	readStart := time.Now()
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read CSV file")
	}
	log.Printf("[TemplateReader] CSV file read in %.2fms (%d rows)",
		float64(time.Since(readStart).Nanoseconds())/1e6, len(rows))

	name := strings.TrimSuffix(filepath.Base(r.filename), filepath.Ext(r.filename))
	return []SheetMatrix{{Name: name, Matrix: rows}}, nil
}

func (r *TemplateReader) readExcel(src io.Reader) ([]SheetMatrix, error) {
	openStart := time.Now()
	f, err := excelize.OpenReader(src)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open Excel file")
	}
	defer f.Close()
	log.Printf("[TemplateReader] Excel file opened in %.2fms",
		float64(time.Since(openStart).Nanoseconds())/1e6)

	names := f.GetSheetList()
	sheets := make([]SheetMatrix, len(names))

	// Tabs are independent matrices; read them concurrently.
	var g errgroup.Group
	var mu sync.Mutex
	for i, name := range names {
		g.Go(func() error {
			rows, err := f.GetRows(name)
			if err != nil {
				return errors.Wrapf(err, "failed to read sheet %s", name)
			}
			mu.Lock()
			sheets[i] = SheetMatrix{Name: name, Matrix: rows}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Printf("[TemplateReader] %d sheet(s) read from %s", len(sheets), r.filename)
	return sheets, nil
}
