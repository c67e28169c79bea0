package httpadapter

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"campaign-insights/internal/core/port"
)

// uploadField is the multipart field carrying report files.
const uploadField = "files"

// handleParseReports parses uploaded reports without storing them. Files
// that cannot be parsed are listed under "errors" and the response is
// still 200.
func (h *Handler) handleParseReports(w http.ResponseWriter, r *http.Request) {
	files, err := h.readUploads(w, r)
	if err != nil {
		h.writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	resp, err := h.svc.ParseReports(r.Context(), files)
	if err != nil {
		h.writeError(w, "parse reports", err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// handleImportReports parses, archives and stores uploaded reports.
func (h *Handler) handleImportReports(w http.ResponseWriter, r *http.Request) {
	files, err := h.readUploads(w, r)
	if err != nil {
		h.writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	resp, err := h.svc.ImportReports(r.Context(), files)
	if err != nil {
		h.writeError(w, "import reports", err)
		return
	}
	status := http.StatusCreated
	if resp.Stored == 0 {
		status = http.StatusOK
	}
	h.writeJSON(w, status, resp)
}

// readUploads reads every file of the multipart "files" field into memory.
func (h *Handler) readUploads(w http.ResponseWriter, r *http.Request) ([]port.ReportFile, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.opts.MaxUploadBytes)
	if err := r.ParseMultipartForm(h.opts.MaxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, fmt.Errorf("upload exceeds %d bytes", tooLarge.Limit)
		}
		return nil, fmt.Errorf("invalid multipart form: %w", err)
	}
	headers := r.MultipartForm.File[uploadField]
	if len(headers) == 0 {
		return nil, fmt.Errorf("no files in field %q", uploadField)
	}

	files := make([]port.ReportFile, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", fh.Filename, err)
		}
		body, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", fh.Filename, err)
		}
		files = append(files, port.ReportFile{Filename: filepath.Base(fh.Filename), Body: body})
	}
	return files, nil
}
