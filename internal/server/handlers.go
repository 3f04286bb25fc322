package server

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/huangsam/maturity/core"
	"github.com/huangsam/maturity/internal/chart"
	"github.com/huangsam/maturity/internal/workbook"
	"github.com/huangsam/maturity/schema"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	s.renderIndex(w, http.StatusOK, "")
}

func (s *Server) renderIndex(w http.ResponseWriter, status int, message string) {
	s.render(w, status, "index.html", indexPage{
		Title:     PageTitle,
		Workbooks: s.registry.List(),
		Message:   message,
	})
}

// handleUpload accepts one or more xlsx files in the "workbook" field.
// Files that cannot be read are named in a 422 response; the others are
// still added.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.renderIndex(w, http.StatusBadRequest, "Upload failed: "+err.Error())
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	files := r.MultipartForm.File["workbook"]
	if len(files) == 0 {
		s.renderIndex(w, http.StatusBadRequest, "Select at least one workbook to upload.")
		return
	}

	var last *Entry
	var rejected []string
	for _, header := range files {
		f, err := header.Open()
		if err != nil {
			rejected = append(rejected, header.Filename)
			continue
		}
		wb, err := workbook.Read(f, header.Filename, s.opts)
		_ = f.Close()
		if err != nil {
			s.logger.Warn("upload rejected", zap.String("file", header.Filename), zap.Error(err))
			rejected = append(rejected, header.Filename)
			continue
		}
		last = s.registry.Add(header.Filename, "", wb)
		s.logger.Info("workbook uploaded", zap.String("id", last.ID), zap.String("file", header.Filename))
	}

	if len(rejected) > 0 {
		s.renderIndex(w, http.StatusUnprocessableEntity, "Unsupported file: "+strings.Join(rejected, ", "))
		return
	}
	http.Redirect(w, r, "/w/"+last.ID, http.StatusSeeOther)
}

func (s *Server) handleWorkbook(w http.ResponseWriter, r *http.Request) {
	entry, ok := s.entryFor(w, r)
	if !ok {
		return
	}
	query := r.URL.Query()
	report := core.BuildReport(entry.Workbook, selectionFromQuery(query))
	s.render(w, http.StatusOK, "workbook.html", newWorkbookPage(entry, report, query))
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	entry, ok := s.entryFor(w, r)
	if !ok {
		return
	}
	file := r.PathValue("file")
	kind, err := chart.ParseKind(file)
	if err != nil || !strings.HasSuffix(file, ".png") {
		http.NotFound(w, r)
		return
	}

	report := core.BuildReport(entry.Workbook, selectionFromQuery(r.URL.Query()))
	p, err := chart.Render(kind, report)
	if errors.Is(err, chart.ErrNoQuestions) || errors.Is(err, chart.ErrNoPoints) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		s.serverError(w, "chart render failed", err)
		return
	}

	var buf bytes.Buffer
	if err := chart.WritePNG(&buf, p, s.chartSize); err != nil {
		s.serverError(w, "chart encode failed", err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handlePrioritiesExport(w http.ResponseWriter, r *http.Request) {
	entry, ok := s.entryFor(w, r)
	if !ok {
		return
	}
	report := core.BuildReport(entry.Workbook, selectionFromQuery(r.URL.Query()))

	var buf bytes.Buffer
	if err := workbook.WritePriorities(&buf, report.Priorities); err != nil {
		s.serverError(w, "priorities export failed", err)
		return
	}
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", workbook.PrioritiesFileName))
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = fmt.Fprintf(w, "ok %d\n", len(s.registry.List()))
}

func (s *Server) entryFor(w http.ResponseWriter, r *http.Request) (*Entry, bool) {
	entry, ok := s.registry.Get(r.PathValue("id"))
	if !ok {
		http.Error(w, "workbook not found", http.StatusNotFound)
	}
	return entry, ok
}

func (s *Server) render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := s.pages.ExecuteTemplate(&buf, name, data); err != nil {
		s.serverError(w, "template failed", err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) serverError(w http.ResponseWriter, msg string, err error) {
	s.logger.Error(msg, zap.Error(err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// tabOrDefault returns the tab named in the query, falling back to results.
func tabOrDefault(name string) schema.Tab {
	for _, t := range schema.AllTabs {
		if string(t) == name {
			return t
		}
	}
	return schema.ResultsTab
}
