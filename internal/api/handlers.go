package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/dgallion1/bookbind/internal/book"
	"github.com/dgallion1/bookbind/internal/compiler"
)

type compileRequest struct {
	// Input names a single note (with or without .md) or a folder of
	// notes under the vault root.
	Input string `json:"input"`
	Final bool   `json:"final"`
	// HTML additionally renders the assembled output to HTML.
	HTML bool `json:"html"`
}

type compileResponse struct {
	WordCount int    `json:"word_count"`
	Output    string `json:"output"`
	HTML      string `json:"html,omitempty"`
}

func (s *Server) handleCompile(w http.ResponseWriter, r *http.Request) {
	var req compileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Input == "" {
		jsonError(w, "input is required", http.StatusBadRequest)
		return
	}

	c := compiler.New(s.vault, compiler.Options{
		Final:            req.Final,
		StripFrontmatter: s.cfg.StripFrontmatter,
	})

	start := time.Now()
	res, err := c.Compile(req.Input)
	if err != nil {
		var nf *compiler.NotFoundError
		if errors.As(err, &nf) {
			jsonError(w, nf.Error(), http.StatusNotFound)
			return
		}
		jsonError(w, "compile failed: "+err.Error(), http.StatusInternalServerError)
		return
	}
	s.stats.Record(time.Since(start), res.WordCount)

	resp := compileResponse{WordCount: res.WordCount, Output: res.Output}
	if req.HTML {
		html, err := compiler.RenderHTML(res.Output)
		if err != nil {
			jsonError(w, err.Error(), http.StatusInternalServerError)
			return
		}
		resp.HTML = html
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

type bookRequest struct {
	// Mode overrides the configured default: "draft" or "final".
	Mode string `json:"mode,omitempty"`
}

// handleBook runs the embedded-form book operation against the configured
// folder and writes the output note into the vault root.
func (s *Server) handleBook(w http.ResponseWriter, r *http.Request) {
	var req bookRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
			return
		}
	}

	binder := book.New(s.vault, book.Settings{
		FolderToExamine:  s.cfg.BookFolder,
		FinalMode:        s.cfg.FinalMode,
		StripFrontmatter: s.cfg.StripFrontmatter,
	}, s.log)

	start := time.Now()
	var res compiler.Result
	var err error
	switch req.Mode {
	case "":
		res, err = binder.Run()
	case "draft":
		res, err = binder.ParseBookFolder()
	case "final":
		res, err = binder.BindBookFinal()
	default:
		jsonError(w, "mode must be \"draft\" or \"final\"", http.StatusBadRequest)
		return
	}
	if err != nil {
		var nf *compiler.NotFoundError
		if errors.As(err, &nf) {
			jsonError(w, nf.Error(), http.StatusNotFound)
			return
		}
		jsonError(w, "book operation failed: "+err.Error(), http.StatusInternalServerError)
		return
	}
	s.stats.Record(time.Since(start), res.WordCount)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"word_count": res.WordCount,
		"note":       s.cfg.BookFolder + ".md",
	})
}

func (s *Server) handleCompileStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"stats": s.stats.Snapshot()})
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
