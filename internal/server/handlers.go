package server

import (
	"encoding/json"
	"errors"
	"html"
	"io"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/sant0-9/quill/internal/category"
	"github.com/sant0-9/quill/internal/document"
	"github.com/sant0-9/quill/internal/observability"
	"github.com/sant0-9/quill/internal/remedy"
)

const (
	maxJSONBody   = 6 << 20
	maxUploadBody = document.MaxFileSize + 1<<20
)

type classifyRequest struct {
	Topic string `json:"topic" validate:"required,max=500"`
}

type classifyResponse struct {
	Category category.Category `json:"category"`
	Label    string            `json:"label"`
}

type draftsRequest struct {
	Topic  string `json:"topic" validate:"required_without=Source,max=500"`
	Source string `json:"source" validate:"max=5242880"`
}

type draft struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Length int    `json:"length"`
	Over   bool   `json:"over"`
}

type draftsResponse struct {
	Category category.Category  `json:"category"`
	Drafts   []draft            `json:"drafts"`
	Document *document.Metadata `json:"document,omitempty"`
}

type remediationRequest struct {
	Text string `json:"text" validate:"required"`
}

type remediationResponse struct {
	Length    int      `json:"length"`
	Over      bool     `json:"over"`
	Condensed string   `json:"condensed"`
	Thread    []string `json:"thread"`
	Overflow  []int    `json:"overflow"`
	ShareURL  string   `json:"share_url"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	var req classifyRequest
	if !s.decode(w, r, &req) {
		return
	}
	c := category.Classify(s.clean(req.Topic))
	writeJSON(w, http.StatusOK, classifyResponse{Category: c, Label: c.Label()})
}

func (s *Server) handleDrafts(w http.ResponseWriter, r *http.Request) {
	var req draftsRequest
	if !s.decode(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, s.draft(r, s.clean(req.Topic), req.Source, nil))
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBody)
	if err := r.ParseMultipartForm(1 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, document.ErrTooLarge.Error())
			return
		}
		writeError(w, http.StatusBadRequest, "body is not a valid multipart form")
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, document.MaxFileSize+1))
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read file")
		return
	}

	doc, err := document.FromBytes(header.Filename, data)
	switch {
	case errors.Is(err, document.ErrTooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, err.Error())
		return
	case errors.Is(err, document.ErrUnsupportedType):
		writeError(w, http.StatusUnsupportedMediaType, err.Error())
		return
	case err != nil:
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	topic := s.clean(r.FormValue("topic"))
	observability.LoggerFromContext(r.Context()).Info("document uploaded",
		"name", doc.Name, "format", doc.Metadata.SourceFormat, "size", doc.Metadata.FileSizeHuman())
	writeJSON(w, http.StatusOK, s.draft(r, topic, doc.Content, &doc.Metadata))
}

func (s *Server) handleRemediation(w http.ResponseWriter, r *http.Request) {
	var req remediationRequest
	if !s.decode(w, r, &req) {
		return
	}

	rem := remedy.Advise(req.Text)
	remediationsTotal.WithLabelValues(outcome(rem)).Inc()

	overflow := rem.Overflow
	if overflow == nil {
		overflow = []int{}
	}
	writeJSON(w, http.StatusOK, remediationResponse{
		Length:    rem.Length,
		Over:      rem.Over,
		Condensed: rem.Condensed,
		Thread:    rem.Thread,
		Overflow:  overflow,
		ShareURL:  remedy.IntentURL(req.Text),
	})
}

func (s *Server) draft(r *http.Request, topic, source string, meta *document.Metadata) draftsResponse {
	c := category.Classify(topic)
	texts := s.composer.Compose(topic, source, s.newSource())
	draftsGenerated.WithLabelValues(string(c)).Add(float64(len(texts)))

	resp := draftsResponse{Category: c, Drafts: make([]draft, 0, len(texts)), Document: meta}
	for _, t := range texts {
		resp.Drafts = append(resp.Drafts, draft{
			ID:     uuid.NewString(),
			Text:   t,
			Length: remedy.Length(t),
			Over:   remedy.Over(t),
		})
	}
	observability.LoggerFromContext(r.Context()).Debug("drafts composed",
		"category", c, "count", len(resp.Drafts))
	return resp
}

// clean strips markup from user input. Anything that parses as a tag is
// dropped, even in plain text ("C++ <generics>" becomes "C++"), and entities
// are decoded ("R&amp;D" becomes "R&D").
func (s *Server) clean(in string) string {
	return strings.TrimSpace(html.UnescapeString(s.strip.Sanitize(in)))
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, body any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	if err := json.NewDecoder(r.Body).Decode(body); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "body too large")
			return false
		}
		observability.LoggerFromContext(r.Context()).Debug("decode body", "error", err)
		writeError(w, http.StatusBadRequest, "body is invalid json")
		return false
	}
	if err := s.validate.Struct(body); err != nil {
		observability.LoggerFromContext(r.Context()).Debug("validate body", "error", err)
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return false
	}
	return true
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "required fields missing"
	}
	fe := verrs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "required_without":
		return "topic or source is required"
	case "max":
		return field + " is too long"
	}
	return field + " is invalid"
}

func outcome(r remedy.Remediation) string {
	if r.Over {
		return "over"
	}
	return "fits"
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
