package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/jonathan/resume-importer/internal/db"
	"github.com/jonathan/resume-importer/internal/schemas"
	"github.com/jonathan/resume-importer/internal/types"
)

// maxBatchFiles bounds one batch import request. Enforced here, before the
// parser is ever invoked.
const maxBatchFiles = 5

// maxMultipartMemory bounds the in-memory portion of multipart parsing;
// larger parts spill to disk.
const maxMultipartMemory = 16 << 20

// ImportResponse is the response body for a single import.
type ImportResponse struct {
	ImportID string             `json:"import_id,omitempty"`
	Filename string             `json:"filename"`
	Result   types.ParseResult  `json:"result"`
	Stats    types.ParsingStats `json:"stats"`
}

// BatchImportResponse is the response body for a batch import.
type BatchImportResponse struct {
	Results []ImportResponse `json:"results"`
}

// handleImport parses one uploaded resume file.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart request: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Missing file field")
		return
	}
	defer file.Close()

	upload, err := readUpload(file, header)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read upload: "+err.Error())
		return
	}

	opts, err := parseOptionsFromForm(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	result := s.parser.ParseResume(r.Context(), upload, opts)
	s.jsonResponse(w, http.StatusOK, s.storeAndRespond(r, upload, result))
}

// handleImportBatch parses up to maxBatchFiles uploaded resume files.
func (s *Server) handleImportBatch(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart request: "+err.Error())
		return
	}

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "Missing files field")
		return
	}
	if len(headers) > maxBatchFiles {
		s.errorResponse(w, http.StatusBadRequest,
			fmt.Sprintf("batch size exceeds limit of %d files", maxBatchFiles))
		return
	}

	opts, err := parseOptionsFromForm(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	uploads := make([]types.FileUpload, 0, len(headers))
	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Failed to open upload "+header.Filename)
			return
		}
		upload, err := readUpload(file, header)
		file.Close()
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Failed to read upload "+header.Filename)
			return
		}
		uploads = append(uploads, upload)
	}

	results := s.parser.ParseMultipleResumes(r.Context(), uploads, opts)

	response := BatchImportResponse{Results: make([]ImportResponse, 0, len(results))}
	for i, result := range results {
		response.Results = append(response.Results, s.storeAndRespond(r, uploads[i], result))
	}
	s.jsonResponse(w, http.StatusOK, response)
}

// handleGetImport retrieves a stored import record by ID.
func (s *Server) handleGetImport(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Import storage is not configured")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid import ID")
		return
	}

	record, err := s.db.GetImport(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load import")
		return
	}
	if record == nil {
		s.errorResponse(w, http.StatusNotFound, "Import not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, record)
}

// handleListImports returns recent import records.
func (s *Server) handleListImports(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Import storage is not configured")
		return
	}

	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	records, err := s.db.ListImports(r.Context(), limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list imports")
		return
	}
	if records == nil {
		records = []db.ImportRecord{}
	}
	s.jsonResponse(w, http.StatusOK, records)
}

// storeAndRespond persists the result when storage is configured and builds
// the response entry. Storage failures are logged, not surfaced: the caller
// still gets the parse result.
func (s *Server) storeAndRespond(r *http.Request, upload types.FileUpload, result types.ParseResult) ImportResponse {
	response := ImportResponse{
		Filename: upload.Filename,
		Result:   result,
		Stats:    s.parser.Stats(result),
	}
	if s.db == nil {
		return response
	}
	if err := checkSchema(result); err != nil {
		// Distinguish data that violates the schema from a schema that could
		// not be loaded: only the former blocks persistence.
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			log.Printf("Not storing import for %s, schema violation: %v", upload.Filename, err)
			return response
		}
		log.Printf("Warning: could not validate %s against schema: %v", upload.Filename, err)
	}
	id, err := s.db.SaveImport(r.Context(), upload.Filename, upload.Mimetype, result)
	if err != nil {
		log.Printf("Failed to store import for %s: %v", upload.Filename, err)
		return response
	}
	response.ImportID = id.String()
	return response
}

// checkSchema verifies that the parsed resume data conforms to the resume
// data schema before it reaches storage. Results without data pass trivially.
func checkSchema(result types.ParseResult) error {
	if result.Data == nil {
		return nil
	}
	payload, err := json.Marshal(result.Data)
	if err != nil {
		return err
	}
	return schemas.ValidateResumeData(payload)
}

// readUpload drains one multipart file into a FileUpload.
func readUpload(file multipart.File, header *multipart.FileHeader) (types.FileUpload, error) {
	buf, err := io.ReadAll(file)
	if err != nil {
		return types.FileUpload{}, err
	}
	return types.FileUpload{
		Filename: header.Filename,
		Mimetype: header.Header.Get("Content-Type"),
		Buffer:   buf,
		Size:     int64(len(buf)),
	}, nil
}

// parseOptionsFromForm reads parse options from form values, falling back to
// defaults for absent fields.
func parseOptionsFromForm(r *http.Request) (types.ParseOptions, error) {
	opts := types.DefaultParseOptions()

	if v := r.FormValue("strict_validation"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return opts, fmt.Errorf("invalid strict_validation value %q", v)
		}
		opts.StrictValidation = b
	}
	if v := r.FormValue("include_raw_text"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return opts, fmt.Errorf("invalid include_raw_text value %q", v)
		}
		opts.IncludeRawText = b
	}
	if v := r.FormValue("confidence_threshold"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return opts, fmt.Errorf("invalid confidence_threshold value %q", v)
		}
		opts.ConfidenceThreshold = f
	}

	if err := opts.Validate(); err != nil {
		return opts, err
	}
	return opts, nil
}
