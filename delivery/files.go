package delivery

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yesyese/Visitor-Portal/gateway"
)

// maxUploadBytes caps supporting-document uploads at 10 MB.
const maxUploadBytes = 10 << 20

// fileUploadHandler proxies a supporting document to the remote file store.
func (h *HTTPEndpoint) fileUploadHandler(w http.ResponseWriter, r *http.Request) {
	credential, _ := h.app.CredentialFromContext(r.Context())

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid upload")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	fileType := r.FormValue("type")
	result, err := h.app.GetGateway().Upload(r.Context(), credential, header.Filename, file, fileType)
	if err != nil {
		h.app.GetLogger().WithField("error", err).Warn("file upload failed")
		writeJSONError(w, statusForGatewayError(err), gateway.Message(err))
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *HTTPEndpoint) fileDownloadHandler(w http.ResponseWriter, r *http.Request) {
	credential, _ := h.app.CredentialFromContext(r.Context())
	fileID := chi.URLParam(r, "fileID")

	content, contentType, err := h.app.GetGateway().Download(r.Context(), credential, fileID)
	if err != nil {
		writeJSONError(w, statusForGatewayError(err), gateway.Message(err))
		return
	}

	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	_, _ = w.Write(content)
}

func (h *HTTPEndpoint) fileDeleteHandler(w http.ResponseWriter, r *http.Request) {
	credential, _ := h.app.CredentialFromContext(r.Context())
	fileID := chi.URLParam(r, "fileID")

	if err := h.app.GetGateway().DeleteFile(r.Context(), credential, fileID); err != nil {
		writeJSONError(w, statusForGatewayError(err), gateway.Message(err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// statusForGatewayError picks a browser-facing status for a proxied failure.
func statusForGatewayError(err error) int {
	switch {
	case gateway.IsUnauthorized(err):
		return http.StatusUnauthorized
	case gateway.IsTimeout(err) || gateway.IsNetwork(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
