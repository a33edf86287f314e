package upload_document

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/ADM-InterviewPortal/internal/api/middleware"
	"github.com/m04kA/ADM-InterviewPortal/internal/domain"
	"github.com/m04kA/ADM-InterviewPortal/internal/integrations/admissionapi"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubSession struct{}

func (stubSession) Auth(*http.Request) (domain.AuthContext, string, error) {
	return domain.AuthContext{Token: "tok", UserID: 42}, "sess-1", nil
}

type stubDocumentClient struct {
	gotDocumentName string
	gotFileName     string
	err             error
}

func (s *stubDocumentClient) UploadDocument(_ context.Context, _, documentName, fileName string, _ io.Reader) (*admissionapi.UploadResult, error) {
	s.gotDocumentName = documentName
	s.gotFileName = fileName
	if s.err != nil {
		return nil, s.err
	}
	return &admissionapi.UploadResult{
		Status:       "success",
		Message:      "документ загружен",
		Path:         "documents/42/" + fileName,
		DocumentName: documentName,
	}, nil
}

func newServer(client *stubDocumentClient) http.Handler {
	h := NewHandler(client, nopLogger{})
	var protected http.Handler = http.HandlerFunc(h.Handle)
	return middleware.Auth(stubSession{})(protected)
}

func multipartRequest(t *testing.T, documentName string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("document", "dni.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4 fake"))
	require.NoError(t, err)
	if documentName != "" {
		require.NoError(t, writer.WriteField("document_name", documentName))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/applicant/documents", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestHandle_UploadsDocument(t *testing.T) {
	client := &stubDocumentClient{}
	srv := newServer(client)

	w := httptest.NewRecorder()
	srv.ServeHTTP(w, multipartRequest(t, "DNI"))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "DNI", client.gotDocumentName)
	assert.Equal(t, "dni.pdf", client.gotFileName)
}

func TestHandle_MissingDocumentName(t *testing.T) {
	client := &stubDocumentClient{}
	srv := newServer(client)

	w := httptest.NewRecorder()
	srv.ServeHTTP(w, multipartRequest(t, ""))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, client.gotDocumentName)
}

func TestHandle_DocumentNameTooLong(t *testing.T) {
	client := &stubDocumentClient{}
	srv := newServer(client)

	tooLong := strings.Repeat("a", domain.MaxDocumentNameLength+1)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, multipartRequest(t, tooLong))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	// Запрос не дошёл до admission API
	assert.Empty(t, client.gotDocumentName)
}

func TestHandle_UpstreamUnauthorized(t *testing.T) {
	client := &stubDocumentClient{err: admissionapi.ErrUnauthorized}
	srv := newServer(client)

	w := httptest.NewRecorder()
	srv.ServeHTTP(w, multipartRequest(t, "DNI"))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
