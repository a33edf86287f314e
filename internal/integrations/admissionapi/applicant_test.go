package admissionapi

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadDocument_Success(t *testing.T) {
	var (
		gotAuth     string
		gotName     string
		gotFileName string
		gotContent  []byte
	)
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/admission/applicant/documents", r.URL.Path)

		assert.NoError(t, r.ParseMultipartForm(1<<20))
		gotName = r.FormValue("document_name")

		file, header, err := r.FormFile("document")
		if assert.NoError(t, err) {
			gotFileName = header.Filename
			gotContent, _ = io.ReadAll(file)
			_ = file.Close()
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{
			"status": "success",
			"message": "документ загружен",
			"data": {
				"path": "documents/5/dni.pdf",
				"document_name": "DNI"
			}
		}`))
	})

	result, err := client.UploadDocument(
		context.Background(),
		"tok-123",
		"DNI",
		"dni.pdf",
		strings.NewReader("%PDF-1.4 fake"),
	)
	require.NoError(t, err)

	// Multipart-поля уходят на backend как есть
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "DNI", gotName)
	assert.Equal(t, "dni.pdf", gotFileName)
	assert.Equal(t, "%PDF-1.4 fake", string(gotContent))

	assert.Equal(t, StatusSuccess, result.Status)
	assert.Equal(t, "документ загружен", result.Message)
	assert.Equal(t, "documents/5/dni.pdf", result.Path)
	assert.Equal(t, "DNI", result.DocumentName)
}

func TestUploadDocument_EmptyTokenSkipsNetwork(t *testing.T) {
	called := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, err := client.UploadDocument(context.Background(), "", "DNI", "dni.pdf", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.False(t, called)
}

func TestUploadDocument_Unauthorized(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.UploadDocument(context.Background(), "expired", "DNI", "dni.pdf", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrUnauthorized)
}
