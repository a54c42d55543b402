package document

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medibridge/directory-api/internal/repository/store"
	"github.com/medibridge/directory-api/internal/service/document"
)

func setupRouter(t *testing.T) (*gin.Engine, *store.Memory) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	backend := store.NewMemory()
	engine := gin.New()
	NewHandler(document.NewService(backend)).RegisterRoutes(engine.Group(""))
	return engine, backend
}

func multipartUpload(t *testing.T, patientID, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if patientID != "" {
		require.NoError(t, mw.WriteField("patient_id", patientID))
	}
	if filename != "" {
		fw, err := mw.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestUpload(t *testing.T) {
	engine, backend := setupRouter(t)

	content := []byte("lab results: all clear")
	body, contentType := multipartUpload(t, "patient-9", "labs.txt", content)

	req := httptest.NewRequest(http.MethodPost, "/documents/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["id"])

	raws, err := backend.Query(req.Context(), "document", store.Filter{}, 0)
	require.NoError(t, err)
	require.Len(t, raws, 1)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(raws[0].Doc, &doc))
	assert.Equal(t, "patient-9", doc["patient_id"])
	assert.Equal(t, "labs.txt", doc["filename"])
	assert.Equal(t, float64(len(content)), doc["size_bytes"])
}

func TestUploadRequiresPatientID(t *testing.T) {
	engine, _ := setupRouter(t)

	body, contentType := multipartUpload(t, "", "labs.txt", []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/documents/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestUploadRequiresFile(t *testing.T) {
	engine, _ := setupRouter(t)

	body, contentType := multipartUpload(t, "patient-1", "", nil)
	req := httptest.NewRequest(http.MethodPost, "/documents/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
