package review

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medibridge/directory-api/internal/model"
	"github.com/medibridge/directory-api/internal/repository/store"
	"github.com/medibridge/directory-api/internal/service/review"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	backend := store.NewMemory()
	engine := gin.New()
	NewHandler(review.NewService(backend)).RegisterRoutes(engine.Group(""))
	return engine
}

func postReview(t *testing.T, engine *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/reviews", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestCreateAndListReviews(t *testing.T) {
	engine := setupRouter(t)

	w := postReview(t, engine, `{
		"patient_id": "patient-1",
		"hospital_id": "hosp-1",
		"rating": 4.5,
		"title": "Smooth experience",
		"comment": "Staff spoke my language."
	}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created["id"])

	w = postReview(t, engine, `{
		"patient_id": "patient-2",
		"doctor_id": "doc-3",
		"rating": 5
	}`)
	require.Equal(t, http.StatusCreated, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/reviews?hospital_id=hosp-1", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var reviews []*model.Review
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reviews))
	require.Len(t, reviews, 1)
	assert.Equal(t, created["id"], reviews[0].ID)
	assert.Equal(t, "patient-1", reviews[0].PatientID)
	assert.Equal(t, 4.5, reviews[0].Rating)

	req = httptest.NewRequest(http.MethodGet, "/reviews?doctor_id=doc-3", nil)
	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reviews))
	require.Len(t, reviews, 1)
	assert.Equal(t, "patient-2", reviews[0].PatientID)
}

func TestCreateReviewRatingBounds(t *testing.T) {
	engine := setupRouter(t)

	w := postReview(t, engine, `{"patient_id": "p1", "rating": 5.5}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "lte")

	w = postReview(t, engine, `{"rating": 4}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "required")
}

func TestListReviewsEmpty(t *testing.T) {
	engine := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/reviews", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}
