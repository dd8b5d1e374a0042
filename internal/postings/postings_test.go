package postings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerhub/internal/jobs"
)

func TestMemoryRepoListsSeedInOrder(t *testing.T) {
	seed := jobs.MockJobs()
	repo := NewMemoryRepo([]jobs.Job{seed[2], seed[0], seed[1]})
	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{list[0].ID, list[1].ID, list[2].ID})

	list[0].Skills[0] = "mutated"
	again, _ := repo.List(context.Background())
	assert.Equal(t, "React", again[0].Skills[0])
}

func TestPGRepoListDecodesSkills(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	rows := sqlmock.NewRows([]string{"id", "title", "company", "location", "type", "salary", "posted_label", "match_score", "description", "skills"}).
		AddRow(1, "Senior Frontend Developer", "TechCorp Inc.", "San Francisco, CA", "Full-time", "$120,000 - $150,000", "2 days ago", 92, "desc", []byte(`["React","CSS"]`)).
		AddRow(2, "Full Stack Engineer", "StartupXYZ", "Remote", "Full-time", "", "", 85, "", []byte(`[]`))
	mock.ExpectQuery("SELECT id, title, company").WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, []string{"React", "CSS"}, list[0].Skills)
	assert.Equal(t, 92, list[0].MatchScore)
	assert.Equal(t, "2 days ago", list[0].PostedDate)
	assert.Equal(t, []string{}, list[1].Skills)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPGRepoListRejectsBadSkills(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	rows := sqlmock.NewRows([]string{"id", "title", "company", "location", "type", "salary", "posted_label", "match_score", "description", "skills"}).
		AddRow(7, "x", "y", "z", "Full-time", "", "", 0, "", []byte(`{"not":"a list"}`))
	mock.ExpectQuery("SELECT id, title, company").WillReturnRows(rows)

	_, err = (&PGRepo{DB: db}).List(context.Background())
	assert.ErrorContains(t, err, "posting 7")
}

type failingRepo struct{}

func (failingRepo) List(context.Context) ([]jobs.Job, error) { return nil, errors.New("db down") }

func TestHandlerListsJobsAsArray(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(NewMemoryRepo(jobs.MockJobs())).RegisterRoutes(r.Group("/api"))

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/jobs", nil))
	require.Equal(t, http.StatusOK, resp.Code)

	var got []jobs.Job
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	assert.Equal(t, jobs.MockJobs(), got)
}

func TestHandlerReportsRepoFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(failingRepo{}).RegisterRoutes(r.Group("/api"))

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/jobs", nil))
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
