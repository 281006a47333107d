package routers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vocabquiz/database"
	"vocabquiz/services"
)

type envelope struct {
	Success    bool                   `json:"success"`
	Data       json.RawMessage        `json:"data"`
	Message    string                 `json:"message"`
	Error      string                 `json:"error"`
	Code       string                 `json:"code"`
	Pagination map[string]interface{} `json:"pagination"`
	Details    map[string]interface{} `json:"details"`
	Timestamp  string                 `json:"timestamp"`
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	reg, err := database.LoadEmbedded()
	require.NoError(t, err)
	return NewApp(Options{Service: services.NewContentService(reg, 70)})
}

func call(t *testing.T, app *fiber.App, method, path, body string) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.NotEmpty(t, env.Timestamp)
	return resp.StatusCode, env
}

func TestHealthAndIndex(t *testing.T) {
	app := newTestApp(t)

	status, env := call(t, app, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)
	assert.Equal(t, "Quiz API is running", env.Message)

	status, env = call(t, app, http.MethodGet, "/api", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), "/api/quiz/:id")

	status, env = call(t, app, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Quiz Application API", env.Message)
}

func TestYearListings(t *testing.T) {
	app := newTestApp(t)

	status, env := call(t, app, http.MethodGet, "/api/years", "")
	require.Equal(t, http.StatusOK, status)
	var years []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &years))
	require.Len(t, years, 1)
	assert.EqualValues(t, 1399, years[0]["year"])
	assert.EqualValues(t, 2, years[0]["seriesCount"])

	status, env = call(t, app, http.MethodGet, "/api/years/1399/series", "")
	require.Equal(t, http.StatusOK, status)
	var series []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &series))
	assert.Len(t, series, 2)

	status, _ = call(t, app, http.MethodGet, "/api/years/1399/series/2", "")
	assert.Equal(t, http.StatusOK, status)
}

func TestYearValidation(t *testing.T) {
	app := newTestApp(t)

	status, env := call(t, app, http.MethodGet, "/api/years/abc", "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, env.Success)
	assert.Equal(t, "Invalid year parameter. Year must be a number.", env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Code)

	status, env = call(t, app, http.MethodGet, "/api/years/1200", "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Year must be between 1300 and 2100", env.Error)

	status, env = call(t, app, http.MethodGet, "/api/quizzes/1399/0", "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Series must be between 1 and 100", env.Error)
}

func TestQuizzesBySeriesNotFound(t *testing.T) {
	app := newTestApp(t)

	status, env := call(t, app, http.MethodGet, "/api/quizzes/1400/1", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.False(t, env.Success)
	assert.Equal(t, "Year 1400 not found", env.Error)
	assert.Equal(t, "NOT_FOUND", env.Code)

	status, env = call(t, app, http.MethodGet, "/api/quizzes/1399/9", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Series 9 not found for year 1399", env.Error)

	status, env = call(t, app, http.MethodGet, "/api/quizzes/1399/1", "")
	require.Equal(t, http.StatusOK, status)
	var summaries []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &summaries))
	require.Len(t, summaries, 1)
	assert.Equal(t, "quiz_1399_1_1", summaries[0]["id"])
	assert.Equal(t, "easy", summaries[0]["difficulty"])
	assert.EqualValues(t, 5, summaries[0]["estimatedTime"])
}

func TestGetQuiz(t *testing.T) {
	app := newTestApp(t)

	status, env := call(t, app, http.MethodGet, "/api/quiz/quiz_1399_1_1", "")
	require.Equal(t, http.StatusOK, status)
	var quiz struct {
		ID        string `json:"id"`
		Questions []struct {
			CorrectAnswer int `json:"correctAnswer"`
		} `json:"questions"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &quiz))
	assert.Equal(t, "quiz_1399_1_1", quiz.ID)
	require.Len(t, quiz.Questions, 3)
	assert.Equal(t, 3, quiz.Questions[0].CorrectAnswer)

	status, env = call(t, app, http.MethodGet, "/api/quiz/quiz_1399_1_1/preview", "")
	require.Equal(t, http.StatusOK, status)
	assert.NotContains(t, string(env.Data), "correctAnswer")

	status, env = call(t, app, http.MethodGet, "/api/quiz/quiz_1399_1_1/summary", "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), `"questionCount":3`)
}

func TestGetQuizNotFound(t *testing.T) {
	app := newTestApp(t)

	status, env := call(t, app, http.MethodGet, "/api/quiz/quiz_9999_9_9", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.False(t, env.Success)
	assert.Equal(t, "Quiz with ID quiz_9999_9_9 not found", env.Error)
	assert.Empty(t, env.Data)

	status, env = call(t, app, http.MethodGet, "/api/quiz/bad.id", "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Quiz ID contains invalid characters", env.Error)
}

func TestSubmitQuiz(t *testing.T) {
	app := newTestApp(t)

	status, env := call(t, app, http.MethodPost, "/api/quiz/quiz_1399_1_1/submit", `{"answers":[3,0,1],"timeSpent":40}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Quiz submitted!", env.Message)
	var result struct {
		Score          int  `json:"score"`
		TotalQuestions int  `json:"totalQuestions"`
		Percentage     int  `json:"percentage"`
		Passed         bool `json:"passed"`
		TotalTimeSpent *int `json:"totalTimeSpent"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, 3, result.Score)
	assert.Equal(t, 100, result.Percentage)
	assert.True(t, result.Passed)
	require.NotNil(t, result.TotalTimeSpent)
	assert.Equal(t, 40, *result.TotalTimeSpent)

	status, env = call(t, app, http.MethodPost, "/api/quiz/quiz_1399_1_1/submit", `{"answers":[0,0,1]}`)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, 2, result.Score)
	assert.Equal(t, 67, result.Percentage)
	assert.False(t, result.Passed)
}

func TestSubmitQuizRejectsBadBodies(t *testing.T) {
	app := newTestApp(t)

	status, env := call(t, app, http.MethodPost, "/api/quiz/quiz_1399_1_1/submit", `{"answers":[3,0]}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, env.Error, "expected 3 answers, got 2")

	status, env = call(t, app, http.MethodPost, "/api/quiz/quiz_1399_1_1/submit", `{}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Answers are required!", env.Error)

	status, env = call(t, app, http.MethodPost, "/api/quiz/quiz_1399_1_1/submit", `{"answers":[3,0,1],"timeSpent":-5}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Time spent must not be negative!", env.Error)

	status, env = call(t, app, http.MethodPost, "/api/quiz/missing/submit", `{"answers":[]}`)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Quiz with ID missing not found", env.Error)
}

func TestSearch(t *testing.T) {
	app := newTestApp(t)

	status, env := call(t, app, http.MethodGet, "/api/search?q=vocabulary", "")
	require.Equal(t, http.StatusOK, status)
	var results []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &results))
	assert.Len(t, results, 2)

	status, env = call(t, app, http.MethodGet, "/api/search?q=vocabulary&page=2&limit=1", "")
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &results))
	assert.Len(t, results, 1)
	assert.EqualValues(t, 2, env.Pagination["totalPages"])

	status, env = call(t, app, http.MethodGet, "/api/search?q=zzzz", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "[]", string(env.Data))

	status, env = call(t, app, http.MethodGet, "/api/search", "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Search query (q) is required", env.Error)

	status, env = call(t, app, http.MethodGet, "/api/search?q=a", "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Search query must be at least 2 characters", env.Error)
}

func TestSearchPageBeyondResults(t *testing.T) {
	app := newTestApp(t)

	for _, page := range []string{"3", "1000000", "9223372036854775807"} {
		status, env := call(t, app, http.MethodGet, "/api/search?q=series&page="+page+"&limit=2", "")
		require.Equal(t, http.StatusOK, status, "page %s", page)
		assert.Equal(t, "[]", string(env.Data), "page %s", page)
		assert.Equal(t, false, env.Pagination["hasNext"], "page %s", page)
	}
}

func TestSearchLengthCountsPadding(t *testing.T) {
	app := newTestApp(t)

	// " a" is two characters as sent, so it passes the length check
	status, _ := call(t, app, http.MethodGet, "/api/search?q=%20a", "")
	assert.Equal(t, http.StatusOK, status)

	status, env := call(t, app, http.MethodGet, "/api/search?q=%20%20", "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Search query (q) is required", env.Error)

	status, env = call(t, app, http.MethodGet, "/api/search?q=ab"+strings.Repeat("%20", 99), "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Search query is too long (max 100 characters)", env.Error)
}

func TestUnknownRoute(t *testing.T) {
	app := newTestApp(t)

	status, env := call(t, app, http.MethodGet, "/api/nope", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Route /api/nope not found", env.Error)
}
