package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"vocabquiz/models"
)

// APIError is a failed envelope or a transport failure
type APIError struct {
	Status  int // 0 for transport failures
	Message string
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

// NotFound reports a 404 answer
func (e *APIError) NotFound() bool { return e.Status == http.StatusNotFound }

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

// Client calls the quiz API. Requests are not retried.
type Client struct {
	http *resty.Client
}

// Option customizes a Client
type Option func(*resty.Client)

// WithTimeout bounds every request
func WithTimeout(d time.Duration) Option {
	return func(c *resty.Client) { c.SetTimeout(d) }
}

// New creates a client for an API rooted at baseURL, e.g. http://localhost:3001/api
func New(baseURL string, opts ...Option) *Client {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetTimeout(10 * time.Second)
	for _, opt := range opts {
		opt(rc)
	}
	return &Client{http: rc}
}

func (c *Client) get(ctx context.Context, path string, params, query map[string]string, out interface{}) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParams(params).
		SetQueryParams(query).
		Get(path)
	return decode(resp, err, out)
}

func decode(resp *resty.Response, err error, out interface{}) error {
	if err != nil {
		return &APIError{Message: err.Error()}
	}

	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return &APIError{Status: resp.StatusCode(), Message: "invalid response body: " + err.Error()}
	}
	if !env.Success || resp.IsError() {
		msg := env.Error
		if msg == "" {
			msg = http.StatusText(resp.StatusCode())
		}
		return &APIError{Status: resp.StatusCode(), Message: msg}
	}
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return &APIError{Status: resp.StatusCode(), Message: "invalid response data: " + err.Error()}
	}
	return nil
}

// Health checks liveness and returns the server message
func (c *Client) Health(ctx context.Context) (string, error) {
	resp, err := c.http.R().SetContext(ctx).Get("/health")
	if err := decode(resp, err, nil); err != nil {
		return "", err
	}
	var env envelope
	_ = json.Unmarshal(resp.Body(), &env)
	return env.Message, nil
}

// Years lists every exam year
func (c *Client) Years(ctx context.Context) ([]models.YearData, error) {
	var out []models.YearData
	if err := c.get(ctx, "/years", nil, nil, &out); err != nil {
		return out, err
	}
	return out, nil
}

func (c *Client) Year(ctx context.Context, year int) (models.YearData, error) {
	var out models.YearData
	params := map[string]string{"year": strconv.Itoa(year)}
	if err := c.get(ctx, "/years/{year}", params, nil, &out); err != nil {
		return out, err
	}
	return out, nil
}

// Series lists the series of a year
func (c *Client) Series(ctx context.Context, year int) ([]models.SeriesData, error) {
	var out []models.SeriesData
	params := map[string]string{"year": strconv.Itoa(year)}
	if err := c.get(ctx, "/years/{year}/series", params, nil, &out); err != nil {
		return out, err
	}
	return out, nil
}

// SeriesInfo fetches the metadata of one series
func (c *Client) SeriesInfo(ctx context.Context, year, series int) (models.SeriesData, error) {
	var out models.SeriesData
	params := map[string]string{"year": strconv.Itoa(year), "series": strconv.Itoa(series)}
	if err := c.get(ctx, "/years/{year}/series/{series}", params, nil, &out); err != nil {
		return out, err
	}
	return out, nil
}

func (c *Client) Quizzes(ctx context.Context, year, series int) ([]models.QuizSummary, error) {
	var out []models.QuizSummary
	params := map[string]string{"year": strconv.Itoa(year), "series": strconv.Itoa(series)}
	if err := c.get(ctx, "/quizzes/{year}/{series}", params, nil, &out); err != nil {
		return out, err
	}
	return out, nil
}

// Quiz fetches a full quiz including its answer key
func (c *Client) Quiz(ctx context.Context, id string) (*models.Quiz, error) {
	var out models.Quiz
	if err := c.get(ctx, "/quiz/{id}", map[string]string{"id": id}, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// QuizPreview fetches the questions without answers or explanations
func (c *Client) QuizPreview(ctx context.Context, id string) (models.QuizPreview, error) {
	var out models.QuizPreview
	if err := c.get(ctx, "/quiz/{id}/preview", map[string]string{"id": id}, nil, &out); err != nil {
		return out, err
	}
	return out, nil
}

func (c *Client) QuizSummary(ctx context.Context, id string) (models.QuizSummary, error) {
	var out models.QuizSummary
	if err := c.get(ctx, "/quiz/{id}/summary", map[string]string{"id": id}, nil, &out); err != nil {
		return out, err
	}
	return out, nil
}

func (c *Client) Search(ctx context.Context, term string) ([]models.QuizSummary, error) {
	var out []models.QuizSummary
	if err := c.get(ctx, "/search", nil, map[string]string{"q": term}, &out); err != nil {
		return out, err
	}
	return out, nil
}

// Submit asks the server to grade answers
func (c *Client) Submit(ctx context.Context, id string, answers []int, timeSpent *int) (*models.QuizResult, error) {
	body := map[string]interface{}{"answers": answers}
	if timeSpent != nil {
		body["timeSpent"] = *timeSpent
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", id).
		SetBody(body).
		Post("/quiz/{id}/submit")

	var out models.QuizResult
	if err := decode(resp, err, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
