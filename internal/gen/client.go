// Package gen talks to the external task-generation service. The core only
// sees the boundary: a request with subjects, deadline, and a daily time
// budget, and either an ordered task list or "no result". A failed call is
// surfaced once; the user re-triggers manually, so there are no retries.
package gen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/nishantrao/studyd/internal/model"
)

var (
	ErrMissingFields = errors.New("gen: subjects, deadline, and hours per day are required")
	ErrUnavailable   = errors.New("gen: generation service unavailable")
	ErrTimeout       = errors.New("gen: generation timed out")
	ErrInvalidOutput = errors.New("gen: invalid generation output")
)

// Request carries the user's planner form input.
type Request struct {
	Subjects    string
	Deadline    string
	HoursPerDay string
	Notes       string
}

func (r Request) Validate() error {
	if strings.TrimSpace(r.Subjects) == "" ||
		strings.TrimSpace(r.Deadline) == "" ||
		strings.TrimSpace(r.HoursPerDay) == "" {
		return ErrMissingFields
	}
	return nil
}

// Client produces an ordered study task list for a planner request.
type Client interface {
	GeneratePlan(ctx context.Context, req Request) ([]model.StudyTask, error)
}

type httpClient struct {
	cfg  Config
	http *http.Client
}

// NewHTTPClient returns a Client speaking the Ollama-style generate API.
func NewHTTPClient(cfg Config) Client {
	return &httpClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{Timeout: 5 * time.Second}).DialContext,
			},
		},
	}
}

type generateRequest struct {
	Model   string          `json:"model"`
	System  string          `json:"system,omitempty"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options,omitempty"`
}

type generateOptions struct {
	Temperature float64 `json:"temperature,omitempty"`
}

type generateResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
}

func (c *httpClient) GeneratePlan(ctx context.Context, req Request) ([]model.StudyTask, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	body := generateRequest{
		Model:   c.cfg.Model,
		System:  systemPrompt,
		Prompt:  buildPrompt(req),
		Stream:  false,
		Options: generateOptions{Temperature: c.cfg.Temperature},
	}
	resp, err := c.doRequest(ctx, body)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ErrTimeout
		}
		var netErr *net.OpError
		if errors.As(err, &netErr) {
			return nil, ErrUnavailable
		}
		return nil, err
	}

	return ExtractTasks(resp.Response)
}

func (c *httpClient) doRequest(ctx context.Context, body generateRequest) (*generateResponse, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	url := c.cfg.Endpoint + "/api/generate"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d: %s", ErrUnavailable, httpResp.StatusCode, string(respBody))
	}

	var resp generateResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return &resp, nil
}

const systemPrompt = `You are a study planner. Respond with a single JSON object of the form
{"plan": [{"day": "...", "timeSlot": "H:MM AM - H:MM PM", "subject": "...", "topic": "...", "task": "...", "description": "..."}]}
and nothing else.`

func buildPrompt(req Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a detailed study plan for a student who needs to study the following subjects/topics: %s.\n", req.Subjects)
	fmt.Fprintf(&b, "The deadline is %s.\n", req.Deadline)
	fmt.Fprintf(&b, "The student can study for approximately %s hours per day.\n", req.HoursPerDay)
	if notes := strings.TrimSpace(req.Notes); notes != "" {
		fmt.Fprintf(&b, "The student has also provided the following specific instructions or notes: %q. Incorporate these requests into the plan.\n", notes)
	}
	b.WriteString("Break the plan into manageable daily sessions with specific subjects, topics, and actionable tasks. ")
	b.WriteString("Ensure the plan is realistic and covers all the mentioned subjects before the deadline. Be very specific in the tasks.")
	return b.String()
}
