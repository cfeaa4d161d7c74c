package promoclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/Amund211/skillforge/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ErrUnsuccessfulResponse is returned when the API answers with success: false
var ErrUnsuccessfulResponse = errors.New("unsuccessful response")

const userAgent = "skillforge-promoclient/1.0"

type HttpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type envelope[T any] struct {
	Success    bool     `json:"success"`
	Data       []T      `json:"data"`
	Total      int      `json:"total"`
	Timestamp  string   `json:"timestamp"`
	Error      string   `json:"error,omitempty"`
	Categories []string `json:"categories,omitempty"`
}

type client struct {
	httpClient HttpClient
	baseURL    string

	tracer trace.Tracer
}

// New creates a client for the mock API rooted at baseURL, e.g. https://example.com/api
func New(httpClient HttpClient, baseURL string) (*client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base url: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("base url must be absolute: %s", baseURL)
	}

	return &client{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		tracer:     otel.Tracer("skillforge/promoclient"),
	}, nil
}

// get performs a single request. Network errors, non-2xx statuses and
// success: false are all failures.
func get[T any](ctx context.Context, c *client, endpoint string, params url.Values) (envelope[T], error) {
	ctx, span := c.tracer.Start(ctx, "PromoClient.get", trace.WithAttributes(attribute.String("endpoint", endpoint)))
	defer span.End()

	requestURL := fmt.Sprintf("%s/%s", c.baseURL, endpoint)
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return envelope[T]{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return envelope[T]{}, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return envelope[T]{}, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return envelope[T]{}, fmt.Errorf("API Error: %d", resp.StatusCode)
	}

	var response envelope[T]
	if err := json.Unmarshal(data, &response); err != nil {
		return envelope[T]{}, fmt.Errorf("failed to parse %s response: %w", endpoint, err)
	}

	if !response.Success {
		cause := response.Error
		if cause == "" {
			cause = "no error given"
		}
		return envelope[T]{}, fmt.Errorf("%w from %s: %s", ErrUnsuccessfulResponse, endpoint, cause)
	}

	if response.Data == nil {
		response.Data = []T{}
	}

	return response, nil
}

func toPage[T any](response envelope[T]) domain.Page[T] {
	return domain.Page[T]{Items: response.Data, Total: response.Total}
}

func limitAndActive(limit int, activeOnly bool) url.Values {
	return url.Values{
		"limit":  []string{strconv.Itoa(limit)},
		"active": []string{strconv.FormatBool(activeOnly)},
	}
}

func (c *client) GetOffers(ctx context.Context, limit int, activeOnly bool) (domain.Page[domain.Offer], error) {
	response, err := get[domain.Offer](ctx, c, "offers", limitAndActive(limit, activeOnly))
	if err != nil {
		return domain.Page[domain.Offer]{}, err
	}
	return toPage(response), nil
}

func (c *client) GetBanners(ctx context.Context, limit int, activeOnly bool) (domain.Page[domain.Banner], error) {
	response, err := get[domain.Banner](ctx, c, "banners", limitAndActive(limit, activeOnly))
	if err != nil {
		return domain.Page[domain.Banner]{}, err
	}
	return toPage(response), nil
}

func (c *client) GetMiniOffers(ctx context.Context, limit int, activeOnly bool) (domain.Page[domain.MiniOffer], error) {
	response, err := get[domain.MiniOffer](ctx, c, "mini-offers", limitAndActive(limit, activeOnly))
	if err != nil {
		return domain.Page[domain.MiniOffer]{}, err
	}
	return toPage(response), nil
}

func (c *client) GetNotifications(ctx context.Context, limit int, userType domain.UserType, activeOnly bool) (domain.Page[domain.Notification], error) {
	params := limitAndActive(limit, activeOnly)
	params.Set("userType", string(userType))

	response, err := get[domain.Notification](ctx, c, "notifications", params)
	if err != nil {
		return domain.Page[domain.Notification]{}, err
	}
	return toPage(response), nil
}

func (c *client) GetCourses(ctx context.Context, query domain.CourseQuery) (domain.CoursePage, error) {
	params := url.Values{
		"limit": []string{strconv.Itoa(query.Limit)},
	}
	if query.Category != "" {
		params.Set("category", query.Category)
	}
	if query.Level != "" {
		params.Set("level", query.Level)
	}
	if query.PopularOnly {
		params.Set("popular", "true")
	}
	if query.NewOnly {
		params.Set("new", "true")
	}

	response, err := get[domain.Course](ctx, c, "courses", params)
	if err != nil {
		return domain.CoursePage{}, err
	}

	categories := response.Categories
	if categories == nil {
		categories = []string{}
	}

	return domain.CoursePage{
		Page:       toPage(response),
		Categories: categories,
	}, nil
}
