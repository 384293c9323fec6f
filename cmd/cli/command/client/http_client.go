package client

// http_client.go = HTTP client used by the webtoonhub CLI to talk to the api-server.

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// defines the HTTP client structure and methods
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// APIError carries the status and message of a non-2xx response
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("request failed: %d %s", e.StatusCode, e.Message)
}

// Auth request/response structures
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Name     string `json:"name,omitempty"`
}

type RegisterResponse struct {
	MemberID int64  `json:"member_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	MemberID    int64  `json:"member_id"`
	Username    string `json:"username"`
	Role        string `json:"role"`
	ExpiresIn   int64  `json:"expires_in"`
}

// Catalog structures
type RankedItem struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Genre     string `json:"genre"`
	Thumbnail string `json:"thumbnail"`
	Views     int64  `json:"views"`
	Rank      int    `json:"rank"`
}

type Webtoon struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Genre        string `json:"genre"`
	Views        int64  `json:"views"`
	Recommend    int64  `json:"recommend"`
	Discontinued bool   `json:"discontinued"`
}

type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
}

type WebtoonListResponse struct {
	Data       []Webtoon  `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// Comment structures
type Comment struct {
	ID        int64     `json:"id"`
	MemberID  int64     `json:"member_id"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	Likes     int64     `json:"likes"`
	CreatedAt time.Time `json:"created_at"`
}

type Thread struct {
	Comment
	Orphaned bool      `json:"orphaned,omitempty"`
	Replies  []Comment `json:"replies"`
}

// Subscription structures
type Subscription struct {
	ID        int64  `json:"id"`
	WebtoonID int64  `json:"webtoon_id"`
	Status    string `json:"status"`
	AlarmOn   bool   `json:"alarm_on"`
}

// Advertisement structures
type Advertisement struct {
	ID                   int64  `json:"id"`
	Name                 string `json:"name"`
	Placement            string `json:"placement"`
	ImageURL             string `json:"image_url"`
	TargetURL            string `json:"target_url"`
	CurrentExposureCount int64  `json:"current_exposure_count"`
}

func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *HTTPClient) SetToken(token string) {
	c.token = token
}

// do sends a JSON request and decodes a JSON response into out when out is non-nil
func (c *HTTPClient) do(method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		msg := errResp.Error
		if msg == "" {
			msg = errResp.Message
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *HTTPClient) Register(request *RegisterRequest) (*RegisterResponse, error) {
	var result RegisterResponse
	if err := c.do(http.MethodPost, "/api/auth/register", request, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) Login(request *LoginRequest) (*LoginResponse, error) {
	var result LoginResponse
	if err := c.do(http.MethodPost, "/api/auth/login", request, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetRanking fetches a ranking feed; genre may be empty
func (c *HTTPClient) GetRanking(period, genre string, limit int) ([]RankedItem, error) {
	path := "/api/ranking/" + url.PathEscape(period)
	if genre != "" {
		path += "/" + url.PathEscape(genre)
	}
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}

	var result struct {
		Success bool         `json:"success"`
		Data    []RankedItem `json:"data"`
	}
	if err := c.do(http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}

func (c *HTTPClient) ListWebtoons(genre string, page, pageSize int) (*WebtoonListResponse, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("page_size", strconv.Itoa(pageSize))
	if genre != "" {
		q.Set("genre", genre)
	}

	var result WebtoonListResponse
	if err := c.do(http.MethodGet, "/api/webtoons?"+q.Encode(), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) RecommendWebtoon(webtoonID int64) error {
	return c.do(http.MethodPost, fmt.Sprintf("/api/webtoons/%d/recommend", webtoonID), nil, nil)
}

func (c *HTTPClient) ListComments(episodeID int64) ([]Thread, error) {
	var result struct {
		Data []Thread `json:"data"`
	}
	if err := c.do(http.MethodGet, fmt.Sprintf("/api/episodes/%d/comments", episodeID), nil, &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}

func (c *HTTPClient) CreateComment(episodeID int64, content string) (int64, error) {
	var result struct {
		ID int64 `json:"id"`
	}
	body := map[string]string{"content": content}
	if err := c.do(http.MethodPost, fmt.Sprintf("/api/episodes/%d/comments", episodeID), body, &result); err != nil {
		return 0, err
	}
	return result.ID, nil
}

func (c *HTTPClient) ReplyComment(parentID int64, content string) (int64, error) {
	var result struct {
		ID int64 `json:"id"`
	}
	body := map[string]string{"content": content}
	if err := c.do(http.MethodPost, fmt.Sprintf("/api/comment/reply/%d", parentID), body, &result); err != nil {
		return 0, err
	}
	return result.ID, nil
}

// ReportComment returns "created" or "updated"
func (c *HTTPClient) ReportComment(commentID int64, reason, detail string) (string, error) {
	var result struct {
		Success bool `json:"success"`
		Created bool `json:"created"`
		Updated bool `json:"updated"`
	}
	body := map[string]any{"reason": reason}
	if detail != "" {
		body["detail"] = detail
	}
	if err := c.do(http.MethodPost, fmt.Sprintf("/api/comment/report/%d", commentID), body, &result); err != nil {
		return "", err
	}
	if result.Updated {
		return "updated", nil
	}
	return "created", nil
}

func (c *HTTPClient) Subscribe(webtoonID int64) error {
	body := map[string]int64{"webtoonId": webtoonID}
	return c.do(http.MethodPost, "/api/member/subscription", body, nil)
}

func (c *HTTPClient) Unsubscribe(webtoonID int64) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/api/member/subscription/%d", webtoonID), nil, nil)
}

func (c *HTTPClient) SetAlarm(webtoonID int64, on bool) error {
	body := map[string]bool{"alarmOn": on}
	return c.do(http.MethodPatch, fmt.Sprintf("/api/member/subscription/%d/alarm", webtoonID), body, nil)
}

func (c *HTTPClient) ListSubscriptions() ([]Subscription, error) {
	var result struct {
		Data []Subscription `json:"data"`
	}
	if err := c.do(http.MethodGet, "/api/member/subscription", nil, &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}

// SelectAd returns nil when no advertisement is eligible for the placement
func (c *HTTPClient) SelectAd(placement string) (*Advertisement, error) {
	var result struct {
		Success bool           `json:"success"`
		Data    *Advertisement `json:"data"`
	}
	if err := c.do(http.MethodGet, "/api/advertisement/placement/"+url.PathEscape(placement), nil, &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}

func (c *HTTPClient) RecordAdView(adID int64) error {
	return c.do(http.MethodPost, fmt.Sprintf("/api/advertisement/%d/view", adID), nil, nil)
}
