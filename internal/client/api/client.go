package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/iudanet/filesmanager/pkg/api"
)

// TokenHeader заголовок с сессионным токеном
const TokenHeader = "X-Token"

// ErrNotFound возвращается на 404 от сервера
var ErrNotFound = errors.New("not found")

// ErrUnauthorized возвращается на 401 от сервера
var ErrUnauthorized = errors.New("unauthorized")

// Error ошибка, пришедшая от сервера в теле {"error": "..."}
type Error struct {
	Message    string
	StatusCode int
}

func (e *Error) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}

// Is позволяет сравнивать серверные ошибки с ErrNotFound и ErrUnauthorized
func (e *Error) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	}
	return false
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:       30 * time.Second,
			CheckRedirect: checkRedirect,
		},
	}
}

// checkRedirect переносит токен только в пределах исходного хоста.
// net/http копирует пользовательские заголовки на каждый переход, поэтому
// для чужого хоста токен удаляется явно.
func checkRedirect(req *http.Request, via []*http.Request) error {
	if len(via) >= 10 {
		return fmt.Errorf("stopped after 10 redirects")
	}
	if len(via) == 0 {
		return nil
	}

	origin := via[0]
	token := origin.Header.Get(TokenHeader)
	if token != "" && req.URL.Host == origin.URL.Host {
		req.Header.Set(TokenHeader, token)
		return nil
	}
	req.Header.Del(TokenHeader)
	return nil
}

// SetToken задает сессионный токен для последующих запросов
func (c *Client) SetToken(token string) {
	c.token = token
}

// Token возвращает текущий сессионный токен
func (c *Client) Token() string {
	return c.token
}

// Status возвращает состояние хранилищ сервера
func (c *Client) Status(ctx context.Context) (*api.StatusResponse, error) {
	var resp api.StatusResponse
	if err := c.doJSON(ctx, http.MethodGet, "/status", nil, &resp); err != nil {
		return nil, fmt.Errorf("status request failed: %w", err)
	}
	return &resp, nil
}

// Stats возвращает количество пользователей и файлов
func (c *Client) Stats(ctx context.Context) (*api.StatsResponse, error) {
	var resp api.StatsResponse
	if err := c.doJSON(ctx, http.MethodGet, "/stats", nil, &resp); err != nil {
		return nil, fmt.Errorf("stats request failed: %w", err)
	}
	return &resp, nil
}

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, email, password string) (*api.UserResponse, error) {
	var resp api.UserResponse
	req := api.CreateUserRequest{Email: email, Password: password}
	if err := c.doJSON(ctx, http.MethodPost, "/users", req, &resp); err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Connect обменивает email и пароль на сессионный токен и запоминает его
func (c *Client) Connect(ctx context.Context, email, password string) (string, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/connect", nil)
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(email, password)

	var resp api.TokenResponse
	if err := c.do(req, &resp); err != nil {
		return "", fmt.Errorf("connect request failed: %w", err)
	}

	c.token = resp.Token
	return resp.Token, nil
}

// Disconnect завершает текущую сессию на сервере
func (c *Client) Disconnect(ctx context.Context) error {
	if err := c.doJSON(ctx, http.MethodGet, "/disconnect", nil, nil); err != nil {
		return fmt.Errorf("disconnect request failed: %w", err)
	}
	c.token = ""
	return nil
}

// Me возвращает текущего пользователя
func (c *Client) Me(ctx context.Context) (*api.UserResponse, error) {
	var resp api.UserResponse
	if err := c.doJSON(ctx, http.MethodGet, "/users/me", nil, &resp); err != nil {
		return nil, fmt.Errorf("me request failed: %w", err)
	}
	return &resp, nil
}

// CreateFile создает папку, файл или изображение
func (c *Client) CreateFile(ctx context.Context, req api.CreateFileRequest) (*api.File, error) {
	var resp api.File
	if err := c.doJSON(ctx, http.MethodPost, "/files", req, &resp); err != nil {
		return nil, fmt.Errorf("create file request failed: %w", err)
	}
	return &resp, nil
}

// GetFile возвращает метаданные файла
func (c *Client) GetFile(ctx context.Context, id string) (*api.File, error) {
	var resp api.File
	if err := c.doJSON(ctx, http.MethodGet, "/files/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, fmt.Errorf("get file request failed: %w", err)
	}
	return &resp, nil
}

// ListFiles возвращает страницу детей папки parentID ("" или "0" для корня)
func (c *Client) ListFiles(ctx context.Context, parentID string, page int) ([]api.File, error) {
	q := url.Values{}
	if parentID != "" {
		q.Set("parentId", parentID)
	}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}

	path := "/files"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp []api.File
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("list files request failed: %w", err)
	}
	return resp, nil
}

// Publish делает файл публичным
func (c *Client) Publish(ctx context.Context, id string) (*api.File, error) {
	return c.setVisibility(ctx, id, "publish")
}

// Unpublish делает файл приватным
func (c *Client) Unpublish(ctx context.Context, id string) (*api.File, error) {
	return c.setVisibility(ctx, id, "unpublish")
}

func (c *Client) setVisibility(ctx context.Context, id, action string) (*api.File, error) {
	var resp api.File
	path := "/files/" + url.PathEscape(id) + "/" + action
	if err := c.doJSON(ctx, http.MethodPut, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("%s request failed: %w", action, err)
	}
	return &resp, nil
}

// Download скачивает содержимое файла; size выбирает миниатюру ("" для оригинала).
// Возвращает тело и Content-Type ответа.
func (c *Client) Download(ctx context.Context, id, size string) ([]byte, string, error) {
	path := "/files/" + url.PathEscape(id) + "/data"
	if size != "" {
		path += "?size=" + url.QueryEscape(size)
	}

	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("download request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read response body: %w", err)
	}

	if err := checkStatus(resp.StatusCode, body); err != nil {
		return nil, "", fmt.Errorf("download request failed: %w", err)
	}

	return body, resp.Header.Get("Content-Type"), nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set(TokenHeader, c.token)
	}

	return req, nil
}

// doJSON выполняет запрос с JSON телом и декодирует JSON ответ в result
func (c *Client) doJSON(ctx context.Context, method, path string, body, result any) error {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	return c.do(req, result)
}

func (c *Client) do(req *http.Request, result any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if err := checkStatus(resp.StatusCode, respBody); err != nil {
		return err
	}

	// 204 и пустое тело не декодируем
	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

func checkStatus(code int, body []byte) error {
	if code >= 200 && code < 300 {
		return nil
	}

	var errResp api.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &Error{StatusCode: code, Message: errResp.Error}
	}
	return &Error{StatusCode: code, Message: strings.TrimSpace(string(body))}
}
