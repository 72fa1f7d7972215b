package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	accountdto "storefront_backend/internal/feature/account/transport/http/dto"
	catalogdto "storefront_backend/internal/feature/catalog/transport/http/dto"
	ordersdto "storefront_backend/internal/feature/orders/transport/http/dto"
)

// ErrConnection wraps transport failures: the server could not be reached or
// answered with something that is not the storefront API.
var ErrConnection = errors.New("storefront: connection failed")

// APIError is a non-2xx answer of the server. Message is the server's
// "mensaje", shown to the user verbatim.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("storefront api %d: %s", e.Status, e.Message)
}

// Config holds the storefront API client settings.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// LoadConfig reads STOREFRONT_API_URL and STOREFRONT_TIMEOUT.
func LoadConfig() Config {
	cfg := Config{BaseURL: "http://localhost:3000", Timeout: 10 * time.Second}
	if v := os.Getenv("STOREFRONT_API_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("STOREFRONT_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	return cfg
}

// APIClient calls the catalog and order service.
type APIClient struct {
	cfg    Config
	client *http.Client
}

var _ API = (*APIClient)(nil)

// NewAPIClient returns a client for cfg.BaseURL using client for transport.
func NewAPIClient(cfg Config, client *http.Client) *APIClient {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &APIClient{cfg: cfg, client: client}
}

// BaseURL returns the server address the client talks to.
func (a *APIClient) BaseURL() string { return a.cfg.BaseURL }

// Products fetches the whole menu.
func (a *APIClient) Products(ctx context.Context) ([]catalogdto.ProductItem, error) {
	var out []catalogdto.ProductItem
	if err := a.doJSON(ctx, http.MethodGet, "/productos", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Register creates an account.
func (a *APIClient) Register(ctx context.Context, req accountdto.RegisterReq) error {
	return a.doJSON(ctx, http.MethodPost, "/registrar", req, nil)
}

// Login returns the session profile for valid credentials.
func (a *APIClient) Login(ctx context.Context, email, password string) (accountdto.SessionUser, error) {
	var res accountdto.LoginRes
	err := a.doJSON(ctx, http.MethodPost, "/login", accountdto.LoginReq{Email: email, Password: password}, &res)
	return res.User, err
}

// PlaceOrder submits the cart lines and returns the new order id.
func (a *APIClient) PlaceOrder(ctx context.Context, userID uint, items []CartItem) (uint, error) {
	req := ordersdto.PlaceOrderReq{UserID: userID, Items: make([]ordersdto.CartItemReq, 0, len(items))}
	for _, it := range items {
		req.Items = append(req.Items, ordersdto.CartItemReq{
			ID:       it.ID,
			Name:     it.Name,
			Price:    it.Price,
			Quantity: it.Quantity,
			Emoji:    it.Emoji,
		})
	}
	var res ordersdto.OrderCreatedRes
	if err := a.doJSON(ctx, http.MethodPost, "/crear-pedido", req, &res); err != nil {
		return 0, err
	}
	return res.OrderID, nil
}

// Orders returns the order history of userID, newest first.
func (a *APIClient) Orders(ctx context.Context, userID uint) ([]ordersdto.OrderRes, error) {
	var out []ordersdto.OrderRes
	path := "/mis-pedidos/" + strconv.FormatUint(uint64(userID), 10)
	if err := a.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateProfile replaces name, address and phone of the user.
func (a *APIClient) UpdateProfile(ctx context.Context, req accountdto.UpdateProfileReq) error {
	return a.doJSON(ctx, http.MethodPut, "/actualizar-perfil", req, nil)
}

// UploadPhoto sends a profile photo as multipart form data and returns the
// photo URL the server assigned.
func (a *APIClient) UploadPhoto(ctx context.Context, userID uint, filename string, photo io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("fotoPerfil", filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(fw, photo); err != nil {
		return "", fmt.Errorf("read photo: %w", err)
	}
	if err := mw.WriteField("id_usuario", strconv.FormatUint(uint64(userID), 10)); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.cfg.BaseURL+"/subir-foto", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var res accountdto.PhotoRes
	if err := a.do(req, &res); err != nil {
		return "", err
	}
	return res.URL, nil
}

func (a *APIClient) doJSON(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, a.cfg.BaseURL+path, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	return a.do(req, out)
}

func (a *APIClient) do(req *http.Request, out any) error {
	res, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		var msg struct {
			Message string `json:"mensaje"`
		}
		if err := json.NewDecoder(res.Body).Decode(&msg); err != nil || msg.Message == "" {
			msg.Message = http.StatusText(res.StatusCode)
		}
		return &APIError{Status: res.StatusCode, Message: msg.Message}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s %s: %v", ErrConnection, req.Method, req.URL.Path, err)
	}
	return nil
}
