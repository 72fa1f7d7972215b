package storefront

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/shopspring/decimal"

	accountdto "storefront_backend/internal/feature/account/transport/http/dto"
	catalogdto "storefront_backend/internal/feature/catalog/transport/http/dto"
	ordersdto "storefront_backend/internal/feature/orders/transport/http/dto"
	"storefront_backend/internal/shared/apperr"
)

var (
	ErrNotLoggedIn    = fmt.Errorf("%w: not logged in", apperr.ErrUnauthorized)
	ErrEmptyCart      = fmt.Errorf("%w: empty cart", apperr.ErrValidation)
	ErrLoginFields    = fmt.Errorf("%w: email and password are required", apperr.ErrValidation)
	ErrRegisterFields = fmt.Errorf("%w: name, email and password are required", apperr.ErrValidation)
	ErrUnknownProduct = fmt.Errorf("%w: product not in menu", apperr.ErrNotFound)
)

// Messages shown to the storefront user.
const (
	MsgConnection     = "Error al conectar con el servidor."
	MsgLoginFields    = "Por favor, rellena todos los campos."
	MsgRegisterFields = "Campos obligatorios vacíos."
	MsgEmptyCart      = "Carrito vacío."
	MsgNotLoggedIn    = "Inicia sesión para pedir."
	MsgUnknownProduct = "Producto no encontrado."
	MsgMenuFailed     = "Error al cargar el menú."
	MsgRegistered     = "Registro exitoso. Inicia sesión."
	MsgLoggedOut      = "Has cerrado sesión."
	MsgProfileSaved   = "Perfil actualizado."
	MsgPhotoSaved     = "Foto actualizada."
	msgUnexpected     = "Error inesperado."
)

// Message returns the text to show the user for err.
func Message(err error) string {
	var apiErr *APIError
	switch {
	case errors.As(err, &apiErr):
		return apiErr.Message
	case errors.Is(err, ErrConnection):
		return MsgConnection
	case errors.Is(err, ErrLoginFields):
		return MsgLoginFields
	case errors.Is(err, ErrRegisterFields):
		return MsgRegisterFields
	case errors.Is(err, ErrEmptyCart):
		return MsgEmptyCart
	case errors.Is(err, ErrNotLoggedIn):
		return MsgNotLoggedIn
	case errors.Is(err, ErrUnknownProduct):
		return MsgUnknownProduct
	default:
		return msgUnexpected
	}
}

// API defines the server calls the storefront makes.
type API interface {
	Products(ctx context.Context) ([]catalogdto.ProductItem, error)
	Register(ctx context.Context, req accountdto.RegisterReq) error
	Login(ctx context.Context, email, password string) (accountdto.SessionUser, error)
	PlaceOrder(ctx context.Context, userID uint, items []CartItem) (uint, error)
	Orders(ctx context.Context, userID uint) ([]ordersdto.OrderRes, error)
	UpdateProfile(ctx context.Context, req accountdto.UpdateProfileReq) error
	UploadPhoto(ctx context.Context, userID uint, filename string, photo io.Reader) (string, error)
}

// App is the storefront client. Every state change is rendered through the
// View and written to Storage before the method returns.
// App is not safe for concurrent use.
type App struct {
	api   API
	store Storage
	view  View
	state *State
}

// NewApp wires an App around a loaded state.
func NewApp(api API, store Storage, view View, state *State) *App {
	if state == nil {
		state = &State{}
	}
	return &App{api: api, store: store, view: view, state: state}
}

// State exposes the current client state for reading.
func (a *App) State() *State { return a.state }

// Start renders the restored cart and session, then loads the menu.
func (a *App) Start(ctx context.Context) error {
	a.view.RenderCart(&a.state.Cart)
	a.view.RenderSession(a.state.Session)
	return a.LoadMenu(ctx)
}

// LoadMenu fetches the catalog and renders it.
func (a *App) LoadMenu(ctx context.Context) error {
	products, err := a.api.Products(ctx)
	if err != nil {
		slog.Error("failed to load products", "error", err)
		a.view.Notify(MsgMenuFailed)
		return err
	}
	a.state.Products = products
	a.view.RenderMenu(products)
	return nil
}

// Search renders the products matching query within category.
func (a *App) Search(query, category string) []catalogdto.ProductItem {
	found := Filter(a.state.Products, query, category)
	a.view.RenderMenu(found)
	return found
}

// AddToCart adds one unit of a product given its display data.
// An unparsable price leaves the cart untouched.
func (a *App) AddToCart(id, name, price, emoji string) error {
	if !a.state.Cart.Add(id, name, price, emoji) {
		return nil
	}
	return a.cartChanged()
}

// AddProduct adds one unit of a loaded menu product by id.
func (a *App) AddProduct(id string) error {
	for _, p := range a.state.Products {
		if p.ID == id {
			return a.AddToCart(p.ID, p.Name, decimal.NewFromFloat(p.Price).String(), p.Emoji)
		}
	}
	return ErrUnknownProduct
}

func (a *App) Increase(id string) error {
	if !a.state.Cart.Increase(id) {
		return nil
	}
	return a.cartChanged()
}

func (a *App) Decrease(id string) error {
	if !a.state.Cart.Decrease(id) {
		return nil
	}
	return a.cartChanged()
}

func (a *App) Remove(id string) error {
	if !a.state.Cart.Remove(id) {
		return nil
	}
	return a.cartChanged()
}

// ShowCart renders the cart without changing it.
func (a *App) ShowCart() { a.view.RenderCart(&a.state.Cart) }

func (a *App) cartChanged() error {
	a.view.RenderCart(&a.state.Cart)
	return saveCart(a.store, &a.state.Cart)
}

// Register creates an account. The user logs in separately afterwards.
func (a *App) Register(ctx context.Context, req accountdto.RegisterReq) error {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return ErrRegisterFields
	}
	if err := a.api.Register(ctx, req); err != nil {
		return err
	}
	a.view.Notify(MsgRegistered)
	return nil
}

// Login stores the returned profile as the session.
func (a *App) Login(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return ErrLoginFields
	}
	u, err := a.api.Login(ctx, email, password)
	if err != nil {
		return err
	}
	a.state.Session = &u
	if err := saveSession(a.store, a.state.Session); err != nil {
		return err
	}
	a.view.RenderSession(a.state.Session)
	return nil
}

// Logout forgets the session and the cached order history. The cart stays.
func (a *App) Logout() error {
	a.state.Session = nil
	if err := clearSession(a.store); err != nil {
		return err
	}
	a.view.Notify(MsgLoggedOut)
	a.view.RenderSession(nil)
	return nil
}

// Checkout places the cart as an order and empties the cart on success.
func (a *App) Checkout(ctx context.Context) (uint, error) {
	if a.state.Cart.Empty() {
		return 0, ErrEmptyCart
	}
	if !a.state.LoggedIn() {
		return 0, ErrNotLoggedIn
	}
	id, err := a.api.PlaceOrder(ctx, a.state.Session.ID, a.state.Cart.Items)
	if err != nil {
		return 0, err
	}
	a.state.Cart.Clear()
	if err := a.cartChanged(); err != nil {
		return id, err
	}
	a.view.Notify(fmt.Sprintf("¡Pedido #%d registrado!", id))
	return id, nil
}

// Orders fetches and renders the order history of the session user.
func (a *App) Orders(ctx context.Context) ([]ordersdto.OrderRes, error) {
	if !a.state.LoggedIn() {
		return nil, ErrNotLoggedIn
	}
	orders, err := a.api.Orders(ctx, a.state.Session.ID)
	if err != nil {
		return nil, err
	}
	if b, err := json.Marshal(orders); err == nil {
		if err := a.store.Set(KeyOrders, string(b)); err != nil {
			slog.Warn("failed to cache orders", "error", err)
		}
	}
	a.view.RenderOrders(orders)
	return orders, nil
}

// UpdateProfile saves name, address and phone and refreshes the session.
func (a *App) UpdateProfile(ctx context.Context, name, address, phone string) error {
	if !a.state.LoggedIn() {
		return ErrNotLoggedIn
	}
	u := a.state.Session
	req := accountdto.UpdateProfileReq{UserID: u.ID, Name: name, Address: address, Phone: phone}
	if err := a.api.UpdateProfile(ctx, req); err != nil {
		return err
	}
	u.Name, u.Address, u.Phone = name, address, phone
	if err := saveSession(a.store, u); err != nil {
		return err
	}
	a.view.RenderSession(u)
	a.view.Notify(MsgProfileSaved)
	return nil
}

// UploadPhoto sends a new profile photo and refreshes the session picture.
func (a *App) UploadPhoto(ctx context.Context, filename string, photo io.Reader) error {
	if !a.state.LoggedIn() {
		return ErrNotLoggedIn
	}
	u := a.state.Session
	url, err := a.api.UploadPhoto(ctx, u.ID, filename, photo)
	if err != nil {
		return err
	}
	u.ProfilePic = url
	if err := saveSession(a.store, u); err != nil {
		return err
	}
	a.view.RenderSession(u)
	a.view.Notify(MsgPhotoSaved)
	return nil
}
