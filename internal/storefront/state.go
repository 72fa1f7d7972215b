package storefront

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	accountdto "storefront_backend/internal/feature/account/transport/http/dto"
	catalogdto "storefront_backend/internal/feature/catalog/transport/http/dto"
)

// State is everything the client holds between actions. Cart and Session are
// persisted; Products is refetched from the server at start.
type State struct {
	Cart     Cart
	Session  *accountdto.SessionUser
	Products []catalogdto.ProductItem
}

// LoggedIn reports whether a session user is present.
func (s *State) LoggedIn() bool { return s.Session != nil }

// Load restores cart and session from store. Unreadable entries are logged
// and treated as absent.
func Load(store Storage) (*State, error) {
	st := &State{}

	raw, err := store.Get(KeyCart)
	switch {
	case err == nil:
		if err := json.Unmarshal([]byte(raw), &st.Cart.Items); err != nil {
			slog.Warn("discarding unreadable cart", "error", err)
			st.Cart.Items = nil
		}
	case !errors.Is(err, ErrKeyNotFound):
		return nil, fmt.Errorf("load cart: %w", err)
	}

	flag, err := store.Get(KeyLoggedIn)
	if err != nil && !errors.Is(err, ErrKeyNotFound) {
		return nil, fmt.Errorf("load session flag: %w", err)
	}
	if flag != "true" {
		return st, nil
	}
	raw, err = store.Get(KeyCurrentUser)
	switch {
	case errors.Is(err, ErrKeyNotFound):
		return st, nil
	case err != nil:
		return nil, fmt.Errorf("load session user: %w", err)
	}
	var u accountdto.SessionUser
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		slog.Warn("discarding unreadable session", "error", err)
		return st, nil
	}
	st.Session = &u
	return st, nil
}

func saveCart(store Storage, c *Cart) error {
	items := c.Items
	if items == nil {
		items = []CartItem{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	return store.Set(KeyCart, string(b))
}

func saveSession(store Storage, u *accountdto.SessionUser) error {
	b, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := store.Set(KeyLoggedIn, "true"); err != nil {
		return err
	}
	return store.Set(KeyCurrentUser, string(b))
}

func clearSession(store Storage) error {
	for _, k := range []string{KeyLoggedIn, KeyCurrentUser, KeyOrders} {
		if err := store.Delete(k); err != nil {
			return err
		}
	}
	return nil
}
