package storefront

import (
	"fmt"
	"io"
	"strings"

	accountdto "storefront_backend/internal/feature/account/transport/http/dto"
	catalogdto "storefront_backend/internal/feature/catalog/transport/http/dto"
	ordersdto "storefront_backend/internal/feature/orders/transport/http/dto"
	"storefront_backend/internal/shared/publicurl"
)

// View presents client state. App calls it after every state change.
type View interface {
	RenderCart(c *Cart)
	RenderSession(u *accountdto.SessionUser)
	RenderMenu(products []catalogdto.ProductItem)
	RenderOrders(orders []ordersdto.OrderRes)
	Notify(msg string)
}

// ImageURL maps a stored image path to something a page can load: absolute
// and data URLs pass through, server uploads become root-relative, and an
// empty path falls back to the default profile photo.
func ImageURL(path string) string {
	switch {
	case path == "":
		return publicurl.DefaultProfilePhoto
	case publicurl.IsAbsolute(path), strings.HasPrefix(path, "data:"):
		return path
	case strings.HasPrefix(path, "uploads/"):
		return "/" + strings.ReplaceAll(path, `\`, "/")
	default:
		return path
	}
}

// FirstName is the first word of a display name.
func FirstName(name string) string {
	if f := strings.Fields(name); len(f) > 0 {
		return f[0]
	}
	return ""
}

// TextView renders state as plain text for terminals.
type TextView struct {
	w io.Writer
	// BaseURL, when set, turns relative image paths into full URLs.
	BaseURL string
}

var _ View = (*TextView)(nil)

func NewTextView(w io.Writer, baseURL string) *TextView {
	return &TextView{w: w, BaseURL: baseURL}
}

func (v *TextView) image(path string) string {
	u := ImageURL(path)
	if v.BaseURL == "" {
		return u
	}
	return publicurl.Resolve(v.BaseURL, u)
}

func (v *TextView) RenderCart(c *Cart) {
	if c.Empty() {
		fmt.Fprintln(v.w, "Carrito vacío.")
		return
	}
	for _, it := range c.Items {
		fmt.Fprintf(v.w, "%s %-28s $%s x%d  [%s]\n", it.Emoji, it.Name, it.Price.StringFixed(2), it.Quantity, it.ID)
	}
	fmt.Fprintf(v.w, "Total: $%s (%d)\n", c.Total().StringFixed(2), c.Count())
}

func (v *TextView) RenderSession(u *accountdto.SessionUser) {
	if u == nil {
		fmt.Fprintln(v.w, "Sin sesión.")
		return
	}
	fmt.Fprintf(v.w, "Hola, %s (%s)\n", FirstName(u.Name), v.image(u.ProfilePic))
}

func (v *TextView) RenderMenu(products []catalogdto.ProductItem) {
	if len(products) == 0 {
		fmt.Fprintln(v.w, "Sin resultados.")
		return
	}
	for _, p := range products {
		fmt.Fprintf(v.w, "[%s] %s %s  $%.2f  (%s)\n    %s\n", p.ID, p.Emoji, p.Name, p.Price, p.Category, p.Description)
	}
}

func (v *TextView) RenderOrders(orders []ordersdto.OrderRes) {
	if len(orders) == 0 {
		fmt.Fprintln(v.w, "Sin pedidos.")
		return
	}
	for _, o := range orders {
		fmt.Fprintf(v.w, "Pedido #%d  %s  %s\n", o.ID, o.CreatedAt.Local().Format("2/1/2006"), o.Status)
		for _, it := range o.Items {
			fmt.Fprintf(v.w, "  %dx %s (@ $%.2f)\n", it.Quantity, it.Name, it.UnitPrice)
		}
		fmt.Fprintf(v.w, "  Total: $%.2f\n", o.Total)
	}
}

func (v *TextView) Notify(msg string) {
	fmt.Fprintln(v.w, msg)
}
