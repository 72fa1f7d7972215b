package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	accountdto "storefront_backend/internal/feature/account/transport/http/dto"
	"storefront_backend/internal/storefront"
)

const helpText = `Comandos:
  menu [categoria]     muestra el menú (all, Tacos, Platillos Fuertes, Antojitos, Postres, Bebidas)
  search <texto>       busca en la categoría activa
  add <id>             agrega un producto al carrito
  inc|dec|rm <id>      cambia la cantidad o quita un producto
  cart                 muestra el carrito
  checkout             finaliza el pedido
  register | login | logout
  orders               historial de pedidos
  profile              edita nombre, dirección y teléfono
  photo <archivo>      sube una foto de perfil
  exit`

// REPL reads commands line by line and drives a storefront.App.
type REPL struct {
	app      *storefront.App
	in       *bufio.Reader
	out      io.Writer
	category string
}

func NewREPL(app *storefront.App, in io.Reader, out io.Writer) *REPL {
	return &REPL{app: app, in: bufio.NewReader(in), out: out, category: storefront.AllCategories}
}

// Run executes commands until exit or end of input.
func (r *REPL) Run(ctx context.Context) error {
	fmt.Fprintln(r.out, "Con todo y chile (escribe 'help')")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(r.out, r.prompt())
		line, err := r.in.ReadString('\n')
		if strings.TrimSpace(line) != "" {
			if quit := r.Exec(ctx, line); quit {
				return nil
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

func (r *REPL) prompt() string {
	st := r.app.State()
	who := ""
	if st.Session != nil {
		who = storefront.FirstName(st.Session.Name) + " "
	}
	return fmt.Sprintf("(%s🛒%d)> ", who, st.Cart.Count())
}

// Exec runs one command line and reports whether the user asked to quit.
func (r *REPL) Exec(ctx context.Context, line string) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return false
	}
	cmd, args := parts[0], parts[1:]

	var err error
	switch cmd {
	case "help":
		fmt.Fprintln(r.out, helpText)
	case "menu":
		if len(args) > 0 {
			r.category = strings.Join(args, " ")
		}
		r.app.Search("", r.category)
	case "search":
		r.app.Search(strings.Join(args, " "), r.category)
	case "add", "inc", "dec", "rm":
		if len(args) != 1 {
			fmt.Fprintf(r.out, "uso: %s <id>\n", cmd)
			return false
		}
		err = r.cartCommand(cmd, args[0])
	case "cart":
		r.app.ShowCart()
	case "checkout":
		_, err = r.app.Checkout(ctx)
	case "register":
		err = r.register(ctx)
	case "login":
		err = r.login(ctx)
	case "logout":
		err = r.app.Logout()
	case "orders":
		_, err = r.app.Orders(ctx)
	case "profile":
		err = r.profile(ctx)
	case "photo":
		if len(args) != 1 {
			fmt.Fprintln(r.out, "uso: photo <archivo>")
			return false
		}
		err = r.photo(ctx, args[0])
	case "exit", "quit":
		fmt.Fprintln(r.out, "¡Hasta pronto!")
		return true
	default:
		fmt.Fprintf(r.out, "Comando desconocido: %s\n", cmd)
	}
	if err != nil {
		fmt.Fprintln(r.out, storefront.Message(err))
	}
	return false
}

func (r *REPL) cartCommand(cmd, id string) error {
	switch cmd {
	case "add":
		return r.app.AddProduct(id)
	case "inc":
		return r.app.Increase(id)
	case "dec":
		return r.app.Decrease(id)
	default:
		return r.app.Remove(id)
	}
}

func (r *REPL) register(ctx context.Context) error {
	var req accountdto.RegisterReq
	var err error
	if req.Name, err = GetSimpleText(r.in, "Nombre", r.out); err != nil {
		return err
	}
	if req.Email, err = GetSimpleText(r.in, "Email", r.out); err != nil {
		return err
	}
	if req.Password, err = GetPassword(r.in, r.out); err != nil {
		return err
	}
	if req.Phone, err = GetSimpleText(r.in, "Teléfono (opcional)", r.out); err != nil {
		return err
	}
	return r.app.Register(ctx, req)
}

func (r *REPL) login(ctx context.Context) error {
	email, err := GetSimpleText(r.in, "Email", r.out)
	if err != nil {
		return err
	}
	pw, err := GetPassword(r.in, r.out)
	if err != nil {
		return err
	}
	return r.app.Login(ctx, email, pw)
}

func (r *REPL) profile(ctx context.Context) error {
	if !r.app.State().LoggedIn() {
		return storefront.ErrNotLoggedIn
	}
	name, err := GetSimpleText(r.in, "Nombre", r.out)
	if err != nil {
		return err
	}
	address, err := GetSimpleText(r.in, "Dirección", r.out)
	if err != nil {
		return err
	}
	phone, err := GetSimpleText(r.in, "Teléfono", r.out)
	if err != nil {
		return err
	}
	return r.app.UpdateProfile(ctx, name, address, phone)
}

func (r *REPL) photo(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(r.out, "No se pudo abrir %s: %v\n", path, err)
		return nil
	}
	defer f.Close()
	return r.app.UploadPhoto(ctx, filepath.Base(path), f)
}
