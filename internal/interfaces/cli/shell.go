// Package cli implementa la terminal interactiva del punto de venta: menú
// secuencial de inicio de sesión, inventario, contactos, ventas y reportes.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-pos/internal/application/auth"
	"github.com/jhoicas/tienda-pos/internal/application/contacts"
	"github.com/jhoicas/tienda-pos/internal/application/ledger"
	"github.com/jhoicas/tienda-pos/internal/application/reports"
	"github.com/jhoicas/tienda-pos/internal/application/sales"
	"github.com/jhoicas/tienda-pos/internal/domain"
	"github.com/jhoicas/tienda-pos/internal/domain/entity"
	"github.com/jhoicas/tienda-pos/pkg/logger"
	"github.com/jhoicas/tienda-pos/pkg/money"
)

// Shell orquesta los menús de la terminal sobre los casos de uso. Todos
// los errores de dominio se recuperan aquí con un mensaje; los errores de
// infraestructura se loguean y el bucle continúa.
type Shell struct {
	prompt   *Prompt
	out      io.Writer
	log      *logger.Logger
	auth     *auth.UseCase
	ledger   *ledger.UseCase
	sales    *sales.UseCase
	contacts *contacts.UseCase
	reports  *reports.UseCase
}

// New construye el shell sobre los streams y casos de uso dados.
func New(
	in io.Reader,
	out io.Writer,
	log *logger.Logger,
	authUC *auth.UseCase,
	ledgerUC *ledger.UseCase,
	salesUC *sales.UseCase,
	contactsUC *contacts.UseCase,
	reportsUC *reports.UseCase,
) *Shell {
	return &Shell{
		prompt:   NewPrompt(in, out),
		out:      out,
		log:      log,
		auth:     authUC,
		ledger:   ledgerUC,
		sales:    salesUC,
		contacts: contactsUC,
		reports:  reportsUC,
	}
}

// Run ejecuta la pantalla de inicio y luego el menú principal hasta que el
// usuario salga o la entrada se agote.
func (s *Shell) Run(ctx context.Context) error {
	sess, ok, err := s.startMenu(ctx)
	if err != nil {
		return s.asRunError(err)
	}
	if !ok {
		return nil
	}
	if err := s.mainMenu(ctx, sess); err != nil {
		return s.asRunError(err)
	}
	return nil
}

// asRunError trata el fin de la entrada como salida normal.
func (s *Shell) asRunError(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// ── Pantalla de inicio ────────────────────────────────────────────────────────

// startMenu devuelve la sesión iniciada, o ok=false si el usuario eligió
// salir.
func (s *Shell) startMenu(ctx context.Context) (auth.Session, bool, error) {
	for {
		fmt.Fprintln(s.out, "\n===== INICIO =====")
		fmt.Fprintln(s.out, "1 - Iniciar sesión")
		fmt.Fprintln(s.out, "2 - Registrarse")
		fmt.Fprintln(s.out, "3 - Salir")
		op, err := s.prompt.Line("> ")
		if err != nil {
			return auth.Session{}, false, err
		}

		switch op {
		case "1":
			sess, ok, err := s.login(ctx)
			if err != nil {
				return auth.Session{}, false, err
			}
			if ok {
				return sess, true, nil
			}
		case "2":
			if err := s.register(ctx); err != nil {
				return auth.Session{}, false, err
			}
		case "3":
			fmt.Fprintln(s.out, "Saliendo...")
			return auth.Session{}, false, nil
		default:
			fmt.Fprintln(s.out, "¡Inválido!")
		}
	}
}

func (s *Shell) login(ctx context.Context) (auth.Session, bool, error) {
	username, err := s.prompt.Line("Usuario: ")
	if err != nil {
		return auth.Session{}, false, err
	}
	password, err := s.prompt.Password("Contraseña: ")
	if err != nil {
		return auth.Session{}, false, err
	}

	sess, loginErr := s.auth.Login(ctx, username, password)
	if loginErr != nil {
		if errors.Is(loginErr, domain.ErrUnauthorized) {
			fmt.Fprintln(s.out, "Usuario o contraseña incorrectos.")
			return auth.Session{}, false, nil
		}
		s.log.Error().Err(loginErr).Msg("fallo al validar login")
		fmt.Fprintln(s.out, "Error al validar el login.")
		return auth.Session{}, false, nil
	}
	fmt.Fprintf(s.out, "¡Login OK! Bienvenido(a), %s.\n", sess.Username)
	return sess, true, nil
}

func (s *Shell) register(ctx context.Context) error {
	username, err := s.prompt.Line("Elija un usuario: ")
	if err != nil {
		return err
	}
	pass1, err := s.prompt.Password("Contraseña: ")
	if err != nil {
		return err
	}
	pass2, err := s.prompt.Password("Confirme la contraseña: ")
	if err != nil {
		return err
	}
	if pass1 != pass2 {
		fmt.Fprintln(s.out, "Las contraseñas no coinciden.")
		return nil
	}

	switch regErr := s.auth.Register(ctx, username, pass1); {
	case regErr == nil:
		fmt.Fprintln(s.out, "¡Usuario creado! Inicie sesión.")
	case errors.Is(regErr, domain.ErrUsernameAlreadyExists):
		fmt.Fprintln(s.out, "Ese usuario ya existe.")
	case errors.Is(regErr, domain.ErrInvalidInput):
		fmt.Fprintln(s.out, "El usuario y la contraseña no pueden estar vacíos.")
	default:
		s.log.Error().Err(regErr).Msg("fallo al crear usuario")
		fmt.Fprintln(s.out, "Error al crear el usuario.")
	}
	return nil
}

// ── Menú principal ────────────────────────────────────────────────────────────

func (s *Shell) mainMenu(ctx context.Context, sess auth.Session) error {
	for {
		fmt.Fprintln(s.out, "\n====== MENÚ ======")
		fmt.Fprintln(s.out, "1 - Inventario")
		fmt.Fprintln(s.out, "2 - Clientes/Proveedores")
		fmt.Fprintln(s.out, "3 - Registrar venta")
		fmt.Fprintln(s.out, "4 - Reportes")
		fmt.Fprintln(s.out, "0 - Salir")
		op, err := s.prompt.Line("> ")
		if err != nil {
			return err
		}

		switch op {
		case "1":
			if err := s.stockMenu(ctx, sess); err != nil {
				return err
			}
		case "2":
			if err := s.contactsMenu(ctx); err != nil {
				return err
			}
		case "3":
			if err := s.registerSale(ctx); err != nil {
				return err
			}
		case "4":
			if err := s.reportsMenu(ctx); err != nil {
				return err
			}
		case "0":
			fmt.Fprintln(s.out, "Saliendo...")
			return nil
		default:
			fmt.Fprintln(s.out, "¡Inválido!")
		}
	}
}

// ── Inventario ────────────────────────────────────────────────────────────────

func (s *Shell) stockMenu(ctx context.Context, sess auth.Session) error {
	for {
		fmt.Fprintln(s.out, "\n--- INVENTARIO ---")
		fmt.Fprintln(s.out, "1 - Crear producto")
		fmt.Fprintln(s.out, "2 - Editar producto")
		fmt.Fprintln(s.out, "3 - Eliminar producto")
		fmt.Fprintln(s.out, "4 - Entrada de stock")
		fmt.Fprintln(s.out, "5 - Salida de stock")
		fmt.Fprintln(s.out, "6 - Movimientos")
		fmt.Fprintln(s.out, "0 - Volver")
		op, err := s.prompt.Line("> ")
		if err != nil {
			return err
		}

		switch op {
		case "1":
			err = s.createProduct(ctx)
		case "2":
			err = s.editProduct(ctx)
		case "3":
			err = s.deleteProduct(ctx)
		case "4":
			err = s.stockMove(ctx, sess, true)
		case "5":
			err = s.stockMove(ctx, sess, false)
		case "6":
			err = s.listMovements(ctx)
		case "0":
			return nil
		default:
			fmt.Fprintln(s.out, "¡Inválido!")
		}
		if err != nil {
			return err
		}
	}
}

func (s *Shell) createProduct(ctx context.Context) error {
	name, err := s.prompt.Line("Nombre: ")
	if err != nil {
		return err
	}
	salePrice, err := s.prompt.Decimal("Precio de venta: $ ", decimal.Zero)
	if err != nil {
		return err
	}
	costPrice, err := s.prompt.Decimal("Precio de costo: $ ", decimal.Zero)
	if err != nil {
		return err
	}
	qty, err := s.prompt.Int("Cantidad inicial: ", 0)
	if err != nil {
		return err
	}
	weight, err := s.prompt.Decimal("Peso (kg): ", decimal.Zero)
	if err != nil {
		return err
	}
	brand, err := s.prompt.Line("Marca: ")
	if err != nil {
		return err
	}

	_, createErr := s.ledger.CreateProduct(ctx, ledger.CreateProductInput{
		Name:      name,
		SalePrice: salePrice,
		CostPrice: costPrice,
		Quantity:  qty,
		Weight:    weight,
		Brand:     brand,
	})
	if createErr != nil {
		s.printLedgerError(createErr)
		return nil
	}
	fmt.Fprintln(s.out, "✔ ¡Producto agregado!")
	return nil
}

func (s *Shell) editProduct(ctx context.Context) error {
	if err := s.listProducts(ctx); err != nil {
		return err
	}
	id, err := s.prompt.Int("ID del producto: ", 1)
	if err != nil {
		return err
	}

	for {
		fmt.Fprintln(s.out, "\nEditar:")
		fmt.Fprintln(s.out, "1 - Nombre")
		fmt.Fprintln(s.out, "2 - Precio de venta")
		fmt.Fprintln(s.out, "3 - Precio de costo")
		fmt.Fprintln(s.out, "4 - Cantidad")
		fmt.Fprintln(s.out, "5 - Peso")
		fmt.Fprintln(s.out, "6 - Marca")
		fmt.Fprintln(s.out, "0 - Volver")
		op, err := s.prompt.Line("> ")
		if err != nil {
			return err
		}

		var patch ledger.ProductPatch
		switch op {
		case "1":
			v, err := s.prompt.Line("Nuevo nombre: ")
			if err != nil {
				return err
			}
			patch.Name = &v
		case "2":
			v, err := s.prompt.Decimal("Nuevo precio de venta: $ ", decimal.Zero)
			if err != nil {
				return err
			}
			patch.SalePrice = &v
		case "3":
			v, err := s.prompt.Decimal("Nuevo precio de costo: $ ", decimal.Zero)
			if err != nil {
				return err
			}
			patch.CostPrice = &v
		case "4":
			v, err := s.prompt.Int("Nueva cantidad: ", 0)
			if err != nil {
				return err
			}
			patch.Quantity = &v
		case "5":
			v, err := s.prompt.Decimal("Nuevo peso: ", decimal.Zero)
			if err != nil {
				return err
			}
			patch.Weight = &v
		case "6":
			v, err := s.prompt.Line("Nueva marca: ")
			if err != nil {
				return err
			}
			patch.Brand = &v
		case "0":
			return nil
		default:
			fmt.Fprintln(s.out, "¡Inválido!")
			continue
		}

		if editErr := s.ledger.EditProduct(ctx, id, patch); editErr != nil {
			s.printLedgerError(editErr)
			return nil
		}
		fmt.Fprintln(s.out, "✔ ¡Actualizado!")
		return nil
	}
}

func (s *Shell) deleteProduct(ctx context.Context) error {
	if err := s.listProducts(ctx); err != nil {
		return err
	}
	id, err := s.prompt.Int("ID para eliminar: ", 1)
	if err != nil {
		return err
	}
	if delErr := s.ledger.DeleteProduct(ctx, id); delErr != nil {
		s.printLedgerError(delErr)
		return nil
	}
	fmt.Fprintln(s.out, "✔ ¡Producto eliminado!")
	return nil
}

func (s *Shell) stockMove(ctx context.Context, sess auth.Session, in bool) error {
	if err := s.listProducts(ctx); err != nil {
		return err
	}
	label := "ID del producto (entrada): "
	if !in {
		label = "ID del producto (salida): "
	}
	id, err := s.prompt.Int(label, 1)
	if err != nil {
		return err
	}
	qty, err := s.prompt.Int("Cantidad: ", 1)
	if err != nil {
		return err
	}

	var moveErr error
	if in {
		moveErr = s.ledger.StockIn(ctx, id, qty, sess)
	} else {
		moveErr = s.ledger.StockOut(ctx, id, qty, sess)
	}
	if moveErr != nil {
		s.printLedgerError(moveErr)
		return nil
	}
	if in {
		fmt.Fprintf(s.out, "✔ Entrada registrada por el usuario '%s'.\n", sess.Username)
	} else {
		fmt.Fprintf(s.out, "✔ Salida registrada por el usuario '%s'.\n", sess.Username)
	}
	return nil
}

func (s *Shell) listProducts(ctx context.Context) error {
	rows, err := s.ledger.ListProducts(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("fallo al listar productos")
		fmt.Fprintln(s.out, "Error al listar productos.")
		return nil
	}
	renderProducts(s.out, rows)
	return nil
}

func (s *Shell) listMovements(ctx context.Context) error {
	movs, err := s.ledger.ListMovements(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("fallo al listar movimientos")
		fmt.Fprintln(s.out, "Error al listar movimientos.")
		return nil
	}
	renderMovements(s.out, movs)
	return nil
}

// ── Clientes y proveedores ────────────────────────────────────────────────────

func (s *Shell) contactsMenu(ctx context.Context) error {
	for {
		fmt.Fprintln(s.out, "\n--- CLIENTES / PROVEEDORES ---")
		fmt.Fprintln(s.out, "1 - Registrar cliente")
		fmt.Fprintln(s.out, "2 - Listar clientes")
		fmt.Fprintln(s.out, "3 - Registrar proveedor")
		fmt.Fprintln(s.out, "4 - Listar proveedores")
		fmt.Fprintln(s.out, "0 - Volver")
		op, err := s.prompt.Line("> ")
		if err != nil {
			return err
		}

		switch op {
		case "1":
			err = s.createContact(ctx, true)
		case "2":
			customers, listErr := s.contacts.ListCustomers(ctx)
			if listErr != nil {
				s.log.Error().Err(listErr).Msg("fallo al listar clientes")
				fmt.Fprintln(s.out, "Error al listar clientes.")
				continue
			}
			renderCustomers(s.out, customers)
		case "3":
			err = s.createContact(ctx, false)
		case "4":
			suppliers, listErr := s.contacts.ListSuppliers(ctx)
			if listErr != nil {
				s.log.Error().Err(listErr).Msg("fallo al listar proveedores")
				fmt.Fprintln(s.out, "Error al listar proveedores.")
				continue
			}
			renderSuppliers(s.out, suppliers)
		case "0":
			return nil
		default:
			fmt.Fprintln(s.out, "¡Inválido!")
		}
		if err != nil {
			return err
		}
	}
}

func (s *Shell) createContact(ctx context.Context, customer bool) error {
	name, err := s.prompt.Line("Nombre: ")
	if err != nil {
		return err
	}
	contact, err := s.prompt.Line("Contacto: ")
	if err != nil {
		return err
	}

	var createErr error
	if customer {
		_, createErr = s.contacts.CreateCustomer(ctx, name, contact)
	} else {
		_, createErr = s.contacts.CreateSupplier(ctx, name, contact)
	}
	switch {
	case createErr == nil:
		if customer {
			fmt.Fprintln(s.out, "✔ Cliente registrado.")
		} else {
			fmt.Fprintln(s.out, "✔ Proveedor registrado.")
		}
	case errors.Is(createErr, domain.ErrInvalidInput):
		fmt.Fprintln(s.out, "El nombre es obligatorio.")
	default:
		s.log.Error().Err(createErr).Msg("fallo al registrar contacto")
		fmt.Fprintln(s.out, "Error al registrar.")
	}
	return nil
}

// ── Ventas ────────────────────────────────────────────────────────────────────

func (s *Shell) registerSale(ctx context.Context) error {
	rows, err := s.ledger.ListProducts(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("fallo al listar productos")
		fmt.Fprintln(s.out, "Error al listar productos.")
		return nil
	}
	renderProducts(s.out, rows)

	id, err := s.prompt.Int("ID del producto: ", 1)
	if err != nil {
		return err
	}
	var selected *entity.Product
	for _, r := range rows {
		if r.Product.ID == id {
			selected = r.Product
			break
		}
	}
	if selected == nil {
		fmt.Fprintln(s.out, "Producto no encontrado.")
		return nil
	}
	fmt.Fprintf(s.out, "Stock: %d, Precio: %s\n",
		selected.Quantity, money.Format(selected.SalePrice))
	qty, err := s.prompt.Int("Cantidad: ", 1)
	if err != nil {
		return err
	}
	payment, err := s.prompt.Line("Forma de pago: ")
	if err != nil {
		return err
	}
	customer, err := s.prompt.Line("Nombre del cliente/consumidor: ")
	if err != nil {
		return err
	}

	sale, saleErr := s.sales.RegisterSale(ctx, sales.RegisterSaleInput{
		ProductID:     id,
		Quantity:      qty,
		PaymentMethod: payment,
		CustomerName:  customer,
	})
	switch {
	case saleErr == nil:
		fmt.Fprintf(s.out, "✔ ¡Venta registrada! Total: %s\n", money.Format(sale.Total))
	case errors.Is(saleErr, domain.ErrNotFound):
		fmt.Fprintln(s.out, "Producto no encontrado.")
	case errors.Is(saleErr, domain.ErrInsufficientStock):
		fmt.Fprintln(s.out, "Stock insuficiente.")
	case errors.Is(saleErr, domain.ErrInvalidInput):
		fmt.Fprintln(s.out, "Datos de la venta inválidos.")
	default:
		s.log.Error().Err(saleErr).Msg("fallo al registrar venta")
		fmt.Fprintln(s.out, "Error al registrar la venta.")
	}
	return nil
}

// ── Reportes ──────────────────────────────────────────────────────────────────

func (s *Shell) reportsMenu(ctx context.Context) error {
	for {
		fmt.Fprintln(s.out, "\n--- REPORTES ---")
		fmt.Fprintln(s.out, "1 - Listar productos")
		fmt.Fprintln(s.out, "2 - Listar ventas")
		fmt.Fprintln(s.out, "3 - Financiero")
		fmt.Fprintln(s.out, "4 - Exportar ventas a PDF")
		fmt.Fprintln(s.out, "0 - Volver")
		op, err := s.prompt.Line("> ")
		if err != nil {
			return err
		}

		switch op {
		case "1":
			if err := s.listProducts(ctx); err != nil {
				return err
			}
		case "2":
			salesList, listErr := s.reports.ListSales(ctx)
			if listErr != nil {
				s.log.Error().Err(listErr).Msg("fallo al listar ventas")
				fmt.Fprintln(s.out, "Error al listar ventas.")
				continue
			}
			renderSales(s.out, salesList)
		case "3":
			summary, sumErr := s.reports.FinancialSummary(ctx)
			if sumErr != nil {
				s.log.Error().Err(sumErr).Msg("fallo al calcular el reporte financiero")
				fmt.Fprintln(s.out, "Error al calcular el reporte.")
				continue
			}
			renderSummary(s.out, summary)
		case "4":
			path, expErr := s.reports.ExportSalesPDF(ctx)
			if expErr != nil {
				s.log.Error().Err(expErr).Msg("fallo al exportar el reporte PDF")
				fmt.Fprintln(s.out, "Error al exportar el PDF.")
				continue
			}
			fmt.Fprintf(s.out, "✔ Reporte exportado: %s\n", path)
		case "0":
			return nil
		default:
			fmt.Fprintln(s.out, "¡Inválido!")
		}
	}
}

// printLedgerError traduce los errores de dominio del libro de inventario
// a mensajes de terminal.
func (s *Shell) printLedgerError(err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		fmt.Fprintln(s.out, "Producto no encontrado.")
	case errors.Is(err, domain.ErrInsufficientStock):
		fmt.Fprintln(s.out, "Stock insuficiente.")
	case errors.Is(err, domain.ErrInvalidInput):
		fmt.Fprintln(s.out, "Datos inválidos.")
	default:
		s.log.Error().Err(err).Msg("fallo en la operación de inventario")
		fmt.Fprintln(s.out, "Error en la operación.")
	}
}
