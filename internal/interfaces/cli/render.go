package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/jhoicas/tienda-pos/internal/application/ledger"
	"github.com/jhoicas/tienda-pos/internal/application/reports"
	"github.com/jhoicas/tienda-pos/internal/domain/entity"
	"github.com/jhoicas/tienda-pos/internal/domain/repository"
	"github.com/jhoicas/tienda-pos/pkg/money"
)

// deletedProductPlaceholder se muestra cuando el movimiento referencia un
// producto ya eliminado del catálogo.
const deletedProductPlaceholder = "(producto eliminado)"

func separator(w io.Writer, n int) {
	fmt.Fprintln(w, strings.Repeat("-", n))
}

// renderProducts imprime el catálogo con la marca de stock bajo.
func renderProducts(w io.Writer, rows []ledger.ProductRow) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "Ningún producto.")
		return
	}
	fmt.Fprintln(w)
	separator(w, 104)
	fmt.Fprintf(w, "%-4s | %-25s | %-12s | %-12s | %-5s | %-6s | %-15s | ALERTA\n",
		"ID", "Nombre", "Venta", "Costo", "Cant", "Peso", "Marca")
	separator(w, 104)
	for _, r := range rows {
		p := r.Product
		alerta := ""
		if r.LowStock {
			alerta = "STOCK BAJO!"
		}
		fmt.Fprintf(w, "%-4d | %-25s | %-12s | %-12s | %-5d | %-6s | %-15s | %s\n",
			p.ID, p.Name, money.Format(p.SalePrice), money.Format(p.CostPrice),
			p.Quantity, p.Weight.String(), p.Brand, alerta)
	}
	separator(w, 104)
}

// renderSales imprime el historial de ventas.
func renderSales(w io.Writer, sales []*entity.Sale) {
	if len(sales) == 0 {
		fmt.Fprintln(w, "Ninguna venta registrada.")
		return
	}
	fmt.Fprintln(w)
	separator(w, 118)
	fmt.Fprintf(w, "%-4s | %-25s | %-4s | %-16s | %-12s | %-12s | %-10s | Cliente\n",
		"ID", "Producto", "Cant", "Fecha", "Unitario", "Total", "Pago")
	separator(w, 118)
	for _, v := range sales {
		fmt.Fprintf(w, "%-4d | %-25s | %-4d | %-16s | %-12s | %-12s | %-10s | %s\n",
			v.ID, v.ProductName, v.Quantity, v.Date.Format("02/01/2006 15:04"),
			money.Format(v.UnitPrice), money.Format(v.Total), v.PaymentMethod, v.CustomerName)
	}
	separator(w, 118)
}

// renderMovements imprime el log de movimientos, más recientes primero.
func renderMovements(w io.Writer, movs []repository.MovementRecord) {
	if len(movs) == 0 {
		fmt.Fprintln(w, "Ningún movimiento.")
		return
	}
	fmt.Fprintln(w, "\nMovimientos:")
	for _, m := range movs {
		name := deletedProductPlaceholder
		if m.ProductName != nil {
			name = *m.ProductName
		}
		user := "N/A"
		if m.Username != nil && *m.Username != "" {
			user = *m.Username
		}
		fmt.Fprintf(w, "%d | %s | %s | %d un | %s | Usuario: %s\n",
			m.ID, name, m.Type, m.Quantity, m.Date.Format("02/01/2006 15:04"), user)
	}
}

// renderCustomers imprime clientes en formato "id - nombre (contacto)".
func renderCustomers(w io.Writer, customers []*entity.Customer) {
	if len(customers) == 0 {
		fmt.Fprintln(w, "Ningún cliente registrado.")
		return
	}
	for _, c := range customers {
		fmt.Fprintf(w, "%d - %s (%s)\n", c.ID, c.Name, c.Contact)
	}
}

// renderSuppliers imprime proveedores en el mismo formato que clientes.
func renderSuppliers(w io.Writer, suppliers []*entity.Supplier) {
	if len(suppliers) == 0 {
		fmt.Fprintln(w, "Ningún proveedor registrado.")
		return
	}
	for _, s := range suppliers {
		fmt.Fprintf(w, "%d - %s (%s)\n", s.ID, s.Name, s.Contact)
	}
}

// renderSummary imprime el resumen financiero.
func renderSummary(w io.Writer, s reports.Summary) {
	fmt.Fprintln(w, "\n--- REPORTE FINANCIERO ---")
	fmt.Fprintf(w, "Total vendido: %s\n", money.Format(s.TotalRevenue))
	fmt.Fprintf(w, "Costo: %s\n", money.Format(s.TotalCost))
	fmt.Fprintf(w, "Utilidad estimada: %s\n", money.Format(s.Profit))
}
