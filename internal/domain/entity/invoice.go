package entity

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Estados habituales de una factura (texto libre en la tabla).
const (
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"
)

// invoiceNamespace espacio UUIDv5 para derivar IDs de factura del contenido.
var invoiceNamespace = uuid.MustParse("7f0c6a8e-2b4d-4f3a-9c51-0d9e8b1a6c24")

// Invoice factura de un cliente. Amount en centavos.
type Invoice struct {
	ID         string    `yaml:"id"`
	CustomerID string    `yaml:"customer_id"`
	Amount     int       `yaml:"amount"`
	Status     string    `yaml:"status"`
	Date       time.Time `yaml:"date"`
}

// DerivedID devuelve ID si está definido; si no, un UUIDv5 estable calculado a partir
// de cliente, monto, estado y fecha. Dos ejecuciones del seed producen el mismo ID.
// Facturas con contenido idéntico colapsan en una; para repetirlas hay que fijar ID.
func (i Invoice) DerivedID() string {
	if i.ID != "" {
		return i.ID
	}
	key := i.CustomerID + "|" + strconv.Itoa(i.Amount) + "|" + i.Status + "|" + i.Date.Format(time.DateOnly)
	return uuid.NewSHA1(invoiceNamespace, []byte(key)).String()
}
