// Package fixtures contiene el dataset versionado con el que se puebla la base de datos.
package fixtures

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/jhoicas/dashboard-api/internal/domain"
	"github.com/jhoicas/dashboard-api/internal/domain/entity"
)

//go:embed placeholder_data.yaml
var placeholderData []byte

// Dataset registros de las cuatro tablas.
type Dataset struct {
	Users     []entity.UserSeed `yaml:"users"`
	Customers []entity.Customer `yaml:"customers"`
	Invoices  []entity.Invoice  `yaml:"invoices"`
	Revenue   []entity.Revenue  `yaml:"revenue"`
}

// Default devuelve el dataset embebido en el binario.
func Default() (*Dataset, error) {
	return Parse(placeholderData)
}

// Load lee el dataset desde path; path vacío equivale a Default.
func Load(path string) (*Dataset, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodifica un dataset YAML y verifica que los identificadores sean UUID.
func Parse(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidFixture, err)
	}
	if err := ds.validateIDs(); err != nil {
		return nil, err
	}
	return &ds, nil
}

// validateIDs detecta ids mal formados antes de abrir la transacción.
// El id de factura es opcional: vacío significa id derivado.
func (ds *Dataset) validateIDs() error {
	for i, u := range ds.Users {
		if err := checkUUID(fmt.Sprintf("users[%d].id", i), u.ID); err != nil {
			return err
		}
	}
	for i, c := range ds.Customers {
		if err := checkUUID(fmt.Sprintf("customers[%d].id", i), c.ID); err != nil {
			return err
		}
	}
	for i, inv := range ds.Invoices {
		if inv.ID != "" {
			if err := checkUUID(fmt.Sprintf("invoices[%d].id", i), inv.ID); err != nil {
				return err
			}
		}
		if err := checkUUID(fmt.Sprintf("invoices[%d].customer_id", i), inv.CustomerID); err != nil {
			return err
		}
	}
	return nil
}

func checkUUID(field, value string) error {
	if _, err := uuid.Parse(value); err != nil {
		return fmt.Errorf("%w: %s %q no es un UUID", domain.ErrInvalidFixture, field, value)
	}
	return nil
}
