package seed_test

import (
	"context"
	"maps"
	"sync"

	"github.com/jhoicas/dashboard-api/internal/application/seed"
	"github.com/jhoicas/dashboard-api/internal/domain/entity"
	"github.com/jhoicas/dashboard-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Base de datos en memoria con semántica de transacción y ON CONFLICT DO NOTHING
// ──────────────────────────────────────────────────────────────────────────────

type memState struct {
	extension bool
	tables    map[string]bool
	users     map[string]entity.User
	customers map[string]entity.Customer
	invoices  map[string]entity.Invoice
	revenue   map[string]entity.Revenue
}

func newMemState() *memState {
	return &memState{
		tables:    map[string]bool{},
		users:     map[string]entity.User{},
		customers: map[string]entity.Customer{},
		invoices:  map[string]entity.Invoice{},
		revenue:   map[string]entity.Revenue{},
	}
}

func (s *memState) clone() *memState {
	return &memState{
		extension: s.extension,
		tables:    maps.Clone(s.tables),
		users:     maps.Clone(s.users),
		customers: maps.Clone(s.customers),
		invoices:  maps.Clone(s.invoices),
		revenue:   maps.Clone(s.revenue),
	}
}

type memDB struct {
	mu         sync.Mutex
	state      *memState
	connectErr error
	insertErr  map[string]error // tabla -> error a devolver en InsertIgnore
	calls      []string
	connects   int
	closes     int
	commits    int
	rollbacks  int
}

func newMemDB() *memDB {
	return &memDB{state: newMemState(), insertErr: map[string]error{}}
}

func (db *memDB) record(call string) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.calls = append(db.calls, call)
}

func (db *memDB) Connect(_ context.Context) (seed.Session, error) {
	db.connects++
	if db.connectErr != nil {
		return nil, db.connectErr
	}
	return &memSession{db: db}, nil
}

type memSession struct {
	db *memDB
}

func (s *memSession) Close() { s.db.closes++ }

func (s *memSession) RunSeed(ctx context.Context, fn func(
	schemaRepo repository.SchemaRepository,
	userRepo repository.UserRepository,
	customerRepo repository.CustomerRepository,
	invoiceRepo repository.InvoiceRepository,
	revenueRepo repository.RevenueRepository,
) error) error {
	tx := s.db.state.clone()
	err := fn(
		&memSchema{db: s.db, tx: tx},
		&memUsers{db: s.db, tx: tx},
		&memCustomers{db: s.db, tx: tx},
		&memInvoices{db: s.db, tx: tx},
		&memRevenue{db: s.db, tx: tx},
	)
	if err != nil {
		s.db.rollbacks++
		return err
	}
	s.db.state = tx
	s.db.commits++
	return nil
}

type memSchema struct {
	db *memDB
	tx *memState
}

func (r *memSchema) EnsureUUIDExtension(context.Context) error {
	r.db.record("extension")
	r.tx.extension = true
	return nil
}

type memUsers struct {
	db *memDB
	tx *memState
}

func (r *memUsers) EnsureTable(context.Context) error {
	r.db.record("users.table")
	r.tx.tables[seed.TableUsers] = true
	return nil
}

func (r *memUsers) InsertIgnore(_ context.Context, users []entity.User) (int64, error) {
	r.db.record("users.insert")
	if err := r.db.insertErr[seed.TableUsers]; err != nil {
		return 0, err
	}
	var n int64
	for _, u := range users {
		if _, ok := r.tx.users[u.ID]; ok {
			continue
		}
		if emailTaken(r.tx.users, u.Email) {
			continue
		}
		r.tx.users[u.ID] = u
		n++
	}
	return n, nil
}

func emailTaken(users map[string]entity.User, email string) bool {
	for _, u := range users {
		if u.Email == email {
			return true
		}
	}
	return false
}

type memCustomers struct {
	db *memDB
	tx *memState
}

func (r *memCustomers) EnsureTable(context.Context) error {
	r.db.record("customers.table")
	r.tx.tables[seed.TableCustomers] = true
	return nil
}

func (r *memCustomers) InsertIgnore(_ context.Context, customers []entity.Customer) (int64, error) {
	r.db.record("customers.insert")
	if err := r.db.insertErr[seed.TableCustomers]; err != nil {
		return 0, err
	}
	var n int64
	for _, c := range customers {
		if _, ok := r.tx.customers[c.ID]; ok {
			continue
		}
		r.tx.customers[c.ID] = c
		n++
	}
	return n, nil
}

type memInvoices struct {
	db *memDB
	tx *memState
}

func (r *memInvoices) EnsureTable(context.Context) error {
	r.db.record("invoices.table")
	r.tx.tables[seed.TableInvoices] = true
	return nil
}

func (r *memInvoices) InsertIgnore(_ context.Context, invoices []entity.Invoice) (int64, error) {
	r.db.record("invoices.insert")
	if err := r.db.insertErr[seed.TableInvoices]; err != nil {
		return 0, err
	}
	var n int64
	for _, inv := range invoices {
		id := inv.DerivedID()
		if _, ok := r.tx.invoices[id]; ok {
			continue
		}
		r.tx.invoices[id] = inv
		n++
	}
	return n, nil
}

type memRevenue struct {
	db *memDB
	tx *memState
}

func (r *memRevenue) EnsureTable(context.Context) error {
	r.db.record("revenue.table")
	r.tx.tables[seed.TableRevenue] = true
	return nil
}

func (r *memRevenue) InsertIgnore(_ context.Context, revenue []entity.Revenue) (int64, error) {
	r.db.record("revenue.insert")
	if err := r.db.insertErr[seed.TableRevenue]; err != nil {
		return 0, err
	}
	var n int64
	for _, rev := range revenue {
		if _, ok := r.tx.revenue[rev.Month]; ok {
			continue
		}
		r.tx.revenue[rev.Month] = rev
		n++
	}
	return n, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Hashers de prueba
// ──────────────────────────────────────────────────────────────────────────────

type failingHasher struct {
	err error
}

func (h failingHasher) Hash(string) (string, error) { return "", h.err }
