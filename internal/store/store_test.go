package store

import (
	"context"
	"path/filepath"
	"testing"

	"sisventas/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := New(filepath.Join(t.TempDir(), "data", "ventas.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s
}

func TestSchemaInitIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ventas.db")

	s, err := New(path)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	// Reopening the same file must not fail on existing tables.
	s, err = New(path)
	require.NoError(t, err)
	require.NoError(t, s.Close())
}

func TestProductRoundtrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	p := &models.Product{Name: "Teclado", Category: "Accesorios", Price: 25.99, Quantity: 10}
	require.NoError(t, s.CreateProduct(ctx, p))
	assert.NotZero(t, p.ID)

	products, err := s.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Teclado", products[0].Name)
	assert.Equal(t, 25.99, products[0].Price)

	require.NoError(t, s.DeleteProduct(ctx, p.ID))

	products, err = s.ListProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestDeleteMissingProductIsNoOp(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	p := &models.Product{Name: "Mouse", Category: "Accesorios", Price: 9.5, Quantity: 3}
	require.NoError(t, s.CreateProduct(ctx, p))

	require.NoError(t, s.DeleteProduct(ctx, p.ID+1000))

	products, err := s.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestSalesListedNewestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// Older row inserted directly so the two timestamps differ.
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO ventas(descripcion, total, fecha) VALUES (?, ?, ?)",
		"old sale", 10.0, "2020-01-01 00:00:00")
	require.NoError(t, err)

	sale := &models.Sale{Description: "desk", Total: 100.50}
	require.NoError(t, s.CreateSale(ctx, sale))
	assert.NotEmpty(t, sale.Date)

	sales, err := s.ListSales(ctx)
	require.NoError(t, err)
	require.Len(t, sales, 2)
	assert.Equal(t, "desk", sales[0].Description)
	assert.Equal(t, 100.50, sales[0].Total)
}

func TestReportRoundtrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	r := &models.Report{Type: "mensual", Description: "cierre de mes"}
	require.NoError(t, s.CreateReport(ctx, r))

	reports, err := s.ListReports(ctx)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "mensual", reports[0].Type)

	require.NoError(t, s.DeleteReport(ctx, r.ID))
	require.NoError(t, s.DeleteReport(ctx, r.ID)) // absent id, still a no-op
}

func TestDuplicateEmailRejected(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := &models.User{Name: "Ana", Email: "ana@example.com", Password: "secreto"}
	require.NoError(t, s.CreateUser(ctx, first))

	second := &models.User{Name: "Otra Ana", Email: "ana@example.com", Password: "otra"}
	err := s.CreateUser(ctx, second)
	assert.ErrorIs(t, err, ErrEmailTaken)

	n, err := s.CountUsersByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestAuthenticate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := &models.User{Name: "Luis", Email: "luis@example.com", Password: "clave"}
	require.NoError(t, s.CreateUser(ctx, u))

	found, err := s.Authenticate(ctx, "luis@example.com", "clave")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, u.ID, found.ID)
	assert.Equal(t, "Luis", found.Name)

	// Wrong password and unknown email both come back as a plain miss.
	found, err = s.Authenticate(ctx, "luis@example.com", "mala")
	require.NoError(t, err)
	assert.Nil(t, found)

	found, err = s.Authenticate(ctx, "nadie@example.com", "clave")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestRenameUser(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := &models.User{Name: "Eva", Email: "eva@example.com", Password: "pw"}
	require.NoError(t, s.CreateUser(ctx, u))

	require.NoError(t, s.RenameUser(ctx, u.ID, "Eva Maria"))

	found, err := s.Authenticate(ctx, "eva@example.com", "pw")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Eva Maria", found.Name)
}
