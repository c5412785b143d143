package store

import (
	"context"
	"time"

	"sisventas/internal/models"
)

// ListProducts retrieves all products
func (s *Store) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := s.db.SelectContext(ctx, &products,
		"SELECT id, nombre, categoria, precio, cantidad FROM productos")
	return products, err
}

// CreateProduct inserts a new product and sets its assigned id
func (s *Store) CreateProduct(ctx context.Context, p *models.Product) error {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO productos(nombre, categoria, precio, cantidad) VALUES (?, ?, ?, ?)",
		p.Name, p.Category, p.Price, p.Quantity)
	if err != nil {
		return err
	}
	p.ID, err = res.LastInsertId()
	return err
}

// DeleteProduct deletes a product by id. Deleting an absent id is a no-op.
func (s *Store) DeleteProduct(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM productos WHERE id = ?", id)
	return err
}

// ListSales retrieves all sales, newest first
func (s *Store) ListSales(ctx context.Context) ([]models.Sale, error) {
	var sales []models.Sale
	err := s.db.SelectContext(ctx, &sales,
		"SELECT id, descripcion, total, fecha FROM ventas ORDER BY fecha DESC")
	return sales, err
}

// CreateSale inserts a new sale. The timestamp is assigned server-side
// at insert time, never taken from the caller.
func (s *Store) CreateSale(ctx context.Context, sale *models.Sale) error {
	sale.Date = time.Now().Format(DateLayout)
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO ventas(descripcion, total, fecha) VALUES (?, ?, ?)",
		sale.Description, sale.Total, sale.Date)
	if err != nil {
		return err
	}
	sale.ID, err = res.LastInsertId()
	return err
}

// DeleteSale deletes a sale by id. Deleting an absent id is a no-op.
func (s *Store) DeleteSale(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM ventas WHERE id = ?", id)
	return err
}

// ListReports retrieves all reports
func (s *Store) ListReports(ctx context.Context) ([]models.Report, error) {
	var reports []models.Report
	err := s.db.SelectContext(ctx, &reports,
		"SELECT id, tipo, descripcion, fecha FROM reportes")
	return reports, err
}

// CreateReport inserts a new report with a server-assigned timestamp
func (s *Store) CreateReport(ctx context.Context, r *models.Report) error {
	r.Date = time.Now().Format(DateLayout)
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO reportes(tipo, descripcion, fecha) VALUES (?, ?, ?)",
		r.Type, r.Description, r.Date)
	if err != nil {
		return err
	}
	r.ID, err = res.LastInsertId()
	return err
}

// DeleteReport deletes a report by id. Deleting an absent id is a no-op.
func (s *Store) DeleteReport(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM reportes WHERE id = ?", id)
	return err
}
