package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/tienda-api/internal/application/checkout"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// Ensure TxRunner implements checkout.TxRunner.
var _ checkout.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
// El checkout depende de esto: pedido, líneas y decrementos de stock se confirman
// todos o ninguno; no existe el fallo parcial.
func (r *TxRunner) Run(ctx context.Context, fn func(
	pedidoRepo repository.PedidoRepository,
	productRepo repository.ProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	pedidoRepo := NewPedidoRepository(tx)
	productRepo := NewProductRepository(tx)

	if err := fn(pedidoRepo, productRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
