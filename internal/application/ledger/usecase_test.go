package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kardex-api/internal/application/ledger"
	"github.com/jhoicas/kardex-api/internal/domain"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[int64]*entity.Product
	nextID   int64
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[int64]*entity.Product{}, nextID: 1}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	p.ID = r.nextID
	r.nextID++
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetByIDForUpdate(id int64) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	stored, ok := r.products[p.ID]
	if !ok {
		return domain.ErrProductNotFound
	}
	quantity := stored.Quantity
	cp := *p
	cp.Quantity = quantity
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) UpdateQuantity(id int64, quantity int64, updatedAt time.Time) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrProductNotFound
	}
	p.Quantity = quantity
	p.UpdatedAt = updatedAt
	return nil
}

func (r *fakeProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(id int64) error {
	if _, ok := r.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

type fakeMovementRepo struct {
	movements []*entity.Movement
	nextID    int64
}

func newFakeMovementRepo() *fakeMovementRepo {
	return &fakeMovementRepo{nextID: 1}
}

func (r *fakeMovementRepo) Create(m *entity.Movement) error {
	m.ID = r.nextID
	r.nextID++
	cp := *m
	r.movements = append(r.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) List() ([]*entity.Movement, error) {
	// Más recientes primero: los fakes insertan en orden, se invierte.
	out := make([]*entity.Movement, 0, len(r.movements))
	for i := len(r.movements) - 1; i >= 0; i-- {
		cp := *r.movements[i]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeMovementRepo) ExistsByProduct(productID int64) (bool, error) {
	for _, m := range r.movements {
		if m.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}

// fakeTxRunner ejecuta fn directamente contra los repos en memoria.
type fakeTxRunner struct {
	movRepo     repository.MovementRepository
	productRepo repository.ProductRepository
}

func (tr *fakeTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	return fn(tr.movRepo, tr.productRepo)
}

func newLedger() (*ledger.UseCase, *fakeProductRepo, *fakeMovementRepo) {
	productRepo := newFakeProductRepo()
	movRepo := newFakeMovementRepo()
	uc := ledger.NewUseCase(&fakeTxRunner{movRepo: movRepo, productRepo: productRepo}, movRepo)
	return uc, productRepo, movRepo
}

func seedProduct(t *testing.T, repo *fakeProductRepo, name string, quantity int64) int64 {
	t.Helper()
	p := &entity.Product{Name: name, Quantity: quantity, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	require.NoError(t, repo.Create(p))
	return p.ID
}

func userID(id int64) *int64 { return &id }

// ──────────────────────────────────────────────────────────────────────────────
// Tests Record
// ──────────────────────────────────────────────────────────────────────────────

func TestRecord_TipoDesconocido_RetornaErrInvalidInput(t *testing.T) {
	uc, productRepo, movRepo := newLedger()
	id := seedProduct(t, productRepo, "Tornillos", 10)

	for _, tipo := range []string{"", "ajuste", "INBOUND", "in"} {
		_, err := uc.Record(context.Background(), ledger.RecordInput{
			ProductID: id, Type: tipo, Quantity: 1, UserID: userID(1),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "tipo %q debe rechazarse", tipo)
	}
	assert.Empty(t, movRepo.movements, "una entrada inválida no escribe en el ledger")
}

func TestRecord_CantidadNoPositiva_RetornaErrInvalidInput(t *testing.T) {
	uc, productRepo, _ := newLedger()
	id := seedProduct(t, productRepo, "Tornillos", 10)

	for _, qty := range []int64{0, -1, -100} {
		_, err := uc.Record(context.Background(), ledger.RecordInput{
			ProductID: id, Type: entity.MovementTypeInbound, Quantity: qty, UserID: userID(1),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad %d debe rechazarse", qty)
	}
}

func TestRecord_ProductoInexistente_RetornaErrProductNotFound(t *testing.T) {
	uc, _, movRepo := newLedger()

	_, err := uc.Record(context.Background(), ledger.RecordInput{
		ProductID: 999, Type: entity.MovementTypeInbound, Quantity: 5, UserID: userID(1),
	})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.Empty(t, movRepo.movements)
}

func TestRecord_Entrada_SumaStockYApendea(t *testing.T) {
	uc, productRepo, movRepo := newLedger()
	id := seedProduct(t, productRepo, "Tornillos", 10)

	mov, err := uc.Record(context.Background(), ledger.RecordInput{
		ProductID: id, Type: entity.MovementTypeInbound, Quantity: 7,
		UserID: userID(3), Observation: "compra proveedor",
	})
	require.NoError(t, err)
	require.NotNil(t, mov)

	assert.NotZero(t, mov.ID, "el movimiento debe salir con ID asignado")
	assert.Equal(t, entity.MovementTypeInbound, mov.Type)
	assert.Equal(t, int64(7), mov.Quantity)
	require.NotNil(t, mov.UserID)
	assert.Equal(t, int64(3), *mov.UserID)

	p, _ := productRepo.GetByID(id)
	assert.Equal(t, int64(17), p.Quantity)
	assert.Len(t, movRepo.movements, 1)
}

func TestRecord_Salida_RestaStock(t *testing.T) {
	uc, productRepo, _ := newLedger()
	id := seedProduct(t, productRepo, "Tornillos", 10)

	mov, err := uc.Record(context.Background(), ledger.RecordInput{
		ProductID: id, Type: entity.MovementTypeOutbound, Quantity: 4, UserID: userID(1),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), mov.Quantity, "la cantidad del movimiento es siempre positiva")

	p, _ := productRepo.GetByID(id)
	assert.Equal(t, int64(6), p.Quantity)
}

func TestRecord_SalidaHastaCero_EsValida(t *testing.T) {
	uc, productRepo, _ := newLedger()
	id := seedProduct(t, productRepo, "Tornillos", 5)

	_, err := uc.Record(context.Background(), ledger.RecordInput{
		ProductID: id, Type: entity.MovementTypeOutbound, Quantity: 5, UserID: userID(1),
	})
	require.NoError(t, err)

	p, _ := productRepo.GetByID(id)
	assert.Equal(t, int64(0), p.Quantity)
}

// Una salida mayor al stock se rechaza sin efectos: ni fila en el ledger ni
// cambio de cantidad.
func TestRecord_StockInsuficiente_RechazaSinEfectos(t *testing.T) {
	uc, productRepo, movRepo := newLedger()
	id := seedProduct(t, productRepo, "Tornillos", 5)

	_, err := uc.Record(context.Background(), ledger.RecordInput{
		ProductID: id, Type: entity.MovementTypeOutbound, Quantity: 6, UserID: userID(1),
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	p, _ := productRepo.GetByID(id)
	assert.Equal(t, int64(5), p.Quantity, "el stock no cambia en un rechazo")
	assert.Empty(t, movRepo.movements, "un rechazo no apendea al ledger")
}

// Flujo completo: 0 → +10 → -3 = 7; una salida de 10 se rechaza y el stock
// sigue en 7.
func TestRecord_FlujoCompleto(t *testing.T) {
	uc, productRepo, movRepo := newLedger()
	id := seedProduct(t, productRepo, "Widget", 0)

	_, err := uc.Record(context.Background(), ledger.RecordInput{
		ProductID: id, Type: entity.MovementTypeInbound, Quantity: 10, UserID: userID(1),
	})
	require.NoError(t, err)

	_, err = uc.Record(context.Background(), ledger.RecordInput{
		ProductID: id, Type: entity.MovementTypeOutbound, Quantity: 3, UserID: userID(1),
	})
	require.NoError(t, err)

	p, _ := productRepo.GetByID(id)
	assert.Equal(t, int64(7), p.Quantity)

	_, err = uc.Record(context.Background(), ledger.RecordInput{
		ProductID: id, Type: entity.MovementTypeOutbound, Quantity: 10, UserID: userID(1),
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	p, _ = productRepo.GetByID(id)
	assert.Equal(t, int64(7), p.Quantity)
	assert.Len(t, movRepo.movements, 2)
}

// La cantidad del producto siempre es reproducible desde el ledger:
// stock inicial + Σ entradas - Σ salidas.
func TestRecord_CantidadReproducibleDesdeElLedger(t *testing.T) {
	uc, productRepo, movRepo := newLedger()
	const initial = int64(20)
	id := seedProduct(t, productRepo, "Widget", initial)

	ops := []struct {
		tipo string
		qty  int64
	}{
		{entity.MovementTypeInbound, 15},
		{entity.MovementTypeOutbound, 8},
		{entity.MovementTypeInbound, 2},
		{entity.MovementTypeOutbound, 20},
		{entity.MovementTypeOutbound, 1},
	}
	for _, op := range ops {
		_, err := uc.Record(context.Background(), ledger.RecordInput{
			ProductID: id, Type: op.tipo, Quantity: op.qty, UserID: userID(1),
		})
		require.NoError(t, err)
	}

	replayed := initial
	for _, m := range movRepo.movements {
		switch m.Type {
		case entity.MovementTypeInbound:
			replayed += m.Quantity
		case entity.MovementTypeOutbound:
			replayed -= m.Quantity
		}
	}

	p, _ := productRepo.GetByID(id)
	assert.Equal(t, replayed, p.Quantity)
	assert.Equal(t, int64(8), p.Quantity)
}

func TestRecord_UserIDNil_MovimientoDeSistema(t *testing.T) {
	uc, productRepo, _ := newLedger()
	id := seedProduct(t, productRepo, "Widget", 0)

	mov, err := uc.Record(context.Background(), ledger.RecordInput{
		ProductID: id, Type: entity.MovementTypeInbound, Quantity: 1,
	})
	require.NoError(t, err)
	assert.Nil(t, mov.UserID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests List
// ──────────────────────────────────────────────────────────────────────────────

func TestList_MasRecientesPrimero(t *testing.T) {
	uc, productRepo, _ := newLedger()
	id := seedProduct(t, productRepo, "Widget", 0)

	first, err := uc.Record(context.Background(), ledger.RecordInput{
		ProductID: id, Type: entity.MovementTypeInbound, Quantity: 5, UserID: userID(1),
	})
	require.NoError(t, err)
	second, err := uc.Record(context.Background(), ledger.RecordInput{
		ProductID: id, Type: entity.MovementTypeOutbound, Quantity: 2, UserID: userID(1),
	})
	require.NoError(t, err)

	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}
