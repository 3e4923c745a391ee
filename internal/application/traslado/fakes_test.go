package traslado_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/boletas-api/internal/domain/entity"
	"github.com/jhoicas/boletas-api/internal/domain/repository"
)

// store en memoria compartido por los repos falsos. El txRunner falso lo
// clona antes de cada Run y lo restaura si fn falla, imitando el Rollback:
// así los tests pueden afirmar "sin efecto parcial".
type store struct {
	saldos  map[string]*entity.BoletaSaldo
	headers map[string]*entity.Manifiesto
	lineas  map[string]*entity.ManifiestoLinea
	movs    []*entity.Movimiento
}

func newStore() *store {
	return &store{
		saldos:  map[string]*entity.BoletaSaldo{},
		headers: map[string]*entity.Manifiesto{},
		lineas:  map[string]*entity.ManifiestoLinea{},
	}
}

func (s *store) clone() *store {
	c := newStore()
	for k, v := range s.saldos {
		cp := *v
		c.saldos[k] = &cp
	}
	for k, v := range s.headers {
		cp := *v
		c.headers[k] = &cp
	}
	for k, v := range s.lineas {
		cp := *v
		c.lineas[k] = &cp
	}
	c.movs = append(c.movs, s.movs...)
	return c
}

func saldoKey(boleta, articulo, tipo string) string {
	return boleta + "|" + articulo + "|" + tipo
}

func lineaKey(manifiesto, boleta, articulo, tipo string) string {
	return manifiesto + "|" + boleta + "|" + articulo + "|" + tipo
}

type fakeSaldoRepo struct{ s *store }

func (r *fakeSaldoRepo) Get(_ context.Context, boleta, articulo, tipo string) (*entity.BoletaSaldo, error) {
	row, ok := r.s.saldos[saldoKey(boleta, articulo, tipo)]
	if !ok {
		return nil, nil
	}
	cp := *row
	return &cp, nil
}

func (r *fakeSaldoRepo) GetForUpdate(ctx context.Context, boleta, articulo, tipo string) (*entity.BoletaSaldo, error) {
	return r.Get(ctx, boleta, articulo, tipo)
}

func (r *fakeSaldoRepo) UpdateSaldos(_ context.Context, s *entity.BoletaSaldo) error {
	cp := *s
	r.s.saldos[saldoKey(s.NumeroBoleta, s.CodigoArticulo, s.TipoBoleta)] = &cp
	return nil
}

func (r *fakeSaldoRepo) List(_ context.Context, _ repository.SaldoFilter) ([]*entity.BoletaSaldo, int, error) {
	var list []*entity.BoletaSaldo
	for _, v := range r.s.saldos {
		cp := *v
		list = append(list, &cp)
	}
	return list, len(list), nil
}

type fakeManifRepo struct{ s *store }

func (r *fakeManifRepo) Exists(_ context.Context, numero string) (bool, error) {
	_, ok := r.s.headers[numero]
	return ok, nil
}

func (r *fakeManifRepo) GetHeader(_ context.Context, numero string) (*entity.Manifiesto, error) {
	h, ok := r.s.headers[numero]
	if !ok {
		return nil, nil
	}
	cp := *h
	return &cp, nil
}

func (r *fakeManifRepo) CreateHeader(_ context.Context, m *entity.Manifiesto) error {
	cp := *m
	r.s.headers[m.Numero] = &cp
	return nil
}

func (r *fakeManifRepo) AddPesoLocal(_ context.Context, numero string, delta decimal.Decimal) error {
	h := r.s.headers[numero]
	h.PesoLocal = h.PesoLocal.Add(delta)
	return nil
}

func (r *fakeManifRepo) AddLinea(_ context.Context, l *entity.ManifiestoLinea) error {
	k := lineaKey(l.NumeroManifiesto, l.NumeroBoleta, l.CodigoArticulo, l.TipoBoleta)
	if prev, ok := r.s.lineas[k]; ok {
		prev.Cantidad = prev.Cantidad.Add(l.Cantidad)
		return nil
	}
	cp := *l
	r.s.lineas[k] = &cp
	return nil
}

func (r *fakeManifRepo) GetLineaForUpdate(_ context.Context, numero, boleta, articulo, tipo string) (*entity.ManifiestoLinea, error) {
	l, ok := r.s.lineas[lineaKey(numero, boleta, articulo, tipo)]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (r *fakeManifRepo) UpdateLineaCantidad(_ context.Context, numero, boleta, articulo, tipo string, cantidad decimal.Decimal) error {
	r.s.lineas[lineaKey(numero, boleta, articulo, tipo)].Cantidad = cantidad
	return nil
}

func (r *fakeManifRepo) DeleteLinea(_ context.Context, numero, boleta, articulo, tipo string) error {
	delete(r.s.lineas, lineaKey(numero, boleta, articulo, tipo))
	return nil
}

func (r *fakeManifRepo) ListLineas(_ context.Context, numero string) ([]*entity.ManifiestoLinea, error) {
	var list []*entity.ManifiestoLinea
	for _, l := range r.s.lineas {
		if l.NumeroManifiesto == numero {
			cp := *l
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *fakeManifRepo) Renumerar(_ context.Context, viejo, nuevo string) (int64, int64, error) {
	var cabeceras, lineas int64
	if h, ok := r.s.headers[viejo]; ok {
		h.Numero = nuevo
		r.s.headers[nuevo] = h
		delete(r.s.headers, viejo)
		cabeceras = 1
	}
	for k, l := range r.s.lineas {
		if l.NumeroManifiesto == viejo {
			l.NumeroManifiesto = nuevo
			delete(r.s.lineas, k)
			r.s.lineas[lineaKey(nuevo, l.NumeroBoleta, l.CodigoArticulo, l.TipoBoleta)] = l
			lineas++
		}
	}
	return cabeceras, lineas, nil
}

type fakeMovRepo struct{ s *store }

func (r *fakeMovRepo) Create(_ context.Context, m *entity.Movimiento) error {
	cp := *m
	r.s.movs = append(r.s.movs, &cp)
	return nil
}

func (r *fakeMovRepo) ListByBoleta(_ context.Context, boleta string, _, _ *time.Time, _, _ int) ([]*entity.Movimiento, error) {
	var list []*entity.Movimiento
	for _, m := range r.s.movs {
		if m.NumeroBoleta == boleta {
			cp := *m
			list = append(list, &cp)
		}
	}
	return list, nil
}

// fakeTxRunner imita Commit/Rollback con clone-restore sobre el store.
type fakeTxRunner struct{ s *store }

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	saldoRepo repository.SaldoRepository,
	manifRepo repository.ManifiestoRepository,
	movRepo repository.MovimientoRepository,
) error) error {
	backup := r.s.clone()
	if err := fn(&fakeSaldoRepo{r.s}, &fakeManifRepo{r.s}, &fakeMovRepo{r.s}); err != nil {
		*r.s = *backup
		return err
	}
	return nil
}
