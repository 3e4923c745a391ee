package manifiesto

import (
	"context"

	"github.com/jhoicas/boletas-api/internal/domain"
	"github.com/jhoicas/boletas-api/internal/domain/entity"
	"github.com/jhoicas/boletas-api/internal/domain/repository"
)

// TxRunner igual al del motor de traslados; la renumeración comparte la
// misma disciplina de atomicidad aunque no esté en el camino caliente.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		saldoRepo repository.SaldoRepository,
		manifRepo repository.ManifiestoRepository,
		movRepo repository.MovimientoRepository,
	) error) error
}

// UseCase operaciones de registro de manifiestos: existencia (para el
// diálogo crear-vs-anexar), detalle y renumeración.
type UseCase struct {
	txRunner  TxRunner
	manifRepo repository.ManifiestoRepository
}

// NewUseCase construye el caso de uso. manifRepo va atado al pool para las
// lecturas fuera de transacción.
func NewUseCase(txRunner TxRunner, manifRepo repository.ManifiestoRepository) *UseCase {
	return &UseCase{txRunner: txRunner, manifRepo: manifRepo}
}

// Resolver chequeo puro de existencia: decide entre "anexar a manifiesto
// existente" y "crear manifiesto nuevo", cada uno con confirmación explícita
// antes de invocar el traslado.
func (uc *UseCase) Resolver(ctx context.Context, numero string) (bool, error) {
	if numero == "" {
		return false, domain.ErrInvalidInput
	}
	return uc.manifRepo.Exists(ctx, numero)
}

// Detalle devuelve cabecera y líneas del manifiesto.
func (uc *UseCase) Detalle(ctx context.Context, numero string) (*entity.Manifiesto, []*entity.ManifiestoLinea, error) {
	if numero == "" {
		return nil, nil, domain.ErrInvalidInput
	}
	header, err := uc.manifRepo.GetHeader(ctx, numero)
	if err != nil {
		return nil, nil, err
	}
	if header == nil {
		return nil, nil, domain.ErrNotFound
	}
	lineas, err := uc.manifRepo.ListLineas(ctx, numero)
	if err != nil {
		return nil, nil, err
	}
	return header, lineas, nil
}

// Renumerar reescribe atómicamente el número del manifiesto en cabecera y
// líneas. Falla con ErrManifiestoDuplicado si el número nuevo ya existe y
// deja ambos manifiestos intactos.
func (uc *UseCase) Renumerar(ctx context.Context, viejo, nuevo string) (cabeceras, lineas int64, err error) {
	if viejo == "" || nuevo == "" || viejo == nuevo {
		return 0, 0, domain.ErrInvalidInput
	}
	err = uc.txRunner.Run(ctx, func(
		_ repository.SaldoRepository,
		manifRepo repository.ManifiestoRepository,
		_ repository.MovimientoRepository,
	) error {
		existe, err := manifRepo.Exists(ctx, nuevo)
		if err != nil {
			return err
		}
		if existe {
			return domain.ErrManifiestoDuplicado
		}
		viejoExiste, err := manifRepo.Exists(ctx, viejo)
		if err != nil {
			return err
		}
		if !viejoExiste {
			return domain.ErrNotFound
		}
		cabeceras, lineas, err = manifRepo.Renumerar(ctx, viejo, nuevo)
		return err
	})
	if err != nil {
		return 0, 0, err
	}
	return cabeceras, lineas, nil
}
