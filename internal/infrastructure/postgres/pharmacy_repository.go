package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/farmacia-suite/internal/domain"
	"github.com/tu-usuario/farmacia-suite/internal/domain/entity"
	"github.com/tu-usuario/farmacia-suite/internal/domain/repository"
)

var _ repository.PharmacyRepository = (*PharmacyRepo)(nil)

// PharmacyRepo implementación del puerto PharmacyRepository sobre PostgreSQL.
type PharmacyRepo struct {
	q Querier
}

// NewPharmacyRepository construye el adaptador de persistencia para farmacias. Pasar pool o tx (Querier).
func NewPharmacyRepository(q Querier) *PharmacyRepo {
	return &PharmacyRepo{q: q}
}

// Create persiste una nueva farmacia.
func (r *PharmacyRepo) Create(pharmacy *entity.Pharmacy) error {
	query := `
		INSERT INTO pharmacies (id, name, nit, address, phone, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		pharmacy.ID, pharmacy.Name, pharmacy.NIT, pharmacy.Address,
		pharmacy.Phone, pharmacy.Email, pharmacy.CreatedAt, pharmacy.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert pharmacy: %w", err)
	}
	return nil
}

// GetByID obtiene una farmacia por ID.
func (r *PharmacyRepo) GetByID(id string) (*entity.Pharmacy, error) {
	return r.getBy("id", id)
}

// GetByNIT obtiene una farmacia por NIT.
func (r *PharmacyRepo) GetByNIT(nit string) (*entity.Pharmacy, error) {
	return r.getBy("nit", nit)
}

func (r *PharmacyRepo) getBy(column, value string) (*entity.Pharmacy, error) {
	query := fmt.Sprintf(`
		SELECT id, name, nit, address, phone, email, created_at, updated_at
		FROM pharmacies WHERE %s = $1`, column)
	var p entity.Pharmacy
	err := r.q.QueryRow(context.Background(), query, value).Scan(
		&p.ID, &p.Name, &p.NIT, &p.Address, &p.Phone, &p.Email,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pharmacy by %s: %w", column, err)
	}
	return &p, nil
}

// List devuelve farmacias con paginación.
func (r *PharmacyRepo) List(limit, offset int) ([]*entity.Pharmacy, error) {
	query := `
		SELECT id, name, nit, address, phone, email, created_at, updated_at
		FROM pharmacies ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list pharmacies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Pharmacy
	for rows.Next() {
		var p entity.Pharmacy
		if err := rows.Scan(&p.ID, &p.Name, &p.NIT, &p.Address, &p.Phone, &p.Email, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan pharmacy: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// HasActiveModule informa si la farmacia tiene el módulo activo y sin vencer.
// Consulta directamente pharmacy_modules para una respuesta O(1) vía índice.
func (r *PharmacyRepo) HasActiveModule(ctx context.Context, pharmacyID, module string) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM pharmacy_modules
			 WHERE pharmacy_id = $1
			   AND module_name = $2
			   AND is_active   = true
			   AND (expires_at IS NULL OR expires_at > now())
		)`
	var active bool
	if err := r.q.QueryRow(ctx, query, pharmacyID, module).Scan(&active); err != nil {
		return false, fmt.Errorf("check module %s: %w", module, err)
	}
	return active, nil
}

// EnableModule activa (o renueva) un módulo para la farmacia.
func (r *PharmacyRepo) EnableModule(ctx context.Context, mod *entity.PharmacyModule) error {
	const query = `
		INSERT INTO pharmacy_modules (pharmacy_id, module_name, is_active, expires_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (pharmacy_id, module_name)
		DO UPDATE SET is_active = EXCLUDED.is_active, expires_at = EXCLUDED.expires_at`
	_, err := r.q.Exec(ctx, query, mod.PharmacyID, mod.Module, mod.Active, mod.ExpiresAt)
	if err != nil {
		return fmt.Errorf("enable module %s: %w", mod.Module, err)
	}
	return nil
}
