package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/jhoicas/netsales-api/internal/domain"
	"github.com/jhoicas/netsales-api/internal/domain/entity"
	"github.com/jhoicas/netsales-api/internal/domain/repository"
)

// table colección en memoria que conserva el orden de inserción.
type table[T any] struct {
	mu    sync.RWMutex
	order []string
	rows  map[string]T
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[string]T)}
}

func (t *table[T]) list() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.rows[id])
	}
	return out
}

func (t *table[T]) get(id string) (T, error) {
	var zero T
	if err := checkID(id); err != nil {
		return zero, err
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	row, ok := t.rows[id]
	if !ok {
		return zero, domain.ErrNotFound
	}
	return row, nil
}

func (t *table[T]) insert(id string, row T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.order = append(t.order, id)
	t.rows[id] = row
}

func (t *table[T]) replace(id string, row T) error {
	if err := checkID(id); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return domain.ErrNotFound
	}
	t.rows[id] = row
	return nil
}

func (t *table[T]) remove(id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(t.rows, id)
	for i, v := range t.order {
		if v == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return nil
}

func checkID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %q", domain.ErrInvalidID, id)
	}
	return nil
}

// EmployeeRepo implementación en memoria de repository.EmployeeRepository.
type EmployeeRepo struct {
	t *table[entity.Employee]
}

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// NewEmployeeRepository crea un repositorio vacío.
func NewEmployeeRepository() *EmployeeRepo {
	return &EmployeeRepo{t: newTable[entity.Employee]()}
}

func (r *EmployeeRepo) List(_ context.Context) ([]*entity.Employee, error) {
	rows := r.t.list()
	out := make([]*entity.Employee, len(rows))
	for i := range rows {
		out[i] = &rows[i]
	}
	return out, nil
}

func (r *EmployeeRepo) GetByID(_ context.Context, id string) (*entity.Employee, error) {
	e, err := r.t.get(id)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EmployeeRepo) Create(_ context.Context, employee *entity.Employee) (*entity.Employee, error) {
	e := *employee
	e.ID = uuid.New().String()
	r.t.insert(e.ID, e)
	return &e, nil
}

func (r *EmployeeRepo) Update(_ context.Context, employee *entity.Employee) (*entity.Employee, error) {
	e := *employee
	if err := r.t.replace(e.ID, e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EmployeeRepo) Delete(_ context.Context, id string) error {
	return r.t.remove(id)
}

// SaleRepo implementación en memoria de repository.SaleRepository.
type SaleRepo struct {
	t *table[entity.SaleEntry]
}

var _ repository.SaleRepository = (*SaleRepo)(nil)

// NewSaleRepository crea un repositorio vacío.
func NewSaleRepository() *SaleRepo {
	return &SaleRepo{t: newTable[entity.SaleEntry]()}
}

func (r *SaleRepo) List(_ context.Context) ([]*entity.SaleEntry, error) {
	rows := r.t.list()
	out := make([]*entity.SaleEntry, len(rows))
	for i := range rows {
		out[i] = &rows[i]
	}
	return out, nil
}

func (r *SaleRepo) GetByID(_ context.Context, id string) (*entity.SaleEntry, error) {
	s, err := r.t.get(id)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SaleRepo) Create(_ context.Context, sale *entity.SaleEntry) (*entity.SaleEntry, error) {
	s := *sale
	s.ID = uuid.New().String()
	r.t.insert(s.ID, s)
	return &s, nil
}

func (r *SaleRepo) Update(_ context.Context, sale *entity.SaleEntry) (*entity.SaleEntry, error) {
	s := *sale
	if err := r.t.replace(s.ID, s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SaleRepo) Delete(_ context.Context, id string) error {
	return r.t.remove(id)
}
