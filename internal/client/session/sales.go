package session

import (
	"context"

	"github.com/jhoicas/netsales-api/internal/client/state"
	"github.com/jhoicas/netsales-api/internal/domain/entity"
)

// Sales proveedor de ventas con escritura directa a la API.
type Sales struct {
	api   API
	store *state.SalesStore
}

func NewSales(client API) *Sales {
	return &Sales{api: client, store: state.NewSalesStore()}
}

func (p *Sales) State() state.SalesState { return p.store.State() }

func (p *Sales) Load(ctx context.Context) error {
	list, err := p.api.ListSales(ctx)
	if err != nil {
		return err
	}
	p.store.Dispatch(state.SetSales{Sales: list})
	return nil
}

func (p *Sales) Add(ctx context.Context, s entity.SaleEntry) (entity.SaleEntry, error) {
	created, err := p.api.CreateSale(ctx, s)
	if err != nil {
		return entity.SaleEntry{}, err
	}
	p.store.Dispatch(state.AddSale{Sale: created})
	return created, nil
}

func (p *Sales) Update(ctx context.Context, s entity.SaleEntry) (entity.SaleEntry, error) {
	updated, err := p.api.UpdateSale(ctx, s)
	if err != nil {
		return entity.SaleEntry{}, err
	}
	p.store.Dispatch(state.UpdateSale{Sale: updated})
	return updated, nil
}

func (p *Sales) Delete(ctx context.Context, id string) error {
	if err := p.api.DeleteSale(ctx, id); err != nil {
		return err
	}
	p.store.Dispatch(state.DeleteSale{ID: id})
	return nil
}

// Find busca una venta por ID en el estado cargado.
func (p *Sales) Find(id string) (entity.SaleEntry, bool) {
	for _, s := range p.store.State().Sales {
		if s.ID == id {
			return s, true
		}
	}
	return entity.SaleEntry{}, false
}
