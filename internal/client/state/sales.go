package state

import "github.com/jhoicas/netsales-api/internal/domain/entity"

// SalesState colección de ventas cargada en el cliente.
type SalesState struct {
	Sales []entity.SaleEntry
}

// SalesAction acción aplicable a SalesState.
type SalesAction interface{ salesAction() }

type (
	SetSales   struct{ Sales []entity.SaleEntry }
	AddSale    struct{ Sale entity.SaleEntry }
	UpdateSale struct{ Sale entity.SaleEntry }
	DeleteSale struct{ ID string }
)

func (SetSales) salesAction()   {}
func (AddSale) salesAction()    {}
func (UpdateSale) salesAction() {}
func (DeleteSale) salesAction() {}

// ReduceSales devuelve el nuevo estado; nunca modifica el slice de entrada.
func ReduceSales(s SalesState, a SalesAction) SalesState {
	switch a := a.(type) {
	case SetSales:
		s.Sales = clone(a.Sales)
	case AddSale:
		s.Sales = append(clone(s.Sales), a.Sale)
	case UpdateSale:
		i := indexOf(s.Sales, a.Sale.ID, saleID)
		if i < 0 {
			return s
		}
		list := clone(s.Sales)
		list[i] = a.Sale
		s.Sales = list
	case DeleteSale:
		i := indexOf(s.Sales, a.ID, saleID)
		if i < 0 {
			return s
		}
		s.Sales = without(s.Sales, i)
	}
	return s
}

func saleID(s entity.SaleEntry) string { return s.ID }

// SalesStore contenedor del estado de ventas. No es seguro para uso concurrente.
type SalesStore struct {
	state SalesState
}

func NewSalesStore() *SalesStore { return &SalesStore{} }

func (s *SalesStore) Dispatch(a SalesAction) SalesState {
	s.state = ReduceSales(s.state, a)
	return s.state
}

func (s *SalesStore) State() SalesState { return s.state }
