package counterexamples

import (
	"fmt"
	"io"

	"github.com/custodia-labs/solidkit/internal/core/domain"
)

// SQLOrderRepository is a concrete low-level store.
type SQLOrderRepository struct {
	out io.Writer
}

// Save prints the simulated write.
func (r *SQLOrderRepository) Save(domain.Order) {
	fmt.Fprintln(r.out, "Saving order to SQL Server")
}

// CoupledOrderService builds its own SQL repository.
//
// Counter-example (DIP): the business operation depends on a concrete
// store. Changing the database means changing this type, and it cannot be
// tested without the database.
type CoupledOrderService struct {
	repository *SQLOrderRepository
}

// NewCoupledOrderService wires the repository itself.
// out only stands in for the database connection.
func NewCoupledOrderService(out io.Writer) *CoupledOrderService {
	return &CoupledOrderService{
		repository: &SQLOrderRepository{out: out},
	}
}

// PlaceOrder saves the order.
func (s *CoupledOrderService) PlaceOrder(order domain.Order) {
	s.repository.Save(order)
}
