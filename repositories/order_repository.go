package repositories

import (
	"agrodirect/models"
	"errors"
	"sync"
)

var ErrOrderNotFound = errors.New("order not found")

// OrderRepository is the process-wide in-memory order ledger.
type OrderRepository struct {
	mu     sync.RWMutex
	orders []models.Order
	byID   map[string]int
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{byID: make(map[string]int)}
}

func (r *OrderRepository) Save(order models.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if idx, ok := r.byID[order.ID]; ok {
		r.orders[idx] = order
		return
	}
	r.byID[order.ID] = len(r.orders)
	r.orders = append(r.orders, order)
}

func (r *OrderRepository) FindByID(id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	if !ok {
		return nil, ErrOrderNotFound
	}
	order := r.orders[idx]
	return &order, nil
}

func (r *OrderRepository) FindByBuyer(buyerID string) []models.Order {
	return r.filter(func(o models.Order) bool { return o.BuyerID == buyerID })
}

// FindByFarmer returns orders containing at least one product of the farmer.
func (r *OrderRepository) FindByFarmer(farmerID string) []models.Order {
	return r.filter(func(o models.Order) bool {
		for _, id := range o.FarmerIDs {
			if id == farmerID {
				return true
			}
		}
		return false
	})
}

func (r *OrderRepository) All() []models.Order {
	return r.filter(func(models.Order) bool { return true })
}

func (r *OrderRepository) filter(keep func(models.Order) bool) []models.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.Order{}
	for _, o := range r.orders {
		if keep(o) {
			out = append(out, o)
		}
	}
	return out
}
