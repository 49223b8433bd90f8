package repositories

import (
	"agrodirect/models"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ListingRepository keeps farmer-submitted listings in memory. Listings are
// never merged into the catalog.
type ListingRepository struct {
	mu       sync.RWMutex
	byFarmer map[string][]models.Listing
}

func NewListingRepository() *ListingRepository {
	return &ListingRepository{byFarmer: make(map[string][]models.Listing)}
}

func (r *ListingRepository) Create(farmerID, location string, draft models.ListingDraft) models.Listing {
	listing := models.Listing{
		ID:          uuid.NewString(),
		FarmerID:    farmerID,
		Name:        draft.Name,
		Category:    draft.Category,
		Price:       draft.Price,
		Unit:        draft.Unit,
		Quantity:    draft.Quantity,
		Description: draft.Description,
		Location:    location,
		Status:      "active",
		CreatedAt:   time.Now(),
	}

	r.mu.Lock()
	r.byFarmer[farmerID] = append(r.byFarmer[farmerID], listing)
	r.mu.Unlock()

	return listing
}

func (r *ListingRepository) FindByFarmer(farmerID string) []models.Listing {
	r.mu.RLock()
	defer r.mu.RUnlock()

	listings := r.byFarmer[farmerID]
	out := make([]models.Listing, len(listings))
	copy(out, listings)
	return out
}
