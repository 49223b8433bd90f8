package repositories

import (
	"agrodirect/models"
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"gopkg.in/yaml.v3"
)

//go:embed data/catalog.yaml
var seedData []byte

var ErrEmptyCatalog = errors.New("catalog has no products")

type seedFile struct {
	Locations []string         `yaml:"locations"`
	Products  []models.Product `yaml:"products"`
	Users     []models.User    `yaml:"users"`
}

// Catalog is the read-only product list and the valid locations, loaded once.
type Catalog struct {
	Products  []models.Product
	Locations []string
}

type CatalogSource interface {
	Load(ctx context.Context) (*Catalog, error)
}

func parseSeed(data []byte) (*seedFile, error) {
	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed data: %w", err)
	}
	return &seed, nil
}

type StaticCatalogSource struct {
	data []byte
}

func NewStaticCatalogSource() *StaticCatalogSource {
	return &StaticCatalogSource{data: seedData}
}

// NewStaticCatalogSourceFromYAML is used by tests and the CLI to load an alternate catalog.
func NewStaticCatalogSourceFromYAML(data []byte) *StaticCatalogSource {
	return &StaticCatalogSource{data: data}
}

func (s *StaticCatalogSource) Load(ctx context.Context) (*Catalog, error) {
	seed, err := parseSeed(s.data)
	if err != nil {
		return nil, err
	}
	return validateCatalog(&Catalog{Products: seed.Products, Locations: seed.Locations})
}

type PostgresCatalogSource struct {
	db *pgxpool.Pool
}

func NewPostgresCatalogSource(db *pgxpool.Pool) *PostgresCatalogSource {
	return &PostgresCatalogSource{db: db}
}

func (s *PostgresCatalogSource) Load(ctx context.Context) (*Catalog, error) {
	query := `SELECT id, farmer_id, farmer_name, name, category, description, price, unit,
	          quantity, location, COALESCE(image_url, ''), rating
	          FROM products ORDER BY position, id`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	catalog := &Catalog{}
	for rows.Next() {
		var p models.Product
		var category string
		if err := rows.Scan(&p.ID, &p.FarmerID, &p.FarmerName, &p.Name, &category, &p.Description,
			&p.Price, &p.Unit, &p.Quantity, &p.Location, &p.ImageURL, &p.Rating); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		p.Category = models.Category(category)
		catalog.Products = append(catalog.Products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	locRows, err := s.db.Query(ctx, `SELECT name FROM locations ORDER BY position, name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query locations: %w", err)
	}
	defer locRows.Close()

	for locRows.Next() {
		var name string
		if err := locRows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan location: %w", err)
		}
		catalog.Locations = append(catalog.Locations, name)
	}
	if err := locRows.Err(); err != nil {
		return nil, err
	}

	return validateCatalog(catalog)
}

func validateCatalog(c *Catalog) (*Catalog, error) {
	if len(c.Products) == 0 {
		return nil, ErrEmptyCatalog
	}

	seen := make(map[string]bool, len(c.Products))
	for _, p := range c.Products {
		if p.ID == "" {
			return nil, fmt.Errorf("product %q has no id", p.Name)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("duplicate product id %q", p.ID)
		}
		if !p.Category.Valid() {
			return nil, fmt.Errorf("product %q has unknown category %q", p.ID, p.Category)
		}
		if p.Rating < 0 || p.Rating > 5 {
			return nil, fmt.Errorf("product %q rating %.1f out of range", p.ID, p.Rating)
		}
		seen[p.ID] = true
	}
	return c, nil
}
