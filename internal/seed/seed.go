// Package seed populates the product catalog with a baseline set of
// coatings so a fresh install can quote a standard system immediately.
package seed

import (
	"database/sql"
	"fmt"
)

type product struct {
	Name           string
	CoatingType    string
	VolumeSolids   float64
	VOCContent     float64
	PricePerGallon float64
}

// defaultProducts is one representative product per layer of a
// conventional steel coating system, plus a waterborne alternative.
var defaultProducts = []product{
	{Name: "Zinc-Rich Epoxy Primer", CoatingType: "zinc-rich", VolumeSolids: 60, VOCContent: 340, PricePerGallon: 85},
	{Name: "Epoxy Intermediate", CoatingType: "epoxy", VolumeSolids: 72, VOCContent: 250, PricePerGallon: 55},
	{Name: "Polyurethane Topcoat", CoatingType: "polyurethane", VolumeSolids: 65, VOCContent: 180, PricePerGallon: 65},
	{Name: "Acrylic Waterborne Topcoat", CoatingType: "acrylic", VolumeSolids: 42, VOCContent: 95, PricePerGallon: 38},
}

// Stats contains seed operation counters.
type Stats struct {
	Inserts int
}

// Run executes the startup seed in an idempotent way.
func Run(database *sql.DB) (Stats, error) {
	tx, err := database.Begin()
	if err != nil {
		return Stats{}, fmt.Errorf("begin seed transaction: %w", err)
	}

	stats := Stats{}
	for _, p := range defaultProducts {
		if err := ensureProduct(tx, p, &stats); err != nil {
			_ = tx.Rollback()
			return Stats{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return Stats{}, fmt.Errorf("commit seed transaction: %w", err)
	}

	return stats, nil
}

func ensureProduct(tx *sql.Tx, p product, stats *Stats) error {
	var exists bool
	if err := tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM products WHERE name = ? LIMIT 1)`, p.Name).Scan(&exists); err != nil {
		return fmt.Errorf("check product existence: %w", err)
	}
	if exists {
		return nil
	}

	if _, err := tx.Exec(`
		INSERT INTO products (name, coating_type, volume_solids, voc_content, price_per_gallon, notes, active)
		VALUES (?, ?, ?, ?, ?, '', TRUE)
	`, p.Name, p.CoatingType, p.VolumeSolids, p.VOCContent, p.PricePerGallon); err != nil {
		return fmt.Errorf("insert product %q: %w", p.Name, err)
	}
	stats.Inserts++
	return nil
}
