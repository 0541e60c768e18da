package entity

import "time"

type Product struct {
	Id        int64
	Name      string
	CreatedAt time.Time
}

// ProductMatch is a single fuzzy search hit against the catalog.
// Similarity is the pg_trgm score in [0,1]; a result list is always ordered
// by Similarity descending with ties broken by store-assigned id.
type ProductMatch struct {
	ProductId  int64
	Name       string
	Similarity float64
}
