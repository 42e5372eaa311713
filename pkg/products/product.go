// Package products defines the storefront's catalog data model and the
// filter/sort/paginate engine that turns a query into a page of results.
package products

import "time"

// Product is a single catalog item. Products are immutable reference data:
// the stores copy them into entries and never write them back.
type Product struct {
	ID          int     `json:"id" yaml:"id"`
	Title       string  `json:"title" yaml:"title"`
	Description string  `json:"description" yaml:"description"`
	Category    string  `json:"category" yaml:"category"`
	Price       float64 `json:"price" yaml:"price"`
	Rating      float64 `json:"rating" yaml:"rating"`
	Stock       int     `json:"stock" yaml:"stock"`
	Thumbnail   string  `json:"thumbnail,omitempty" yaml:"thumbnail,omitempty"`
}

// Review is a customer review attached to a product by ID.
// Reviews are read-only; a product may have many.
type Review struct {
	ID        int       `json:"id" yaml:"id"`
	ProductID int       `json:"product_id" yaml:"product_id"`
	Author    string    `json:"author" yaml:"author"`
	Rating    float64   `json:"rating" yaml:"rating"`
	Comment   string    `json:"comment" yaml:"comment"`
	Date      time.Time `json:"date" yaml:"date"`
}
