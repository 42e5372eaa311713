package catalog

import (
	"embed"

	"github.com/goccy/go-yaml"

	"github.com/storekit/storefront/pkg/errors"
	"github.com/storekit/storefront/pkg/products"
)

//go:embed fixtures/products.yaml fixtures/reviews.yaml
var fixturesFS embed.FS

// loadFixtureProducts decodes the embedded product set.
func loadFixtureProducts() ([]products.Product, error) {
	data, err := fixturesFS.ReadFile("fixtures/products.yaml")
	if err != nil {
		return nil, errors.WrapIO("read", "fixtures/products.yaml", err)
	}
	var list []products.Product
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, errors.WrapParse("yaml", "fixtures/products.yaml", err)
	}
	return list, nil
}

// loadFixtureReviews decodes the embedded review set.
func loadFixtureReviews() ([]products.Review, error) {
	data, err := fixturesFS.ReadFile("fixtures/reviews.yaml")
	if err != nil {
		return nil, errors.WrapIO("read", "fixtures/reviews.yaml", err)
	}
	var list []products.Review
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, errors.WrapParse("yaml", "fixtures/reviews.yaml", err)
	}
	return list, nil
}
