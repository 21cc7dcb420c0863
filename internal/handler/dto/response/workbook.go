package response

import (
	"blueprint-api/internal/domain/product"
	"blueprint-api/internal/usecase/queries"
)

type CatalogEntryResponse struct {
	ProductType string `json:"productType"`
	Title       string `json:"title"`
	Free        bool   `json:"free"`
	HasAccess   bool   `json:"hasAccess"`
}

type CatalogResponse struct {
	Products []CatalogEntryResponse `json:"products"`
}

// WorkbookContentResponse is the gated content descriptor served once the
// entitlement resolver has granted access.
type WorkbookContentResponse struct {
	ProductType string `json:"productType"`
	Title       string `json:"title"`
	ContentPath string `json:"contentPath"`
}

func FromCatalog(access []queries.ProductAccess) *CatalogResponse {
	entries := make([]CatalogEntryResponse, len(access))
	for i, a := range access {
		productType := product.Type(a.ProductType)
		entries[i] = CatalogEntryResponse{
			ProductType: a.ProductType,
			Title:       productType.Title(),
			Free:        productType.IsFree(),
			HasAccess:   a.HasAccess,
		}
	}
	return &CatalogResponse{Products: entries}
}

func FromWorkbookContent(t product.Type) *WorkbookContentResponse {
	return &WorkbookContentResponse{
		ProductType: t.String(),
		Title:       t.Title(),
		ContentPath: "/content/" + t.String(),
	}
}
