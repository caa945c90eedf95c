package models

// ProductData holds the user-supplied fields of a product. The creation
// input and the API output share it, so both carry the same validation
// rules.
type ProductData struct {
	Title       string   `json:"title" bson:"title" validate:"required"`
	Description string   `json:"description,omitempty" bson:"description,omitempty"`
	Price       *float64 `json:"price" bson:"price" validate:"required,gte=0"`
	Category    string   `json:"category,omitempty" bson:"category,omitempty"`
	InStock     bool     `json:"in_stock" bson:"in_stock"`
	ImageURLs   []string `json:"image_urls" bson:"image_urls" validate:"dive,url"`
	VideoURL    string   `json:"video_url,omitempty" bson:"video_url,omitempty" validate:"omitempty,url"`
}

// NewProductData returns a ProductData with defaults applied. Decoding a
// request body on top of it leaves absent fields at their default.
func NewProductData() ProductData {
	return ProductData{
		InStock:   true,
		ImageURLs: []string{},
	}
}

// Product is the API view of a stored product: the validated core plus the
// store-assigned identifier. Store-internal fields (native identifier,
// timestamps) are stripped before a Product is built.
type Product struct {
	ID string `json:"id"`
	ProductData
}
