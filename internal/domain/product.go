package domain

// Product is the outward-facing catalog entity. It is re-derived from the
// stored document on every read; the ID is assigned by the store on creation
// and never changes.
//
// swagger:model
type Product struct {
	// The ID of the product
	//
	// required: true
	// example: 66b1f0a9c4d1a2b3c4d5e6f7
	ID string `json:"id"`

	// The title of the product
	//
	// required: true
	// example: Blue Mug
	Title string `json:"title"`

	// The description of the product
	//
	// required: false
	Description *string `json:"description,omitempty"`

	// The price of the product
	//
	// required: true
	// example: 12.99
	Price float64 `json:"price"`

	// The category of the product
	//
	// required: true
	// example: kitchen
	Category string `json:"category"`

	// Whether the product is in stock
	InStock bool `json:"in_stock"`

	// The image URL of the product
	//
	// required: false
	Image *string `json:"image,omitempty"`

	// The average rating of the product
	Rating float64 `json:"rating"`

	// The number of reviews of the product
	Reviews int `json:"reviews"`
}

// ProductInput is the creation-time entity: a Product without an ID.
// Optional fields are pointers so that an absent field is distinguishable
// from a zero value; defaults are applied when the stored document is read
// back, not at input time.
//
// swagger:model
type ProductInput struct {
	// The title of the product
	//
	// required: true
	Title string `json:"title" validate:"required"`

	// The description of the product
	Description *string `json:"description"`

	// The price of the product
	//
	// required: true
	Price float64 `json:"price"`

	// The category of the product
	//
	// required: true
	Category string `json:"category" validate:"required"`

	// Whether the product is in stock, stored default is true
	InStock *bool `json:"in_stock"`

	// The image URL of the product
	Image *string `json:"image"`

	// The average rating of the product, stored default is 4.5
	Rating *float64 `json:"rating"`

	// The number of reviews of the product, stored default is 0
	Reviews *int `json:"reviews"`
}
