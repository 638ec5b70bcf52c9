package domain

const (
	// PlaceholderImageURL is served when a product carries no usable image.
	PlaceholderImageURL = "https://via.placeholder.com/300"

	placeholderTitle       = "No Title"
	placeholderDescription = "No description available"
)

type Product struct {
	ID               string            `json:"id"`
	Title            string            `json:"title"`
	Price            float64           `json:"price"`
	Category         string            `json:"category"`
	Description      string            `json:"description"`
	ImageURL         string            `json:"imageUrl"`
	AdditionalImages []string          `json:"additionalImages,omitempty"`
	Specifications   map[string]string `json:"specifications,omitempty"`
}

type Category struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"imageUrl"`
}

// Normalize fills placeholder values for missing display fields so a
// partially populated store entry still renders. Price is left as-is;
// a zero price is displayable.
func (p *Product) Normalize() {
	if p.Title == "" {
		p.Title = placeholderTitle
	}
	if p.Description == "" {
		p.Description = placeholderDescription
	}
	if p.ImageURL == "" {
		p.ImageURL = PlaceholderImageURL
	}
}

// Images returns the primary image followed by any additional images,
// dropping empty entries.
func (p *Product) Images() []string {
	images := make([]string, 0, 1+len(p.AdditionalImages))
	if p.ImageURL != "" {
		images = append(images, p.ImageURL)
	}
	for _, img := range p.AdditionalImages {
		if img != "" {
			images = append(images, img)
		}
	}
	if len(images) == 0 {
		images = append(images, PlaceholderImageURL)
	}
	return images
}
