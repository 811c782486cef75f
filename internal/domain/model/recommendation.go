package model

// OutfitRequest is the questionnaire a logged-in user submits.
type OutfitRequest struct {
	Color     string `json:"color"`
	Gender    string `json:"gender"`
	TopBottom string `json:"top_bottom"`
	Occasion  string `json:"occasion"`
	Style     string `json:"style"`
	Age       string `json:"age"`
}

// Recommendation is one candidate answer: a generated description, a scraped
// image and a static accessory list for the clothing category.
type Recommendation struct {
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	Accessories []string `json:"accessories"`
}
