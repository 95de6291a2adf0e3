package models

import "github.com/google/uuid"

// SampleArtworks returns the fixed catalog used to populate an empty store.
// Each call assigns fresh ids, so re-seeding a wiped database produces new
// identifiers.
func SampleArtworks() []Artwork {
	return []Artwork{
		{
			ID:           uuid.NewString(),
			Title:        "Azure Dreams",
			Price:        850.00,
			Medium:       "Acrylic on Canvas",
			Size:         "24\" x 36\"",
			YearCreated:  2024,
			Description:  "A mesmerizing abstract composition featuring flowing blue and white elements that evoke the tranquility of ocean waves and sky.",
			ImageURL:     "https://images.unsplash.com/photo-1595878715977-2e8f8df18ea8",
			Category:     "abstract",
			Availability: AvailabilityAvailable,
		},
		{
			ID:           uuid.NewString(),
			Title:        "Dynamic Blue",
			Price:        720.00,
			Medium:       "Oil on Canvas",
			Size:         "20\" x 24\"",
			YearCreated:  2024,
			Description:  "Bold abstract expressionism with powerful blue and white strokes creating movement and energy.",
			ImageURL:     "https://images.unsplash.com/photo-1550843739-2e9e3eddeccb",
			Category:     "abstract",
			Availability: AvailabilityAvailable,
		},
		{
			ID:           uuid.NewString(),
			Title:        "Textured Serenity",
			Price:        950.00,
			Medium:       "Mixed Media",
			Size:         "30\" x 40\"",
			YearCreated:  2023,
			Description:  "Rich textural elements combined with soothing blue tones create depth and contemplative beauty.",
			ImageURL:     "https://images.unsplash.com/photo-1558447281-b59a4a4ca7b0",
			Category:     "abstract",
			Availability: AvailabilityAvailable,
		},
		{
			ID:           uuid.NewString(),
			Title:        "Peaceful Valley",
			Price:        1200.00,
			Medium:       "Oil on Canvas",
			Size:         "36\" x 48\"",
			YearCreated:  2024,
			Description:  "A serene landscape capturing the quiet beauty of rolling hills under an expansive blue sky.",
			ImageURL:     "https://images.unsplash.com/photo-1661089359976-de812515d817",
			Category:     "landscape",
			Availability: AvailabilityAvailable,
		},
		{
			ID:           uuid.NewString(),
			Title:        "Mountain Majesty",
			Price:        1450.00,
			Medium:       "Acrylic on Canvas",
			Size:         "40\" x 60\"",
			YearCreated:  2023,
			Description:  "Majestic mountain peaks painted with atmospheric perspective and beautiful blue atmospheric effects.",
			ImageURL:     "https://images.unsplash.com/photo-1648728066884-74aaf02585a5",
			Category:     "landscape",
			Availability: AvailabilityAvailable,
		},
		{
			ID:           uuid.NewString(),
			Title:        "Sky Dreams",
			Price:        675.00,
			Medium:       "Digital Art Print",
			Size:         "18\" x 24\"",
			YearCreated:  2024,
			Description:  "An artistic interpretation of sky and clouds with creative blue elements and modern composition.",
			ImageURL:     "https://images.unsplash.com/photo-1594201272716-9ad78d16848b",
			Category:     "digital",
			Availability: AvailabilityAvailable,
		},
		{
			ID:           uuid.NewString(),
			Title:        "Fluid Harmony",
			Price:        780.00,
			Medium:       "Pour Painting",
			Size:         "24\" x 30\"",
			YearCreated:  2024,
			Description:  "A beautiful fluid art piece with marbled blue, green, and pink tones creating organic harmony.",
			ImageURL:     "https://images.unsplash.com/photo-1614519679717-a75c4201c2df",
			Category:     "abstract",
			Availability: AvailabilityAvailable,
		},
		{
			ID:           uuid.NewString(),
			Title:        "Digital Visions",
			Price:        525.00,
			Medium:       "Digital Art Print",
			Size:         "16\" x 20\"",
			YearCreated:  2024,
			Description:  "Contemporary digital artwork featuring blue tones and artistic composition with modern appeal.",
			ImageURL:     "https://images.unsplash.com/photo-1551596210-4da509bd1e99",
			Category:     "digital",
			Availability: AvailabilityAvailable,
		},
	}
}
