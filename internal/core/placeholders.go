package core

// PlaceholderImages returns the fixed fallback set shown whenever the
// store is unconfigured or holds no approved records. Callers receive a
// fresh slice each time.
func PlaceholderImages() []Image {
	return []Image{
		{
			URL:   "https://images.unsplash.com/photo-1460518451285-97b6aa326961?q=80&w=1600&auto=format&fit=crop",
			Title: placeholderTitle("Campus lawn (placeholder)"),
			Tags:  []string{"campus", "placeholder"},
		},
		{
			URL:   "https://images.unsplash.com/photo-1523580846011-d3a5bc25702b?q=80&w=1600&auto=format&fit=crop",
			Title: placeholderTitle("Courtyard (placeholder)"),
			Tags:  []string{"courtyard", "placeholder"},
		},
		{
			URL:   "https://images.unsplash.com/photo-1562774053-701939374585?q=80&w=1600&auto=format&fit=crop",
			Title: placeholderTitle("Hallway (placeholder)"),
			Tags:  []string{"hallway", "placeholder"},
		},
	}
}

func placeholderTitle(title string) *string {
	return &title
}
