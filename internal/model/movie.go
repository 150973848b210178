package model

// Film catalogue entry
type Film struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Title       string     `json:"title" gorm:"index;not null"`
	Year        int        `json:"year"`
	Length      int        `json:"duration"` // minutes
	Director    string     `json:"director"`
	Description string     `json:"description"`
	Categories  []Category `json:"categorias" gorm:"many2many:category_films;constraint:OnDelete:CASCADE"`
	ImageURL    string     `json:"image_url"`
	FilmURL     string     `json:"film_url"`
	TrailerURL  string     `json:"trailer_url"`
}

// Category film genre label
type Category struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Title string `json:"nombre" gorm:"uniqueIndex;not null"`
}

// DedupeCategories drops repeated categories, keeping first-seen order
func (f *Film) DedupeCategories() {
	if len(f.Categories) < 2 {
		return
	}
	seen := make(map[uint]struct{}, len(f.Categories))
	out := f.Categories[:0]
	for _, c := range f.Categories {
		if _, ok := seen[c.ID]; ok {
			continue
		}
		seen[c.ID] = struct{}{}
		out = append(out, c)
	}
	f.Categories = out
}
