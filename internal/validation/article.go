package validation

// CreateArticleInput is the schema for creating an article
type CreateArticleInput struct {
	Title      string   `json:"title" validate:"required,max=255"`
	Summary    *string  `json:"summary" validate:"omitempty,max=1000"`
	Image      *string  `json:"image" validate:"omitempty,url,max=500"`
	Tags       []string `json:"tags" validate:"omitempty,max=5,dive,min=1,max=50"`
	DatePosted *string  `json:"datePosted" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Status     string   `json:"status" validate:"omitempty,oneof=draft published"`
	Content    *string  `json:"content" validate:"omitempty,max=100000"`
	Slug       string   `json:"slug" validate:"required,max=255,slug"`
}

// UpdateArticleInput is the schema for updating an article. Every field
// is optional, but a slug given must still satisfy the slug format.
type UpdateArticleInput struct {
	Title      *string  `json:"title" validate:"omitempty,min=1,max=255"`
	Summary    *string  `json:"summary" validate:"omitempty,max=1000"`
	Image      *string  `json:"image" validate:"omitempty,url,max=500"`
	Tags       []string `json:"tags" validate:"omitempty,max=5,dive,min=1,max=50"`
	DatePosted *string  `json:"datePosted" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Status     *string  `json:"status" validate:"omitempty,oneof=draft published"`
	Content    *string  `json:"content" validate:"omitempty,max=100000"`
	Slug       *string  `json:"slug" validate:"omitempty,max=255,slug"`
}

// CreateArticle validates input for article creation
func CreateArticle(in *CreateArticleInput) error {
	return structOf(in)
}

// UpdateArticle validates input for article updates
func UpdateArticle(in *UpdateArticleInput) error {
	return structOf(in)
}
