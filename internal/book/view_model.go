package book

// Template names understood by the presentation layer.
const (
	IndexTemplate  = "index"
	FormTemplate   = "book"
	DetailTemplate = "book_specific"
)

// ListView is rendered by the index page.
type ListView struct {
	Books []Book
}

// FormView drives both the new-book and the edit form.
type FormView struct {
	Book    Book
	Editing bool
	Action  string
}

// DetailView is rendered by the single-book page.
type DetailView struct {
	Book Book
}
