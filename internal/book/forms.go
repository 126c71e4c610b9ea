package book

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// bookForm carries the mutable fields. Empty strings are accepted.
type bookForm struct {
	Title  string
	Author string
	Notes  string
}

type editForm struct {
	ID string `validate:"required"`
	bookForm
}

type deleteForm struct {
	BookID string `validate:"required"`
}

func readBookForm(r *http.Request) bookForm {
	return bookForm{
		Title:  r.PostFormValue("title"),
		Author: r.PostFormValue("author"),
		Notes:  r.PostFormValue("notes"),
	}
}

func readEditForm(r *http.Request) editForm {
	return editForm{
		ID:       strings.TrimSpace(r.PostFormValue("id")),
		bookForm: readBookForm(r),
	}
}

func readDeleteForm(r *http.Request) deleteForm {
	return deleteForm{BookID: strings.TrimSpace(r.PostFormValue("bookId"))}
}
