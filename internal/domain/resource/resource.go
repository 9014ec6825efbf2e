// Package resource describes the six entities managed by the front-end: their
// URL slug, display labels, list columns and the create/edit field tables fed
// to the form normalizer.
package resource

import (
	"fmt"
	"strconv"

	"github.com/jsamuelsen11/disaster-response-web/internal/domain"
	"github.com/jsamuelsen11/disaster-response-web/internal/domain/form"
)

// Mode selects which field table a form page uses.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "create"
}

// Resource is the descriptor of one downstream entity collection.
type Resource struct {
	// Slug is both the API collection path and the page path.
	Slug string

	Singular string
	Plural   string
	// Feminine selects the grammatical gender of generated messages.
	Feminine bool

	ListTitle    string
	CreateTitle  string
	EditTitle    string
	EmptyMessage string

	IDField    string
	TitleField string
	Columns    []Column

	// Create and Edit are nil for list-only resources.
	Create *form.Schema
	Edit   *form.Schema
}

// ReadOnly reports whether the resource can only be listed.
func (r *Resource) ReadOnly() bool {
	return r.Create == nil && r.Edit == nil
}

// Schema returns the field table for mode, or nil.
func (r *Resource) Schema(mode Mode) *form.Schema {
	if mode == ModeEdit {
		return r.Edit
	}
	return r.Create
}

// Path is the list page path.
func (r *Resource) Path() string { return "/" + r.Slug }

// NewPath is the create page path.
func (r *Resource) NewPath() string { return "/" + r.Slug + "/novo" }

// EditPath is the edit page path for id.
func (r *Resource) EditPath(id int64) string {
	return "/" + r.Slug + "/editar/" + strconv.FormatInt(id, 10)
}

// DeletePath is the delete action path for id.
func (r *Resource) DeletePath(id int64) string {
	return "/" + r.Slug + "/" + strconv.FormatInt(id, 10) + "/excluir"
}

// RecordID extracts the entity id from rec.
func (r *Resource) RecordID(rec domain.Record) (int64, bool) {
	return rec.Int(r.IDField)
}

// RecordTitle returns the first non-empty title among recs, falling back to
// "ID: n" with the first id found. Later records fill in what earlier ones
// lack, e.g. the submitted payload behind an empty API answer.
func (r *Resource) RecordTitle(recs ...domain.Record) string {
	for _, rec := range recs {
		if t := rec.Text(r.TitleField); t != "" {
			return t
		}
	}
	for _, rec := range recs {
		if id, ok := r.RecordID(rec); ok {
			return "ID: " + strconv.FormatInt(id, 10)
		}
	}
	return ""
}

// CreatedMessage is shown after a successful create.
func (r *Resource) CreatedMessage(title string, id int64) string {
	return fmt.Sprintf("%s \"%s\" %s com sucesso! ID: %d", r.Singular, title, r.agree("criado"), id)
}

// UpdatedMessage is shown after a successful update.
func (r *Resource) UpdatedMessage(title string, id int64) string {
	return fmt.Sprintf("%s \"%s\" %s com sucesso! ID: %d", r.Singular, title, r.agree("atualizado"), id)
}

// DeletedMessage is flashed on the list page after a delete.
func (r *Resource) DeletedMessage(id int64) string {
	return fmt.Sprintf("%s ID %d %s com sucesso!", r.Singular, id, r.agree("excluído"))
}

// LoadFailedMessage prefixes a load failure with the resource name.
func (r *Resource) LoadFailedMessage(detail string) string {
	return fmt.Sprintf("Falha ao buscar dados %s %s: %s", r.article(), lower(r.Singular), detail)
}

// LoadUnknownErrorMessage is the generic edit-page load failure.
func (r *Resource) LoadUnknownErrorMessage() string {
	return fmt.Sprintf("Ocorreu um erro desconhecido ao carregar os dados %s %s.", r.article(), lower(r.Singular))
}

// ListFailedMessage reports a list page that could not be fetched.
func (r *Resource) ListFailedMessage(detail string) string {
	return fmt.Sprintf("Falha ao buscar %s: %s", lower(r.Plural), detail)
}

// DeleteFailedMessage is flashed on the list page when a delete fails.
func (r *Resource) DeleteFailedMessage(detail string) string {
	return fmt.Sprintf("Falha ao excluir %s: %s", lower(r.Singular), detail)
}

// ConfirmDeleteMessage asks for confirmation before deleting id.
func (r *Resource) ConfirmDeleteMessage(id int64) string {
	return fmt.Sprintf("Tem certeza que deseja excluir %s %s ID %d? Esta ação não pode ser desfeita.", r.definite(), lower(r.Singular), id)
}

// InvalidIDMessage reports a missing or malformed id in the page URL.
func (r *Resource) InvalidIDMessage() string {
	return fmt.Sprintf("ID %s %s não fornecido ou inválido na URL.", r.article(), lower(r.Singular))
}

// UnknownErrorMessage is the generic submit failure for mode.
func (r *Resource) UnknownErrorMessage(mode Mode) string {
	verb := "criar"
	if mode == ModeEdit {
		verb = "atualizar"
	}
	return fmt.Sprintf("Ocorreu um erro desconhecido ao %s %s %s.", verb, r.definite(), lower(r.Singular))
}

// ListUnknownErrorMessage is the generic list page failure.
func (r *Resource) ListUnknownErrorMessage() string {
	return fmt.Sprintf("Ocorreu um erro desconhecido ao carregar %s.", lower(r.Plural))
}

// DeleteUnknownErrorMessage is the generic delete failure.
func (r *Resource) DeleteUnknownErrorMessage() string {
	return fmt.Sprintf("Ocorreu um erro desconhecido ao excluir %s %s.", r.definite(), lower(r.Singular))
}

// agree turns a masculine participle ending in "o" into its feminine form.
func (r *Resource) agree(participle string) string {
	if !r.Feminine {
		return participle
	}
	return participle[:len(participle)-1] + "a"
}

func (r *Resource) article() string {
	if r.Feminine {
		return "da"
	}
	return "do"
}

func (r *Resource) definite() string {
	if r.Feminine {
		return "a"
	}
	return "o"
}
