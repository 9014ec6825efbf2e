package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/disaster-response-web/internal/app"
	"github.com/jsamuelsen11/disaster-response-web/internal/domain"
	"github.com/jsamuelsen11/disaster-response-web/internal/domain/resource"
	"github.com/jsamuelsen11/disaster-response-web/internal/ports"
)

// --- Home ---

func TestHome_RendersTiles(t *testing.T) {
	t.Parallel()

	f := newPageFixture(t, true)
	f.dashboard.EXPECT().Summary(mock.Anything).Return([]ports.ResourceSummary{
		{Resource: resource.Shelters, Count: 3},
		{Resource: resource.Alerts, Err: &apiError{detail: "Status 502: Bad Gateway", cause: domain.ErrUnavailable}},
		{Resource: resource.Campaigns, Count: 0},
	})

	rec := httptest.NewRecorder()
	f.handler.Home(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	requireStatus(t, rec, http.StatusOK)
	body := rec.Body.String()
	assert.Contains(t, body, "3 registro(s)")
	assert.Contains(t, body, `href="/abrigos-seguros/novo"`)
	assert.Contains(t, body, "Falha ao buscar alertas: Status 502: Bad Gateway")
	assert.NotContains(t, body, `href="/campanhas/novo"`)
}

// --- Team ---

func TestTeam_RendersMembers(t *testing.T) {
	t.Parallel()

	f := newPageFixture(t, true)

	rec := httptest.NewRecorder()
	f.handler.Team(rec, httptest.NewRequest(http.MethodGet, "/integrantes", http.NoBody))

	requireStatus(t, rec, http.StatusOK)
	body := rec.Body.String()
	assert.Contains(t, body, "<title>Sobre a Equipe | ")
	assert.Contains(t, body, "Integrantes do Projeto")
	assert.Contains(t, body, "<h2>Gustavo</h2>")
	assert.Contains(t, body, "RM: 560820")
	assert.Contains(t, body, `<a href="/">Voltar para a Home</a>`)
	f.svc.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- List ---

func TestList_RendersRows(t *testing.T) {
	t.Parallel()

	f := newPageFixture(t, true)
	f.svc.EXPECT().List(mock.Anything, resource.Shelters, 0, 10).Return([]domain.Record{
		{
			"idAbrigo":              json.Number("5"),
			"nomeAbrigo":            "Ginásio <Central>",
			"enderecoCompleto":      "Rua A, 100",
			"statusOperacional":     "aberto",
			"vagasDisponiveisAtual": json.Number("40"),
		},
	}, nil)

	rec := httptest.NewRecorder()
	f.handler.List(rec, getRequest("/abrigos-seguros", map[string]string{"resource": "abrigos-seguros"}))

	requireStatus(t, rec, http.StatusOK)
	body := rec.Body.String()
	assert.Contains(t, body, "Abrigos Seguros Disponíveis")
	assert.Contains(t, body, "Ginásio &lt;Central&gt;")
	assert.NotContains(t, body, "<Central>")
	assert.Contains(t, body, `href="/abrigos-seguros/editar/5"`)
	assert.Contains(t, body, `action="/abrigos-seguros/5/excluir"`)
	assert.Contains(t, body, resource.Shelters.ConfirmDeleteMessage(5))
	assert.Contains(t, body, `href="/abrigos-seguros/novo"`)
}

func TestList_Empty(t *testing.T) {
	t.Parallel()

	f := newPageFixture(t, true)
	f.svc.EXPECT().List(mock.Anything, resource.Occurrences, 0, 10).Return([]domain.Record{}, nil)

	rec := httptest.NewRecorder()
	f.handler.List(rec, getRequest("/ocorrencias", map[string]string{"resource": "ocorrencias"}))

	requireStatus(t, rec, http.StatusOK)
	assert.Contains(t, rec.Body.String(), "Nenhuma ocorrência encontrada.")
}

func TestList_ReadOnlyResourceHasNoActions(t *testing.T) {
	t.Parallel()

	f := newPageFixture(t, true)
	f.svc.EXPECT().List(mock.Anything, resource.Campaigns, 0, 10).Return([]domain.Record{
		{"idCampanha": float64(2), "nomeCampanha": "Agasalho"},
	}, nil)

	rec := httptest.NewRecorder()
	f.handler.List(rec, getRequest("/campanhas", map[string]string{"resource": "campanhas"}))

	requireStatus(t, rec, http.StatusOK)
	body := rec.Body.String()
	assert.NotContains(t, body, "/campanhas/editar/")
	assert.NotContains(t, body, "/excluir")
	assert.NotContains(t, body, `href="/campanhas/novo"`)
}

func TestList_ShowsFlash(t *testing.T) {
	t.Parallel()

	f := newPageFixture(t, true)
	f.svc.EXPECT().List(mock.Anything, resource.Alerts, 0, 10).Return(nil, nil)

	q := url.Values{"flash": {"Alerta ID 4 excluído com sucesso!"}, "flash_kind": {"success"}}
	rec := httptest.NewRecorder()
	f.handler.List(rec, getRequest("/alertas?"+q.Encode(), map[string]string{"resource": "alertas"}))

	requireStatus(t, rec, http.StatusOK)
	assert.Contains(t, rec.Body.String(), `class="flash success"`)
	assert.Contains(t, rec.Body.String(), "Alerta ID 4 excluído com sucesso!")
}

func TestList_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantText   string
	}{
		{
			name:       "api failure",
			err:        &apiError{detail: "Status 500: Internal Server Error", cause: domain.ErrUnavailable},
			wantStatus: http.StatusBadGateway,
			wantText:   "Falha ao buscar abrigos seguros: Status 500: Internal Server Error",
		},
		{
			name:       "not configured",
			err:        domain.ErrNotConfigured,
			wantStatus: http.StatusServiceUnavailable,
			wantText:   app.MsgNotConfigured,
		},
		{
			name:       "unknown",
			err:        assert.AnError,
			wantStatus: http.StatusBadGateway,
			wantText:   resource.Shelters.ListUnknownErrorMessage(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newPageFixture(t, true)
			f.svc.EXPECT().List(mock.Anything, resource.Shelters, 0, 10).Return(nil, tt.err)

			rec := httptest.NewRecorder()
			f.handler.List(rec, getRequest("/abrigos-seguros", map[string]string{"resource": "abrigos-seguros"}))

			requireStatus(t, rec, tt.wantStatus)
			assert.Contains(t, rec.Body.String(), tt.wantText)
			assert.NotContains(t, rec.Body.String(), "<table>")
		})
	}
}

func TestList_UnknownResource(t *testing.T) {
	t.Parallel()

	f := newPageFixture(t, true)

	rec := httptest.NewRecorder()
	f.handler.List(rec, getRequest("/usuarios", map[string]string{"resource": "usuarios"}))

	requireStatus(t, rec, http.StatusNotFound)
	assert.Contains(t, rec.Body.String(), "Página não encontrada")
	f.svc.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- Delete ---

func flashOf(t *testing.T, rec *httptest.ResponseRecorder) (path, kind, msg string) {
	t.Helper()

	require.Equal(t, http.StatusSeeOther, rec.Code, "body = %s", rec.Body.String())
	loc, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	return loc.Path, loc.Query().Get("flash_kind"), loc.Query().Get("flash")
}

func TestDelete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		id       string
		setup    func(*pageFixture)
		wantKind string
		wantMsg  string
	}{
		{
			name: "success",
			id:   "4",
			setup: func(f *pageFixture) {
				f.svc.EXPECT().Delete(mock.Anything, resource.Alerts, int64(4)).Return(nil)
			},
			wantKind: "success",
			wantMsg:  resource.Alerts.DeletedMessage(4),
		},
		{
			name: "api failure",
			id:   "4",
			setup: func(f *pageFixture) {
				f.svc.EXPECT().Delete(mock.Anything, resource.Alerts, int64(4)).
					Return(&apiError{detail: "Alerta vinculado a um relato", cause: domain.ErrConflict})
			},
			wantKind: "error",
			wantMsg:  "Falha ao excluir alerta: Alerta vinculado a um relato",
		},
		{
			name: "not configured",
			id:   "4",
			setup: func(f *pageFixture) {
				f.svc.EXPECT().Delete(mock.Anything, resource.Alerts, int64(4)).Return(domain.ErrNotConfigured)
			},
			wantKind: "error",
			wantMsg:  app.MsgNotConfigured,
		},
		{
			name:     "invalid id",
			id:       "abc",
			setup:    func(*pageFixture) {},
			wantKind: "error",
			wantMsg:  resource.Alerts.InvalidIDMessage(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newPageFixture(t, true)
			tt.setup(f)

			req := httptest.NewRequest(http.MethodPost, "/alertas/"+tt.id+"/excluir", http.NoBody)
			req = withChiParams(req, map[string]string{"resource": "alertas", "id": tt.id})
			rec := httptest.NewRecorder()
			f.handler.Delete(rec, req)

			path, kind, msg := flashOf(t, rec)
			assert.Equal(t, "/alertas", path)
			assert.Equal(t, tt.wantKind, kind)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

// --- Error pages ---

func TestErrorPages(t *testing.T) {
	t.Parallel()

	f := newPageFixture(t, true)

	tests := []struct {
		name    string
		handler http.HandlerFunc
		status  int
		text    string
	}{
		{name: "not found", handler: f.handler.NotFound, status: http.StatusNotFound, text: "Página não encontrada"},
		{name: "internal", handler: f.handler.InternalError, status: http.StatusInternalServerError, text: "Erro interno"},
		{name: "timeout", handler: f.handler.GatewayTimeout, status: http.StatusGatewayTimeout, text: "Tempo esgotado"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			tt.handler(rec, httptest.NewRequest(http.MethodGet, "/x", http.NoBody))

			requireStatus(t, rec, tt.status)
			assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
			assert.Contains(t, rec.Body.String(), tt.text)
		})
	}
}
