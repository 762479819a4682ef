package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"agendas-mcp/internal/dataset"
	"agendas-mcp/internal/observability/metrics"
	"agendas-mcp/internal/stats"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureDoc = `{"dados": [
  {"Unidade": "Unit A", "Profissional": "Ana Maria Souza", "Especialidade": "Cardiology", "CategoriaEspecialidade": "Medical",
   "Situacao_Horario": "Agendado", "StatusMonitoramento": "Realizado", "DataQuadro": "2026-01-02"},
  {"Unidade": "Unit A", "Profissional": "Ana Maria Souza", "Especialidade": "Cardiology", "CategoriaEspecialidade": "Medical",
   "Situacao_Horario": "Livre", "DataQuadro": "2026-01-03"},
  {"Unidade": "Unit A", "Profissional": "Ana Maria Souza", "Especialidade": "Cardiology", "CategoriaEspecialidade": "Medical",
   "Situacao_Horario": "Agendado", "StatusMonitoramento": "Realizado", "DataQuadro": "2026-01-05"},
  {"Unidade": "Unit B", "Profissional": "Bruno Lima", "Especialidade": "Psychology", "CategoriaEspecialidade": "Multi",
   "Situacao_Horario": "Agendado", "StatusMonitoramento": "Ausente", "DataQuadro": "2026-01-06"},
  {"Unidade": "Unit B", "Profissional": "Bruno Lima", "Especialidade": "Psychology", "CategoriaEspecialidade": "Multi",
   "Situacao_Horario": "Bloqueado", "DataQuadro": "2026-01-12"}
]}`

type testEnv struct {
	router http.Handler
	store  *dataset.Store
	path   string
}

func newTestEnv(t *testing.T, writeFixture, load bool) *testEnv {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dados.json")
	if writeFixture {
		require.NoError(t, os.WriteFile(path, []byte(fixtureDoc), 0o644))
	}

	reg := prometheus.NewRegistry()
	m := metrics.NewDashboardMetrics(reg)
	store := dataset.NewStore(dataset.NewLoader([]dataset.Source{dataset.FileSource{Path: path}}, dataset.LoaderConfig{}), m)
	if load {
		require.NoError(t, store.Load(context.Background()))
	}

	return &testEnv{
		router: New(&Config{
			Store:          store,
			Metrics:        m,
			MetricsHandler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		}),
		store: store,
		path:  path,
	}
}

func (e *testEnv) do(t *testing.T, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t, false, false)
	rec := env.do(t, http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok"`)
}

func TestNotReadyThenReload(t *testing.T) {
	env := newTestEnv(t, false, false)

	rec := env.do(t, http.MethodGet, "/api/kpis")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var body errorResponse
	decode(t, rec, &body)
	assert.Contains(t, body.Error, "not ready")
	require.NotNil(t, body.Status)
	assert.Equal(t, dataset.StateLoading, body.Status.State)

	rec = env.do(t, http.MethodPost, "/api/reload")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	body = errorResponse{}
	decode(t, rec, &body)
	assert.Equal(t, dataset.StateFailed, body.Status.State)

	require.NoError(t, os.WriteFile(env.path, []byte(fixtureDoc), 0o644))
	rec = env.do(t, http.MethodPost, "/api/reload")
	assert.Equal(t, http.StatusOK, rec.Code)

	var st dataset.Status
	decode(t, env.do(t, http.MethodGet, "/api/status"), &st)
	assert.Equal(t, dataset.StateReady, st.State)
	assert.Equal(t, 5, st.Records)
}

func TestKPIs(t *testing.T) {
	env := newTestEnv(t, true, true)

	rec := env.do(t, http.MethodGet, "/api/kpis?week=2")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		KPIs       stats.KPISummary  `json:"kpis"`
		Comparison *stats.Comparison `json:"comparison"`
	}
	decode(t, rec, &body)
	assert.Equal(t, 2, body.KPIs.Total)
	assert.Equal(t, 1, body.KPIs.Completed)
	assert.Equal(t, 1, body.KPIs.Absent)
	assert.InDelta(t, 50.0, body.KPIs.AbsenteeismRate, 0.001)
	require.NotNil(t, body.Comparison)
	assert.Equal(t, 1, body.Comparison.Week)

	rec = env.do(t, http.MethodGet, "/api/kpis?week=1&week=2&facility=Unit+A")
	require.Equal(t, http.StatusOK, rec.Code)
	body.Comparison = nil
	decode(t, rec, &body)
	assert.Equal(t, 3, body.KPIs.Total)
	assert.Nil(t, body.Comparison)
}

func TestBadRequests(t *testing.T) {
	env := newTestEnv(t, true, true)

	for _, target := range []string{
		"/api/kpis?week=0",
		"/api/series?week=1,x",
		"/api/specialties?sort=popularity",
		"/api/specialties?dir=up",
		"/api/dashboard?sort=name&dir=sideways",
	} {
		t.Run(target, func(t *testing.T) {
			rec := env.do(t, http.MethodGet, target)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			var body errorResponse
			decode(t, rec, &body)
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestSpecialtiesSorted(t *testing.T) {
	env := newTestEnv(t, true, true)

	rec := env.do(t, http.MethodGet, "/api/specialties?sort=name&dir=asc")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Sort        stats.SortSpec         `json:"sort"`
		Specialties []stats.GroupBreakdown `json:"specialties"`
	}
	decode(t, rec, &body)
	assert.Equal(t, stats.SortKey("name"), body.Sort.Key)
	require.Len(t, body.Specialties, 2)
	assert.Equal(t, "Cardiology", body.Specialties[0].Name)
}

func TestRankingsAndSeries(t *testing.T) {
	env := newTestEnv(t, true, true)

	var prof struct {
		Professionals []stats.ProfessionalBreakdown `json:"professionals"`
	}
	decode(t, env.do(t, http.MethodGet, "/api/professionals"), &prof)
	require.Len(t, prof.Professionals, 2)
	assert.Equal(t, "Ana Souza", prof.Professionals[0].ShortName)

	var blocked struct {
		Blocked []stats.BlockedEntry `json:"blocked"`
	}
	decode(t, env.do(t, http.MethodGet, "/api/blocked"), &blocked)
	require.Len(t, blocked.Blocked, 1)
	assert.Equal(t, "12/01/2026", blocked.Blocked[0].DaysLabel)

	var series struct {
		Series stats.Series `json:"series"`
	}
	decode(t, env.do(t, http.MethodGet, "/api/series?weeks=3"), &series)
	assert.Equal(t, stats.ModeDaily, series.Series.Mode)
	assert.Len(t, series.Series.Points, stats.NumDays)
	assert.Equal(t, 1, series.Series.Points[11].Blocked)

	decode(t, env.do(t, http.MethodGet, "/api/series"), &series)
	assert.Equal(t, stats.ModeWeekly, series.Series.Mode)
	assert.Len(t, series.Series.Points, stats.NumWeeks)
}

func TestOptionsAndDashboard(t *testing.T) {
	env := newTestEnv(t, true, true)

	var opts stats.FilterOptions
	decode(t, env.do(t, http.MethodGet, "/api/options?category=Medical"), &opts)
	assert.Equal(t, []string{"Cardiology"}, opts.Specialties)
	assert.Len(t, opts.Weeks, 6)

	var d stats.Dashboard
	decode(t, env.do(t, http.MethodGet, "/api/dashboard?category=Multi"), &d)
	assert.Equal(t, 2, d.KPIs.Total)
	assert.Len(t, d.Specialties, 1)
	assert.Equal(t, stats.DefaultSort(), d.Sort)
}

func TestMetricsEndpoint(t *testing.T) {
	env := newTestEnv(t, true, true)
	env.do(t, http.MethodGet, "/api/kpis")

	rec := env.do(t, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `agendas_dashboard_computations_total{surface="http",view="kpis"} 1`), body)
	assert.Contains(t, body, "agendas_dataset_records 5")
}
