// Package powerbitest provides an in-memory fake of the Power BI REST API
// for tests. It serves the admin, reports, datasets and groups endpoints
// under /v1.0/myorg with chi, keeps state as raw JSON objects, and can be
// told to fail individual calls.
//
//	srv := powerbitest.New(t)
//	srv.AddReport("g1", map[string]any{"id": "r1", "name": "Sales"})
//	client := httpclient.New(srv.ClientConfig(), "powerbi-api", auth.StaticToken(powerbitest.Token), nil, logger)
package powerbitest

import (
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-powerbi/internal/platform/config"
)

// Token is the bearer token the fake accepts.
const Token = "powerbitest-token"

// Root is the path prefix of every endpoint.
const Root = "/v1.0/myorg"

// Server is a running fake. All methods are safe for concurrent use.
type Server struct {
	*httptest.Server

	mu           sync.Mutex
	groups       []map[string]any
	groupUsers   map[string][]map[string]any
	reports      map[string][]map[string]any // by group id, "" is My workspace
	reportUsers  map[string][]map[string]any
	datasets     map[string][]map[string]any
	datasetUsers map[string][]map[string]any
	exports      map[string][]byte
	activity     [][]map[string]any
	refreshes    []string
	failures     map[string]int
	requests     []string
}

// New starts a fake and closes it when the test ends.
func New(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		groupUsers:   make(map[string][]map[string]any),
		reports:      make(map[string][]map[string]any),
		reportUsers:  make(map[string][]map[string]any),
		datasets:     make(map[string][]map[string]any),
		datasetUsers: make(map[string][]map[string]any),
		exports:      make(map[string][]byte),
		failures:     make(map[string]int),
	}
	s.Server = httptest.NewServer(s.routes())
	t.Cleanup(s.Close)
	return s
}

// ClientConfig returns a client configuration pointed at the fake with one
// attempt per call.
func (s *Server) ClientConfig() *config.ClientConfig {
	return &config.ClientConfig{
		BaseURL:    s.URL,
		APIVersion: "v1.0",
		Org:        "myorg",
		Timeout:    5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     10 * time.Millisecond,
			Multiplier:      1,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   100,
			Timeout:       time.Second,
			HalfOpenLimit: 1,
		},
	}
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	r.Route(Root, func(r chi.Router) {
		r.Use(s.requestID, s.authorize, s.record, s.injectFailures)

		// Both "My workspace" and "groups/{groupID}" forms.
		both := func(method, pattern string, h http.HandlerFunc) {
			r.MethodFunc(method, pattern, h)
			r.MethodFunc(method, "/groups/{groupID}"+pattern, h)
		}

		both(http.MethodGet, "/reports", s.listReports)
		both(http.MethodGet, "/reports/{reportID}", s.getReport)
		both(http.MethodDelete, "/reports/{reportID}", s.deleteReport)
		both(http.MethodPost, "/reports/{reportID}/clone", s.cloneReport)
		both(http.MethodPost, "/reports/{reportID}/rebind", s.rebindReport)
		both(http.MethodGet, "/reports/{reportID}/Export", s.exportReport)
		r.Post("/groups/{groupID}/reports/{reportID}/generatetoken", s.generateToken)

		both(http.MethodGet, "/datasets", s.listDatasets)
		both(http.MethodGet, "/datasets/{datasetID}", s.getDataset)
		both(http.MethodDelete, "/datasets/{datasetID}", s.deleteDataset)
		both(http.MethodPost, "/datasets/{datasetID}/refreshes", s.refreshDataset)
		both(http.MethodPost, "/datasets/{datasetID}/users", s.addDatasetUser)

		r.Get("/groups", s.listGroups)
		r.Post("/groups", s.createGroup)
		r.Delete("/groups/{groupID}", s.deleteGroup)
		r.Get("/groups/{groupID}/users", s.listGroupUsers)
		r.Post("/groups/{groupID}/users", s.addGroupUser)
		r.Delete("/groups/{groupID}/users/{user}", s.deleteGroupUser)

		r.Route("/admin", func(r chi.Router) {
			r.Get("/groups", s.adminGroups)
			r.Get("/groups/{groupID}/users", s.listGroupUsers)
			r.Get("/groups/{groupID}/reports", s.listReports)
			r.Get("/groups/{groupID}/datasets", s.listDatasets)
			r.Get("/reports", s.adminReports)
			r.Get("/reports/{reportID}/users", s.listReportUsers)
			r.Get("/datasets", s.adminDatasets)
			r.Get("/datasets/{datasetID}/users", s.listDatasetUsers)
			r.Get("/activityevents", s.activityEvents)
		})
	})

	return r
}

// --- seeding ---

// AddGroup adds a workspace.
func (s *Server) AddGroup(g map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.groups = append(s.groups, g)
}

// AddGroupUser adds a member to a workspace.
func (s *Server) AddGroupUser(groupID string, u map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.groupUsers[groupID] = append(s.groupUsers[groupID], u)
}

// AddReport adds a report to a workspace, or to My workspace when groupID
// is empty.
func (s *Server) AddReport(groupID string, rep map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports[groupID] = append(s.reports[groupID], rep)
}

// AddReportUser grants a principal access to a report.
func (s *Server) AddReportUser(reportID string, u map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reportUsers[reportID] = append(s.reportUsers[reportID], u)
}

// AddDataset adds a dataset to a workspace.
func (s *Server) AddDataset(groupID string, ds map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.datasets[groupID] = append(s.datasets[groupID], ds)
}

// AddDatasetUser grants a principal access to a dataset.
func (s *Server) AddDatasetUser(datasetID string, u map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.datasetUsers[datasetID] = append(s.datasetUsers[datasetID], u)
}

// SetExport sets the .pbix bytes served for a report.
func (s *Server) SetExport(reportID string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.exports[reportID] = data
}

// SetActivityPages sets the audit event pages served in order. Every page
// but the last carries a continuation token.
func (s *Server) SetActivityPages(pages ...[]map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activity = pages
}

// Fail makes the next request matching method and path (relative to Root,
// e.g. "groups/g1/reports/r1") answer with status. Failures are one-shot.
func (s *Server) Fail(method, path string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[method+" "+strings.TrimPrefix(path, "/")] = status
}

// --- inspection ---

// Requests returns every request served so far as "METHOD path" with the
// path relative to Root.
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.requests)
}

// Reports returns the reports currently in a workspace.
func (s *Server) Reports(groupID string) []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.reports[groupID])
}

// Groups returns the current workspaces.
func (s *Server) Groups() []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.groups)
}

// GroupUsers returns the current members of a workspace.
func (s *Server) GroupUsers(groupID string) []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.groupUsers[groupID])
}

// DatasetUsers returns the principals granted access to a dataset.
func (s *Server) DatasetUsers(datasetID string) []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.datasetUsers[datasetID])
}

// Refreshes returns the dataset ids refreshed so far.
func (s *Server) Refreshes() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.refreshes)
}
