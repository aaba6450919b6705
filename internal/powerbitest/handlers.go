package powerbitest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// myWorkspaceID is the clone target that means "My workspace".
const myWorkspaceID = "00000000-0000-0000-0000-000000000000"

func findByID(items []map[string]any, id string) int {
	return slices.IndexFunc(items, func(m map[string]any) bool { return m["id"] == id })
}

func decode(r *http.Request) (map[string]any, error) {
	var m map[string]any
	if r.ContentLength == 0 {
		return map[string]any{}, nil
	}
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		return nil, err
	}
	return m, nil
}

func notFound(w http.ResponseWriter, what, id string) {
	writeError(w, http.StatusNotFound, "ItemNotFound", fmt.Sprintf("Couldn't find %s %s", what, id))
}

// --- reports ---

func (s *Server) listReports(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeValue(w, s.reports[chi.URLParam(r, "groupID")])
}

func (s *Server) adminReports(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var all []map[string]any
	for _, g := range s.sortedKeys(s.reports) {
		all = append(all, s.reports[g]...)
	}
	writeValue(w, all)
}

func (s *Server) getReport(w http.ResponseWriter, r *http.Request) {
	groupID, reportID := chi.URLParam(r, "groupID"), chi.URLParam(r, "reportID")

	s.mu.Lock()
	defer s.mu.Unlock()

	i := findByID(s.reports[groupID], reportID)
	if i < 0 {
		notFound(w, "report", reportID)
		return
	}
	writeJSON(w, http.StatusOK, s.reports[groupID][i])
}

func (s *Server) deleteReport(w http.ResponseWriter, r *http.Request) {
	groupID, reportID := chi.URLParam(r, "groupID"), chi.URLParam(r, "reportID")

	s.mu.Lock()
	defer s.mu.Unlock()

	i := findByID(s.reports[groupID], reportID)
	if i < 0 {
		notFound(w, "report", reportID)
		return
	}
	s.reports[groupID] = slices.Delete(s.reports[groupID], i, i+1)
	w.WriteHeader(http.StatusOK)
}

func (s *Server) cloneReport(w http.ResponseWriter, r *http.Request) {
	groupID, reportID := chi.URLParam(r, "groupID"), chi.URLParam(r, "reportID")
	body, err := decode(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := findByID(s.reports[groupID], reportID)
	if i < 0 {
		notFound(w, "report", reportID)
		return
	}

	clone := make(map[string]any, len(s.reports[groupID][i]))
	for k, v := range s.reports[groupID][i] {
		clone[k] = v
	}
	clone["id"] = uuid.NewString()
	if name, _ := body["name"].(string); name != "" {
		clone["name"] = name
	}
	if model, _ := body["targetModelId"].(string); model != "" {
		clone["datasetId"] = model
	}
	target := groupID
	switch ws, _ := body["targetWorkspaceId"].(string); ws {
	case "":
	case myWorkspaceID:
		target = ""
	default:
		target = ws
	}
	s.reports[target] = append(s.reports[target], clone)
	writeJSON(w, http.StatusOK, clone)
}

func (s *Server) rebindReport(w http.ResponseWriter, r *http.Request) {
	groupID, reportID := chi.URLParam(r, "groupID"), chi.URLParam(r, "reportID")
	body, err := decode(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := findByID(s.reports[groupID], reportID)
	if i < 0 {
		notFound(w, "report", reportID)
		return
	}
	s.reports[groupID][i]["datasetId"] = body["datasetId"]
	w.WriteHeader(http.StatusOK)
}

func (s *Server) exportReport(w http.ResponseWriter, r *http.Request) {
	groupID, reportID := chi.URLParam(r, "groupID"), chi.URLParam(r, "reportID")

	s.mu.Lock()
	defer s.mu.Unlock()

	if findByID(s.reports[groupID], reportID) < 0 {
		notFound(w, "report", reportID)
		return
	}
	data, ok := s.exports[reportID]
	if !ok {
		data = []byte("PK\x03\x04" + reportID)
	}
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) generateToken(w http.ResponseWriter, r *http.Request) {
	groupID, reportID := chi.URLParam(r, "groupID"), chi.URLParam(r, "reportID")
	body, err := decode(r)
	if err != nil || body["accessLevel"] == nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "accessLevel is required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if findByID(s.reports[groupID], reportID) < 0 {
		notFound(w, "report", reportID)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"token":      "H4sI-" + reportID,
		"tokenId":    uuid.NewString(),
		"expiration": "2030-01-01T00:00:00Z",
	})
}

func (s *Server) listReportUsers(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeValue(w, s.reportUsers[chi.URLParam(r, "reportID")])
}

// --- datasets ---

func (s *Server) listDatasets(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeValue(w, s.datasets[chi.URLParam(r, "groupID")])
}

func (s *Server) adminDatasets(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var all []map[string]any
	for _, g := range s.sortedKeys(s.datasets) {
		all = append(all, s.datasets[g]...)
	}
	writeValue(w, all)
}

func (s *Server) getDataset(w http.ResponseWriter, r *http.Request) {
	groupID, datasetID := chi.URLParam(r, "groupID"), chi.URLParam(r, "datasetID")

	s.mu.Lock()
	defer s.mu.Unlock()

	i := findByID(s.datasets[groupID], datasetID)
	if i < 0 {
		notFound(w, "dataset", datasetID)
		return
	}
	writeJSON(w, http.StatusOK, s.datasets[groupID][i])
}

func (s *Server) deleteDataset(w http.ResponseWriter, r *http.Request) {
	groupID, datasetID := chi.URLParam(r, "groupID"), chi.URLParam(r, "datasetID")

	s.mu.Lock()
	defer s.mu.Unlock()

	i := findByID(s.datasets[groupID], datasetID)
	if i < 0 {
		notFound(w, "dataset", datasetID)
		return
	}
	s.datasets[groupID] = slices.Delete(s.datasets[groupID], i, i+1)
	w.WriteHeader(http.StatusOK)
}

func (s *Server) refreshDataset(w http.ResponseWriter, r *http.Request) {
	groupID, datasetID := chi.URLParam(r, "groupID"), chi.URLParam(r, "datasetID")

	s.mu.Lock()
	defer s.mu.Unlock()

	if findByID(s.datasets[groupID], datasetID) < 0 {
		notFound(w, "dataset", datasetID)
		return
	}
	s.refreshes = append(s.refreshes, datasetID)
	w.WriteHeader(http.StatusAccepted)
}

func (s *Server) addDatasetUser(w http.ResponseWriter, r *http.Request) {
	body, err := decode(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := chi.URLParam(r, "datasetID")
	s.datasetUsers[id] = append(s.datasetUsers[id], body)
	w.WriteHeader(http.StatusOK)
}

func (s *Server) listDatasetUsers(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeValue(w, s.datasetUsers[chi.URLParam(r, "datasetID")])
}

// --- groups ---

func (s *Server) listGroups(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeValue(w, s.groups)
}

// adminGroups mirrors the real endpoint, which rejects calls without $top.
func (s *Server) adminGroups(w http.ResponseWriter, r *http.Request) {
	top, err := strconv.Atoi(r.URL.Query().Get("$top"))
	if err != nil || top < 1 {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "$top is required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	groups := s.groups
	if skip, _ := strconv.Atoi(r.URL.Query().Get("$skip")); skip > 0 {
		groups = groups[min(skip, len(groups)):]
	}
	writeValue(w, groups[:min(top, len(groups))])
}

func (s *Server) createGroup(w http.ResponseWriter, r *http.Request) {
	body, err := decode(r)
	name, _ := body["name"].(string)
	if err != nil || name == "" {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "name is required")
		return
	}

	g := map[string]any{
		"id":                    uuid.NewString(),
		"name":                  name,
		"isReadOnly":            false,
		"isOnDedicatedCapacity": false,
	}
	if r.URL.Query().Get("workspaceV2") == "True" {
		g["type"] = "Workspace"
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.groups = append(s.groups, g)
	writeJSON(w, http.StatusOK, g)
}

func (s *Server) deleteGroup(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "groupID")

	s.mu.Lock()
	defer s.mu.Unlock()

	i := findByID(s.groups, groupID)
	if i < 0 {
		notFound(w, "group", groupID)
		return
	}
	s.groups = slices.Delete(s.groups, i, i+1)
	w.WriteHeader(http.StatusOK)
}

func (s *Server) listGroupUsers(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeValue(w, s.groupUsers[chi.URLParam(r, "groupID")])
}

func (s *Server) addGroupUser(w http.ResponseWriter, r *http.Request) {
	body, err := decode(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := chi.URLParam(r, "groupID")
	s.groupUsers[id] = append(s.groupUsers[id], body)
	w.WriteHeader(http.StatusOK)
}

func (s *Server) deleteGroupUser(w http.ResponseWriter, r *http.Request) {
	groupID, user := chi.URLParam(r, "groupID"), chi.URLParam(r, "user")

	s.mu.Lock()
	defer s.mu.Unlock()

	users := s.groupUsers[groupID]
	i := slices.IndexFunc(users, func(m map[string]any) bool {
		return m["identifier"] == user || m["emailAddress"] == user
	})
	if i < 0 {
		notFound(w, "group user", user)
		return
	}
	s.groupUsers[groupID] = slices.Delete(users, i, i+1)
	w.WriteHeader(http.StatusOK)
}

// --- activity events ---

func (s *Server) activityEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Get("startDateTime") == "" || q.Get("endDateTime") == "" {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "startDateTime and endDateTime are required")
		return
	}

	page := 0
	if tok := q.Get("continuationToken"); tok != "" {
		n, err := fmt.Sscanf(tok, "page-%d", &page)
		if err != nil || n != 1 {
			writeError(w, http.StatusBadRequest, "InvalidContinuationToken", tok)
			return
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	resp := map[string]any{
		"activityEventEntities": []map[string]any{},
		"lastResultSet":         true,
	}
	if page < len(s.activity) {
		resp["activityEventEntities"] = s.activity[page]
	}
	if page+1 < len(s.activity) {
		tok := fmt.Sprintf("page-%d", page+1)
		resp["continuationToken"] = tok
		resp["continuationUri"] = s.URL + Root + "/admin/activityevents?continuationToken='" + tok + "'"
		resp["lastResultSet"] = false
	}
	writeJSON(w, http.StatusOK, resp)
}

// sortedKeys returns map keys in order so admin listings are stable.
func (s *Server) sortedKeys(m map[string][]map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
