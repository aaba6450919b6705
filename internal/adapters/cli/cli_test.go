package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/xuri/excelize/v2"

	"github.com/jsamuelsen11/go-powerbi/internal/adapters/cli"
	"github.com/jsamuelsen11/go-powerbi/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/go-powerbi/internal/adapters/export"
	"github.com/jsamuelsen11/go-powerbi/internal/app"
	"github.com/jsamuelsen11/go-powerbi/internal/platform/auth"
	"github.com/jsamuelsen11/go-powerbi/internal/platform/health"
	"github.com/jsamuelsen11/go-powerbi/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-powerbi/internal/powerbitest"
	"github.com/jsamuelsen11/go-powerbi/mocks"
)

// fixture wires the real clients and services against a fake API.
type fixture struct {
	srv   *powerbitest.Server
	deps  *cli.Deps
	store *mocks.MockTokenStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	srv := powerbitest.New(t)
	tokens := auth.StaticToken(powerbitest.Token)
	client := httpclient.New(srv.ClientConfig(), "powerbi-api", tokens, nil, logger)

	admin := acl.NewAdminClient(client, nil, logger)
	reports := acl.NewReportsClient(client, logger)
	groups := acl.NewGroupsClient(client, logger)
	sink := &export.Mux{}

	registry := health.New(time.Second)
	registry.Register(groups)
	registry.Register(client)

	store := mocks.NewMockTokenStore(t)

	return &fixture{
		srv:   srv,
		store: store,
		deps: &cli.Deps{
			Admin:         admin,
			Reports:       reports,
			Datasets:      acl.NewDatasetsClient(client, logger),
			Groups:        groups,
			ReportService: app.NewReportService(reports, sink, nil, logger),
			Access:        app.NewAccessService(admin, 2, logger),
			Tokens:        tokens,
			Store:         store,
			Health:        registry,
			Sink:          sink,
			ExportDir:     t.TempDir(),
			Now:           func() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) },
		},
	}
}

func (f *fixture) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return runWith(t, f.deps, "", args...)
}

func runWith(t *testing.T, deps *cli.Deps, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := cli.NewRootCmd(func(context.Context, cli.Options) (*cli.Deps, error) {
		return deps, nil
	})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func decodeJSON[T any](t *testing.T, s string) T {
	t.Helper()
	var v T
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, s)
	}
	return v
}

func TestRoot_RejectsUnknownOutput(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	_, err := f.run(t, "reports", "list", "-o", "xml")
	if err == nil || !strings.Contains(err.Error(), "--output") {
		t.Fatalf("error = %v, want --output error", err)
	}
}

func TestRoot_BuilderError(t *testing.T) {
	t.Parallel()

	want := errors.New("bad config")
	cmd := cli.NewRootCmd(func(context.Context, cli.Options) (*cli.Deps, error) {
		return nil, want
	})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"doctor"})

	if err := cmd.ExecuteContext(context.Background()); !errors.Is(err, want) {
		t.Fatalf("error = %v, want %v", err, want)
	}
}

func TestRoot_PassesOptionsToBuilder(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	var got cli.Options
	cmd := cli.NewRootCmd(func(_ context.Context, opts cli.Options) (*cli.Deps, error) {
		got = opts
		return f.deps, nil
	})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--profile", "prod", "--config-dir", "/etc/pbi", "-o", "yaml", "reports", "list"})

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Execute error = %v", err)
	}
	want := cli.Options{Profile: "prod", ConfigDir: "/etc/pbi", Output: cli.OutputYAML}
	if got != want {
		t.Errorf("Options = %+v, want %+v", got, want)
	}
}

func TestReports_List(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		args  []string
		wants []string
	}{
		{name: "my workspace", args: []string{"reports", "list"}, wants: []string{"mine"}},
		{name: "group", args: []string{"reports", "list", "-g", "g1"}, wants: []string{"r1", "r2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t)
			f.srv.AddReport("", map[string]any{"id": "mine", "name": "Mine"})
			f.srv.AddReport("g1", map[string]any{"id": "r1", "name": "Sales"})
			f.srv.AddReport("g1", map[string]any{"id": "r2", "name": "Ops"})

			out, err := f.run(t, tt.args...)
			if err != nil {
				t.Fatalf("Execute error = %v", err)
			}

			got := decodeJSON[[]map[string]any](t, out)
			if len(got) != len(tt.wants) {
				t.Fatalf("len = %d, want %d\n%s", len(got), len(tt.wants), out)
			}
			for i, id := range tt.wants {
				if got[i]["id"] != id {
					t.Errorf("[%d].id = %v, want %v", i, got[i]["id"], id)
				}
			}
		})
	}
}

func TestReports_GetYAML(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.srv.AddReport("g1", map[string]any{"id": "r1", "name": "Sales", "datasetId": "d1"})

	out, err := f.run(t, "reports", "get", "r1", "-g", "g1", "-o", "yaml")
	if err != nil {
		t.Fatalf("Execute error = %v", err)
	}
	for _, want := range []string{"id: r1\n", "name: Sales\n", "datasetId: d1\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "{") {
		t.Errorf("output uses flow style:\n%s", out)
	}
}

func TestReports_GetNotFound(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	_, err := f.run(t, "reports", "get", "missing")
	if err == nil {
		t.Fatal("Execute error = nil, want not found")
	}
}

func TestReports_Count(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.srv.AddReport("g1", map[string]any{"id": "r1", "name": "Sales"})
	f.srv.AddReport("g1", map[string]any{"id": "r2", "name": "Ops"})

	out, err := f.run(t, "reports", "count", "--group", "g1")
	if err != nil {
		t.Fatalf("Execute error = %v", err)
	}
	if got := decodeJSON[map[string]int](t, out)["count"]; got != 2 {
		t.Errorf("count = %d, want 2", got)
	}
}

func TestReports_CloneAndDelete(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.srv.AddReport("g1", map[string]any{"id": "r1", "name": "Sales", "datasetId": "d1"})

	out, err := f.run(t, "reports", "clone", "r1", "-g", "g1", "--name", "Copy", "--target-group", "g2")
	if err != nil {
		t.Fatalf("clone error = %v", err)
	}
	clone := decodeJSON[map[string]any](t, out)
	if clone["name"] != "Copy" {
		t.Errorf("clone.name = %v, want Copy", clone["name"])
	}
	if got := f.srv.Reports("g2"); len(got) != 1 {
		t.Fatalf("g2 has %d reports, want 1", len(got))
	}

	if _, err := f.run(t, "reports", "delete", clone["id"].(string), "-g", "g2"); err != nil {
		t.Fatalf("delete error = %v", err)
	}
	if got := f.srv.Reports("g2"); len(got) != 0 {
		t.Errorf("g2 has %d reports after delete, want 0", len(got))
	}
}

func TestReports_CloneDefaultsToSourceName(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.srv.AddReport("g1", map[string]any{"id": "r1", "name": "Sales", "datasetId": "d1"})

	out, err := f.run(t, "reports", "clone", "r1", "-g", "g1", "--target-group", "g2")
	if err != nil {
		t.Fatalf("clone error = %v", err)
	}
	if clone := decodeJSON[map[string]any](t, out); clone["name"] != "Sales" {
		t.Errorf("clone.name = %v, want Sales", clone["name"])
	}
	if got := f.srv.Reports("g2"); len(got) != 1 || got[0]["name"] != "Sales" {
		t.Errorf("g2 reports = %v, want one named Sales", got)
	}
}

func TestReports_Rebind(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.srv.AddReport("g1", map[string]any{"id": "r1", "name": "Sales", "datasetId": "d1"})

	if _, err := f.run(t, "reports", "rebind", "r1", "-g", "g1", "--dataset", "d9"); err != nil {
		t.Fatalf("Execute error = %v", err)
	}
	if got := f.srv.Reports("g1")[0]["datasetId"]; got != "d9" {
		t.Errorf("datasetId = %v, want d9", got)
	}
}

func TestReports_RebindRequiresDataset(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	if _, err := f.run(t, "reports", "rebind", "r1"); err == nil {
		t.Fatal("Execute error = nil, want missing --dataset")
	}
}

func TestReports_Token(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.srv.AddReport("g1", map[string]any{"id": "r1", "name": "Sales"})

	out, err := f.run(t, "reports", "token", "r1", "-g", "g1", "--rls-user", "ann@contoso.com", "--rls-roles", "east,west")
	if err != nil {
		t.Fatalf("Execute error = %v", err)
	}
	if tok := decodeJSON[map[string]any](t, out)["token"]; tok == "" || tok == nil {
		t.Errorf("token = %v, want a token", tok)
	}
}

func TestReports_TokenInvalidAccessLevel(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	_, err := f.run(t, "reports", "token", "r1", "-g", "g1", "--access-level", "Own")
	if err == nil {
		t.Fatal("Execute error = nil, want validation error")
	}
	for _, r := range f.srv.Requests() {
		if strings.HasSuffix(r, "generatetoken") {
			t.Errorf("request %q sent for an invalid access level", r)
		}
	}
}

func TestReports_ExportDefaultsToExportDir(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.srv.AddReport("g1", map[string]any{"id": "r1", "name": "Sales"})
	f.srv.SetExport("r1", []byte("pbix-bytes"))

	out, err := f.run(t, "reports", "export", "r1", "-g", "g1")
	if err != nil {
		t.Fatalf("Execute error = %v", err)
	}

	want := filepath.Join(f.deps.ExportDir, "Sales.pbix")
	if got := decodeJSON[map[string]string](t, out)["location"]; got != want {
		t.Errorf("location = %q, want %q", got, want)
	}
	data, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	if string(data) != "pbix-bytes" {
		t.Errorf("export = %q, want %q", data, "pbix-bytes")
	}
}

func TestReports_Move(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.srv.AddReport("g1", map[string]any{"id": "r1", "name": "Sales"})

	out, err := f.run(t, "reports", "move", "r1", "--from", "g1", "--to", "g2")
	if err != nil {
		t.Fatalf("Execute error = %v", err)
	}
	if got := decodeJSON[map[string]any](t, out)["name"]; got != "Sales" {
		t.Errorf("name = %v, want Sales", got)
	}
	if len(f.srv.Reports("g1")) != 0 || len(f.srv.Reports("g2")) != 1 {
		t.Errorf("g1 = %v, g2 = %v, want the report moved", f.srv.Reports("g1"), f.srv.Reports("g2"))
	}
}

func TestDatasets_RefreshAndAddUser(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.srv.AddDataset("g1", map[string]any{"id": "d1", "name": "Sales"})

	if _, err := f.run(t, "datasets", "refresh", "d1", "-g", "g1", "--notify", "MailOnFailure"); err != nil {
		t.Fatalf("refresh error = %v", err)
	}
	if got := f.srv.Refreshes(); len(got) != 1 || got[0] != "d1" {
		t.Errorf("Refreshes() = %v, want [d1]", got)
	}

	_, err := f.run(t, "datasets", "add-user", "d1", "-g", "g1",
		"--identifier", "ann@contoso.com", "--access-right", "ReadExplore")
	if err != nil {
		t.Fatalf("add-user error = %v", err)
	}
	users := f.srv.DatasetUsers("d1")
	if len(users) != 1 || users[0]["datasetUserAccessRight"] != "ReadExplore" {
		t.Errorf("DatasetUsers(d1) = %v, want one ReadExplore grant", users)
	}
}

func TestGroups_Lifecycle(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	out, err := f.run(t, "groups", "create", "Finance", "--workspace-v2")
	if err != nil {
		t.Fatalf("create error = %v", err)
	}
	id, _ := decodeJSON[map[string]any](t, out)["id"].(string)
	if id == "" {
		t.Fatalf("create output has no id:\n%s", out)
	}

	_, err = f.run(t, "groups", "add-user", id, "--email", "ann@contoso.com", "--access-right", "Member")
	if err != nil {
		t.Fatalf("add-user error = %v", err)
	}
	if got := f.srv.GroupUsers(id); len(got) != 1 || got[0]["groupUserAccessRight"] != "Member" {
		t.Errorf("GroupUsers = %v, want one Member", got)
	}

	if _, err := f.run(t, "groups", "remove-user", id, "ann@contoso.com"); err != nil {
		t.Fatalf("remove-user error = %v", err)
	}
	if got := f.srv.GroupUsers(id); len(got) != 0 {
		t.Errorf("GroupUsers after remove = %v, want none", got)
	}

	if _, err := f.run(t, "groups", "delete", id); err != nil {
		t.Fatalf("delete error = %v", err)
	}
	if got := f.srv.Groups(); len(got) != 0 {
		t.Errorf("Groups() = %v, want none", got)
	}
}

func TestAdmin_GroupUsersPartialFailure(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.srv.AddGroupUser("g1", map[string]any{
		"identifier": "ann@contoso.com", "groupUserAccessRight": "Admin", "principalType": "User",
	})
	f.srv.Fail(http.MethodGet, "admin/groups/g2/users", http.StatusNotFound)

	out, err := f.run(t, "admin", "group-users", "g1", "g2")
	if err == nil || !strings.Contains(err.Error(), "1 of 2") {
		t.Fatalf("error = %v, want 1 of 2 lookups failed", err)
	}

	got := decodeJSON[[]map[string]any](t, out)
	if len(got) != 2 || got[0]["groupId"] != "g1" || got[1]["groupId"] != "g2" {
		t.Fatalf("output = %v, want g1 then g2", got)
	}
	if got[0]["error"] != nil {
		t.Errorf("g1 error = %v, want none", got[0]["error"])
	}
	if got[1]["error"] == nil {
		t.Error("g2 error = nil, want the lookup failure")
	}
}

func TestAdmin_ActivityAll(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.srv.SetActivityPages(
		[]map[string]any{{"Id": "e1", "Activity": "ViewReport"}},
		[]map[string]any{{"Id": "e2", "Activity": "ExportReport"}},
	)

	out, err := f.run(t, "admin", "activity", "--start", "2026-03-01", "--end", "2026-03-01T23:59:59", "--all")
	if err != nil {
		t.Fatalf("Execute error = %v", err)
	}
	got := decodeJSON[[]map[string]any](t, out)
	if len(got) != 2 || got[0]["Id"] != "e1" || got[1]["Id"] != "e2" {
		t.Errorf("events = %v, want e1 and e2", got)
	}
}

func TestAdmin_ActivityXLSX(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.srv.SetActivityPages(
		[]map[string]any{{"Id": "e1", "Activity": "ViewReport"}},
		[]map[string]any{{"Id": "e2", "Activity": "ExportReport"}},
	)
	path := filepath.Join(t.TempDir(), "audit.xlsx")

	if _, err := f.run(t, "admin", "activity", "--start", "2026-03-01", "--end", "2026-03-02", "--xlsx", path); err != nil {
		t.Fatalf("Execute error = %v", err)
	}

	wb, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile error = %v", err)
	}
	defer func() { _ = wb.Close() }()

	rows, err := wb.GetRows(export.ActivitySheet)
	if err != nil {
		t.Fatalf("GetRows error = %v", err)
	}
	if len(rows) != 3 {
		t.Errorf("rows = %d, want header plus 2 events", len(rows))
	}
}

func TestAdmin_ActivityXLSXWithoutFileName(t *testing.T) {
	t.Parallel()

	for _, dest := range []string{"s3://audit", "s3://audit/", "s3://audit/2026/"} {
		f := newFixture(t)
		_, err := f.run(t, "admin", "activity", "--start", "2026-03-01", "--end", "2026-03-02", "--xlsx", dest)
		if err == nil || !strings.Contains(err.Error(), "names no file") {
			t.Errorf("--xlsx %s: error = %v, want names no file", dest, err)
		}
		if got := f.srv.Requests(); len(got) != 0 {
			t.Errorf("--xlsx %s: requests = %v, want none", dest, got)
		}
	}
}

func TestAdmin_ActivityBadTime(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	_, err := f.run(t, "admin", "activity", "--start", "yesterday", "--end", "2026-03-01")
	if err == nil || !strings.Contains(err.Error(), "--start") {
		t.Fatalf("error = %v, want --start parse error", err)
	}
}

func signToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"upn": "ann@contoso.com",
		"exp": exp.Unix(),
	}).SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return token
}

func TestAuth_LoginFromStdin(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	token := signToken(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC))
	f.store.EXPECT().Save(mock.Anything, token).Return(nil).Once()

	out, err := runWith(t, f.deps, token+"\n", "auth", "login")
	if err != nil {
		t.Fatalf("Execute error = %v", err)
	}
	got := decodeJSON[map[string]any](t, out)
	if got["status"] != "logged_in" || got["expired"] != false {
		t.Errorf("output = %v, want logged_in and not expired", got)
	}
}

func TestAuth_LoginEmpty(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	_, err := runWith(t, f.deps, "", "auth", "login")
	if !errors.Is(err, auth.ErrNoToken) {
		t.Fatalf("error = %v, want ErrNoToken", err)
	}
	f.store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestAuth_Logout(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.store.EXPECT().Delete(mock.Anything).Return(nil).Once()

	out, err := f.run(t, "auth", "logout")
	if err != nil {
		t.Fatalf("Execute error = %v", err)
	}
	if got := decodeJSON[map[string]string](t, out)["status"]; got != "logged_out" {
		t.Errorf("status = %q, want logged_out", got)
	}
}

func TestAuth_Status(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		exp        time.Time
		wantStatus string
		wantErr    bool
	}{
		{name: "valid", exp: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), wantStatus: "valid"},
		{name: "expired", exp: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), wantStatus: "expired", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t)
			f.deps.Tokens = auth.StaticToken(signToken(t, tt.exp))

			out, err := f.run(t, "auth", "status")
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			got := decodeJSON[map[string]any](t, out)
			if got["status"] != tt.wantStatus {
				t.Errorf("status = %v, want %v", got["status"], tt.wantStatus)
			}
		})
	}
}

func TestAuth_StatusNoToken(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.deps.Tokens = auth.StaticToken("")

	if _, err := f.run(t, "auth", "status"); !errors.Is(err, auth.ErrNoToken) {
		t.Fatalf("error = %v, want ErrNoToken", err)
	}
}

func TestDoctor(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	out, err := f.run(t, "doctor")
	if err != nil {
		t.Fatalf("Execute error = %v", err)
	}
	checks := decodeJSON[map[string]string](t, out)
	for _, name := range []string{"powerbi-api", "powerbi-api-breaker"} {
		if got := checks[name]; got != "ok" {
			t.Errorf("%s = %q, want ok", name, got)
		}
	}
}

func TestDoctor_ReportsFailures(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	reg := mocks.NewMockHealthRegistry(t)
	reg.EXPECT().CheckAll(mock.Anything).Return(map[string]error{
		"powerbi-api": nil,
		"token":       auth.ErrNoToken,
	}).Once()
	f.deps.Health = reg

	out, err := f.run(t, "doctor")
	if err == nil || !strings.Contains(err.Error(), "1 of 2") {
		t.Fatalf("error = %v, want 1 of 2 checks failed", err)
	}
	got := decodeJSON[map[string]string](t, out)
	if got["token"] != auth.ErrNoToken.Error() {
		t.Errorf("token = %q, want %q", got["token"], auth.ErrNoToken.Error())
	}
}
