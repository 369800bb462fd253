package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "test-token"

type fakeAdmin struct {
	mu sync.Mutex

	loginCalls      int
	statsCalls      int
	listUserCalls   int
	deleteUserCalls int
	passwordCalls   int
	listFoodCalls   int
	createFoodCalls int
	listLogCalls    int

	lastUsersQuery url.Values
	lastLogsQuery  url.Values
	lastFoodBody   map[string]any

	userTotal int
}

func newFakeAdmin() (*fakeAdmin, *httptest.Server) {
	f := &fakeAdmin{userTotal: 45}
	return f, httptest.NewServer(http.HandlerFunc(f.handle))
}

func (f *fakeAdmin) handle(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")

	if r.Method == http.MethodPost && r.URL.Path == "/admin/login" {
		f.loginCalls++
		var payload struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		_ = json.NewDecoder(r.Body).Decode(&payload)
		if payload.Password != "dogru-sifre" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = fmt.Fprint(w, `{"error":"Geçersiz şifre"}`)
			return
		}
		_, _ = fmt.Fprintf(w, `{"token":%q}`, testToken)
		return
	}

	if r.Header.Get("Authorization") != "Bearer "+testToken {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = fmt.Fprint(w, `{"error":"Yetkisiz erişim"}`)
		return
	}

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/admin/stats":
		f.statsCalls++
		_, _ = fmt.Fprint(w, `{"total_users":128,"total_foods":342,"today_logs":57,"active_users":19,"activity_data":[{"date":"2026-08-30","count":12},{"date":"2026-08-31","count":18}]}`)

	case r.Method == http.MethodGet && r.URL.Path == "/admin/users":
		f.listUserCalls++
		f.lastUsersQuery = r.URL.Query()
		_, _ = fmt.Fprintf(w, `{"users":[{"id":1,"name":"Ayşe Yılmaz","email":"ayse@example.com","age":31,"gender":"female","height":165,"weight":58.5,"target_weight":55,"activity_level":"moderate","goal":"lose","created_at":"2026-01-15T10:30:00Z"},{"id":2,"name":null,"email":"mehmet@example.com","age":null,"gender":null,"height":null,"weight":null,"target_weight":null,"activity_level":null,"goal":null,"created_at":"2026-02-02T08:00:00Z"}],"total":%d,"page":%s,"limit":20}`, f.userTotal, pageOrDefault(r))

	case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/admin/users/"):
		_, _ = fmt.Fprint(w, `{"user":{"id":1,"name":"Ayşe Yılmaz","email":"ayse@example.com","age":31,"gender":"female","height":165,"weight":58.5,"target_weight":55,"activity_level":"moderate","goal":"lose","created_at":"2026-01-15T10:30:00Z"}}`)

	case r.Method == http.MethodPut && strings.HasSuffix(r.URL.Path, "/password"):
		f.passwordCalls++
		_, _ = fmt.Fprint(w, `{"message":"ok"}`)

	case r.Method == http.MethodPut && strings.HasPrefix(r.URL.Path, "/admin/users/"):
		_, _ = fmt.Fprint(w, `{"message":"ok"}`)

	case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/admin/users/"):
		f.deleteUserCalls++
		_, _ = fmt.Fprint(w, `{"message":"ok"}`)

	case r.Method == http.MethodGet && r.URL.Path == "/admin/foods":
		f.listFoodCalls++
		_, _ = fmt.Fprint(w, `{"foods":[{"id":10,"name":"Elma","calories":52,"protein":0.3,"carbs":14,"fat":0.2,"serving_size":"1 adet","category":"Meyve","barcode":null}],"total":1,"page":1,"limit":50}`)

	case r.Method == http.MethodPost && r.URL.Path == "/admin/foods":
		f.createFoodCalls++
		body := map[string]any{}
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.lastFoodBody = body
		w.WriteHeader(http.StatusCreated)
		_, _ = fmt.Fprint(w, `{"message":"ok"}`)

	case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/admin/foods/"):
		_, _ = fmt.Fprint(w, `{"message":"ok"}`)

	case r.Method == http.MethodGet && r.URL.Path == "/admin/logs":
		f.listLogCalls++
		f.lastLogsQuery = r.URL.Query()
		_, _ = fmt.Fprint(w, `{"logs":[{"id":1,"user_id":2,"log_type":"water","amount":500,"created_at":"2026-08-31T09:00:00Z"}],"total":1,"page":1,"limit":50}`)

	default:
		w.WriteHeader(http.StatusNotFound)
		_, _ = fmt.Fprint(w, `{"error":"Kayıt bulunamadı"}`)
	}
}

func pageOrDefault(r *http.Request) string {
	if page := r.URL.Query().Get("page"); page != "" {
		return page
	}
	return "1"
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	return executeCLIWithInput(t, home, "", args...)
}

func executeCLIWithInput(t *testing.T, home string, input string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetIn(strings.NewReader(input))
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeSessionFixture(t *testing.T, home, token string) {
	t.Helper()
	configDir := filepath.Join(home, ".kta")
	require.NoError(t, os.MkdirAll(configDir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "session"), []byte(token+"\n"), 0o600))
}

func sessionPath(home string) string {
	return filepath.Join(home, ".kta", "session")
}

func TestLoginStoresCredential(t *testing.T) {
	_, server := newFakeAdmin()
	defer server.Close()
	t.Setenv("KTA_API_BASE_URL", server.URL)

	home := t.TempDir()
	stdout, _, err := executeCLI(t, home, "login", "--email", "admin@example.com", "--password", "dogru-sifre")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Logged in")

	data, err := os.ReadFile(sessionPath(home))
	require.NoError(t, err)
	assert.Equal(t, testToken, strings.TrimSpace(string(data)))
}

func TestLoginRejectsMalformedEmailWithoutNetworkCall(t *testing.T) {
	admin, server := newFakeAdmin()
	defer server.Close()
	t.Setenv("KTA_API_BASE_URL", server.URL)

	home := t.TempDir()
	_, _, err := executeCLI(t, home, "login", "--email", "adminexample.com", "--password", "dogru-sifre")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "valid email")
	assert.Equal(t, 0, admin.loginCalls)
}

func TestLoginWrongPasswordShowsServerMessage(t *testing.T) {
	_, server := newFakeAdmin()
	defer server.Close()
	t.Setenv("KTA_API_BASE_URL", server.URL)

	home := t.TempDir()
	_, _, err := executeCLI(t, home, "login", "--email", "admin@example.com", "--password", "yanlis")
	require.Error(t, err)
	assert.EqualError(t, err, "Geçersiz şifre")
}

func TestCommandsRequireLogin(t *testing.T) {
	admin, server := newFakeAdmin()
	defer server.Close()
	t.Setenv("KTA_API_BASE_URL", server.URL)

	home := t.TempDir()
	_, _, err := executeCLI(t, home, "users", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not logged in")
	assert.Equal(t, 0, admin.listUserCalls)
}

func TestUsersListRendersPageControls(t *testing.T) {
	admin, server := newFakeAdmin()
	defer server.Close()
	t.Setenv("KTA_API_BASE_URL", server.URL)

	home := t.TempDir()
	writeSessionFixture(t, home, testToken)

	stdout, _, err := executeCLI(t, home, "users", "list")
	require.NoError(t, err)

	// 45 users at 20 per page is exactly 3 pages.
	assert.Contains(t, stdout, "pages:")
	assert.Contains(t, stdout, "[1]")
	assert.Contains(t, stdout, "3")
	assert.Contains(t, stdout, "ayse@example.com")

	assert.Equal(t, 1, admin.listUserCalls)
	assert.Equal(t, "1", admin.lastUsersQuery.Get("page"))
	assert.Equal(t, "20", admin.lastUsersQuery.Get("limit"))
}

func TestUsersListForwardsSearch(t *testing.T) {
	admin, server := newFakeAdmin()
	defer server.Close()
	t.Setenv("KTA_API_BASE_URL", server.URL)

	home := t.TempDir()
	writeSessionFixture(t, home, testToken)

	_, _, err := executeCLI(t, home, "users", "list", "--search", "ayse")
	require.NoError(t, err)
	assert.Equal(t, "ayse", admin.lastUsersQuery.Get("search"))
}

func TestUsersListNilFieldsRenderedAsDash(t *testing.T) {
	_, server := newFakeAdmin()
	defer server.Close()
	t.Setenv("KTA_API_BASE_URL", server.URL)

	home := t.TempDir()
	writeSessionFixture(t, home, testToken)

	stdout, _, err := executeCLI(t, home, "users", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "-")
	assert.NotContains(t, stdout, "<nil>")
	assert.NotContains(t, stdout, "null")
}

func TestExpiredSessionClearsCredentialFile(t *testing.T) {
	_, server := newFakeAdmin()
	defer server.Close()
	t.Setenv("KTA_API_BASE_URL", server.URL)

	home := t.TempDir()
	writeSessionFixture(t, home, "stale-token")

	_, _, err := executeCLI(t, home, "users", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session expired, run `kta login`")

	_, statErr := os.Stat(sessionPath(home))
	assert.True(t, os.IsNotExist(statErr), "the rejected credential must be discarded")
}

func TestUsersDeleteRefreshesPageAndSummaryOnce(t *testing.T) {
	admin, server := newFakeAdmin()
	defer server.Close()
	t.Setenv("KTA_API_BASE_URL", server.URL)

	home := t.TempDir()
	writeSessionFixture(t, home, testToken)

	stdout, _, err := executeCLI(t, home, "users", "delete", "7", "--yes")
	require.NoError(t, err)
	assert.Contains(t, stdout, "User #7 deleted")

	assert.Equal(t, 1, admin.deleteUserCalls)
	assert.Equal(t, 1, admin.listUserCalls)
	assert.Equal(t, 1, admin.statsCalls)
}

func TestUsersDeleteAbortsWithoutConfirmation(t *testing.T) {
	admin, server := newFakeAdmin()
	defer server.Close()
	t.Setenv("KTA_API_BASE_URL", server.URL)

	home := t.TempDir()
	writeSessionFixture(t, home, testToken)

	stdout, _, err := executeCLIWithInput(t, home, "n\n", "users", "delete", "7")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Aborted")
	assert.Equal(t, 0, admin.deleteUserCalls)
}

func TestUsersPasswdShortPasswordBlocksNetwork(t *testing.T) {
	admin, server := newFakeAdmin()
	defer server.Close()
	t.Setenv("KTA_API_BASE_URL", server.URL)

	home := t.TempDir()
	writeSessionFixture(t, home, testToken)

	_, _, err := executeCLI(t, home, "users", "passwd", "3", "--password", "12345")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 6 characters")
	assert.Equal(t, 0, admin.passwordCalls)
}

func TestUsersPasswdSixCharacterPasswordSucceeds(t *testing.T) {
	admin, server := newFakeAdmin()
	defer server.Close()
	t.Setenv("KTA_API_BASE_URL", server.URL)

	home := t.TempDir()
	writeSessionFixture(t, home, testToken)

	stdout, _, err := executeCLI(t, home, "users", "passwd", "3", "--password", "123456")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Password updated for user #3")
	assert.Equal(t, 1, admin.passwordCalls)
}

func TestUsersShowRendersProfile(t *testing.T) {
	_, server := newFakeAdmin()
	defer server.Close()
	t.Setenv("KTA_API_BASE_URL", server.URL)

	home := t.TempDir()
	writeSessionFixture(t, home, testToken)

	stdout, _, err := executeCLI(t, home, "users", "show", "1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "ayse@example.com")
	assert.Contains(t, stdout, "Ayşe Yılmaz")
	assert.Contains(t, stdout, "58.5")
}

func TestFoodsAddBlankCaloriesTransmitsZero(t *testing.T) {
	admin, server := newFakeAdmin()
	defer server.Close()
	t.Setenv("KTA_API_BASE_URL", server.URL)

	home := t.TempDir()
	writeSessionFixture(t, home, testToken)

	stdout, _, err := executeCLI(t, home, "foods", "add", "--name", "Elma")
	require.NoError(t, err)
	assert.Contains(t, stdout, `Food "Elma" added`)

	require.Equal(t, 1, admin.createFoodCalls)
	assert.Equal(t, float64(0), admin.lastFoodBody["calories"])
	assert.Equal(t, "Diğer", admin.lastFoodBody["category"])
}

func TestFoodsAddMissingNameBlocksNetwork(t *testing.T) {
	admin, server := newFakeAdmin()
	defer server.Close()
	t.Setenv("KTA_API_BASE_URL", server.URL)

	home := t.TempDir()
	writeSessionFixture(t, home, testToken)

	_, _, err := executeCLI(t, home, "foods", "add", "--calories", "52")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "food name is required")
	assert.Equal(t, 0, admin.createFoodCalls)
}

func TestLogsListForwardsFilters(t *testing.T) {
	admin, server := newFakeAdmin()
	defer server.Close()
	t.Setenv("KTA_API_BASE_URL", server.URL)

	home := t.TempDir()
	writeSessionFixture(t, home, testToken)

	stdout, _, err := executeCLI(t, home, "logs", "--type", "water", "--from", "2026-08-01", "--to", "2026-08-31")
	require.NoError(t, err)
	assert.Contains(t, stdout, "500 ml")

	assert.Equal(t, "water", admin.lastLogsQuery.Get("type"))
	assert.Equal(t, "2026-08-01", admin.lastLogsQuery.Get("date_from"))
	assert.Equal(t, "2026-08-31", admin.lastLogsQuery.Get("date_to"))
	assert.Equal(t, "50", admin.lastLogsQuery.Get("limit"))
}

func TestLogsListDefaultsTypeToAll(t *testing.T) {
	admin, server := newFakeAdmin()
	defer server.Close()
	t.Setenv("KTA_API_BASE_URL", server.URL)

	home := t.TempDir()
	writeSessionFixture(t, home, testToken)

	_, _, err := executeCLI(t, home, "logs")
	require.NoError(t, err)
	assert.Equal(t, "all", admin.lastLogsQuery.Get("type"))
}

func TestDashboardRendersCountsAndChart(t *testing.T) {
	_, server := newFakeAdmin()
	defer server.Close()
	t.Setenv("KTA_API_BASE_URL", server.URL)

	home := t.TempDir()
	writeSessionFixture(t, home, testToken)

	stdout, _, err := executeCLI(t, home, "dashboard")
	require.NoError(t, err)
	assert.Contains(t, stdout, "128")
	assert.Contains(t, stdout, "342")
	assert.Contains(t, stdout, "Total Users")
	assert.Contains(t, stdout, "Daily active users")
}

func TestDashboardShowsFetchSpinnerMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprint(w, `{"total_users":1,"total_foods":1,"today_logs":0,"active_users":1,"activity_data":[]}`)
	}))
	defer server.Close()
	t.Setenv("KTA_API_BASE_URL", server.URL)

	home := t.TempDir()
	writeSessionFixture(t, home, testToken)

	_, stderr, err := executeCLI(t, home, "dashboard")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Fetching dashboard summary")
}

func TestLogoutRemovesCredential(t *testing.T) {
	_, server := newFakeAdmin()
	defer server.Close()
	t.Setenv("KTA_API_BASE_URL", server.URL)

	home := t.TempDir()
	writeSessionFixture(t, home, testToken)

	stdout, _, err := executeCLI(t, home, "logout")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Logged out")

	_, statErr := os.Stat(sessionPath(home))
	assert.True(t, os.IsNotExist(statErr))
}

func TestVersionPrintsBuildVersion(t *testing.T) {
	home := t.TempDir()
	stdout, _, err := executeCLI(t, home, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "dev")
}

func TestConfigInitWritesResolvedBaseURL(t *testing.T) {
	t.Setenv("KTA_API_BASE_URL", "http://kta.internal:5000/api")

	home := t.TempDir()
	stdout, _, err := executeCLI(t, home, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Wrote")

	data, err := os.ReadFile(filepath.Join(home, ".kta", "config.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "base_url = 'http://kta.internal:5000/api'")
}

func TestConfigInitRefusesOverwriteWithoutForce(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "config", "init")
	require.NoError(t, err)

	_, _, err = executeCLI(t, home, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, _, err = executeCLI(t, home, "config", "init", "--force")
	require.NoError(t, err)
}

func TestConfigShowPrintsResolvedConfiguration(t *testing.T) {
	t.Setenv("KTA_API_BASE_URL", "")

	home := t.TempDir()
	stdout, _, err := executeCLI(t, home, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "config.toml")
	assert.Contains(t, stdout, "http://localhost:5000/api")
}

func TestBrowseRejectsUnknownResource(t *testing.T) {
	_, server := newFakeAdmin()
	defer server.Close()
	t.Setenv("KTA_API_BASE_URL", server.URL)

	home := t.TempDir()
	writeSessionFixture(t, home, testToken)

	_, _, err := executeCLI(t, home, "browse", "meals")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown resource")
}
