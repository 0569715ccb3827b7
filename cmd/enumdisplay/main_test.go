package main

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/display"
	"github.com/xy-planning-network/display/catalog"
	"github.com/xy-planning-network/display/http/middleware"
	"github.com/xy-planning-network/display/internal/config"
)

const testCatalog = "../../catalog/testdata/statuses.yml"

func runArgs(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_HOST", "")
	t.Setenv("SENTRY_DSN", "")
	t.Setenv("LOG_LEVEL", "ERROR")
	t.Cleanup(func() { display.SetLogger(nil) })

	out := new(bytes.Buffer)
	envFile := filepath.Join(t.TempDir(), "missing.env")
	err := run(out, append([]string{"--env-file", envFile}, args...))

	return out.String(), err
}

func TestRunList(t *testing.T) {
	// Arrange + Act
	out, err := runArgs(t, "--catalog", testCatalog, "list", "OrderedStatus")

	// Assert
	require.Nil(t, err)
	require.Contains(t, out, "OrderedStatus")
	fine := strings.Index(out, "1\tFine")
	good := strings.Index(out, "3\tGood")
	ok := strings.Index(out, "2\tOk")
	require.True(t, fine >= 0 && fine < good && good < ok, out)
}

func TestRunListGroup(t *testing.T) {
	// Arrange + Act
	out, err := runArgs(t, "--catalog", testCatalog, "list", "SomeStatus", "--group", "Fine GroupName")

	// Assert
	require.Nil(t, err)
	require.Contains(t, out, "Fine GroupName")
	require.Contains(t, out, "1\tFine\tFine Name (Fine ShortName) - Fine Description")
	require.NotContains(t, out, "Ok Name")
}

func TestRunListAll(t *testing.T) {
	// Arrange + Act
	out, err := runArgs(t, "--catalog", testCatalog, "list")

	// Assert
	require.Nil(t, err)
	require.Contains(t, out, "SomeStatus")
	require.Contains(t, out, "OrderedStatus")
	require.Contains(t, out, "NotAnnotatedStatus")
	require.NotContains(t, out, "PRODUCTION")
}

func TestRunListRegistered(t *testing.T) {
	// Arrange + Act
	out, err := runArgs(t, "--catalog", testCatalog, "--registered", "list", "Environment")

	// Assert
	require.Nil(t, err)
	require.Contains(t, out, "Local")
	require.Contains(t, out, "Deployed")
	require.Contains(t, out, "6\tPRODUCTION\tProduction (Prod)")
}

func TestRunErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		args []string
		err  error
		msg  string
	}{
		{"Unknown-Enum", []string{"--catalog", testCatalog, "list", "Missing"}, display.ErrNotExist, ""},
		{"Not-Registered", []string{"--catalog", testCatalog, "list", "Environment"}, display.ErrNotExist, ""},
		{"Missing-Catalog", []string{"--catalog", "testdata/missing.yml", "list"}, nil, "loading catalog"},
		{"No-Database", []string{"--catalog", testCatalog, "sync"}, nil, "no database configured"},
		{"Dump-No-Args", []string{"--catalog", testCatalog, "dump"}, nil, "requires at least 1 arg"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			_, err := runArgs(t, tc.args...)

			// Assert
			require.NotNil(t, err)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
			}
			if tc.msg != "" {
				require.ErrorContains(t, err, tc.msg)
			}
		})
	}
}

func TestHandler(t *testing.T) {
	// Arrange
	c, err := catalog.LoadFile(testCatalog)
	require.Nil(t, err)

	a := &app{
		cfg:    config.Config{RateLimit: 100, RateBurst: 100},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	h := a.handler(c)

	r := httptest.NewRequest(http.MethodGet, "https://example.com/enums/SomeStatus/Fine", nil)
	r.Header.Set("Origin", "https://app.example.com")
	w := httptest.NewRecorder()

	// Act
	h.ServeHTTP(w, r)

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	require.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	require.Contains(t, w.Body.String(), `"name":"Fine Name"`)
}

func TestMerged(t *testing.T) {
	// Arrange
	c, err := catalog.New(catalog.File{Enums: []catalog.EnumSpec{
		{Name: "Environment", Members: []catalog.MemberSpec{{Symbol: "LOCAL", Value: 1}}},
		{Name: "Other"},
	}})
	require.Nil(t, err)
	m := merged{c, display.Registered()}

	// Act
	e, err := m.Lookup("Environment")

	// Assert
	require.Nil(t, err)
	require.Equal(t, 1, e.Len())

	// Act
	_, err = m.Lookup("Missing")

	// Assert
	require.ErrorIs(t, err, display.ErrNotExist)

	// Act
	names := m.Names()

	// Assert
	require.Equal(t, []string{"Environment", "Other"}, names[:2])
	require.Equal(t, 1, strings.Count(strings.Join(names, ","), "Environment"))
}
