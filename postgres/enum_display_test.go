package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/display"
	"github.com/xy-planning-network/display/catalog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func dryRun(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(
		postgres.New(postgres.Config{DSN: "host=localhost port=5432 dbname=display user=display sslmode=disable"}),
		&gorm.Config{DryRun: true, DisableAutomaticPing: true, SkipDefaultTransaction: true},
	)
	require.Nil(t, err)

	return db
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	c, err := catalog.New(catalog.File{Enums: []catalog.EnumSpec{{
		Name: "OrderedStatus",
		Members: []catalog.MemberSpec{
			{Symbol: "Fine", Value: 1, Display: &display.Display{Name: "Fine Name", Order: 1}},
			{Symbol: "Ok", Value: 2, Display: &display.Display{Order: 3}},
			{Symbol: "Good", Value: 3, Display: &display.Display{GroupName: "best", Order: 2}},
		},
	}}})
	require.Nil(t, err)

	return c
}

func TestRows(t *testing.T) {
	// Arrange
	e, err := testCatalog(t).Lookup("OrderedStatus")
	require.Nil(t, err)

	// Act
	rows := Rows(e)

	// Assert
	require.Equal(t, []EnumDisplay{
		{EnumName: "OrderedStatus", Value: 1, Symbol: "Fine", Name: "Fine Name", ShortName: "Fine Name", SortOrder: 1, Position: 0},
		{EnumName: "OrderedStatus", Value: 3, Symbol: "Good", Name: "Good", ShortName: "Good", GroupName: "best", SortOrder: 2, Position: 1},
		{EnumName: "OrderedStatus", Value: 2, Symbol: "Ok", Name: "Ok", ShortName: "Ok", SortOrder: 3, Position: 2},
	}, rows)
}

func TestSpecRoundTrip(t *testing.T) {
	// Arrange
	e, err := testCatalog(t).Lookup("OrderedStatus")
	require.Nil(t, err)
	rows := Rows(e)

	// Act
	c, err := catalog.New(catalog.File{Enums: []catalog.EnumSpec{Spec("OrderedStatus", rows)}})

	// Assert
	require.Nil(t, err)
	actual, err := c.Lookup("OrderedStatus")
	require.Nil(t, err)
	require.Equal(t, rows, Rows(actual))
}

func TestUpsertSQL(t *testing.T) {
	// Arrange
	e, err := testCatalog(t).Lookup("OrderedStatus")
	require.Nil(t, err)

	// Act
	stmt := upsert(dryRun(t), Rows(e)).Statement

	// Assert
	sql := stmt.SQL.String()
	require.Contains(t, sql, `INSERT INTO "enum_displays"`)
	require.Contains(t, sql, `ON CONFLICT ("enum_name","value") DO UPDATE SET`)
	require.Contains(t, sql, `"sort_order"="excluded"."sort_order"`)
	require.Contains(t, sql, `"position"="excluded"."position"`)
	require.NotContains(t, sql, `"enum_name"="excluded"."enum_name"`)
}

func TestPruneSQL(t *testing.T) {
	for _, tc := range []struct {
		name     string
		keep     []EnumDisplay
		contains string
		vars     int
	}{
		{"None-Kept", nil, `DELETE FROM "enum_displays" WHERE enum_name = $1`, 1},
		{"Some-Kept", []EnumDisplay{{Value: 1}, {Value: 3}}, "value NOT IN (", 3},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			stmt := prune(dryRun(t), "OrderedStatus", tc.keep).Statement

			// Assert
			require.Contains(t, stmt.SQL.String(), tc.contains)
			require.Len(t, stmt.Vars, tc.vars)
		})
	}
}

func TestLoad(t *testing.T) {
	// Arrange
	db := dryRun(t)
	var rows []EnumDisplay

	// Act
	stmt := loadQuery(db, "OrderedStatus").Find(&rows).Statement

	// Assert
	require.Contains(t, stmt.SQL.String(), `SELECT * FROM "enum_displays" WHERE enum_name = $1 ORDER BY position`)

	// Act
	_, err := Load(context.Background(), db, "OrderedStatus")

	// Assert
	require.ErrorIs(t, err, display.ErrNotExist)
}

func TestBuildCxnStr(t *testing.T) {
	for _, tc := range []struct {
		name     string
		config   CxnConfig
		expected string
	}{
		{"URL", CxnConfig{URL: "postgres://u:p@h:1/db", Host: "ignored"}, "postgres://u:p@h:1/db"},
		{
			"Default-SSLMode",
			CxnConfig{Host: "localhost", Port: "5432", Name: "display", User: "u", Password: "p"},
			"host=localhost port=5432 dbname=display user=u password=p sslmode=prefer",
		},
		{
			"SSLMode",
			CxnConfig{Host: "localhost", Port: "5432", Name: "display", User: "u", Password: "p", SSLMode: "disable"},
			"host=localhost port=5432 dbname=display user=u password=p sslmode=disable",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, buildCxnStr(&tc.config))
		})
	}
}

func TestPending(t *testing.T) {
	// Arrange
	all := []Migration{{Key: "a"}, {Key: "b"}, {Key: "c"}}

	// Act + Assert
	require.Len(t, pending(all, nil), 3)
	require.Equal(t, []Migration{{Key: "b"}}, pending(all, []string{"a", "c"}))
	require.Empty(t, pending(all, []string{"a", "b", "c"}))
}
