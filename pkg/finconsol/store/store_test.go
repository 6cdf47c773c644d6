package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/finconsol-go/pkg/finconsol/engine"
	"github.com/ukaji3/finconsol-go/pkg/finconsol/models"
)

func newTable(id, company string, amount float64) *models.UploadedTable {
	return &models.UploadedTable{
		ID:          id,
		CompanyName: company,
		ReportType:  models.ReportPL,
		Rows: []models.Row{{
			{Header: "GL Account Code", Value: models.Text("100")},
			{Header: "Raw Name", Value: models.Text("Cash")},
			{Header: "24-Jan", Value: models.Number(amount)},
		}},
	}
}

func TestUploadSetAddRemove(t *testing.T) {
	s := NewUploadSet()
	s.Add(newTable("a", "Acme", 1))
	s.Add(newTable("b", "Beta", 2))
	s.Add(newTable("c", "Acme", 3))

	require.Equal(t, 3, s.Len())
	assert.True(t, s.Remove("b"))
	assert.False(t, s.Remove("b"))

	var ids []string
	for _, tbl := range s.Tables() {
		ids = append(ids, tbl.ID)
	}
	assert.Equal(t, []string{"a", "c"}, ids)

	_, ok := s.Get("b")
	assert.False(t, ok)
	got, ok := s.Get("c")
	require.True(t, ok)
	assert.Equal(t, "Acme", got.CompanyName)
}

func TestUploadSetUpdateCell(t *testing.T) {
	s := NewUploadSet()
	s.Add(newTable("a", "Acme", 1))

	require.NoError(t, s.UpdateCell("a", 0, "24-Jan", models.Number(9)))
	require.NoError(t, s.UpdateCell("a", 0, "24-Feb", models.Text("4")))

	tbl, _ := s.Get("a")
	row := tbl.Rows[0]
	assert.Equal(t, []string{"GL Account Code", "Raw Name", "24-Jan", "24-Feb"}, row.Headers())
	assert.Equal(t, models.Number(9), row[2].Value)
	assert.Equal(t, models.Text("4"), row[3].Value)

	assert.ErrorIs(t, s.UpdateCell("missing", 0, "24-Jan", models.Number(1)), ErrTableNotFound)
	assert.ErrorIs(t, s.UpdateCell("a", 1, "24-Jan", models.Number(1)), ErrRowOutOfRange)
	assert.ErrorIs(t, s.UpdateCell("a", -1, "24-Jan", models.Number(1)), ErrRowOutOfRange)
}

func TestSnapshotIsIndependent(t *testing.T) {
	s := NewUploadSet()
	s.Add(newTable("a", "Acme", 1))

	snap, _, err := s.Snapshot()
	require.NoError(t, err)
	require.NoError(t, s.UpdateCell("a", 0, "24-Jan", models.Number(5)))

	assert.Equal(t, models.Number(1), snap[0].Rows[0][2].Value)
	assert.Equal(t, "Acme", snap[0].CompanyName)
	assert.Equal(t, "a", snap[0].ID)
}

func TestWorkbenchExplicitRerun(t *testing.T) {
	w := NewWorkbench(nil)
	assert.Nil(t, w.Report())
	assert.True(t, w.Stale())

	w.Add(newTable("a", "Acme", 50))
	w.Add(newTable("b", "Beta", 30))

	first, err := w.Consolidate()
	require.NoError(t, err)
	assert.False(t, w.Stale())
	assert.Same(t, first, w.Report())
	assert.Equal(t, "80", first.PL[0].Periods["24-Jan"].Total.String())

	require.NoError(t, w.UpdateCell("a", 0, "24-Jan", models.Number(10)))
	assert.True(t, w.Stale())
	// The held report is untouched by the edit.
	assert.Same(t, first, w.Report())
	assert.Equal(t, "80", w.Report().PL[0].Periods["24-Jan"].Total.String())

	second, err := w.Consolidate()
	require.NoError(t, err)
	assert.NotSame(t, first, second)
	assert.Equal(t, "40", second.PL[0].Periods["24-Jan"].Total.String())
	assert.Equal(t, "80", first.PL[0].Periods["24-Jan"].Total.String())

	w.Remove("b")
	assert.True(t, w.Stale())
}

func TestWorkbenchKeepsNewerReport(t *testing.T) {
	w := NewWorkbench(nil)
	w.Add(newTable("a", "Acme", 50))

	oldTables, oldVersion, err := w.Snapshot()
	require.NoError(t, err)

	require.NoError(t, w.UpdateCell("a", 0, "24-Jan", models.Number(10)))
	newer, err := w.Consolidate()
	require.NoError(t, err)

	// A run over the older snapshot finishing last must not replace it.
	assert.False(t, w.install(engine.Consolidate(oldTables), oldVersion))
	assert.Same(t, newer, w.Report())
	assert.False(t, w.Stale())
	assert.Equal(t, "10", w.Report().PL[0].Periods["24-Jan"].Total.String())
}
