package dataset

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"premiere/internal/model"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadCSV_InfersKindsAndMissing(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "city.csv",
		"\ufeffCity , TotalShows,BookedGross,TotalOccupancy\n"+
			"Hyderabad,10,50000.5,80.00%\n"+
			"Vizag,,20000,NaN%\n"+
			"Guntur,5,NA,\n")

	table, err := NewLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"City", "TotalShows", "BookedGross", "TotalOccupancy"}, table.ColumnNames())
	assert.Equal(t, model.ColumnText, table.Columns[0].Kind)
	assert.Equal(t, model.ColumnInteger, table.Columns[1].Kind)
	assert.Equal(t, model.ColumnDecimal, table.Columns[2].Kind)
	require.Equal(t, 3, table.Len())

	assert.Equal(t, "50000.5", table.Cell(table.Rows[0], "BookedGross").Text)
	assert.True(t, table.Cell(table.Rows[1], "TotalShows").Missing)
	assert.False(t, table.Cell(table.Rows[1], "TotalOccupancy").Missing, "NaN% is a placeholder, not NA")
	assert.True(t, table.Cell(table.Rows[2], "BookedGross").Missing)
	assert.True(t, table.Cell(table.Rows[2], "TotalOccupancy").Missing)
}

func TestLoad_NATokensMarkMissingWithoutChangingKind(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "city.csv",
		"TotalShows,BookedGross\n"+
			"4,N/A\n"+
			"#N/A,250.75\n"+
			"6,<NA>\n")

	table, err := NewLoader().Load(path)
	require.NoError(t, err)
	require.Equal(t, 3, table.Len())

	assert.Equal(t, model.ColumnInteger, table.Columns[0].Kind)
	assert.Equal(t, model.ColumnDecimal, table.Columns[1].Kind)

	assert.False(t, table.Cell(table.Rows[0], "TotalShows").Missing)
	assert.True(t, table.Cell(table.Rows[0], "BookedGross").Missing)
	assert.True(t, table.Cell(table.Rows[1], "TotalShows").Missing)
	assert.Equal(t, "#N/A", table.Cell(table.Rows[1], "TotalShows").Text)
	assert.True(t, table.Cell(table.Rows[2], "BookedGross").Missing)
}

func TestLoad_CachesBySource(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "theater.csv", "BookedGross,Occupancy\n100,50%\n")

	loader := NewLoader()
	first, err := loader.Load(path)
	require.NoError(t, err)
	assert.True(t, loader.Cached(path))

	// 文件变化不影响已缓存的表
	writeFile(t, dir, "theater.csv", "BookedGross,Occupancy\n1,1%\n2,2%\n")

	second, err := loader.Load(filepath.Join(dir, ".", "theater.csv"))
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, second.Len())
	assert.Equal(t, 1, loader.Len())
}

func TestLoad_ConcurrentFirstAccess(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "theater.csv", "BookedGross,Occupancy\n100,50%\n")
	loader := NewLoader()

	var wg sync.WaitGroup
	results := make([]*model.Table, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tbl, err := loader.Load(path)
			if err == nil {
				results[i] = tbl
			}
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Same(t, results[0], r)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	loader := NewLoader()
	path := filepath.Join(t.TempDir(), "nope.csv")

	_, err := loader.Load(path)
	require.Error(t, err)

	var fae *FileAccessError
	require.True(t, errors.As(err, &fae))
	assert.Equal(t, path, fae.Path)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.False(t, loader.Cached(path), "failures are not cached")
}

func TestLoad_TooManyFields(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "bad.csv", "BookedGross,Occupancy\n1,2%,extra\n")
	_, err := NewLoader().Load(path)

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 2, pe.Line)
}

func TestLoad_BareQuoteInTextField(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "theater.csv",
		"Theater,BookedGross,Occupancy\n"+
			"Sri \"Venkateswara\" 70MM,1200,75.00%\n"+
			"AMB,800,50.00%\n")

	table, err := NewLoader().Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, table.Len())
	assert.Equal(t, `Sri "Venkateswara" 70MM`, table.Cell(table.Rows[0], "Theater").Text)
	assert.Equal(t, "1200", table.Cell(table.Rows[0], "BookedGross").Text)
	assert.Equal(t, "AMB", table.Cell(table.Rows[1], "Theater").Text)
}

func TestLoad_ShortRowsArePaddedAsMissing(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "short.csv", "BookedGross,Occupancy\n100\n")
	table, err := NewLoader().Load(path)
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())
	assert.True(t, table.Cell(table.Rows[0], "Occupancy").Missing)
}

func TestLoad_HeaderOnly(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "empty.csv", "BookedGross,Occupancy\n")
	table, err := NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0, table.Len())
	assert.Len(t, table.Columns, 2)
}

func TestLoad_Workbook(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "theater.xlsx")
	wb := excelize.NewFile()
	sheet := wb.GetSheetName(0)
	require.NoError(t, wb.SetSheetRow(sheet, "A1", &[]interface{}{"Theater", "BookedGross", "Occupancy"}))
	require.NoError(t, wb.SetSheetRow(sheet, "A2", &[]interface{}{"AMB Cinemas", "1200", "75.50%"}))
	require.NoError(t, wb.SetSheetRow(sheet, "A3", &[]interface{}{"Prasads", "800"}))
	require.NoError(t, wb.SaveAs(path))
	require.NoError(t, wb.Close())

	table, err := NewLoader().Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, table.Len())
	assert.Equal(t, "75.50%", table.Cell(table.Rows[0], "Occupancy").Text)
	assert.True(t, table.Cell(table.Rows[1], "Occupancy").Missing)
}

func TestNormalizeHeader(t *testing.T) {
	t.Parallel()

	got := normalizeHeader([]string{" City", "", "City", "City"})
	assert.Equal(t, []string{"City", "Unnamed: 1", "City.1", "City.2"}, got)
}

func TestLoadDataset_MissingColumns(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "city.csv", "City,BookedGross\nX,1\n")
	_, err := NewLoader().LoadDataset(path, model.CitySchema)

	var se *SchemaError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, []string{model.ColTotalShows, model.ColTotalOccupancy}, se.Missing)
}
