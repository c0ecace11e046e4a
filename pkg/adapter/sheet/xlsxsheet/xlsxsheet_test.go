package xlsxsheet_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/orbitechz/GPC-Backend/pkg/adapter/sheet/xlsxsheet"
	"github.com/orbitechz/GPC-Backend/pkg/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v3"
)

func workbook(t *testing.T, rows ...[]string) []byte {
	t.Helper()
	f := xlsx.NewFile()
	sh, err := f.AddSheet("assets")
	require.NoError(t, err)
	for _, r := range rows {
		row := sh.AddRow()
		for _, v := range r {
			row.AddCell().SetString(v)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

func TestRead(t *testing.T) {
	data := workbook(t,
		[]string{"Tag", "category_id", "name", "condition", "status", "entry_date"},
		[]string{"PAT-001", "1", "Wheelchair", "new", "AVAILABLE", "2024-03-01"},
		[]string{"", "", "", "", "", ""},
		[]string{"PAT-002", "x", "Crutch", "USED", "AVAILABLE", "2024-03-02"},
		[]string{"PAT-003", "2", "", "", "IN_USE", "01/03/2024"},
		[]string{"PAT-004", "", "", "", "", ""},
	)
	rows, err := xlsxsheet.Read(data)
	require.NoError(t, err)
	require.Len(t, rows, 4, "empty rows are skipped")

	assert.Equal(t, 2, rows[0].Line)
	require.NoError(t, rows[0].Err)
	assert.Equal(t, &model.Asset{
		Category:  &model.Category{ID: 1},
		Tag:       "PAT-001",
		Name:      "Wheelchair",
		Condition: model.ConditionNew,
		Status:    model.StatusAvailable,
		EntryDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}, rows[0].Asset)

	assert.Equal(t, 4, rows[1].Line)
	assert.EqualError(t, rows[1].Err, `invalid category_id: "x"`)
	assert.Nil(t, rows[1].Asset)

	assert.Equal(t, 5, rows[2].Line)
	assert.EqualError(t, rows[2].Err, `invalid entry_date: "01/03/2024"`)

	require.NoError(t, rows[3].Err)
	assert.Nil(t, rows[3].Asset.Category, "missing fields are left zero")
	assert.Equal(t, model.ConditionInvalid, rows[3].Asset.Condition)
	assert.True(t, rows[3].Asset.EntryDate.IsZero())
}

func TestReadMissingColumn(t *testing.T) {
	data := workbook(t,
		[]string{"tag", "name", "condition", "status", "entry_date"},
		[]string{"PAT-001", "Wheelchair", "NEW", "AVAILABLE", "2024-03-01"},
	)
	_, err := xlsxsheet.Read(data)
	assert.ErrorContains(t, err, `missing "category_id" column`)
}

func TestReadInvalidWorkbook(t *testing.T) {
	_, err := xlsxsheet.Read([]byte("not a workbook"))
	assert.Error(t, err)
}
