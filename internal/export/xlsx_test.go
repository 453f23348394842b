package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"
	"github.com/user/company-crawler/internal/entity"
)

func rowValues(row *xlsx.Row) []string {
	values := make([]string, 0, len(row.Cells))
	for _, cell := range row.Cells {
		values = append(values, cell.Value)
	}
	return values
}

func TestWriteXLSXColumnOrderAndValues(t *testing.T) {
	records := []entity.CompanyRecord{
		{
			URL:         "http://acme-mold.co.kr",
			SiteTitle:   "에이스금형",
			CompanyName: "에이스금형",
			CEOName:     "홍길동",
			Address:     "서울특별시 강남구 테헤란로 123",
			Email:       "info@acme-mold.co.kr",
		},
		{
			URL:   "http://partial.co.kr",
			Email: "hello@partial.co.kr",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, records))

	file, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, file.Sheets, 1)

	sheet := file.Sheets[0]
	assert.Equal(t, "회사정보", sheet.Name)
	require.Len(t, sheet.Rows, 3)

	assert.Equal(t, []string{"회사명", "이메일", "대표자명", "회사주소", "URL"}, rowValues(sheet.Rows[0]))
	assert.Equal(t, []string{
		"에이스금형", "info@acme-mold.co.kr", "홍길동",
		"서울특별시 강남구 테헤란로 123", "http://acme-mold.co.kr",
	}, rowValues(sheet.Rows[1]))
	// Missing fields stay blank, the row keeps its shape.
	assert.Equal(t, []string{
		"", "hello@partial.co.kr", "", "", "http://partial.co.kr",
	}, rowValues(sheet.Rows[2]))
}

func TestWriteXLSXNoRecordsHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, nil))

	file, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)
	sheet := file.Sheets[0]
	require.Len(t, sheet.Rows, 1)
	assert.Equal(t, "회사명", sheet.Rows[0].Cells[0].Value)
}
