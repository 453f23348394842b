package export

import (
	"fmt"
	"io"

	"github.com/tealeg/xlsx/v2"
	"github.com/user/company-crawler/internal/entity"
)

const sheetName = "회사정보"

// Report column order expected by downstream consumers; do not reorder.
var downloadColumns = []string{"회사명", "이메일", "대표자명", "회사주소", "URL"}

// WriteXLSX renders the accepted records as a single-sheet workbook and
// writes it to w.
func WriteXLSX(w io.Writer, records []entity.CompanyRecord) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(sheetName)
	if err != nil {
		return fmt.Errorf("xlsx: add sheet: %w", err)
	}

	header := sheet.AddRow()
	for _, column := range downloadColumns {
		header.AddCell().SetString(column)
	}

	for _, record := range records {
		row := sheet.AddRow()
		for _, value := range []string{
			record.CompanyName,
			record.Email,
			record.CEOName,
			record.Address,
			record.URL,
		} {
			row.AddCell().SetString(value)
		}
	}

	return file.Write(w)
}
