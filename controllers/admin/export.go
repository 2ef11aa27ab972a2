package admincontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/iskolardev/pupshop-api/store"
)

// GET /export
// Downloads the current inventory as a spreadsheet.
func ExportInventory(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := st.ListProducts()
		if err != nil {
			c.String(http.StatusInternalServerError, "Failed to fetch products")
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Inventory")
		if err != nil {
			c.String(http.StatusInternalServerError, "Failed to create Excel sheet")
			return
		}

		headerRow := sheet.AddRow()
		for _, h := range []string{"ID", "Name", "Description", "Quantity", "Price", "Sold"} {
			headerRow.AddCell().SetValue(h)
		}
		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetValue(int(p.ID))
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Description)
			row.AddCell().SetValue(p.Stock)
			row.AddCell().SetValue(p.Price.StringFixed(2))
			row.AddCell().SetValue(p.SoldCount)
		}

		c.Header("Content-Disposition", "attachment; filename=inventory.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := file.Write(c.Writer); err != nil {
			c.String(http.StatusInternalServerError, "Failed to write Excel file")
			return
		}
	}
}
