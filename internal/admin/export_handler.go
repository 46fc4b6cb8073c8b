package admin

import (
	"fmt"

	"sakura-backend/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

// GET /api/admin/analytics/export — the current analytics as an .xlsx
// workbook with one sheet per view.
func ExportHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f := excelize.NewFile()
		defer f.Close()

		const revenueSheet = "Daily Revenue"
		f.SetSheetName("Sheet1", revenueSheet)
		f.SetCellValue(revenueSheet, "A1", "Date")
		f.SetCellValue(revenueSheet, "B1", "Orders")
		f.SetCellValue(revenueSheet, "C1", "Revenue (EUR)")
		for i, stat := range st.RevenueByDay() {
			row := i + 2
			f.SetCellValue(revenueSheet, fmt.Sprintf("A%d", row), stat.Date)
			f.SetCellValue(revenueSheet, fmt.Sprintf("B%d", row), stat.Orders)
			f.SetCellValue(revenueSheet, fmt.Sprintf("C%d", row), stat.Revenue)
		}

		const dishSheet = "Top Dishes"
		if _, err := f.NewSheet(dishSheet); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not build the workbook")
		}
		f.SetCellValue(dishSheet, "A1", "Dish")
		f.SetCellValue(dishSheet, "B1", "Quantity Sold")
		for i, dish := range st.TopDishes(0) {
			row := i + 2
			f.SetCellValue(dishSheet, fmt.Sprintf("A%d", row), dish.Name)
			f.SetCellValue(dishSheet, fmt.Sprintf("B%d", row), dish.Quantity)
		}

		buf, err := f.WriteToBuffer()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not write the workbook")
		}

		c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set("Content-Disposition", `attachment; filename="sakura-analytics.xlsx"`)
		return c.Send(buf.Bytes())
	}
}
