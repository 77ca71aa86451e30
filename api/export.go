package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"gagyebu/database"
	"gagyebu/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// ExportHandler 지출 내역 내보내기 처리기
type ExportHandler struct{}

// NewExportHandler 내보내기 처리기 생성
func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

// exportRange start/end 쿼리 파라미터 파싱
func exportRange(c *gin.Context) (start, end time.Time, startStr, endStr string, ok bool) {
	startStr = c.Query("start_date")
	endStr = c.Query("end_date")
	if startStr == "" || endStr == "" {
		BadRequest(c, "시작일과 종료일을 입력해주세요")
		return
	}
	var err error
	start, err = parseDate(startStr)
	if err != nil {
		BadRequest(c, "시작일 형식이 올바르지 않습니다 (예: 2024-12-01)")
		return
	}
	end, err = parseDate(endStr)
	if err != nil {
		BadRequest(c, "종료일 형식이 올바르지 않습니다 (예: 2024-12-31)")
		return
	}
	ok = true
	return
}

// loadExportExpenses 기간 내 지출을 관계 포함으로 조회한다. 공유 장부라 전체 지출이 대상이다.
func loadExportExpenses(c *gin.Context, start, end time.Time) ([]models.Expense, bool) {
	var expenses []models.Expense
	if err := database.DB.Preload("User").Preload("Category").Preload("PaymentMethod").
		Where("date >= ? AND date <= ?", start, end).
		Order("date DESC, created_at DESC").
		Find(&expenses).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "지출 조회에 실패했습니다"))
		return nil, false
	}
	return expenses, true
}

func expenseUsername(e *models.Expense) string {
	if e.User != nil {
		return e.User.Username
	}
	return ""
}

func expenseCategoryName(e *models.Expense) string {
	if e.Category != nil {
		return e.Category.Name
	}
	return ""
}

func expensePaymentName(e *models.Expense) string {
	if e.PaymentMethod != nil {
		return e.PaymentMethod.Name
	}
	return ""
}

// ExportCSV 지출 내역 CSV 다운로드
// @Summary 지출 내역 CSV 내보내기
// @Tags 내보내기
// @Produce text/csv
// @Security BearerAuth
// @Param start_date query string true "시작일 (2024-12-01)"
// @Param end_date query string true "종료일 (2024-12-31)"
// @Success 200 {file} file "CSV 파일"
// @Failure 400 {object} Response "요청 오류"
// @Router /api/v1/export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	start, end, startStr, endStr, ok := exportRange(c)
	if !ok {
		return
	}
	expenses, ok := loadExportExpenses(c, start, end)
	if !ok {
		return
	}

	buf := new(bytes.Buffer)
	// 엑셀에서 한글이 깨지지 않도록 BOM 을 붙인다
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)
	headers := []string{"ID", "날짜", "지출자", "카테고리", "내용", "결제수단", "금액"}
	if err := writer.Write(headers); err != nil {
		InternalError(c, "CSV 생성에 실패했습니다")
		return
	}

	for i := range expenses {
		e := &expenses[i]
		row := []string{
			fmt.Sprintf("%d", e.ID),
			e.Date.Format("2006-01-02"),
			expenseUsername(e),
			expenseCategoryName(e),
			e.Description,
			expensePaymentName(e),
			e.Amount.StringFixed(0),
		}
		if err := writer.Write(row); err != nil {
			InternalError(c, "CSV 생성에 실패했습니다")
			return
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		InternalError(c, "CSV 생성에 실패했습니다")
		return
	}

	filename := fmt.Sprintf("expenses_%s_%s.csv", startStr, endStr)
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportExcel 지출 내역 xlsx 다운로드
// @Summary 지출 내역 엑셀 내보내기
// @Tags 내보내기
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param start_date query string true "시작일 (2024-12-01)"
// @Param end_date query string true "종료일 (2024-12-31)"
// @Success 200 {file} file "xlsx 파일"
// @Failure 400 {object} Response "요청 오류"
// @Router /api/v1/export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	start, end, startStr, endStr, ok := exportRange(c)
	if !ok {
		return
	}
	expenses, ok := loadExportExpenses(c, start, end)
	if !ok {
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "지출내역"
	f.SetSheetName("Sheet1", sheetName)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})
	dataStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	f.SetColWidth(sheetName, "A", "A", 8)
	f.SetColWidth(sheetName, "B", "B", 14)
	f.SetColWidth(sheetName, "C", "C", 12)
	f.SetColWidth(sheetName, "D", "D", 14)
	f.SetColWidth(sheetName, "E", "E", 30)
	f.SetColWidth(sheetName, "F", "F", 16)
	f.SetColWidth(sheetName, "G", "G", 14)

	headers := []string{"ID", "날짜", "지출자", "카테고리", "내용", "결제수단", "금액"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	totalAmount := decimal.Zero
	for i := range expenses {
		e := &expenses[i]
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), e.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), e.Date.Format("2006-01-02"))
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), expenseUsername(e))
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), expenseCategoryName(e))
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), e.Description)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), expensePaymentName(e))
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), e.Amount.InexactFloat64())
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("G%d", row), dataStyle)
		totalAmount = totalAmount.Add(e.Amount)
	}

	// 합계 행
	summaryRow := len(expenses) + 2
	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", summaryRow), "합계")
	f.MergeCell(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("F%d", summaryRow))
	f.SetCellValue(sheetName, fmt.Sprintf("G%d", summaryRow), totalAmount.InexactFloat64())
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("G%d", summaryRow), summaryStyle)

	filename := fmt.Sprintf("지출내역_%s_%s.xlsx", startStr, endStr)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape(filename)))

	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "엑셀 생성에 실패했습니다")
		return
	}
}
