package infra

// pdf.go renders a sale receipt on 74mm thermal-style paper with go-pdf/fpdf:
// business header, branch, code and date, one row per line with its
// customization underneath, discount, total and a banner for voided sales.

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/ErickMayorgaR/Prueba-Genesis/internal/dto"

	"github.com/go-pdf/fpdf"
)

const ticketAnchoMM = 74

// GenerarTicketPDF writes the receipt of v to w.
func GenerarTicketPDF(w io.Writer, negocio string, v *dto.VentaResponse) error {
	alto := 70.0
	for _, it := range v.Items {
		alto += 5 + 4*float64(len(it.Personalizacion))
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: ticketAnchoMM, Ht: alto},
	})
	pdf.SetMargins(4, 4, 4)
	pdf.SetAutoPageBreak(false, 4)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 8

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(contentW, 7, tr(negocio), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	if v.Sucursal != "" {
		pdf.CellFormat(contentW, 4, tr("Sucursal "+v.Sucursal), "", 1, "C", false, 0, "")
	}
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(contentW, 5, v.Codigo, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, fechaTicket(v.Fecha), "", 1, "L", false, 0, "")

	if v.Estado == "ANULADA" {
		pdf.Ln(1)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(200, 0, 0)
		pdf.CellFormat(contentW, 6, "*** ANULADA ***", "1", 1, "C", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}
	pdf.Ln(2)
	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	// ── Items ─────────────────────────────────────────────────────────────────
	col1 := contentW * 0.56
	col2 := contentW * 0.12
	col3 := contentW * 0.32

	pdf.SetFont("Helvetica", "B", 7)
	pdf.CellFormat(col1, 5, "Producto", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 5, "Cant", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 5, "Subtotal", "B", 1, "R", false, 0, "")

	for _, it := range v.Items {
		pdf.SetFont("Helvetica", "", 7)
		pdf.CellFormat(col1, 5, tr(recortar(it.Descripcion, 30)), "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 5, fmt.Sprintf("x%d", it.Cantidad), "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 5, "Q"+it.Subtotal.StringFixed(2), "", 1, "R", false, 0, "")

		pdf.SetFont("Helvetica", "I", 6)
		for _, codigo := range codigosOrdenados(it.Personalizacion) {
			op := it.Personalizacion[codigo]
			linea := "  " + codigo + ": " + op.Nombre
			if op.PrecioExtra.IsPositive() {
				linea += " (+Q" + op.PrecioExtra.StringFixed(2) + ")"
			}
			pdf.CellFormat(contentW, 4, tr(recortar(linea, 48)), "", 1, "L", false, 0, "")
		}
	}

	pdf.Ln(2)
	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	// ── Totals ────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(col1+col2, 5, "Subtotal:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 5, "Q"+v.Subtotal.StringFixed(2), "", 1, "R", false, 0, "")
	if !v.Descuento.IsZero() {
		pdf.CellFormat(col1+col2, 5, "Descuento:", "", 0, "L", false, 0, "")
		pdf.CellFormat(col3, 5, "-Q"+v.Descuento.StringFixed(2), "", 1, "R", false, 0, "")
	}
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1+col2, 6, "TOTAL:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 6, "Q"+v.Total.StringFixed(2), "", 1, "R", false, 0, "")

	pdf.Ln(3)
	pdf.SetFont("Helvetica", "I", 7)
	pdf.CellFormat(contentW, 4, tr("¡Gracias por su compra!"), "", 1, "C", false, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("pdf: write ticket: %w", err)
	}
	return nil
}

func fechaTicket(raw string) string {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return raw
	}
	return t.Format("02/01/2006  15:04")
}

func recortar(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "..."
}

func codigosOrdenados(p map[string]dto.OpcionElegidaResponse) []string {
	out := make([]string, 0, len(p))
	for k := range p {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
