package receipts

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"

	"kitabdunyasi/globals"
	"kitabdunyasi/models"
	"kitabdunyasi/store"

	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

var (
	ErrOrderNotFound = errors.New("receipts: order not found")
	ErrForbidden     = errors.New("receipts: order belongs to another account")
)

type Service struct {
	st *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{st: st}
}

// QRPayload returns orderID|orderNumber|signature. The signature lets the
// back office verify a printed receipt without a database lookup.
func QRPayload(orderID, orderNumber string) string {
	data := fmt.Sprintf("%s|%s", orderID, orderNumber)
	h := hmac.New(sha256.New, globals.JwtSecret)
	h.Write([]byte(data))
	sig := base64.StdEncoding.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("%s|%s", data, sig)
}

// Generate renders the order receipt as a PDF. Only the buyer or an
// admin can fetch it.
func (s *Service) Generate(orderID, requesterID, role string) ([]byte, error) {
	var order models.Order
	found := false
	err := s.st.RunExclusive(func(tx *store.Tx) error {
		orders, err := tx.Orders()
		if err != nil {
			return err
		}
		for _, o := range orders {
			if o.ID == orderID {
				order = o
				found = true
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrOrderNotFound
	}
	if order.UserID != requesterID && role != "admin" {
		return nil, ErrForbidden
	}

	qrPNG, err := qrcode.Encode(QRPayload(order.ID, order.OrderNumber), qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("qr encode: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Kitab Dunyasi")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Order: %s", order.OrderNumber))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Date: %s", order.OrderDate.Format("02.01.2006 15:04")))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Customer: %s", order.BillingInfo.Name))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Delivery: %s, %s", order.BillingInfo.City, order.BillingInfo.Address))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(100, 8, "Item")
	pdf.Cell(25, 8, "Qty")
	pdf.Cell(30, 8, "Price")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)
	for _, it := range order.Items {
		pdf.Cell(100, 7, fmt.Sprintf("%s - %s", it.Title, it.Author))
		pdf.Cell(25, 7, fmt.Sprintf("%d", it.Quantity))
		pdf.Cell(30, 7, fmt.Sprintf("%.2f AZN", it.Price*float64(it.Quantity)))
		pdf.Ln(7)
	}
	pdf.Ln(5)

	pdf.Cell(0, 7, fmt.Sprintf("Subtotal: %.2f AZN", order.Subtotal))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Shipping: %.2f AZN", order.Shipping))
	pdf.Ln(7)
	if order.BonusDiscount > 0 {
		pdf.Cell(0, 7, fmt.Sprintf("Bonus discount: -%.2f AZN", order.BonusDiscount))
		pdf.Ln(7)
	}
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total: %.2f AZN", order.Total))

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 155, 20, 40, 40, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}
	return buf.Bytes(), nil
}
