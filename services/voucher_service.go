package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"time"

	config "github.com/arjunkoirala/trekmandu/configs"
	"github.com/arjunkoirala/trekmandu/database"
	"github.com/arjunkoirala/trekmandu/models"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

var voucherTmpl = template.Must(template.New("voucher").Parse(`
<html>
<body style="font-family: Georgia, serif; padding: 40px;">
  <div style="border: 3px solid #1a5d3a; padding: 40px; text-align: center;">
    <h1 style="color: #1a5d3a;">Trekmandu Booking Voucher</h1>
    <h2>{{.DestinationName}}</h2>
    <p>{{.Location}}</p>
    <p>This voucher confirms the paid reservation of</p>
    <h3>{{.TravelerName}}</h3>
    <p>Reference <b>{{.Reference}}</b> · {{.NumberOfPeople}} traveler(s) · {{.TrekDate}}</p>
    <p>Total paid: <b>{{printf "%.2f" .TotalAmount}} {{.Currency}}</b></p>
    <p style="margin-top: 40px; font-size: 12px;">Issued {{.IssuedOn}}. Present this voucher to your trek leader.</p>
  </div>
</body>
</html>`))

// GenerateVoucherForBooking renders a PDF voucher for a paid booking,
// uploads it and stores the URL on the booking. Runs in the background
// after a payment succeeds; every failure is logged and dropped.
func GenerateVoucherForBooking(bookingID uuid.UUID) {
	var booking models.Booking
	if err := database.DB.Preload("Destination").First(&booking, "id = ?", bookingID).Error; err != nil {
		log.Printf("🔥 Voucher: booking %s not found: %v", bookingID, err)
		return
	}

	if booking.PaymentStatus != "paid" {
		return
	}
	if booking.VoucherURL != nil {
		return
	}

	htmlData, err := renderVoucherHTML(booking)
	if err != nil {
		log.Printf("🔥 Failed to render voucher HTML: %v", err)
		return
	}

	pdfBytes, err := generatePDFFromHTML(htmlData)
	if err != nil {
		log.Printf("🔥 Failed to generate voucher PDF: %v", err)
		return
	}

	uploadURL, err := uploadVoucherToCloudinary(pdfBytes, booking.Reference)
	if err != nil {
		log.Printf("🔥 Failed to upload voucher to Cloudinary: %v", err)
		return
	}

	booking.VoucherURL = &uploadURL
	if err := database.DB.Save(&booking).Error; err != nil {
		log.Printf("🔥 Failed to save voucher URL for booking %s: %v", booking.ID, err)
	} else {
		log.Printf("✅ Generated voucher for booking %s", booking.Reference)
	}
}

func renderVoucherHTML(booking models.Booking) (string, error) {
	data := struct {
		TravelerName    string
		DestinationName string
		Location        string
		Reference       string
		TrekDate        string
		NumberOfPeople  int
		TotalAmount     float64
		Currency        string
		IssuedOn        string
	}{
		TravelerName:    booking.TravelerName,
		DestinationName: booking.Destination.Name,
		Location:        booking.Destination.Location,
		Reference:       booking.Reference,
		TrekDate:        booking.TrekDate,
		NumberOfPeople:  booking.NumberOfPeople,
		TotalAmount:     booking.TotalAmount,
		Currency:        booking.Currency,
		IssuedOn:        time.Now().Format("January 2, 2006"),
	}

	var renderedHTML bytes.Buffer
	if err := voucherTmpl.Execute(&renderedHTML, data); err != nil {
		return "", err
	}
	return renderedHTML.String(), nil
}

func generatePDFFromHTML(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}

func uploadVoucherToCloudinary(fileBytes []byte, reference string) (string, error) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadParams := uploader.UploadParams{
		PublicID:     fmt.Sprintf("vouchers/%s_%s", reference, uuid.New().String()),
		Folder:       "trekmandu_vouchers",
		ResourceType: "raw",
	}

	uploadResult, err := cld.Upload.Upload(ctx, bytes.NewReader(fileBytes), uploadParams)
	if err != nil {
		return "", err
	}

	return uploadResult.SecureURL, nil
}
