package service

// QRCodeService generates QR code images for shareable content such as
// referral links.
type QRCodeService interface {
	// GeneratePNG renders the content as a PNG image.
	GeneratePNG(content string) ([]byte, error)
}
