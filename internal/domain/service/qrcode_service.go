package service

// QRCodeService renders a payment authorization URL as a QR code image so a
// checkout started on one device can be completed on another.
type QRCodeService interface {
	// GenerateCheckoutQR encodes the authorization URL as a PNG QR code.
	GenerateCheckoutQR(authorizationURL string) ([]byte, error)
}
