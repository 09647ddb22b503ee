package service

// QRCodeService renders printable QR images for freshly issued recharge
// codes. Only ever invoked at issue time, the single moment plaintext codes
// exist outside generation memory.
type QRCodeService interface {
	// GenerateRechargeQR encodes a plaintext code and its amount as a PNG
	// QR image for prepaid card printing.
	GenerateRechargeQR(code string, amount int64) ([]byte, error)
}
