package voucher

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/skip2/go-qrcode"

	"ms-booking/internal/models"
)

// Generator renders booking confirmation vouchers as QR codes. The
// payload is signed so gate staff can verify a voucher offline.
type Generator struct {
	secret []byte
}

func NewGenerator(secret string) *Generator {
	hashed := sha256.Sum256([]byte(secret))
	return &Generator{secret: hashed[:]}
}

type payload struct {
	BookingID      string `json:"bookingId"`
	ExperienceName string `json:"experienceName"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	Quantity       int    `json:"quantity"`
	FullName       string `json:"fullName"`
	Signature      string `json:"sig"`
}

// Payload returns the signed JSON document embedded in the QR code.
func (g *Generator) Payload(booking models.Booking) ([]byte, error) {
	p := payload{
		BookingID:      booking.ID,
		ExperienceName: booking.ExperienceName,
		Date:           booking.Date,
		Time:           booking.Time,
		Quantity:       booking.Quantity,
		FullName:       booking.FullName,
	}
	p.Signature = g.sign(p)
	return json.Marshal(p)
}

// Generate returns a 256x256 PNG QR code for the booking.
func (g *Generator) Generate(booking models.Booking) ([]byte, error) {
	data, err := g.Payload(booking)
	if err != nil {
		return nil, err
	}
	return qrcode.Encode(string(data), qrcode.Medium, 256)
}

// Verify reports whether a scanned payload carries a valid signature.
func (g *Generator) Verify(data []byte) bool {
	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		return false
	}
	sig := p.Signature
	p.Signature = ""
	return hmac.Equal([]byte(sig), []byte(g.sign(p)))
}

func (g *Generator) sign(p payload) string {
	p.Signature = ""
	data, _ := json.Marshal(p)
	mac := hmac.New(sha256.New, g.secret)
	mac.Write(data)
	return hex.EncodeToString(mac.Sum(nil))
}
