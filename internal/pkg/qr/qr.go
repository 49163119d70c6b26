package qr

import (
	qrcode "github.com/skip2/go-qrcode"
)

// Quiet zone the encoder bakes into its bitmap, in modules per side.
const encoderQuietZone = 4

// PNG encodes url into a QR symbol and renders it as a PNG byte stream.
// boxSize is the pixel width of one module and border the quiet zone width
// in modules, so the label layout stays fixed regardless of QR version.
func PNG(url string, boxSize, border int) ([]byte, error) {
	q, err := qrcode.New(url, qrcode.Medium)
	if err != nil {
		return nil, err
	}

	modules := len(q.Bitmap()) - 2*encoderQuietZone
	side := (modules + 2*border) * boxSize
	return q.PNG(side)
}
