package report

import (
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const badgeSize = 256

// BadgePNG encodes the employee code as a QR code image.
func BadgePNG(employeeCode string) ([]byte, error) {
	if employeeCode == "" {
		return nil, errors.New("employee code is empty")
	}
	png, err := qrcode.Encode(employeeCode, qrcode.Medium, badgeSize)
	if err != nil {
		return nil, errors.Wrapf(err, "encoding badge for %s", employeeCode)
	}
	return png, nil
}
