package qrcode

import (
	"errors"
	"net/url"
	"strings"

	"github.com/skip2/go-qrcode"
)

const DefaultSize = 256

var ErrEmptySurveyID = errors.New("survey id is required")

// SupervisorLink คืนลิงก์สาธารณะที่หัวหน้างานของศิษย์เก่าใช้ตอบแบบสอบถาม
func SupervisorLink(publicURL, surveyID string) (string, error) {
	if surveyID == "" {
		return "", ErrEmptySurveyID
	}
	return strings.TrimRight(publicURL, "/") + "/survey/" + url.PathEscape(surveyID) + "/supervisor", nil
}

// GenerateQRCode สร้าง QR Code (PNG) จากข้อมูลที่กำหนด
func GenerateQRCode(data string, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultSize
	}
	return qrcode.Encode(data, qrcode.Medium, size)
}
