package models

// ErrorResponse โครงสร้างมาตรฐานสำหรับการส่ง Error
type ErrorResponse struct {
	Status  int      `json:"status"`           // HTTP Status Code
	Message string   `json:"message"`          // รายละเอียดของ Error
	Fields  []string `json:"fields,omitempty"` // ฟิลด์ที่ validate ไม่ผ่าน
}
