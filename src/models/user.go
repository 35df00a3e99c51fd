package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	RoleAdmin      = "admin"
	RoleAlumni     = "alumni"
	RoleSupervisor = "supervisor"
)

// User บัญชีผู้ใช้ (admin / alumni / supervisor)
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email          string             `bson:"email" json:"email"`
	Password       string             `bson:"password,omitempty" json:"-"` // ✅ เก็บ hash อย่างเดียว ไม่ส่งกลับ
	Role           string             `bson:"role" json:"role" example:"admin"`
	Name           string             `bson:"name" json:"name"`
	ProgramStudyID string             `bson:"programStudyId,omitempty" json:"programStudyId,omitempty"`
}

// LoginRequest body ของ POST /auth/login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"admin@univ.ac.id"`
	Password string `json:"password" validate:"required,min=6" example:"secret123"`
}
