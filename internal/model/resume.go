package model

import "time"

// Resume is written once on upload and never updated.
type Resume struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	FileName      string    `json:"file_name" gorm:"not null"`
	FileType      string    `json:"file_type" gorm:"size:8;not null"` // ".pdf" or ".docx"
	MimeType      string    `json:"mime_type,omitempty"`
	SizeBytes     int64     `json:"size_bytes"`
	ExtractedText string    `json:"extracted_text" gorm:"type:text"`
	UserID        string    `json:"user_id,omitempty" gorm:"index"`
	ParsedAt      time.Time `json:"parsed_at" gorm:"not null"`
	CreatedAt     time.Time `json:"created_at"`
}

type ResumeQuestion struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	ResumeID   string    `json:"resume_id" gorm:"size:36;not null;index"`
	Category   string    `json:"category" gorm:"not null"`
	Question   string    `json:"question" gorm:"type:text;not null"`
	Difficulty string    `json:"difficulty" gorm:"not null"`
	Position   int       `json:"position" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`
}
