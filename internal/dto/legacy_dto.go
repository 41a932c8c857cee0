package dto

import "time"

// Bodies served on the pre-v1 /api routes. Keys are camelCase.

type LegacyResumeUploadData struct {
	ID            string    `json:"id"`
	FileName      string    `json:"fileName"`
	TextLength    int       `json:"textLength"`
	ParsedAt      time.Time `json:"parsedAt"`
	ExtractedText string    `json:"extractedText"`
}

type LegacyResumeUploadResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Data    LegacyResumeUploadData `json:"data"`
}

type LegacyResumeDTO struct {
	ID            string    `json:"id"`
	FileName      string    `json:"fileName"`
	ExtractedText string    `json:"extractedText"`
	ParsedAt      time.Time `json:"parsedAt"`
	FileType      string    `json:"fileType"`
}

type LegacyResumeListResponse struct {
	Resumes []LegacyResumeDTO `json:"resumes"`
}
