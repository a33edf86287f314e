package domain

import "time"

// ApplicantDocument загруженный документ абитуриента
type ApplicantDocument struct {
	ID           int64
	DocumentName string
	DocumentPath string
	DocumentType string
	CreatedAt    time.Time
}

// ProgramDocument документ программы (брошюра, требования и т.п.)
type ProgramDocument struct {
	ID           int64
	ProgramID    int64
	DocumentName string
	DocumentType string
	FullURL      string
}

// DocumentType тип удостоверяющего документа (DNI, паспорт и т.п.)
type DocumentType struct {
	ID   string
	Name string
}

// DefaultDocumentTypes фолбэк на случай недоступности admission API,
// чтобы форма регистрации оставалась рабочей
var DefaultDocumentTypes = []DocumentType{
	{ID: "DNI", Name: "DNI"},
	{ID: "CE", Name: "Carné de Extranjería"},
	{ID: "PASSPORT", Name: "Pasaporte"},
}
