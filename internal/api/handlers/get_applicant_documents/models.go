package get_applicant_documents

import (
	"github.com/m04kA/ADM-InterviewPortal/internal/domain"
)

// DocumentView HTTP модель документа абитуриента
type DocumentView struct {
	ID           int64  `json:"id"`
	DocumentName string `json:"documentName"`
	DocumentPath string `json:"documentPath"`
	DocumentType string `json:"documentType"`
	CreatedAt    string `json:"createdAt,omitempty"`
}

// DocumentsResponse HTTP response model
type DocumentsResponse struct {
	Status    string         `json:"status"`
	Documents []DocumentView `json:"documents"`
}

// FromDomain конвертирует документы в HTTP response
func FromDomain(documents []domain.ApplicantDocument) DocumentsResponse {
	views := make([]DocumentView, 0, len(documents))
	for _, doc := range documents {
		view := DocumentView{
			ID:           doc.ID,
			DocumentName: doc.DocumentName,
			DocumentPath: doc.DocumentPath,
			DocumentType: doc.DocumentType,
		}
		if !doc.CreatedAt.IsZero() {
			view.CreatedAt = doc.CreatedAt.Format(domain.DateKeyFormat)
		}
		views = append(views, view)
	}
	return DocumentsResponse{Status: "success", Documents: views}
}
