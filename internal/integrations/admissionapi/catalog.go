package admissionapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/m04kA/ADM-InterviewPortal/internal/domain"
)

// GetProgramByUUID получает программу по её UUID (публичный endpoint)
func (c *Client) GetProgramByUUID(ctx context.Context, uuid string) (*domain.Program, error) {
	var resp struct {
		apiEnvelope
		Data struct {
			ID          int64  `json:"id"`
			UUID        string `json:"uuid"`
			Name        string `json:"name"`
			Description string `json:"description"`
		} `json:"data"`
	}

	if err := c.doJSON(ctx, http.MethodGet, "/admission/program/"+uuid, "", nil, &resp); err != nil {
		return nil, err
	}

	if resp.Status != StatusSuccess {
		return nil, fmt.Errorf("%w: status=%s message=%s", ErrInvalidResponse, resp.Status, resp.Message)
	}

	return &domain.Program{
		ID:          resp.Data.ID,
		UUID:        resp.Data.UUID,
		Name:        resp.Data.Name,
		Description: resp.Data.Description,
	}, nil
}

// GetProgramDocuments получает документы программы (брошюры, требования)
func (c *Client) GetProgramDocuments(ctx context.Context, token string, programID int64) ([]domain.ProgramDocument, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}

	var resp struct {
		apiEnvelope
		Program string               `json:"program"`
		Data    []programDocumentDTO `json:"data"`
	}

	path := fmt.Sprintf("/admission/programs/%d/documents", programID)
	if err := c.doJSON(ctx, http.MethodGet, path, token, nil, &resp); err != nil {
		return nil, err
	}

	if resp.Status != StatusSuccess {
		return nil, fmt.Errorf("%w: status=%s message=%s", ErrInvalidResponse, resp.Status, resp.Message)
	}

	documents := make([]domain.ProgramDocument, 0, len(resp.Data))
	for _, dto := range resp.Data {
		documents = append(documents, dto.toDomain())
	}

	return documents, nil
}

// GetDocumentTypes получает справочник типов удостоверяющих документов
func (c *Client) GetDocumentTypes(ctx context.Context) ([]domain.DocumentType, error) {
	var resp struct {
		apiEnvelope
		Data []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"data"`
	}

	if err := c.doJSON(ctx, http.MethodGet, "/admission/document-types", "", nil, &resp); err != nil {
		return nil, err
	}

	if resp.Status != StatusSuccess {
		return nil, fmt.Errorf("%w: status=%s message=%s", ErrInvalidResponse, resp.Status, resp.Message)
	}

	types := make([]domain.DocumentType, 0, len(resp.Data))
	for _, dto := range resp.Data {
		types = append(types, domain.DocumentType{ID: dto.ID, Name: dto.Name})
	}

	return types, nil
}

// GetDocumentTypesWithGracefulDegradation получает типы документов с graceful degradation:
// при недоступности admission API возвращает дефолтный справочник,
// чтобы форма регистрации оставалась рабочей
func (c *Client) GetDocumentTypesWithGracefulDegradation(ctx context.Context) []domain.DocumentType {
	types, err := c.GetDocumentTypes(ctx)
	if err != nil {
		c.log.Error("GetDocumentTypes: admission API unavailable, falling back to defaults: %v", err)
		return domain.DefaultDocumentTypes
	}
	return types
}

// GetBanks получает справочник банков для формы регистрации (публичный endpoint)
func (c *Client) GetBanks(ctx context.Context) ([]domain.Bank, error) {
	var resp struct {
		apiEnvelope
		Data []struct {
			ID   int64  `json:"id"`
			Name string `json:"name"`
		} `json:"data"`
	}

	if err := c.doJSON(ctx, http.MethodGet, "/admission/banks", "", nil, &resp); err != nil {
		return nil, err
	}

	if resp.Status != StatusSuccess {
		return nil, fmt.Errorf("%w: status=%s message=%s", ErrInvalidResponse, resp.Status, resp.Message)
	}

	banks := make([]domain.Bank, 0, len(resp.Data))
	for _, dto := range resp.Data {
		banks = append(banks, domain.Bank{ID: dto.ID, Name: dto.Name})
	}

	return banks, nil
}

// GetUniversities получает справочник университетов для формы регистрации (публичный endpoint)
func (c *Client) GetUniversities(ctx context.Context) ([]domain.University, error) {
	var resp struct {
		apiEnvelope
		Data []struct {
			ID   int64  `json:"id"`
			Name string `json:"name"`
		} `json:"data"`
	}

	if err := c.doJSON(ctx, http.MethodGet, "/admission/universities", "", nil, &resp); err != nil {
		return nil, err
	}

	if resp.Status != StatusSuccess {
		return nil, fmt.Errorf("%w: status=%s message=%s", ErrInvalidResponse, resp.Status, resp.Message)
	}

	universities := make([]domain.University, 0, len(resp.Data))
	for _, dto := range resp.Data {
		universities = append(universities, domain.University{ID: dto.ID, Name: dto.Name})
	}

	return universities, nil
}

// GetActivePeriod получает активный период приёма (публичный endpoint)
func (c *Client) GetActivePeriod(ctx context.Context) (*domain.AcademicPeriod, error) {
	var resp struct {
		apiEnvelope
		Data struct {
			ID        int64  `json:"id"`
			Name      string `json:"name"`
			Active    bool   `json:"active"`
			Admission bool   `json:"admission"`
		} `json:"data"`
	}

	if err := c.doJSON(ctx, http.MethodGet, "/admission/period", "", nil, &resp); err != nil {
		return nil, err
	}

	if resp.Status != StatusSuccess {
		return nil, fmt.Errorf("%w: status=%s message=%s", ErrInvalidResponse, resp.Status, resp.Message)
	}

	return &domain.AcademicPeriod{
		ID:        resp.Data.ID,
		Name:      resp.Data.Name,
		Active:    resp.Data.Active,
		Admission: resp.Data.Admission,
	}, nil
}
