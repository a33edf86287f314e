package admissionapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/m04kA/ADM-InterviewPortal/internal/domain"
)

// GetApplicantDetails получает данные абитуриента: программа, период, студент
func (c *Client) GetApplicantDetails(ctx context.Context, token string) (*domain.ApplicantDetails, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}

	var resp struct {
		apiEnvelope
		Data applicantDetailsDTO `json:"data"`
	}

	if err := c.doJSON(ctx, http.MethodGet, "/admission/applicant/details", token, nil, &resp); err != nil {
		return nil, err
	}

	if resp.Status != StatusSuccess {
		return nil, fmt.Errorf("%w: status=%s message=%s", ErrInvalidResponse, resp.Status, resp.Message)
	}

	return resp.Data.toDomain(), nil
}

// CanRegisterForInterviews проверяет, допущен ли абитуриент к записи на интервью
// (все документы загружены и одобрены)
func (c *Client) CanRegisterForInterviews(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, ErrUnauthorized
	}

	var resp struct {
		apiEnvelope
		Data struct {
			CanRegister bool `json:"can_register"`
		} `json:"data"`
	}

	if err := c.doJSON(ctx, http.MethodGet, "/admission/applicant/can-register-for-interviews", token, nil, &resp); err != nil {
		return false, err
	}

	if resp.Status != StatusSuccess {
		return false, fmt.Errorf("%w: status=%s message=%s", ErrInvalidResponse, resp.Status, resp.Message)
	}

	return resp.Data.CanRegister, nil
}

// SubmitApplication подает заявку на поступление (публичный endpoint)
// Отказ валидации backend возвращается как ApplicationResult с Errors по полям
func (c *Client) SubmitApplication(ctx context.Context, application *ApplicationRequest) (*ApplicationResult, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/admission/apply", "", application)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// И успех (201), и отказ валидации (422) приходят в одном envelope
	var payload struct {
		apiEnvelope
		Errors map[string][]string `json:"errors,omitempty"`
		Data   *struct {
			Applicant struct {
				ID int64 `json:"id"`
			} `json:"applicant"`
		} `json:"data,omitempty"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	result := &ApplicationResult{
		Status:  payload.Status,
		Message: payload.Message,
		Errors:  payload.Errors,
	}
	if payload.Data != nil {
		result.ApplicantID = payload.Data.Applicant.ID
	}

	return result, nil
}

// UploadDocument загружает документ абитуриента (multipart, поля document и document_name)
func (c *Client) UploadDocument(ctx context.Context, token, documentName, fileName string, file io.Reader) (*UploadResult, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("document", fileName)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create form file: %v", ErrInternal, err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("%w: failed to copy file content: %v", ErrInternal, err)
	}
	if err := writer.WriteField("document_name", documentName); err != nil {
		return nil, fmt.Errorf("%w: failed to write form field: %v", ErrInternal, err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("%w: failed to finalize multipart body: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/admission/applicant/documents", &buf)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
	case http.StatusUnauthorized:
		return nil, ErrUnauthorized
	default:
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}

	var payload struct {
		apiEnvelope
		Data struct {
			Path         string `json:"path"`
			DocumentName string `json:"document_name"`
		} `json:"data"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &UploadResult{
		Status:       payload.Status,
		Message:      payload.Message,
		Path:         payload.Data.Path,
		DocumentName: payload.Data.DocumentName,
	}, nil
}

// GetApplicantDocuments получает список загруженных документов абитуриента
func (c *Client) GetApplicantDocuments(ctx context.Context, token string) ([]domain.ApplicantDocument, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}

	var resp struct {
		apiEnvelope
		Data []applicantDocumentDTO `json:"data"`
	}

	if err := c.doJSON(ctx, http.MethodGet, "/admission/applicant/documents", token, nil, &resp); err != nil {
		return nil, err
	}

	if resp.Status != StatusSuccess {
		return nil, fmt.Errorf("%w: status=%s message=%s", ErrInvalidResponse, resp.Status, resp.Message)
	}

	documents := make([]domain.ApplicantDocument, 0, len(resp.Data))
	for _, dto := range resp.Data {
		documents = append(documents, dto.toDomain())
	}

	return documents, nil
}

// DeleteDocument удаляет документ абитуриента
func (c *Client) DeleteDocument(ctx context.Context, token string, documentID int64) error {
	if token == "" {
		return ErrUnauthorized
	}

	var resp apiEnvelope
	path := fmt.Sprintf("/admission/applicant/documents/%d", documentID)
	if err := c.doJSON(ctx, http.MethodDelete, path, token, nil, &resp); err != nil {
		return err
	}

	if resp.Status != StatusSuccess {
		return fmt.Errorf("%w: status=%s message=%s", ErrInvalidResponse, resp.Status, resp.Message)
	}

	return nil
}
