package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"insights-console-be/internal/catalog"
	"insights-console-be/internal/dto"
	"insights-console-be/internal/entity"
	"insights-console-be/internal/pkg/logger"
	"insights-console-be/internal/pkg/serverutils"
	"insights-console-be/internal/repository/contract"
	"insights-console-be/pkg/backend"
	"insights-console-be/pkg/events"
	"insights-console-be/pkg/wizard"

	"github.com/google/uuid"
)

var (
	ErrWizardNotFound = errors.New("wizard not found")
	ErrUnknownField   = errors.New("field is not part of this wizard")
	ErrFileField      = errors.New("file fields are set by uploading a file")
	ErrNotFileField   = errors.New("field does not take a file")
	ErrInvalidEmail   = errors.New("invalid email address")
)

// SubmissionError is a failed submission. The wizard is back in
// configuring with its values intact; Wizard is its current state.
type SubmissionError struct {
	Message string
	Wizard  *dto.WizardResponse
}

func (e *SubmissionError) Error() string {
	return e.Message
}

type IWizardService interface {
	Start(ctx context.Context, providers []string) (*dto.WizardResponse, error)
	View(ctx context.Context, id string) (*dto.WizardResponse, error)
	SetValues(ctx context.Context, id string, values dto.SetValuesRequest) (*dto.WizardResponse, error)
	AttachUpload(ctx context.Context, id, fieldKey, filename, contentType string, body io.Reader) (*dto.WizardResponse, error)
	Submit(ctx context.Context, id string) (*dto.SubmitWizardResponse, error)
}

type wizardService struct {
	catalog     *catalog.Catalog
	repo        contract.WizardRepository
	submissions contract.SubmissionRepository
	proxy       IProxyService
	uploads     IUploadService
	checker     *wizard.OutcomeChecker
	publisher   IPublisherService
	logger      logger.ILogger

	// mu serialises load-modify-save of stored wizards. Backend calls run
	// outside it.
	mu sync.Mutex
}

func NewWizardService(
	cat *catalog.Catalog,
	repo contract.WizardRepository,
	submissions contract.SubmissionRepository,
	proxy IProxyService,
	uploads IUploadService,
	checker *wizard.OutcomeChecker,
	publisher IPublisherService,
	log logger.ILogger,
) IWizardService {
	return &wizardService{
		catalog:     cat,
		repo:        repo,
		submissions: submissions,
		proxy:       proxy,
		uploads:     uploads,
		checker:     checker,
		publisher:   publisher,
		logger:      log,
	}
}

func (s *wizardService) Start(ctx context.Context, providers []string) (*dto.WizardResponse, error) {
	sel, err := wizard.NewSelection(providers...)
	if err != nil {
		return nil, err
	}
	w, err := wizard.NewConfiguring(uuid.NewString(), sel)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.repo.Save(ctx, w); err != nil {
		return nil, err
	}

	s.logger.Info("WIZARD", "Wizard started", map[string]interface{}{
		"wizard_id": w.ID(),
		"selection": sel.Names(),
	})
	return s.toResponse(w), nil
}

// View never fails for a missing or emptied wizard; the client is sent
// back to source selection instead.
func (s *wizardService) View(ctx context.Context, id string) (*dto.WizardResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, err := s.repo.Find(ctx, id)
	if errors.Is(err, wizard.ErrEmptySelection) || (err == nil && w == nil) {
		return selectingResponse(), nil
	}
	if err != nil {
		return nil, err
	}
	return s.toResponse(w), nil
}

func (s *wizardService) SetValues(ctx context.Context, id string, values dto.SetValuesRequest) (*dto.WizardResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := s.fieldsOf(w)
	for key, value := range values {
		field, ok := fields[key]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, key)
		}
		if field.Kind == catalog.KindFile {
			return nil, fmt.Errorf("%w: %s", ErrFileField, key)
		}
		value = strings.TrimSpace(value)
		if field.Kind == catalog.KindEmail && value != "" {
			if err := serverutils.ValidateVar(value, "email"); err != nil {
				return nil, fmt.Errorf("%w: %s", ErrInvalidEmail, key)
			}
		}
		if err := w.SetValue(key, value); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Save(ctx, w); err != nil {
		return nil, err
	}
	return s.toResponse(w), nil
}

func (s *wizardService) AttachUpload(ctx context.Context, id, fieldKey, filename, contentType string, body io.Reader) (*dto.WizardResponse, error) {
	s.mu.Lock()
	w, err := s.load(ctx, id)
	if err == nil {
		field, ok := s.fieldsOf(w)[fieldKey]
		switch {
		case !ok:
			err = fmt.Errorf("%w: %s", ErrUnknownField, fieldKey)
		case field.Kind != catalog.KindFile:
			err = fmt.Errorf("%w: %s", ErrNotFileField, fieldKey)
		case w.Phase() == wizard.PhaseSubmitting:
			err = wizard.ErrSubmitting
		}
	}
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	uploaded, err := s.uploads.Upload(ctx, "wizard:"+id+":"+fieldKey, filename, contentType, body)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Reload: values may have changed while the file was uploading.
	w, err = s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := w.SetValue(fieldKey, uploaded.Path); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, w); err != nil {
		return nil, err
	}
	return s.toResponse(w), nil
}

func (s *wizardService) Submit(ctx context.Context, id string) (*dto.SubmitWizardResponse, error) {
	s.mu.Lock()
	w, err := s.load(ctx, id)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	values, err := w.BeginSubmit()
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	if err := s.repo.Save(ctx, w); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.mu.Unlock()

	req := s.composeRequest(w.Selection(), values)
	submission := s.recordPending(ctx, w, req)

	sessionID, failure := s.invoke(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()

	if failure != "" {
		_ = w.Fail(failure)
		if err := s.repo.Save(ctx, w); err != nil {
			s.logger.Error("WIZARD", "Failed to store wizard after failed submission", map[string]interface{}{
				"wizard_id": id,
				"error":     err.Error(),
			})
		}
		s.recordOutcome(ctx, submission, nil, failure)
		s.publish(ctx, events.New(events.TypeSubmissionFailed, map[string]interface{}{
			"wizard_id": id,
			"error":     failure,
		}))
		s.logger.Warn("WIZARD", "Submission failed", map[string]interface{}{
			"wizard_id": id,
			"error":     failure,
		})
		return nil, &SubmissionError{Message: failure, Wizard: s.toResponse(w)}
	}

	redirect, err := w.Succeed(sessionID)
	if err != nil {
		return nil, err
	}
	// The client navigates away; the wizard is finished.
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Warn("WIZARD", "Failed to discard finished wizard", map[string]interface{}{
			"wizard_id": id,
			"error":     err.Error(),
		})
	}
	s.recordOutcome(ctx, submission, &sessionID, "")
	s.publish(ctx, events.New(events.TypeSessionCreated, map[string]interface{}{
		"wizard_id":  id,
		"session_id": sessionID,
	}))
	s.logger.Info("WIZARD", "Session created", map[string]interface{}{
		"wizard_id":  id,
		"session_id": sessionID,
	})

	return &dto.SubmitWizardResponse{SessionId: sessionID, Redirect: redirect}, nil
}

// invoke posts the payload and returns either a session id or a message
// for the user.
func (s *wizardService) invoke(ctx context.Context, req *backend.InvokeRequest) (string, string) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", "Failed to save configuration: " + err.Error()
	}

	raw, err := s.proxy.SaveConfig(ctx, "application/json", body)
	if err != nil {
		return "", "Failed to save configuration: " + err.Error()
	}
	if !raw.OK() {
		return "", fmt.Sprintf("Failed to save configuration: %d %s", raw.StatusCode, strings.TrimSpace(string(raw.Body)))
	}

	var resp backend.InvokeResponse
	if err := json.Unmarshal(raw.Body, &resp); err != nil {
		return "", "Failed to save configuration: unreadable response from backend"
	}

	sessionID, err := s.checker.Check(resp.SessionID, resp.Analysis, resp.Error)
	switch {
	case err == nil:
		return sessionID, ""
	case errors.Is(err, wizard.ErrMissingSessionID):
		return "", "The analysis did not return a session. Please try again."
	default:
		detail := strings.TrimPrefix(err.Error(), wizard.ErrAnalysisFailed.Error()+": ")
		return "", "The analysis could not be completed: " + detail
	}
}

// composeRequest splits the entered values into file references and plain
// configuration, following the selection's field kinds.
func (s *wizardService) composeRequest(sel wizard.Selection, values wizard.Values) *backend.InvokeRequest {
	req := &backend.InvokeRequest{
		Data:   []backend.DataRef{},
		Config: map[string]string{},
	}
	for _, pf := range s.catalog.FieldsFor(sel.Names()) {
		v := strings.TrimSpace(values[pf.Field.Key])
		if v == "" {
			continue
		}
		if pf.Field.Kind == catalog.KindFile {
			req.Data = append(req.Data, backend.DataRef{Type: backend.DataTypeStoredExcel, Path: v})
			continue
		}
		req.Config[pf.Field.Key] = v
	}
	return req
}

func (s *wizardService) recordPending(ctx context.Context, w *wizard.Wizard, req *backend.InvokeRequest) *entity.Submission {
	if s.submissions == nil {
		return nil
	}
	paths := make([]string, 0, len(req.Data))
	for _, d := range req.Data {
		paths = append(paths, d.Path)
	}
	sub := &entity.Submission{
		WizardId:  w.ID(),
		Selection: w.Selection().Names(),
		Config:    req.Config,
		FilePaths: paths,
		Status:    entity.SubmissionPending,
	}
	if err := s.submissions.Create(ctx, sub); err != nil {
		s.logger.Error("WIZARD", "Failed to record submission", map[string]interface{}{
			"wizard_id": w.ID(),
			"error":     err.Error(),
		})
		return nil
	}
	return sub
}

func (s *wizardService) recordOutcome(ctx context.Context, sub *entity.Submission, sessionID *string, failure string) {
	if sub == nil {
		return
	}
	if failure != "" {
		sub.Status = entity.SubmissionFailed
		sub.Error = failure
	} else {
		sub.Status = entity.SubmissionSucceeded
		sub.SessionId = sessionID
	}
	if err := s.submissions.Update(ctx, sub); err != nil {
		s.logger.Error("WIZARD", "Failed to update submission", map[string]interface{}{
			"submission_id": sub.Id.String(),
			"error":         err.Error(),
		})
	}
}

func (s *wizardService) publish(ctx context.Context, event events.Event) {
	publishQuietly(ctx, s.publisher, event, func(err error) {
		s.logger.Warn("WIZARD", "Failed to publish event", map[string]interface{}{
			"type":  event.EventType(),
			"error": err.Error(),
		})
	})
}

func (s *wizardService) load(ctx context.Context, id string) (*wizard.Wizard, error) {
	w, err := s.repo.Find(ctx, id)
	if errors.Is(err, wizard.ErrEmptySelection) {
		return nil, ErrWizardNotFound
	}
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, ErrWizardNotFound
	}
	return w, nil
}

func (s *wizardService) fieldsOf(w *wizard.Wizard) map[string]catalog.FieldDescriptor {
	out := make(map[string]catalog.FieldDescriptor)
	for _, pf := range s.catalog.FieldsFor(w.Selection().Names()) {
		out[pf.Field.Key] = pf.Field
	}
	return out
}

func (s *wizardService) toResponse(w *wizard.Wizard) *dto.WizardResponse {
	names := w.Selection().Names()
	updated := w.UpdatedAt()
	return &dto.WizardResponse{
		Id:        w.ID(),
		Phase:     string(w.Phase()),
		Selection: names,
		Fields:    s.catalog.FieldsFor(names),
		Values:    w.Values(),
		Error:     w.LastError(),
		UpdatedAt: &updated,
	}
}

func selectingResponse() *dto.WizardResponse {
	return &dto.WizardResponse{
		Phase:    string(wizard.PhaseSelecting),
		Redirect: wizard.SelectingPath,
	}
}
