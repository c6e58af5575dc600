package mapper

import (
	"encoding/json"
	"time"

	"insights-console-be/internal/entity"
	"insights-console-be/internal/model"

	"gorm.io/datatypes"
)

type SubmissionMapper struct{}

func NewSubmissionMapper() *SubmissionMapper {
	return &SubmissionMapper{}
}

func (m *SubmissionMapper) ToModel(s *entity.Submission) *model.Submission {
	if s == nil {
		return nil
	}

	var errText *string
	if s.Error != "" {
		e := s.Error
		errText = &e
	}

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	return &model.Submission{
		Id:        s.Id,
		WizardId:  s.WizardId,
		Selection: toJSON(s.Selection),
		Config:    toJSON(s.Config),
		FilePaths: toJSON(s.FilePaths),
		Status:    string(s.Status),
		SessionId: s.SessionId,
		Error:     errText,
		CreatedAt: s.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *SubmissionMapper) ToEntity(s *model.Submission) *entity.Submission {
	if s == nil {
		return nil
	}

	out := &entity.Submission{
		Id:        s.Id,
		WizardId:  s.WizardId,
		Status:    entity.SubmissionStatus(s.Status),
		SessionId: s.SessionId,
		CreatedAt: s.CreatedAt,
	}
	if s.Error != nil {
		out.Error = *s.Error
	}
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		out.UpdatedAt = &t
	}
	_ = json.Unmarshal(s.Selection, &out.Selection)
	_ = json.Unmarshal(s.Config, &out.Config)
	_ = json.Unmarshal(s.FilePaths, &out.FilePaths)
	return out
}

func (m *SubmissionMapper) ToEntities(models []*model.Submission) []*entity.Submission {
	out := make([]*entity.Submission, 0, len(models))
	for _, s := range models {
		out = append(out, m.ToEntity(s))
	}
	return out
}

func toJSON(v interface{}) datatypes.JSON {
	b, err := json.Marshal(v)
	if err != nil {
		return datatypes.JSON("null")
	}
	return datatypes.JSON(b)
}
