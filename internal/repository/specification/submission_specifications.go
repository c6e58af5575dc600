package specification

import "gorm.io/gorm"

type ByWizardID struct {
	WizardID string
}

func (s ByWizardID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("wizard_id = ?", s.WizardID)
}
