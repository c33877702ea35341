package mapping

import (
	"encoding/json"

	"github.com/captainmuzzol/OpenPercento/internal/core/domain"
	"github.com/captainmuzzol/OpenPercento/internal/models"
)

func ToModelSetting(d domain.Setting) models.Setting {
	value := string(d.Value)
	if value == "" {
		value = "null"
	}
	return models.Setting{
		Key:         d.Key,
		Value:       value,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainSetting(m models.Setting) domain.Setting {
	return domain.Setting{
		Key:         m.Key,
		Value:       json.RawMessage(m.Value),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainSettingSlice(ms []models.Setting) []domain.Setting {
	ds := make([]domain.Setting, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSetting(m)
	}
	return ds
}
