package dto

import (
	"rooming/shared/constant"
	"rooming/shared/model"
	"rooming/shared/timezone"
)

type Metadata struct {
	CreatedAt string `json:"createdAt,omitempty"`
}

func (m *Metadata) FromModel(model model.Metadata) {
	if model.CreatedAt.IsZero() {
		return
	}

	m.CreatedAt = timezone.Format(model.CreatedAt, constant.TimestampFormat)
}
