package postgres

import (
	"emporia/internal/domain/entity"
	"emporia/internal/infra/persistence/model"
)

// Shared audit column mapping. Timestamps are store-owned, the actor columns
// travel with the entity in both directions.
func toAuditDomain(data model.AuditColumns) entity.Audit {
	return entity.Audit{
		CreatedAt: data.CreatedAt,
		CreatedBy: data.CreatedBy,
		UpdatedAt: data.UpdatedAt,
		UpdatedBy: data.UpdatedBy,
	}
}

func fromAuditDomain(data entity.Audit) model.AuditColumns {
	return model.AuditColumns{
		CreatedAt: data.CreatedAt,
		CreatedBy: data.CreatedBy,
		UpdatedAt: data.UpdatedAt,
		UpdatedBy: data.UpdatedBy,
	}
}
