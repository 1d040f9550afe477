package mapping

import (
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/domain"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/models"
)

// ToModelDayBookEntry converts a domain.DayBookEntry to its model form.
func ToModelDayBookEntry(d domain.DayBookEntry) models.DayBookEntry {
	return models.DayBookEntry{
		EntryID:     d.EntryID,
		Date:        d.Date,
		Description: d.Description,
		Purpose:     d.Purpose,
		Debit:       d.Debit,
		Credit:      d.Credit,
		Balance:     d.Balance,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDayBookEntry converts a models.DayBookEntry to its domain form.
func ToDomainDayBookEntry(m models.DayBookEntry) domain.DayBookEntry {
	return domain.DayBookEntry{
		EntryID:     m.EntryID,
		Date:        m.Date,
		Description: m.Description,
		Purpose:     m.Purpose,
		Debit:       m.Debit,
		Credit:      m.Credit,
		Balance:     m.Balance,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainDayBookEntrySlice converts model day book entries to domain form.
func ToDomainDayBookEntrySlice(ms []models.DayBookEntry) []domain.DayBookEntry {
	ds := make([]domain.DayBookEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDayBookEntry(m)
	}
	return ds
}
