package render

import (
	"time"

	"github.com/johanforsgren/tokendash/internal/domain"
)

func BuildRow(record domain.TokenRecord, now time.Time) domain.Row {
	status := ClassifyStatus(record, now)
	return domain.Row{
		Owner:       stringOr(record.UserEmail, LabelUnknownOwner),
		Preview:     stringOr(record.TokenPreview, Placeholder),
		AuthType:    stringOr(record.AuthType, Placeholder),
		Remaining:   FormatCount(intOr(record.RemainingUsage, 0)),
		ExpiresAt:   FormatTimestamp(record.ExpiresAt),
		LastUsed:    FormatTimestamp(record.LastUsed),
		Status:      status,
		StatusLabel: StatusLabel(status),
		BadgeClass:  BadgeClass(status),
	}
}

func BuildRows(records []domain.TokenRecord, now time.Time) []domain.Row {
	rows := make([]domain.Row, 0, len(records))
	for _, record := range records {
		rows = append(rows, BuildRow(record, now))
	}
	return rows
}

// Summarize prefers the counters the backend reports and derives missing
// ones from the records themselves.
func Summarize(list *domain.TokenList, now time.Time) domain.Summary {
	if list == nil {
		return domain.Summary{}
	}

	summary := domain.Summary{
		Total:  intOr(list.TotalTokens, len(list.Tokens)),
		Active: intOr(list.ActiveTokens, -1),
	}
	if summary.Active < 0 {
		summary.Active = 0
		for _, record := range list.Tokens {
			if ClassifyStatus(record, now) == domain.StatusActive {
				summary.Active++
			}
		}
	}
	return summary
}

// Snapshot turns one successful fetch into everything the dashboard shows.
func Snapshot(list *domain.TokenList, now time.Time) domain.Snapshot {
	var records []domain.TokenRecord
	if list != nil {
		records = list.Tokens
	}
	return domain.Snapshot{
		Rows:      BuildRows(records, now),
		Summary:   Summarize(list, now),
		UpdatedAt: now,
	}
}

// TableFor picks the table content for a snapshot: rows, or the single
// no-data row when the backend returned nothing.
func TableFor(snapshot domain.Snapshot) domain.Table {
	if len(snapshot.Rows) == 0 {
		return domain.Table{Kind: domain.TableEmpty, Message: MessageNoData}
	}
	return domain.Table{Kind: domain.TableRows, Rows: snapshot.Rows}
}

func LoadingTable() domain.Table {
	return domain.Table{Kind: domain.TableLoading, Message: MessageLoading}
}
